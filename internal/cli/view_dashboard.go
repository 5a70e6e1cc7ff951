package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	dashboardRecentLimit = 5
	streakBarWidth       = 20
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	resp *app.DashboardResponse
	err  error
}

type dashboardKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Add     key.Binding
	Bank    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev month")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next month")),
	Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Bank:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bank")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// dashboardView is the home screen: stat cards, the calendar heat-map,
// today's questions and the most recent ones.
type dashboardView struct {
	state   *SharedState
	resp    *app.DashboardResponse
	loading bool
	err     error
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	k := dashboardKeys
	return []key.Binding{k.Prev, k.Next, k.Today, k.Add, k.Bank, k.Refresh, k.Quit}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

func (v *dashboardView) load() tea.Cmd {
	a := v.state.App
	req := app.NewDashboardRequest()
	req.RecentLimit = dashboardRecentLimit
	if v.state.Month != 0 {
		req = req.AtMonth(v.state.Year, v.state.Month)
	}
	return func() tea.Msg {
		resp, err := a.Dashboard.GetDashboard(context.Background(), req)
		return dashboardLoadedMsg{resp: resp, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.resp = msg.resp
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashboardKeys.Prev):
			v.state.ShiftMonth(-1)
			return v, v.load()
		case key.Matches(msg, dashboardKeys.Next):
			v.state.ShiftMonth(1)
			return v, v.load()
		case key.Matches(msg, dashboardKeys.Today):
			v.state.ResetMonth()
			return v, v.load()
		case key.Matches(msg, dashboardKeys.Add):
			return v, pushView(newAddQuestionView(v.state))
		case key.Matches(msg, dashboardKeys.Bank):
			return v, pushView(newBankView(v.state))
		case key.Matches(msg, dashboardKeys.Refresh):
			return v, v.load()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading…")
	}
	if v.err != nil {
		return "\n  " + errorLine(v.err)
	}
	resp := v.resp

	var b strings.Builder
	b.WriteString(formatter.FormatStatCards(resp.Stats) + "\n")
	b.WriteString(fmt.Sprintf(" %s %s %s\n\n",
		formatter.Dim("streak vs best"),
		formatter.StreakProgress(resp.Stats.CurrentStreak, resp.Stats.LongestStreak, streakBarWidth),
		formatter.Dim(fmt.Sprintf("%d/%d", resp.Stats.CurrentStreak, resp.Stats.LongestStreak))))

	calendar := formatter.FormatCalendar(resp.Calendar)
	side := v.renderToday() + "\n\n" + v.renderRecent()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, calendar, "    ", side))
	return b.String()
}

func (v *dashboardView) renderToday() string {
	resp := v.resp
	lines := []string{formatter.Header("Today · " + formatter.HumanDate(resp.Today))}
	if len(resp.TodayQuestions) == 0 {
		lines = append(lines, formatter.Dim("Nothing solved yet today. Press a to log one."))
	}
	for _, q := range resp.TodayQuestions {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			formatter.StyleGreen.Render("✔"), q.Title, formatter.DifficultyBadge(q.Difficulty)))
	}
	return strings.Join(lines, "\n")
}

func (v *dashboardView) renderRecent() string {
	resp := v.resp
	lines := []string{formatter.Header("Recent")}
	if len(resp.Recent) == 0 {
		lines = append(lines, formatter.Dim("No questions logged yet."))
	}
	for _, q := range resp.Recent {
		day := q.CompletedOn(v.state.App.location())
		lines = append(lines, fmt.Sprintf("%s %s %s",
			formatter.Dim(fmt.Sprintf("%-9s", formatter.RelativeDay(day, resp.Today))),
			q.Title, formatter.DifficultyBadge(q.Difficulty)))
	}
	return strings.Join(lines, "\n")
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type bankLoadedMsg struct {
	res *app.BankResult
	err error
}

var bankSorts = []app.BankSort{app.SortByDate, app.SortByDifficulty, app.SortByTitle}

// bankView searches the question bank as the user types. Tab cycles the
// difficulty filter and ctrl+s the sort order.
type bankView struct {
	state  *SharedState
	search textinput.Model

	// difficulty indexes domain.Difficulties; -1 means all.
	difficulty int
	sortIdx    int
	cursor     int

	res *app.BankResult
	err error
}

func newBankView(state *SharedState) *bankView {
	ti := textinput.New()
	ti.Placeholder = "Search title, tags, notes…"
	ti.Prompt = "/ "
	ti.CharLimit = 80
	return &bankView{state: state, search: ti, difficulty: -1}
}

func (v *bankView) ID() ViewID    { return ViewBank }
func (v *bankView) Title() string { return "Question Bank" }

func (v *bankView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "difficulty")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sort")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *bankView) Init() tea.Cmd {
	return tea.Batch(v.search.Focus(), v.query())
}

func (v *bankView) bankQuery() app.BankQuery {
	q := app.BankQuery{Text: v.search.Value(), SortBy: bankSorts[v.sortIdx]}
	if v.difficulty >= 0 {
		q.Difficulties = []domain.Difficulty{domain.Difficulties[v.difficulty]}
	}
	return q
}

func (v *bankView) query() tea.Cmd {
	a := v.state.App
	q := v.bankQuery()
	return func() tea.Msg {
		res, err := a.Bank.Search(context.Background(), q)
		return bankLoadedMsg{res: res, err: err}
	}
}

func (v *bankView) selected() *domain.Question {
	if v.res == nil || v.cursor < 0 || v.cursor >= len(v.res.Questions) {
		return nil
	}
	return v.res.Questions[v.cursor]
}

func (v *bankView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		v.res, v.err = msg.res, msg.err
		if v.res != nil && v.cursor >= len(v.res.Questions) {
			v.cursor = max(len(v.res.Questions)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.query()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyTab:
			v.difficulty++
			if v.difficulty >= len(domain.Difficulties) {
				v.difficulty = -1
			}
			return v, v.query()
		case tea.KeyCtrlS:
			v.sortIdx = (v.sortIdx + 1) % len(bankSorts)
			return v, v.query()
		case tea.KeyUp:
			v.cursor = max(v.cursor-1, 0)
			return v, nil
		case tea.KeyDown:
			if v.res != nil && v.cursor < len(v.res.Questions)-1 {
				v.cursor++
			}
			return v, nil
		case tea.KeyEnter:
			if q := v.selected(); q != nil {
				return v, outputCmd(formatter.FormatQuestionDetail(q, v.state.App.location()))
			}
			return v, nil
		}

		before := v.search.Value()
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		if v.search.Value() != before {
			v.cursor = 0
			return v, tea.Batch(cmd, v.query())
		}
		return v, cmd
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

func (v *bankView) View() string {
	var b strings.Builder
	b.WriteString(v.search.View() + "\n")

	diff := "All"
	if v.difficulty >= 0 {
		diff = string(domain.Difficulties[v.difficulty])
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("difficulty: %s  sort: %s", diff, bankSorts[v.sortIdx])) + "\n\n")

	if v.err != nil {
		b.WriteString(errorLine(v.err))
		return b.String()
	}
	if v.res == nil {
		b.WriteString(formatter.Dim("Loading…"))
		return b.String()
	}

	b.WriteString(formatter.Dim(fmt.Sprintf("Showing %d of %d questions", v.res.Matched, v.res.Total)) + "\n")
	if v.res.Matched == 0 {
		b.WriteString(formatter.Dim("No questions match your filters."))
		return b.String()
	}
	for i, q := range v.res.Questions {
		cursor := "  "
		title := q.Title
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
			title = formatter.Bold(title)
		}
		fmt.Fprintf(&b, "%s%s %s %s\n", cursor, title,
			formatter.DifficultyBadge(q.Difficulty), formatter.Dim(formatter.FormatTags(q.Tags)))
	}
	return b.String()
}

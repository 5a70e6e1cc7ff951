package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model. Views live on a stack with the
// dashboard at the bottom; results from the bank and the add form are
// shown in an output pane over the active view.
type appModel struct {
	state    *SharedState
	views    viewStack
	output   outputPane
	quitting bool
}

func newAppModel(a *App) appModel {
	state := &SharedState{App: a}
	return appModel{
		state:  state,
		views:  viewStack{newDashboardView(state)},
		output: newOutputPane(),
	}
}

func refreshCmd() tea.Msg { return refreshViewMsg{} }

func (m appModel) Init() tea.Cmd {
	if top := m.views.top(); top != nil {
		return top.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.output.resize(msg.Width, m.paneHeight())
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.output.active {
			return m, m.output.update(msg)
		}
	case pushViewMsg:
		m.output.hide()
		m.views = m.views.push(msg.view)
		return m, msg.view.Init()
	case popViewMsg:
		m.views = m.views.pop()
		return m, nil
	case refreshViewMsg:
		// Views under a closed form reload too, so they see its writes.
		return m, m.views.broadcast(msg)
	case cmdOutputMsg:
		m.output.show(msg.output, m.state.Width, m.paneHeight())
		return m, nil
	case wizardCompleteMsg:
		m.views = m.views.pop()
		m.output.hide()
		return m, tea.Batch(msg.nextCmd, refreshCmd)
	case reminderMsg:
		res := msg.result
		m.state.Reminder = &res
		return m, refreshCmd
	}
	return m, m.views.send(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.output.active {
		if isScrollKey(msg) {
			return m, m.output.update(msg)
		}
		m.output.hide()
		if msg.Type == tea.KeyEsc {
			return m, nil
		}
	}

	if viewCapturesInput(m.views.top()) {
		return m, m.views.send(msg)
	}
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.Type == tea.KeyEsc {
		m.views = m.views.pop()
		return m, nil
	}
	return m, m.views.send(msg)
}

// paneHeight is zero until the terminal size is known.
func (m appModel) paneHeight() int {
	if m.state.Height == 0 {
		return 0
	}
	return m.state.ContentHeight()
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.header())
	if banner := m.banner(); banner != "" {
		b.WriteString("\n" + banner)
	}
	b.WriteString("\n")
	switch top := m.views.top(); {
	case m.output.active:
		b.WriteString(m.output.view())
	case top != nil:
		b.WriteString(top.View())
	}
	b.WriteString("\n" + m.statusBar())

	out := b.String()
	// Short frames are padded so the renderer overwrites every old row.
	if rows := strings.Count(out, "\n") + 1; rows < m.state.Height {
		out += strings.Repeat("\n", m.state.Height-rows)
	}
	return out
}

func (m appModel) rule() string {
	return formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
}

func (m appModel) header() string {
	line := formatter.StylePurple.Render("dsatracker")
	if crumbs := m.views.crumbs(); len(crumbs) > 0 {
		line += formatter.Dim(" › " + strings.Join(crumbs, " › "))
	}
	return line + "\n" + m.rule()
}

func (m appModel) banner() string {
	res := m.state.Reminder
	if res == nil || !res.AtRisk() {
		return ""
	}
	return formatter.StyleYellow.Bold(true).Render(fmt.Sprintf(
		"⚠ Streak at risk: nothing solved today, %d yesterday. Log a question before midnight.",
		res.YesterdayCount))
}

func (m appModel) statusBar() string {
	var hints []string
	if m.output.active {
		hints = m.output.hints()
	} else if top := m.views.top(); top != nil {
		for _, b := range top.ShortHelp() {
			h := b.Help()
			hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
		}
	}
	return m.rule() + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether v takes every key itself, q and esc
// included.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewBank, ViewForm:
		return true
	}
	return false
}

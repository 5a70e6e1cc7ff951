package cli

import (
	"fmt"

	"github.com/alexanderramin/dsatracker/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// outputPane shows a command result, such as a question detail or a
// "Cancelled." notice, in place of the active view until dismissed.
type outputPane struct {
	text   string
	vp     viewport.Model
	active bool
}

func newOutputPane() outputPane {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	// Letter keys stay unbound so they fall through and dismiss.
	vp.KeyMap = viewport.KeyMap{
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
	return outputPane{vp: vp}
}

func (p *outputPane) show(text string, width, height int) {
	p.text, p.active = text, true
	p.vp.SetContent(text)
	p.resize(width, height)
	p.vp.GotoTop()
}

func (p *outputPane) hide() {
	p.text, p.active = "", false
}

func (p *outputPane) resize(width, height int) {
	p.vp.Width, p.vp.Height = width, height
}

func (p *outputPane) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

// sized reports whether the pane has a real height to scroll within.
// Before the first WindowSizeMsg the text is printed whole.
func (p outputPane) sized() bool { return p.vp.Height > 0 }

func (p outputPane) view() string {
	if !p.sized() {
		return p.text
	}
	return p.vp.View()
}

func (p outputPane) hints() []string {
	if !p.sized() || p.vp.TotalLineCount() <= p.vp.Height {
		return []string{formatter.Dim("any key: dismiss")}
	}
	pos := fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100))
	switch {
	case p.vp.AtTop():
		pos = "[TOP]"
	case p.vp.AtBottom():
		pos = "[END]"
	}
	return []string{formatter.Dim(pos), formatter.Dim("↑↓ pgup/pgdn: scroll"), formatter.Dim("esc: dismiss")}
}

func isScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

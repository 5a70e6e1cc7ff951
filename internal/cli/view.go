package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type ViewID int

const (
	ViewDashboard ViewID = iota
	ViewBank
	ViewForm
)

// View is one screen on the appModel stack. Title feeds the breadcrumb and
// ShortHelp the hint line at the bottom.
type View interface {
	tea.Model
	ID() ViewID
	Title() string
	ShortHelp() []key.Binding
}

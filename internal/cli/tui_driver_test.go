package cli

import (
	"testing"

	"github.com/alexanderramin/dsatracker/internal/teatest"
)

// TestDriver adds appModel accessors to the generic teatest driver.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver starts a 140x45 session on the dashboard.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(140, 45))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	v := d.appModel().views.top()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ActiveView() View {
	return d.appModel().views.top()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().views)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports a quit from either the model or a drained tea.Quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput is empty unless the output pane is showing.
func (d *TestDriver) LastOutput() string {
	return d.appModel().output.text
}

package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardLoadsOnStartup(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())

	view := d.View()
	assert.NotContains(t, view, "Loading…")
	assert.Contains(t, view, "dsatracker")
	assert.Contains(t, view, "January 2024")
	assert.Contains(t, view, "Two Sum")
	assert.Contains(t, view, "Current streak")
}

func TestTUI_DashboardShowsNewQuestionAfterRefresh(t *testing.T) {
	a := testApp(t)
	d := NewTestDriver(t, a)

	_, err := a.Questions.AddQuestion(context.Background(), domain.QuestionInput{Title: "Course Schedule", Difficulty: "Medium"})
	require.NoError(t, err)
	assert.NotContains(t, d.View(), "Course Schedule")

	d.PressKey('r')
	assert.Contains(t, d.View(), "Course Schedule")
}

func TestTUI_MonthNavigation(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressLeft()
	assert.Contains(t, d.View(), "December 2023")
	assert.Equal(t, 2023, d.State().Year)
	assert.Equal(t, time.December, d.State().Month)

	d.PressKey('l')
	d.PressRight()
	assert.Contains(t, d.View(), "February 2024")

	d.PressKey('t')
	assert.Contains(t, d.View(), "January 2024")
	assert.Equal(t, time.Month(0), d.State().Month)
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
	assert.Empty(t, d.View())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressCtrlC()
	assert.True(t, d.IsQuitting())
}

func TestTUI_EscOnRootIsNoop(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressEsc()
	assert.Equal(t, 1, d.ViewStackLen())
	assert.False(t, d.IsQuitting())
}

func TestTUI_AddFormOpensAndCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, 2, d.ViewStackLen())
	assert.Contains(t, d.View(), "Dashboard › Add Question")

	// q is typed into the form, not treated as quit.
	d.PressKey('q')
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.LastOutput(), "Cancelled.")

	// Any key dismisses the output.
	d.PressKey('x')
	assert.Empty(t, d.LastOutput())
	assert.Contains(t, d.View(), "January 2024")
}

func TestTUI_BankSearchFiltersAsYouType(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('b')
	require.Equal(t, ViewBank, d.ActiveViewID())
	assert.Contains(t, d.View(), "Showing 8 of 8 questions")
	assert.Contains(t, d.View(), "Dashboard › Question Bank")

	d.Type("stack")
	view := d.View()
	assert.Contains(t, view, "Showing 2 of 8 questions")
	assert.Contains(t, view, "Valid Parentheses")
	assert.Contains(t, view, "Binary Tree Inorder Traversal")
	assert.NotContains(t, view, "Two Sum")

	d.PressTab()
	assert.Contains(t, d.View(), "difficulty: Easy")
	assert.Contains(t, d.View(), "Showing 1 of 8 questions")

	d.PressTab()
	d.PressTab()
	d.PressTab()
	assert.Contains(t, d.View(), "difficulty: All")

	d.PressCtrlS()
	assert.Contains(t, d.View(), "sort: difficulty")
}

func TestTUI_BankCapturesQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('b')
	d.PressKey('q')
	assert.False(t, d.IsQuitting())
	require.Equal(t, ViewBank, d.ActiveViewID())
	assert.Equal(t, "q", d.ActiveView().(*bankView).search.Value())
}

func TestTUI_BankEnterShowsDetailAndEscReturns(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('b')
	d.Type("parenthes")
	d.PressEnter()
	out := d.LastOutput()
	assert.Contains(t, out, "VALID PARENTHESES")
	assert.Contains(t, out, "Use stack to match opening and closing brackets.")

	d.PressEsc()
	assert.Empty(t, d.LastOutput())
	assert.Equal(t, ViewBank, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Equal(t, 1, d.ViewStackLen())
}

func TestTUI_BankCursor(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('b')
	d.PressDown()
	d.PressDown()
	d.PressUp()
	bank := d.ActiveView().(*bankView)
	assert.Equal(t, 1, bank.cursor)
	require.NotNil(t, bank.selected())
	assert.Equal(t, "Binary Tree Inorder Traversal", bank.selected().Title)
}

func TestTUI_ReminderBanner(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	assert.NotContains(t, d.View(), "Streak at risk")

	d.Send(reminderMsg{result: reminder.Result{
		Today:          domain.MustParseDate("2024-01-14"),
		YesterdayCount: 3,
		CurrentStreak:  0,
	}})
	assert.Contains(t, d.View(), "Streak at risk")

	d.Send(reminderMsg{result: reminder.Result{
		Today:         domain.MustParseDate("2024-01-14"),
		TodayCount:    1,
		CurrentStreak: 8,
	}})
	assert.NotContains(t, d.View(), "Streak at risk")
}

func TestTUI_ResizePadsToHeight(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.Send(tea.WindowSizeMsg{Width: 150, Height: 60})
	assert.Equal(t, 150, d.State().Width)

	lines := 1
	for _, r := range d.View() {
		if r == '\n' {
			lines++
		}
	}
	assert.GreaterOrEqual(t, lines, 60)
}

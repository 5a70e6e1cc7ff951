package cli

import (
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/reminder"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Displayed calendar page. A zero Month follows today.
	Year  int
	Month time.Month

	// Last scheduled streak check, nil until the reminder fires.
	Reminder *reminder.Result

	// Terminal dimensions
	Width  int
	Height int
}

// ShiftMonth moves the displayed page by delta months.
func (s *SharedState) ShiftMonth(delta int) {
	year, month := s.Year, s.Month
	if month == 0 {
		today := s.App.Dashboard.Today()
		year, month = today.Year(), today.Month()
	}
	d := domain.NewDate(year, month+time.Month(delta), 1)
	s.Year, s.Month = d.Year(), d.Month()
}

// ResetMonth returns the calendar to today's month.
func (s *SharedState) ResetMonth() {
	s.Year, s.Month = 0, 0
}

// chromeLines is the header, separator and status bar around the content.
const chromeLines = 4

// ContentHeight returns the rows left for the active view.
func (s *SharedState) ContentHeight() int {
	h := s.Height - chromeLines
	if s.Reminder != nil && s.Reminder.AtRisk() {
		h--
	}
	return max(h, 1)
}

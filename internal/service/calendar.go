package service

import (
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
)

// Calendar carries the clock and calendar settings shared by the services.
// The zero value uses the system clock, UTC and Sunday-first weeks.
type Calendar struct {
	Now       func() time.Time
	Location  *time.Location
	WeekStart time.Weekday
	WalkLimit int
}

func (c Calendar) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Calendar) now() time.Time {
	if c.Now == nil {
		return time.Now().In(c.location())
	}
	return c.Now().In(c.location())
}

// Today is the current calendar day in the configured location.
func (c Calendar) Today() domain.Date {
	return domain.DateOf(c.now())
}

// resolve returns override when set, otherwise today.
func (c Calendar) resolve(override *domain.Date) domain.Date {
	if override != nil && !override.IsZero() {
		return *override
	}
	return c.Today()
}

func (c Calendar) engine() streak.Engine {
	return streak.Engine{WalkLimit: c.WalkLimit}
}

func (c Calendar) grid() streak.GridBuilder {
	return streak.GridBuilder{WeekStart: c.WeekStart}
}

// completionTime places a completion on day at the current wall-clock time.
func (c Calendar) completionTime(day *domain.Date) time.Time {
	now := c.now()
	if day == nil {
		return now
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, c.location())
}

package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNegativeCount is returned when an activity count would drop below zero.
var ErrNegativeCount = errors.New("activity count must not be negative")

// ActivityLog maps calendar days to the number of questions completed that day.
// An absent day has count 0. Counts are never negative: every mutation path
// validates before writing, so readers can trust the contents.
type ActivityLog struct {
	counts map[Date]int
}

// NewActivityLog returns an empty log.
func NewActivityLog() ActivityLog {
	return ActivityLog{counts: make(map[Date]int)}
}

// ParseActivityLog builds a log from string-keyed counts, rejecting malformed
// keys and negative counts.
func ParseActivityLog(raw map[string]int) (ActivityLog, error) {
	log := NewActivityLog()
	for key, n := range raw {
		d, err := ParseDate(key)
		if err != nil {
			return ActivityLog{}, err
		}
		if err := log.Set(d, n); err != nil {
			return ActivityLog{}, fmt.Errorf("%s: %w", key, err)
		}
	}
	return log, nil
}

// Count returns the activity recorded for d, or 0.
func (l ActivityLog) Count(d Date) int {
	return l.counts[d]
}

// Has reports whether d has an explicit entry (including an explicit zero).
func (l ActivityLog) Has(d Date) bool {
	_, ok := l.counts[d]
	return ok
}

// Len returns the number of entries, zero-count entries included.
func (l ActivityLog) Len() int {
	return len(l.counts)
}

// Set records an absolute count for d.
func (l *ActivityLog) Set(d Date, n int) error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	if n < 0 {
		return ErrNegativeCount
	}
	if l.counts == nil {
		l.counts = make(map[Date]int)
	}
	l.counts[d] = n
	return nil
}

// Add adjusts the count for d by delta. The result must stay non-negative.
func (l *ActivityLog) Add(d Date, delta int) error {
	return l.Set(d, l.Count(d)+delta)
}

// Dates returns every key in chronological order.
func (l ActivityLog) Dates() []Date {
	dates := make([]Date, 0, len(l.counts))
	for d := range l.counts {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Clone returns an independent copy.
func (l ActivityLog) Clone() ActivityLog {
	c := ActivityLog{counts: make(map[Date]int, len(l.counts))}
	for d, n := range l.counts {
		c.counts[d] = n
	}
	return c
}

// Keyed returns the log as YYYY-MM-DD -> count, the shape the UI and API use.
func (l ActivityLog) Keyed() map[string]int {
	out := make(map[string]int, len(l.counts))
	for d, n := range l.counts {
		out[d.Key()] = n
	}
	return out
}

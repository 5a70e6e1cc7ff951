// Package streak derives streak statistics and month calendar grids from an
// activity log. Every function here is pure: inputs are read, never mutated,
// and "today" is always supplied by the caller.
package streak

import "github.com/alexanderramin/dsatracker/internal/domain"

// DefaultWalkLimit bounds how far back the current-streak walk goes.
const DefaultWalkLimit = 365

// Stats summarises an activity log as of a given day.
type Stats struct {
	CurrentStreak       int     `json:"currentStreak" yaml:"currentStreak"`
	LongestStreak       int     `json:"longestStreak" yaml:"longestStreak"`
	TotalActivity       int     `json:"totalActivity" yaml:"totalActivity"`
	ActiveDays          int     `json:"activeDays" yaml:"activeDays"`
	AveragePerActiveDay float64 `json:"averagePerActiveDay" yaml:"averagePerActiveDay"`
}

// DateSet is a set of calendar days.
type DateSet map[domain.Date]struct{}

// Contains reports whether d is in the set. A nil set contains nothing.
func (s DateSet) Contains(d domain.Date) bool {
	_, ok := s[d]
	return ok
}

// Engine computes streak statistics. The zero value uses DefaultWalkLimit.
type Engine struct {
	// WalkLimit caps the current streak; values <= 0 mean DefaultWalkLimit.
	WalkLimit int
}

func (e Engine) walkLimit() int {
	if e.WalkLimit <= 0 {
		return DefaultWalkLimit
	}
	return e.WalkLimit
}

// ComputeStats returns the statistics for log as of today.
func (e Engine) ComputeStats(log domain.ActivityLog, today domain.Date) Stats {
	var s Stats
	for _, d := range log.Dates() {
		n := log.Count(d)
		s.TotalActivity += n
		if n > 0 {
			s.ActiveDays++
		}
	}
	if s.ActiveDays > 0 {
		s.AveragePerActiveDay = float64(s.TotalActivity) / float64(s.ActiveDays)
	}

	s.CurrentStreak = e.currentStreak(log, today)
	s.LongestStreak = LongestStreak(log)
	return s
}

// StreakDaySet returns the days making up the current streak ending today.
// It is empty when today has no activity.
func (e Engine) StreakDaySet(log domain.ActivityLog, today domain.Date) DateSet {
	n := e.currentStreak(log, today)
	set := make(DateSet, n)
	for i := 0; i < n; i++ {
		set[today.AddDays(-i)] = struct{}{}
	}
	return set
}

func (e Engine) currentStreak(log domain.ActivityLog, today domain.Date) int {
	limit := e.walkLimit()
	streak := 0
	for d := today; streak < limit && log.Count(d) > 0; d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days with
// activity. A zero-count entry or a missing day between two entries both
// end a run.
func LongestStreak(log domain.ActivityLog) int {
	longest, run := 0, 0
	var prev domain.Date
	for _, d := range log.Dates() {
		if log.Count(d) <= 0 {
			run = 0
			prev = d
			continue
		}
		if run > 0 && prev.AddDays(1).Equal(d) {
			run++
		} else {
			run = 1
		}
		prev = d
		if run > longest {
			longest = run
		}
	}
	return longest
}

// ComputeStats uses the default engine.
func ComputeStats(log domain.ActivityLog, today domain.Date) Stats {
	return Engine{}.ComputeStats(log, today)
}

// StreakDaySet uses the default engine.
func StreakDaySet(log domain.ActivityLog, today domain.Date) DateSet {
	return Engine{}.StreakDaySet(log, today)
}

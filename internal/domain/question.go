package domain

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrInvalidQuestion is wrapped by every ValidationError.
var ErrInvalidQuestion = errors.New("invalid question")

// Question is one solved practice problem.
type Question struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Difficulty   Difficulty `json:"difficulty" yaml:"difficulty"`
	Tags         []Tag      `json:"tags" yaml:"tags"`
	Approach     string     `json:"approach,omitempty" yaml:"approach,omitempty"`
	Solution     string     `json:"solution,omitempty" yaml:"solution,omitempty"`
	Notes        string     `json:"notes,omitempty" yaml:"notes,omitempty"`
	TimeSpentMin *int       `json:"timeSpent,omitempty" yaml:"timeSpent,omitempty"`
	Platform     string     `json:"platform" yaml:"platform"`
	CompletedAt  time.Time  `json:"completedAt" yaml:"completedAt"`
}

// CompletedOn returns the calendar day the question counts toward, as seen in loc.
func (q *Question) CompletedOn(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(q.CompletedAt.In(loc))
}

// HasTag reports whether q carries t.
func (q *Question) HasTag(t Tag) bool {
	for _, qt := range q.Tags {
		if qt == t {
			return true
		}
	}
	return false
}

// ValidationError collects per-field problems found at the input boundary.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidQuestion, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidQuestion }

// QuestionInput is the typed form record collected from a user before a
// question is added. Raw strings are kept so callers can pass form values
// straight through; Validate normalises them into a Question.
type QuestionInput struct {
	Title        string
	Difficulty   string
	Tags         []string
	Approach     string
	Solution     string
	Notes        string
	TimeSpentMin *int
	Platform     string

	// CompletedOn backfills a question onto an earlier day. Nil means now.
	CompletedOn *Date
}

// Validate checks the input and returns the normalised question fields.
// ID and CompletedAt are left for the caller to assign.
func (in QuestionInput) Validate() (*Question, error) {
	fields := map[string]string{}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		fields["title"] = "title is required"
	}

	difficulty := DifficultyMedium
	if strings.TrimSpace(in.Difficulty) != "" {
		d, ok := ParseDifficulty(in.Difficulty)
		if !ok {
			fields["difficulty"] = fmt.Sprintf("unknown difficulty %q (want Easy, Medium or Hard)", in.Difficulty)
		}
		difficulty = d
	}

	var tags []Tag
	seen := make(map[Tag]bool)
	var unknown []string
	for _, raw := range in.Tags {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		t, ok := ParseTag(raw)
		if !ok {
			unknown = append(unknown, raw)
			continue
		}
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}
	if len(unknown) > 0 {
		fields["tags"] = fmt.Sprintf("unknown tags: %s", strings.Join(unknown, ", "))
	}

	if in.TimeSpentMin != nil && *in.TimeSpentMin < 1 {
		fields["timeSpent"] = "time spent must be at least 1 minute"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &Question{
		Title:        title,
		Difficulty:   difficulty,
		Tags:         tags,
		Approach:     strings.TrimSpace(in.Approach),
		Solution:     in.Solution,
		Notes:        strings.TrimSpace(in.Notes),
		TimeSpentMin: in.TimeSpentMin,
		Platform:     cmp.Or(strings.TrimSpace(in.Platform), DefaultPlatform),
	}, nil
}

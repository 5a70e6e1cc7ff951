package service

import (
	"sort"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
)

// filterQuestions keeps the questions matching every non-empty part of q.
func filterQuestions(questions []*domain.Question, q app.BankQuery) []*domain.Question {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]*domain.Question, 0, len(questions))
	for _, question := range questions {
		if !matchesText(question, text) {
			continue
		}
		if !matchesAnyTag(question, q.Tags) {
			continue
		}
		if !matchesDifficulty(question, q.Difficulties) {
			continue
		}
		out = append(out, question)
	}
	return out
}

// matchesText is a case-insensitive substring match over the searchable fields.
// needle must already be lower-cased.
func matchesText(q *domain.Question, needle string) bool {
	if needle == "" {
		return true
	}
	haystack := []string{q.Title, q.Platform, q.Approach, q.Notes}
	for _, t := range q.Tags {
		haystack = append(haystack, string(t))
	}
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func matchesAnyTag(q *domain.Question, tags []domain.Tag) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if q.HasTag(t) {
			return true
		}
	}
	return false
}

func matchesDifficulty(q *domain.Question, difficulties []domain.Difficulty) bool {
	if len(difficulties) == 0 {
		return true
	}
	for _, d := range difficulties {
		if q.Difficulty == d {
			return true
		}
	}
	return false
}

// sortQuestions orders in place. Input order breaks ties.
func sortQuestions(questions []*domain.Question, by app.BankSort) {
	switch by {
	case app.SortByDifficulty:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].Difficulty.Rank() < questions[j].Difficulty.Rank()
		})
	case app.SortByTitle:
		sort.SliceStable(questions, func(i, j int) bool {
			return strings.ToLower(questions[i].Title) < strings.ToLower(questions[j].Title)
		})
	default:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].CompletedAt.After(questions[j].CompletedAt)
		})
	}
}

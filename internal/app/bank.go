package app

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dsatracker/internal/domain"
)

type BankSort string

const (
	SortByDate       BankSort = "date"
	SortByDifficulty BankSort = "difficulty"
	SortByTitle      BankSort = "title"
)

// ParseBankSort accepts date, difficulty or title. Empty means date.
func ParseBankSort(s string) (BankSort, error) {
	switch BankSort(strings.ToLower(strings.TrimSpace(s))) {
	case "", SortByDate:
		return SortByDate, nil
	case SortByDifficulty:
		return SortByDifficulty, nil
	case SortByTitle:
		return SortByTitle, nil
	default:
		return "", fmt.Errorf("unknown sort %q (want date, difficulty or title)", s)
	}
}

// BankQuery filters the question bank. Empty fields match everything.
type BankQuery struct {
	Text         string
	Tags         []domain.Tag
	Difficulties []domain.Difficulty
	SortBy       BankSort
}

type BankResult struct {
	Questions []*domain.Question `json:"questions" yaml:"questions"`
	Total     int                `json:"total" yaml:"total"`
	Matched   int                `json:"matched" yaml:"matched"`
}

// TagCount is a catalogue tag and how many logged questions carry it.
type TagCount struct {
	Tag   domain.Tag `json:"tag" yaml:"tag"`
	Count int        `json:"count" yaml:"count"`
}

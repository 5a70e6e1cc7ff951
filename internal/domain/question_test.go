package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestQuestionInput_Validate_Defaults(t *testing.T) {
	q, err := QuestionInput{Title: "  Two Sum  "}.Validate()
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", q.Title)
	assert.Equal(t, DifficultyMedium, q.Difficulty)
	assert.Equal(t, DefaultPlatform, q.Platform)
	assert.Empty(t, q.Tags)
}

func TestQuestionInput_Validate_NormalisesTagsAndDifficulty(t *testing.T) {
	q, err := QuestionInput{
		Title:      "Valid Parentheses",
		Difficulty: "easy",
		Tags:       []string{"stack", "String", "Stack", ""},
		Platform:   "HackerRank",
	}.Validate()
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.Equal(t, []Tag{TagStack, TagString}, q.Tags)
	assert.Equal(t, "HackerRank", q.Platform)
}

func TestQuestionInput_Validate_CollectsFieldErrors(t *testing.T) {
	_, err := QuestionInput{
		Title:        " ",
		Difficulty:   "Impossible",
		Tags:         []string{"Array", "Quantum"},
		TimeSpentMin: intPtr(0),
	}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "difficulty")
	assert.Contains(t, verr.Fields, "timeSpent")
	assert.Contains(t, verr.Fields["tags"], "Quantum")
	assert.Contains(t, err.Error(), "title: title is required")
}

func TestDifficulty_Rank(t *testing.T) {
	assert.Less(t, DifficultyEasy.Rank(), DifficultyMedium.Rank())
	assert.Less(t, DifficultyMedium.Rank(), DifficultyHard.Rank())
	assert.Less(t, DifficultyHard.Rank(), Difficulty("Other").Rank())
}

func TestQuestion_CompletedOn(t *testing.T) {
	q := &Question{CompletedAt: time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2024-01-10", q.CompletedOn(nil).Key())
	assert.Equal(t, "2024-01-11", q.CompletedOn(time.FixedZone("UTC+2", 2*60*60)).Key())
}

func TestIntensity_String(t *testing.T) {
	assert.Equal(t, "none", IntensityNone.String())
	assert.Equal(t, "max", IntensityMax.String())
}

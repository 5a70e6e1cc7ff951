package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityLog_AbsentKeyIsZero(t *testing.T) {
	log := NewActivityLog()
	assert.Equal(t, 0, log.Count(MustParseDate("2024-01-01")))
	assert.False(t, log.Has(MustParseDate("2024-01-01")))
}

func TestActivityLog_SetRejectsNegative(t *testing.T) {
	log := NewActivityLog()
	err := log.Set(MustParseDate("2024-01-01"), -1)
	assert.ErrorIs(t, err, ErrNegativeCount)
	assert.Equal(t, 0, log.Len())
}

func TestActivityLog_SetRejectsZeroDate(t *testing.T) {
	log := NewActivityLog()
	assert.ErrorIs(t, log.Set(Date{}, 1), ErrInvalidDate)
}

func TestActivityLog_AddCannotGoBelowZero(t *testing.T) {
	log := NewActivityLog()
	d := MustParseDate("2024-01-01")
	require.NoError(t, log.Add(d, 2))
	require.NoError(t, log.Add(d, -2))
	assert.Equal(t, 0, log.Count(d))
	assert.True(t, log.Has(d), "explicit zero entries are kept")
	assert.ErrorIs(t, log.Add(d, -1), ErrNegativeCount)
}

func TestActivityLog_ZeroValueIsUsable(t *testing.T) {
	var log ActivityLog
	require.NoError(t, log.Add(MustParseDate("2024-01-01"), 1))
	assert.Equal(t, 1, log.Len())
}

func TestParseActivityLog(t *testing.T) {
	log, err := ParseActivityLog(map[string]int{"2024-01-10": 1, "2024-01-09": 2})
	require.NoError(t, err)
	assert.Equal(t, 2, log.Count(MustParseDate("2024-01-09")))

	dates := log.Dates()
	require.Len(t, dates, 2)
	assert.Equal(t, "2024-01-09", dates[0].Key())
	assert.Equal(t, "2024-01-10", dates[1].Key())
}

func TestParseActivityLog_RejectsBadInput(t *testing.T) {
	_, err := ParseActivityLog(map[string]int{"2024-13-01": 1})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseActivityLog(map[string]int{"2024-01-01": -3})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestActivityLog_CloneIsIndependent(t *testing.T) {
	log, err := ParseActivityLog(map[string]int{"2024-01-01": 1})
	require.NoError(t, err)

	c := log.Clone()
	require.NoError(t, c.Add(MustParseDate("2024-01-01"), 5))

	assert.Equal(t, 1, log.Count(MustParseDate("2024-01-01")))
	assert.Equal(t, 6, c.Count(MustParseDate("2024-01-01")))
}

func TestActivityLog_Keyed(t *testing.T) {
	raw := map[string]int{"2024-01-01": 1, "2024-01-03": 0}
	log, err := ParseActivityLog(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, log.Keyed())
}

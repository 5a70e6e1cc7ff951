package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepo_EmptySnapshot(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	log, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Zero(t, log.Len())
}

func TestActivityRepo_SetAndSnapshot(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, domain.MustParseDate("2024-01-09"), 2))
	require.NoError(t, repo.Set(ctx, domain.MustParseDate("2024-01-10"), 0))
	require.NoError(t, repo.Set(ctx, domain.MustParseDate("2024-01-09"), 5))

	log, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-01-09": 5, "2024-01-10": 0}, log.Keyed())
}

func TestActivityRepo_SetRejectsNegative(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	err := repo.Set(context.Background(), domain.MustParseDate("2024-01-09"), -1)
	assert.ErrorIs(t, err, domain.ErrNegativeCount)
}

func TestActivityRepo_SetRejectsZeroDate(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	err := repo.Set(context.Background(), domain.Date{}, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestActivityRepo_IncrementCreatesAndAccumulates(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := domain.MustParseDate("2024-01-11")

	n, err := repo.Increment(ctx, day, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = repo.Increment(ctx, day, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got, err := repo.Get(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 4, got)
}

func TestActivityRepo_DecrementClampsAtZero(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	day := domain.MustParseDate("2024-01-11")

	require.NoError(t, repo.Set(ctx, day, 1))

	n, err := repo.Increment(ctx, day, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// Decrementing an unseen day records an explicit zero.
	n, err = repo.Increment(ctx, domain.MustParseDate("2024-02-01"), -1)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestActivityRepo_GetMissingDayIsZero(t *testing.T) {
	repo := NewSQLiteActivityRepo(testutil.NewTestDB(t))

	n, err := repo.Get(context.Background(), domain.MustParseDate("1999-12-31"))
	require.NoError(t, err)
	assert.Zero(t, n)
}

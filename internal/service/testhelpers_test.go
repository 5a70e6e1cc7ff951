package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/alexanderramin/dsatracker/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// fixture wires the services over one in-memory database with the clock
// pinned to 18:30 UTC on the given day.
type fixture struct {
	db        *sql.DB
	uow       db.UnitOfWork
	questions *repository.SQLiteQuestionRepo
	activity  *repository.SQLiteActivityRepo
	cal       Calendar
	observer  *recordingObserver
}

func newFixture(t *testing.T, today string) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	now := domain.MustParseDate(today).Time(time.UTC).Add(18*time.Hour + 30*time.Minute)
	return &fixture{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		questions: repository.NewSQLiteQuestionRepo(database, time.UTC),
		activity:  repository.NewSQLiteActivityRepo(database),
		cal:       Calendar{Now: testutil.FixedClock(now), Location: time.UTC},
		observer:  &recordingObserver{},
	}
}

func (f *fixture) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, SeedDemo(context.Background(), f.uow, time.UTC))
}

func (f *fixture) questionService() QuestionService {
	return NewQuestionService(f.questions, f.uow, f.cal, f.observer)
}

func (f *fixture) dashboardService() DashboardService {
	return NewDashboardService(f.questions, f.activity, f.cal)
}

func (f *fixture) bankService() QuestionBankService {
	return NewQuestionBankService(f.questions, f.observer)
}

func (f *fixture) count(t *testing.T, key string) int {
	t.Helper()
	n, err := f.activity.Get(context.Background(), domain.MustParseDate(key))
	require.NoError(t, err)
	return n
}

func datePtr(key string) *domain.Date {
	d := domain.MustParseDate(key)
	return &d
}

func intPtr(n int) *int { return &n }

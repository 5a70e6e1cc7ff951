package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
)

type activityService struct {
	activity repository.ActivityRepo
	observer UseCaseObserver
}

func NewActivityService(activity repository.ActivityRepo, observers ...UseCaseObserver) ActivityService {
	return &activityService{activity: activity, observer: useCaseObserverOrNoop(observers)}
}

func (s *activityService) Snapshot(ctx context.Context) (domain.ActivityLog, error) {
	return s.activity.Snapshot(ctx)
}

func (s *activityService) SetActivity(ctx context.Context, day domain.Date, count int) (err error) {
	startedAt := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "set-activity",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"day": day.Key(), "count": count},
		})
	}()

	if day.IsZero() {
		return domain.ErrInvalidDate
	}
	if count < 0 {
		return domain.ErrNegativeCount
	}
	return s.activity.Set(ctx, day, count)
}

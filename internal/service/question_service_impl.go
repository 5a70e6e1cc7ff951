package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/dsatracker/internal/db"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
	"github.com/google/uuid"
)

type questionService struct {
	questions repository.QuestionRepo
	uow       db.UnitOfWork
	cal       Calendar
	observer  UseCaseObserver
}

func NewQuestionService(questions repository.QuestionRepo, uow db.UnitOfWork, cal Calendar, observers ...UseCaseObserver) QuestionService {
	return &questionService{
		questions: questions,
		uow:       uow,
		cal:       cal,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *questionService) AddQuestion(ctx context.Context, in domain.QuestionInput) (q *domain.Question, err error) {
	startedAt := time.Now()
	fields := map[string]any{"title": in.Title}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "add-question",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	q, err = in.Validate()
	if in.CompletedOn != nil && in.CompletedOn.After(s.cal.Today()) {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			verr = &domain.ValidationError{Fields: map[string]string{}}
		}
		verr.Fields["completedOn"] = "completion date cannot be in the future"
		err = verr
	}
	if err != nil {
		return nil, err
	}
	q.ID = uuid.New().String()
	q.CompletedAt = s.cal.completionTime(in.CompletedOn)
	day := q.CompletedOn(s.cal.location())
	fields["id"] = q.ID
	fields["day"] = day.Key()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivity := repository.NewSQLiteActivityRepo(tx)
		txQuestions := repository.NewSQLiteQuestionRepo(tx, s.cal.location())

		n, err := txActivity.Increment(ctx, day, 1)
		if err != nil {
			return err
		}
		fields["day_count"] = n

		return txQuestions.Create(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (s *questionService) RemoveQuestion(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"id": id}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "remove-question",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txActivity := repository.NewSQLiteActivityRepo(tx)
		txQuestions := repository.NewSQLiteQuestionRepo(tx, s.cal.location())

		q, err := txQuestions.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := txQuestions.Delete(ctx, id); err != nil {
			return err
		}

		day := q.CompletedOn(s.cal.location())
		n, err := txActivity.Increment(ctx, day, -1)
		if err != nil {
			return err
		}
		fields["day"] = day.Key()
		fields["day_count"] = n
		return nil
	})
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

func (s *questionService) ListRecent(ctx context.Context, limit int) ([]*domain.Question, error) {
	return s.questions.List(ctx, limit)
}

func (s *questionService) ListForDay(ctx context.Context, day domain.Date) ([]*domain.Question, error) {
	return s.questions.ListByDay(ctx, day)
}

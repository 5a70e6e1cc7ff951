package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/repository"
)

type questionBankService struct {
	questions repository.QuestionRepo
	observer  UseCaseObserver
}

func NewQuestionBankService(questions repository.QuestionRepo, observers ...UseCaseObserver) QuestionBankService {
	return &questionBankService{questions: questions, observer: useCaseObserverOrNoop(observers)}
}

func (s *questionBankService) Search(ctx context.Context, q app.BankQuery) (res *app.BankResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"text": q.Text, "sort": string(q.SortBy)}
	defer func() {
		if res != nil {
			fields["matched"] = res.Matched
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "search-bank",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	all, err := s.questions.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("loading question bank: %w", err)
	}

	matched := filterQuestions(all, q)
	sortQuestions(matched, q.SortBy)

	return &app.BankResult{
		Questions: matched,
		Total:     len(all),
		Matched:   len(matched),
	}, nil
}

// TagCounts lists every catalogue tag in display order with its usage count.
func (s *questionBankService) TagCounts(ctx context.Context) ([]app.TagCount, error) {
	counts, err := s.questions.TagCounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]app.TagCount, 0, len(domain.Tags))
	for _, t := range domain.Tags {
		out = append(out, app.TagCount{Tag: t, Count: counts[t]})
	}
	return out, nil
}

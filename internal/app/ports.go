package app

import (
	"context"

	"github.com/alexanderramin/dsatracker/internal/domain"
)

// DashboardUseCase, QuestionBankUseCase and LogQuestionUseCase are the
// entry points the dashboard screens drive.
type DashboardUseCase interface {
	GetDashboard(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}

type QuestionBankUseCase interface {
	Search(ctx context.Context, q BankQuery) (*BankResult, error)
}

type LogQuestionUseCase interface {
	AddQuestion(ctx context.Context, in domain.QuestionInput) (*domain.Question, error)
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func newBufferObserver() (UseCaseObserver, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewSlogUseCaseObserver(logger), &buf
}

func TestSlogObserver_Levels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"success", nil, "level=INFO"},
		{"validation", &domain.ValidationError{Fields: map[string]string{"title": "title is required"}}, "level=WARN"},
		{"negative count", fmt.Errorf("set: %w", domain.ErrNegativeCount), "level=WARN"},
		{"store failure", errors.New("disk I/O error"), "level=ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, buf := newBufferObserver()
			obs.ObserveUseCase(context.Background(), UseCaseEvent{
				Name:     "add-question",
				Duration: 3 * time.Millisecond,
				Success:  tt.err == nil,
				Err:      tt.err,
			})
			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, "msg=service_use_case")
			assert.Contains(t, out, "use_case=add-question")
			assert.Contains(t, out, "component=service")
		})
	}
}

func TestSlogObserver_FieldsAreGroupedAndSorted(t *testing.T) {
	obs, buf := newBufferObserver()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "set-activity",
		Success: true,
		Fields:  map[string]any{"day": "2024-01-06", "count": 2},
	})
	out := buf.String()
	assert.Contains(t, out, "fields.count=2 fields.day=2024-01-06")
}

func TestNewSlogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewSlogUseCaseObserver(nil))
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}

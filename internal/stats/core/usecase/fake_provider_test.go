package usecase_test

import (
	"context"
	"sync/atomic"

	"stats-dashboard-service/internal/stats/core/domain"
)

// fakeProvider implements StatsProviderPort for tests. Each Fn may be nil.
type fakeProvider struct {
	SummaryFn       func(ctx context.Context) (*domain.Summary, error)
	UsersFn         func(ctx context.Context) ([]domain.User, error)
	ConversationsFn func(ctx context.Context) ([]domain.Conversation, error)
	EducationFn     func(ctx context.Context) ([]domain.EducationStat, error)
	NotesFn         func(ctx context.Context) ([]domain.Note, error)

	calls atomic.Int32
}

func (f *fakeProvider) GetSummary(ctx context.Context) (*domain.Summary, error) {
	f.calls.Add(1)
	if f.SummaryFn != nil {
		return f.SummaryFn(ctx)
	}
	return &domain.Summary{}, nil
}

func (f *fakeProvider) ListUsers(ctx context.Context) ([]domain.User, error) {
	f.calls.Add(1)
	if f.UsersFn != nil {
		return f.UsersFn(ctx)
	}
	return nil, nil
}

func (f *fakeProvider) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	f.calls.Add(1)
	if f.ConversationsFn != nil {
		return f.ConversationsFn(ctx)
	}
	return nil, nil
}

func (f *fakeProvider) ListEducation(ctx context.Context) ([]domain.EducationStat, error) {
	f.calls.Add(1)
	if f.EducationFn != nil {
		return f.EducationFn(ctx)
	}
	return nil, nil
}

func (f *fakeProvider) ListNotes(ctx context.Context) ([]domain.Note, error) {
	f.calls.Add(1)
	if f.NotesFn != nil {
		return f.NotesFn(ctx)
	}
	return nil, nil
}

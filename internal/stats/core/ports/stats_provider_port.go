package ports

import (
	"context"
	"errors"

	"stats-dashboard-service/internal/stats/core/domain"
)

// ErrProviderUnavailable is wrapped by adapters on transport failures and
// non-success responses; the caller aborts that collection.
var ErrProviderUnavailable = errors.New("stats provider unavailable")

type StatsProviderPort interface {
	GetSummary(ctx context.Context) (*domain.Summary, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListConversations(ctx context.Context) ([]domain.Conversation, error)
	ListEducation(ctx context.Context) ([]domain.EducationStat, error)
	ListNotes(ctx context.Context) ([]domain.Note, error)
}

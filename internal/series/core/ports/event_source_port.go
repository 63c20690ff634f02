package ports

import (
	"context"
	"errors"

	"stats-dashboard-service/internal/series/core/domain"
)

type EventSourcePort interface {
	// ListEvents returns every record of the collection as an Event whose
	// Timestamp is the collection's raw timestamp field.
	ListEvents(ctx context.Context, c domain.Collection) ([]domain.Event, error)
}

// ErrSourceUnavailable is wrapped by adapters when the upstream collection
// could not be fetched (transport failure or non-success status).
var ErrSourceUnavailable = errors.New("event source unavailable")

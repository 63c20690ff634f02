package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stats-dashboard-service/internal/series/core/domain"
	"stats-dashboard-service/internal/series/core/ports"
)

var ErrUnknownCollection = errors.New("unknown collection")

type GetSeriesInput struct {
	Collection domain.Collection
	Range      domain.TimeRange
}

type GetSeriesUseCase struct {
	source   ports.EventSourcePort
	now      func() time.Time
	location *time.Location
}

type Option func(*GetSeriesUseCase)

// WithClock replaces time.Now; tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(uc *GetSeriesUseCase) { uc.now = now }
}

// WithLabelLocation renders bucket labels in loc instead of UTC.
func WithLabelLocation(loc *time.Location) Option {
	return func(uc *GetSeriesUseCase) { uc.location = loc }
}

func NewGetSeriesUseCase(source ports.EventSourcePort, opts ...Option) *GetSeriesUseCase {
	uc := &GetSeriesUseCase{
		source:   source,
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *GetSeriesUseCase) Execute(ctx context.Context, in GetSeriesInput) (*domain.Series, error) {
	if _, ok := in.Collection.TimestampField(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, in.Collection)
	}
	if _, ok := in.Range.Spec(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRange, in.Range)
	}

	events, err := uc.source.ListEvents(ctx, in.Collection)
	if err != nil {
		return nil, err
	}

	series, err := BucketizeIn(events, in.Range, uc.now(), uc.location)
	if err != nil {
		return nil, err
	}

	return &series, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	seriesdomain "stats-dashboard-service/internal/series/core/domain"
	seriesusecase "stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/internal/stats/core/domain"
	"stats-dashboard-service/internal/stats/core/ports"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var (
	ErrInvalidPage     = errors.New("invalid page")
	ErrInvalidPageSize = errors.New("invalid page size")
)

type ListInput struct {
	Page     int
	PageSize int
	// Range, when set, keeps only records stamped inside the range's lookback window.
	Range seriesdomain.TimeRange
}

type ListRecordsUseCase struct {
	provider ports.StatsProviderPort
	now      func() time.Time
}

func NewListRecordsUseCase(provider ports.StatsProviderPort) *ListRecordsUseCase {
	return &ListRecordsUseCase{provider: provider, now: time.Now}
}

func (uc *ListRecordsUseCase) WithClock(now func() time.Time) *ListRecordsUseCase {
	uc.now = now
	return uc
}

func (uc *ListRecordsUseCase) ListUsers(ctx context.Context, in ListInput) (*domain.Page[domain.User], error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}
	users, err := uc.provider.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	stamp := func(u domain.User) string { return u.CreatedAt }
	users, err = filterByRange(users, in.Range, uc.now(), stamp)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(users, stamp)
	return paginate(users, in.Page, in.PageSize), nil
}

func (uc *ListRecordsUseCase) ListConversations(ctx context.Context, in ListInput) (*domain.Page[domain.Conversation], error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}
	convs, err := uc.provider.ListConversations(ctx)
	if err != nil {
		return nil, err
	}
	stamp := func(c domain.Conversation) string { return c.GeneratedAt }
	convs, err = filterByRange(convs, in.Range, uc.now(), stamp)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(convs, stamp)
	return paginate(convs, in.Page, in.PageSize), nil
}

func (uc *ListRecordsUseCase) ListNotes(ctx context.Context, in ListInput) (*domain.Page[domain.Note], error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}
	notes, err := uc.provider.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	stamp := func(n domain.Note) string { return n.CreatedAt }
	notes, err = filterByRange(notes, in.Range, uc.now(), stamp)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(notes, stamp)
	return paginate(notes, in.Page, in.PageSize), nil
}

func (uc *ListRecordsUseCase) ListEducation(ctx context.Context) ([]domain.EducationStat, error) {
	education, err := uc.provider.ListEducation(ctx)
	if err != nil {
		return nil, err
	}
	return sortEducation(education), nil
}

func normalize(in *ListInput) error {
	if in.Page == 0 {
		in.Page = 1
	}
	if in.PageSize == 0 {
		in.PageSize = DefaultPageSize
	}
	if in.Page < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, in.Page)
	}
	if in.PageSize < 1 || in.PageSize > MaxPageSize {
		return fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidPageSize, in.PageSize, MaxPageSize)
	}
	if in.Range != "" {
		if _, ok := in.Range.Spec(); !ok {
			return fmt.Errorf("%w: %q", seriesusecase.ErrUnsupportedRange, in.Range)
		}
	}
	return nil
}

func filterByRange[T any](items []T, r seriesdomain.TimeRange, now time.Time, stamp func(T) string) ([]T, error) {
	if r == "" {
		return items, nil
	}
	spec, _ := r.Spec()
	start := now.Add(-spec.Lookback)

	out := make([]T, 0, len(items))
	for i, it := range items {
		t, err := seriesusecase.ParseTimestamp(stamp(it))
		if err != nil {
			return nil, fmt.Errorf("%w: record %d has timestamp %q", seriesusecase.ErrInvalidTimestamp, i, stamp(it))
		}
		if t.Before(start) || t.After(now) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// sortNewestFirst sorts in place; unparseable timestamps sink to the end.
func sortNewestFirst[T any](items []T, stamp func(T) string) {
	keys := make(map[string]time.Time, len(items))
	key := func(raw string) time.Time {
		if t, ok := keys[raw]; ok {
			return t
		}
		t, _ := seriesusecase.ParseTimestamp(raw)
		keys[raw] = t
		return t
	}
	sort.SliceStable(items, func(i, j int) bool {
		return key(stamp(items[i])).After(key(stamp(items[j])))
	})
}

func paginate[T any](items []T, page, pageSize int) *domain.Page[T] {
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	// pages past the end are empty; checked before multiplying so huge pages cannot overflow
	start := total
	if page <= totalPages {
		start = (page - 1) * pageSize
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return &domain.Page[T]{
		Items:      pageItems,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

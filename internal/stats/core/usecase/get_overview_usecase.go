package usecase

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	seriesdomain "stats-dashboard-service/internal/series/core/domain"
	seriesusecase "stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/internal/stats/core/domain"
	"stats-dashboard-service/internal/stats/core/ports"
)

const (
	defaultLatestNotes = 5
	overviewRange      = seriesdomain.Range7d
)

type GetOverviewUseCase struct {
	provider    ports.StatsProviderPort
	latestNotes int
	now         func() time.Time
	location    *time.Location
}

func NewGetOverviewUseCase(provider ports.StatsProviderPort, latestNotes int) *GetOverviewUseCase {
	if latestNotes <= 0 {
		latestNotes = defaultLatestNotes
	}
	return &GetOverviewUseCase{
		provider:    provider,
		latestNotes: latestNotes,
		now:         time.Now,
		location:    time.UTC,
	}
}

// WithClock pins the instant used for the overview's series.
func (uc *GetOverviewUseCase) WithClock(now func() time.Time) *GetOverviewUseCase {
	uc.now = now
	return uc
}

// WithLabelLocation renders the series labels in loc.
func (uc *GetOverviewUseCase) WithLabelLocation(loc *time.Location) *GetOverviewUseCase {
	if loc != nil {
		uc.location = loc
	}
	return uc
}

// Execute fetches the five collections concurrently and joins on all of them.
// The first failure cancels the remaining fetches.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*domain.Overview, error) {
	var (
		summary   *domain.Summary
		users     []domain.User
		convs     []domain.Conversation
		education []domain.EducationStat
		notes     []domain.Note
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary, err = uc.provider.GetSummary(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = uc.provider.ListUsers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		convs, err = uc.provider.ListConversations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		education, err = uc.provider.ListEducation(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		notes, err = uc.provider.ListNotes(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := uc.now()

	usersSeries, err := seriesusecase.BucketizeIn(domain.UsersAsEvents(users), overviewRange, now, uc.location)
	if err != nil {
		return nil, err
	}
	convsSeries, err := seriesusecase.BucketizeIn(domain.ConversationsAsEvents(convs), overviewRange, now, uc.location)
	if err != nil {
		return nil, err
	}

	out := &domain.Overview{
		Education:           sortEducation(education),
		LatestNotes:         latestNotes(notes, uc.latestNotes),
		UsersSeries:         usersSeries,
		ConversationsSeries: convsSeries,
	}
	if summary != nil {
		out.Summary = *summary
	}

	return out, nil
}

// sortEducation orders by count descending, then level for ties.
func sortEducation(in []domain.EducationStat) []domain.EducationStat {
	out := make([]domain.EducationStat, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Level < out[j].Level
	})
	return out
}

func latestNotes(notes []domain.Note, n int) []domain.Note {
	sorted := make([]domain.Note, len(notes))
	copy(sorted, notes)
	sortNewestFirst(sorted, func(n domain.Note) string { return n.CreatedAt })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

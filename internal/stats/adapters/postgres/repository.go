package postgres

import (
	"context"
	"fmt"
	"time"

	seriesdomain "stats-dashboard-service/internal/series/core/domain"
	seriesports "stats-dashboard-service/internal/series/core/ports"
	"stats-dashboard-service/internal/stats/core/domain"
	"stats-dashboard-service/internal/stats/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Repository is a read-only Stats Provider backed by the dashboard database.
type Repository struct {
	db           DB
	activeWindow time.Duration
}

var (
	_ ports.StatsProviderPort     = (*Repository)(nil)
	_ seriesports.EventSourcePort = (*Repository)(nil)
)

// NewRepository builds the repository; a user is active when they generated a
// conversation within activeWindow.
func NewRepository(db DB, activeWindow time.Duration) *Repository {
	if activeWindow <= 0 {
		activeWindow = 30 * 24 * time.Hour
	}
	return &Repository{db: db, activeWindow: activeWindow}
}

const (
	selectUsersSQL = `
SELECT id::text, COALESCE(name, ''), COALESCE(email, ''), COALESCE(education_level, ''), created_at
FROM users
ORDER BY created_at DESC`

	selectConversationsSQL = `
SELECT id::text, user_id::text, COALESCE(title, ''), message_count, generated_at
FROM conversations
ORDER BY generated_at DESC`

	selectNotesSQL = `
SELECT id::text, user_id::text, COALESCE(content, ''), created_at
FROM notes
ORDER BY created_at DESC`

	selectEducationSQL = `
SELECT COALESCE(NULLIF(education_level, ''), 'unknown') AS level, COUNT(*) AS total
FROM users
GROUP BY level
ORDER BY total DESC, level`

	selectSummarySQL = `
SELECT
    (SELECT COUNT(*) FROM users),
    (SELECT COUNT(DISTINCT user_id) FROM conversations WHERE generated_at >= $1),
    (SELECT COUNT(*) FROM conversations),
    (SELECT COUNT(*) FROM notes)`

	selectUserEventsSQL         = `SELECT id::text, created_at FROM users`
	selectConversationEventsSQL = `SELECT id::text, generated_at FROM conversations`
)

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ports.ErrProviderUnavailable, err)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (r *Repository) GetSummary(ctx context.Context) (*domain.Summary, error) {
	since := time.Now().Add(-r.activeWindow).UTC()

	rows, err := r.db.QueryContext(ctx, selectSummarySQL, since)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var s domain.Summary
	if rows.Next() {
		if err := rows.Scan(&s.TotalUsers, &s.ActiveUsers, &s.TotalConversations, &s.TotalNotes); err != nil {
			return nil, unavailable(err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return &s, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var createdAt time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.EducationLevel, &createdAt); err != nil {
			return nil, unavailable(err)
		}
		u.CreatedAt = formatTime(createdAt)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return users, nil
}

func (r *Repository) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	rows, err := r.db.QueryContext(ctx, selectConversationsSQL)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		var generatedAt time.Time
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.MessageCount, &generatedAt); err != nil {
			return nil, unavailable(err)
		}
		c.GeneratedAt = formatTime(generatedAt)
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return convs, nil
}

func (r *Repository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotesSQL)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAt time.Time
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &createdAt); err != nil {
			return nil, unavailable(err)
		}
		n.CreatedAt = formatTime(createdAt)
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return notes, nil
}

func (r *Repository) ListEducation(ctx context.Context) ([]domain.EducationStat, error) {
	rows, err := r.db.QueryContext(ctx, selectEducationSQL)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var stats []domain.EducationStat
	for rows.Next() {
		var s domain.EducationStat
		if err := rows.Scan(&s.Level, &s.Count); err != nil {
			return nil, unavailable(err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}

	return stats, nil
}

func (r *Repository) ListEvents(ctx context.Context, c seriesdomain.Collection) ([]seriesdomain.Event, error) {
	var query string
	switch c {
	case seriesdomain.CollectionUsers:
		query = selectUserEventsSQL
	case seriesdomain.CollectionConversations:
		query = selectConversationEventsSQL
	default:
		return nil, fmt.Errorf("no event table for collection %q", c)
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", seriesports.ErrSourceUnavailable, unavailable(err))
	}
	defer rows.Close()

	var events []seriesdomain.Event
	for rows.Next() {
		var id string
		var ts time.Time
		if err := rows.Scan(&id, &ts); err != nil {
			return nil, fmt.Errorf("%w: %w", seriesports.ErrSourceUnavailable, unavailable(err))
		}
		events = append(events, seriesdomain.Event{ID: id, Timestamp: formatTime(ts)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", seriesports.ErrSourceUnavailable, unavailable(err))
	}

	return events, nil
}

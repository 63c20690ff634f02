package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"stats-dashboard-service/internal/observability"
	seriesdomain "stats-dashboard-service/internal/series/core/domain"
	seriesports "stats-dashboard-service/internal/series/core/ports"
	"stats-dashboard-service/internal/stats/core/domain"
	"stats-dashboard-service/internal/stats/core/ports"
	"stats-dashboard-service/pkg/log"
)

type Paths struct {
	Users         string
	Conversations string
	Education     string
	Notes         string
	Summary       string
}

func DefaultPaths() Paths {
	return Paths{
		Users:         "/stats/users",
		Conversations: "/stats/conversations",
		Education:     "/stats/education",
		Notes:         "/stats/notes",
		Summary:       "/stats/summary",
	}
}

type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	RetryCount int
	Paths      Paths
	Metrics    *observability.Metrics
}

// Client reads the dashboard collections from the remote Stats Provider.
type Client struct {
	http    *resty.Client
	paths   Paths
	metrics *observability.Metrics
}

var (
	_ ports.StatsProviderPort     = (*Client)(nil)
	_ seriesports.EventSourcePort = (*Client)(nil)
)

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Paths == (Paths{}) {
		opts.Paths = DefaultPaths()
	}

	rc := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetHeader("Accept", "application/json")
	if opts.Token != "" {
		rc.SetAuthToken(opts.Token)
	}

	return &Client{http: rc, paths: opts.Paths, metrics: opts.Metrics}
}

func (c *Client) fetch(ctx context.Context, endpoint, path string, out any) (err error) {
	start := time.Now()
	defer func() { c.metrics.ObserveProviderFetch(endpoint, start, err) }()

	req := c.http.R().SetContext(ctx)
	if id := log.RequestId(ctx); id != "" {
		req.SetHeader(log.HttpXRequestId, id)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", ports.ErrProviderUnavailable, path, err)
	}
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: GET %s: status %d", ports.ErrProviderUnavailable, path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: GET %s: decode: %v", ports.ErrProviderUnavailable, path, err)
	}

	log.GetLogger(ctx).Debugf("provider %s fetched in %s", endpoint, time.Since(start))
	return nil
}

func (c *Client) GetSummary(ctx context.Context) (*domain.Summary, error) {
	var p summaryPayload
	if err := c.fetch(ctx, "summary", c.paths.Summary, &p); err != nil {
		return nil, err
	}
	return &domain.Summary{
		TotalUsers:         p.TotalUsers,
		ActiveUsers:        p.ActiveUsers,
		TotalConversations: p.TotalConversations,
		TotalNotes:         p.TotalNotes,
	}, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var payload []userPayload
	if err := c.fetch(ctx, "users", c.paths.Users, &payload); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(payload))
	for _, p := range payload {
		users = append(users, domain.User{
			ID:             string(p.ID),
			Name:           p.Name,
			Email:          p.Email,
			EducationLevel: p.EducationLevel,
			CreatedAt:      p.CreatedAt,
		})
	}
	return users, nil
}

func (c *Client) ListConversations(ctx context.Context) ([]domain.Conversation, error) {
	var payload []conversationPayload
	if err := c.fetch(ctx, "conversations", c.paths.Conversations, &payload); err != nil {
		return nil, err
	}
	convs := make([]domain.Conversation, 0, len(payload))
	for _, p := range payload {
		convs = append(convs, domain.Conversation{
			ID:           string(p.ID),
			UserID:       string(p.UserID),
			Title:        p.Title,
			MessageCount: p.MessageCount,
			GeneratedAt:  p.GeneratedAt,
		})
	}
	return convs, nil
}

func (c *Client) ListEducation(ctx context.Context) ([]domain.EducationStat, error) {
	var payload []educationPayload
	if err := c.fetch(ctx, "education", c.paths.Education, &payload); err != nil {
		return nil, err
	}
	stats := make([]domain.EducationStat, 0, len(payload))
	for _, p := range payload {
		stats = append(stats, domain.EducationStat{Level: p.Level, Count: p.Count})
	}
	return stats, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]domain.Note, error) {
	var payload []notePayload
	if err := c.fetch(ctx, "notes", c.paths.Notes, &payload); err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(payload))
	for _, p := range payload {
		notes = append(notes, domain.Note{
			ID:        string(p.ID),
			UserID:    string(p.UserID),
			Content:   p.Content,
			CreatedAt: p.CreatedAt,
		})
	}
	return notes, nil
}

// ListEvents reads a timestamped collection generically: only the id and the
// collection's timestamp field are kept.
func (c *Client) ListEvents(ctx context.Context, col seriesdomain.Collection) ([]seriesdomain.Event, error) {
	field, ok := col.TimestampField()
	if !ok {
		return nil, fmt.Errorf("no timestamp field for collection %q", col)
	}

	var path string
	switch col {
	case seriesdomain.CollectionUsers:
		path = c.paths.Users
	case seriesdomain.CollectionConversations:
		path = c.paths.Conversations
	}

	var payload []map[string]json.RawMessage
	if err := c.fetch(ctx, string(col), path, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", seriesports.ErrSourceUnavailable, err)
	}

	events := make([]seriesdomain.Event, 0, len(payload))
	for _, rec := range payload {
		var id flexibleID
		if raw, ok := rec["id"]; ok {
			_ = json.Unmarshal(raw, &id)
		}
		// a missing or non-string timestamp stays empty and fails bucketing
		var ts string
		if raw, ok := rec[field]; ok {
			_ = json.Unmarshal(raw, &ts)
		}
		events = append(events, seriesdomain.Event{ID: string(id), Timestamp: ts})
	}
	return events, nil
}

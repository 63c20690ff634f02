package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "stats-dashboard-service/internal/series/adapters/http/fiber"
	"stats-dashboard-service/internal/series/core/domain"
	"stats-dashboard-service/internal/series/core/ports"
	"stats-dashboard-service/internal/series/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.
type fakeGetSeriesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error)
	lastInput usecase.GetSeriesInput
	called    bool
}

func (f *fakeGetSeriesUseCase) Execute(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return nil, nil
}

func setupApp(t *testing.T, uc httpadapter.GetSeriesUseCase) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := httpadapter.NewSeriesHandler(uc)
	app.Get("/api/v1/series/ranges", h.ListRanges)
	app.Get("/api/v1/series/:collection", h.GetSeries)
	return app
}

func TestGetSeries_Success(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	uc := &fakeGetSeriesUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error) {
			s, err := usecase.Bucketize([]domain.Event{{ID: "1", Timestamp: "2024-01-02T00:00:00Z"}}, in.Range, now)
			return &s, err
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/series/users?range=12h", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastInput.Collection != domain.CollectionUsers || uc.lastInput.Range != domain.Range12h {
		t.Fatalf("unexpected input: %+v", uc.lastInput)
	}

	var body httpadapter.SeriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Points) != 13 {
		t.Fatalf("expected 13 points, got %d", len(body.Points))
	}
	if body.Points[0].Label != "00:00" || body.Points[0].Count != 1 {
		t.Fatalf("unexpected first point: %+v", body.Points[0])
	}
	if body.IntervalSeconds != 3600 || body.Total != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Start != "2024-01-02T00:00:00Z" {
		t.Fatalf("unexpected start: %s", body.Start)
	}
}

func TestGetSeries_DefaultRange(t *testing.T) {
	uc := &fakeGetSeriesUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error) {
			return &domain.Series{Range: in.Range, Interval: 24 * time.Hour}, nil
		},
	}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/series/conversations", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if uc.lastInput.Range != domain.Range7d {
		t.Fatalf("expected default range 7d, got %s", uc.lastInput.Range)
	}
}

func TestGetSeries_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		ucError error
		status  int
	}{
		{"unknown_collection", usecase.ErrUnknownCollection, http.StatusBadRequest},
		{"unsupported_range", fmt.Errorf("%w: %q", usecase.ErrUnsupportedRange, "5y"), http.StatusBadRequest},
		{"invalid_timestamp", usecase.ErrInvalidTimestamp, http.StatusBadGateway},
		{"source_unavailable", fmt.Errorf("%w: status 500", ports.ErrSourceUnavailable), http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeGetSeriesUseCase{
				ExecuteFn: func(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error) {
					return nil, tt.ucError
				},
			}
			app := setupApp(t, uc)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/series/users?range=7d", nil))
			if err != nil {
				t.Fatalf("app.Test error: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.StatusCode)
			}
		})
	}
}

func TestListRanges(t *testing.T) {
	uc := &fakeGetSeriesUseCase{}
	app := setupApp(t, uc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/series/ranges", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var body []httpadapter.RangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != len(domain.Ranges()) {
		t.Fatalf("expected %d ranges, got %d", len(domain.Ranges()), len(body))
	}
	if uc.called {
		t.Fatalf("usecase should not be called for ranges")
	}
}

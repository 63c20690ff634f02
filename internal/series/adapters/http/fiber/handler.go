package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"stats-dashboard-service/internal/series/core/domain"
	"stats-dashboard-service/internal/series/core/ports"
	"stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/pkg/log"

	"github.com/gofiber/fiber/v2"
)

const defaultRange = domain.Range7d

type GetSeriesUseCase interface {
	Execute(ctx context.Context, in usecase.GetSeriesInput) (*domain.Series, error)
}

type SeriesHandler struct {
	uc GetSeriesUseCase
}

func NewSeriesHandler(uc GetSeriesUseCase) *SeriesHandler {
	return &SeriesHandler{uc: uc}
}

// GetSeries godoc
// @Summary Time-bucketed event counts
// @Description Counts a collection's records per fixed interval over the selected range, ready for a line chart
// @Tags Series
// @Produce json
// @Param collection path string true "Collection: users | conversations"
// @Param range query string false "Range: 12h | 1d | 2d | 7d | 1w | 30d | 1m | 3m | 6m" default(7d)
// @Success 200 {object} SeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/series/{collection} [get]
func (h *SeriesHandler) GetSeries(c *fiber.Ctx) error {
	in := usecase.GetSeriesInput{
		Collection: domain.Collection(c.Params("collection")),
		Range:      domain.TimeRange(c.Query("range", string(defaultRange))),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnknownCollection),
			errors.Is(err, usecase.ErrUnsupportedRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrInvalidTimestamp),
			errors.Is(err, ports.ErrSourceUnavailable):
			log.GetLogger(c.UserContext()).WithError(err).Warnf("series %s/%s unavailable", in.Collection, in.Range)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Error:   "chart_data_unavailable",
				Message: "failed to load chart data",
			})
		default:
			log.GetLogger(c.UserContext()).WithError(err).Errorf("series %s/%s failed", in.Collection, in.Range)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := SeriesResponse{
		Collection:      string(in.Collection),
		Range:           string(res.Range),
		Start:           res.Start.UTC().Format(time.RFC3339),
		End:             res.End.UTC().Format(time.RFC3339),
		IntervalSeconds: int64(res.Interval / time.Second),
		Total:           res.Total(),
		Points:          make([]PointResponse, 0, len(res.Buckets)),
	}
	for _, p := range res.Points() {
		resp.Points = append(resp.Points, PointResponse{Label: p.Label, Count: p.Count})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListRanges godoc
// @Summary Supported time ranges
// @Tags Series
// @Produce json
// @Success 200 {array} RangeResponse
// @Router /api/v1/series/ranges [get]
func (h *SeriesHandler) ListRanges(c *fiber.Ctx) error {
	ranges := domain.Ranges()
	resp := make([]RangeResponse, 0, len(ranges))
	for _, r := range ranges {
		spec, _ := r.Spec()
		resp = append(resp, RangeResponse{
			Range:           string(r),
			LookbackSeconds: int64(spec.Lookback / time.Second),
			IntervalSeconds: int64(spec.Interval / time.Second),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

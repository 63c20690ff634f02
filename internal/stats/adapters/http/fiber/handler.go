package fiber

import (
	"context"
	"errors"
	"net/http"

	seriesdomain "stats-dashboard-service/internal/series/core/domain"
	seriesusecase "stats-dashboard-service/internal/series/core/usecase"
	"stats-dashboard-service/internal/stats/core/domain"
	"stats-dashboard-service/internal/stats/core/ports"
	"stats-dashboard-service/internal/stats/core/usecase"
	"stats-dashboard-service/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type GetOverviewUseCase interface {
	Execute(ctx context.Context) (*domain.Overview, error)
}

type ListRecordsUseCase interface {
	ListUsers(ctx context.Context, in usecase.ListInput) (*domain.Page[domain.User], error)
	ListConversations(ctx context.Context, in usecase.ListInput) (*domain.Page[domain.Conversation], error)
	ListNotes(ctx context.Context, in usecase.ListInput) (*domain.Page[domain.Note], error)
	ListEducation(ctx context.Context) ([]domain.EducationStat, error)
}

type StatsHandler struct {
	overviewUC GetOverviewUseCase
	listUC     ListRecordsUseCase
}

func NewStatsHandler(overviewUC GetOverviewUseCase, listUC ListRecordsUseCase) *StatsHandler {
	return &StatsHandler{overviewUC: overviewUC, listUC: listUC}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Summary cards, education breakdown, latest notes and 7 day user/conversation series, fetched in parallel
// @Tags Stats
// @Produce json
// @Success 200 {object} OverviewResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/overview [get]
func (h *StatsHandler) GetOverview(c *fiber.Ctx) error {
	res, err := h.overviewUC.Execute(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	resp := OverviewResponse{
		Summary: SummaryResponse{
			TotalUsers:         res.Summary.TotalUsers,
			ActiveUsers:        res.Summary.ActiveUsers,
			TotalConversations: res.Summary.TotalConversations,
			TotalNotes:         res.Summary.TotalNotes,
		},
		Education:     toEducation(res.Education),
		LatestNotes:   make([]NoteResponse, 0, len(res.LatestNotes)),
		Users:         toPoints(res.UsersSeries),
		Conversations: toPoints(res.ConversationsSeries),
	}
	for _, n := range res.LatestNotes {
		resp.LatestNotes = append(resp.LatestNotes, toNote(n))
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListUsers godoc
// @Summary Paginated users, newest first
// @Tags Stats
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (1..100)" default(10)
// @Param range query string false "Only users created within this range"
// @Success 200 {object} UserPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/users [get]
func (h *StatsHandler) ListUsers(c *fiber.Ctx) error {
	in, err := parseListInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_query", Message: err.Error()})
	}

	page, err := h.listUC.ListUsers(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	resp := UserPageResponse{
		Items:      make([]UserResponse, 0, len(page.Items)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, u := range page.Items {
		resp.Items = append(resp.Items, UserResponse{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			EducationLevel: u.EducationLevel,
			CreatedAt:      u.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListConversations godoc
// @Summary Paginated conversation history, newest first
// @Tags Stats
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (1..100)" default(10)
// @Param range query string false "Only conversations generated within this range"
// @Success 200 {object} ConversationPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/conversations [get]
func (h *StatsHandler) ListConversations(c *fiber.Ctx) error {
	in, err := parseListInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_query", Message: err.Error()})
	}

	page, err := h.listUC.ListConversations(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	resp := ConversationPageResponse{
		Items:      make([]ConversationResponse, 0, len(page.Items)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, cv := range page.Items {
		resp.Items = append(resp.Items, ConversationResponse{
			ID:           cv.ID,
			UserID:       cv.UserID,
			Title:        cv.Title,
			MessageCount: cv.MessageCount,
			GeneratedAt:  cv.GeneratedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListNotes godoc
// @Summary Paginated notes, newest first
// @Tags Stats
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (1..100)" default(10)
// @Param range query string false "Only notes created within this range"
// @Success 200 {object} NotePageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/notes [get]
func (h *StatsHandler) ListNotes(c *fiber.Ctx) error {
	in, err := parseListInput(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_query", Message: err.Error()})
	}

	page, err := h.listUC.ListNotes(c.UserContext(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	resp := NotePageResponse{
		Items:      make([]NoteResponse, 0, len(page.Items)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	for _, n := range page.Items {
		resp.Items = append(resp.Items, toNote(n))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// ListEducation godoc
// @Summary Education demographics
// @Tags Stats
// @Produce json
// @Success 200 {array} EducationResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/education [get]
func (h *StatsHandler) ListEducation(c *fiber.Ctx) error {
	res, err := h.listUC.ListEducation(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toEducation(res))
}

type listQuery struct {
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
	Range    string `query:"range"`
}

func parseListInput(c *fiber.Ctx) (usecase.ListInput, error) {
	var q listQuery
	if err := c.QueryParser(&q); err != nil {
		return usecase.ListInput{}, errors.New("page and page_size must be integers")
	}
	return usecase.ListInput{
		Page:     q.Page,
		PageSize: q.PageSize,
		Range:    seriesdomain.TimeRange(q.Range),
	}, nil
}

func (h *StatsHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrInvalidPageSize),
		errors.Is(err, seriesusecase.ErrUnsupportedRange):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrProviderUnavailable),
		errors.Is(err, seriesusecase.ErrInvalidTimestamp):
		log.GetLogger(c.UserContext()).WithError(err).Warn("stats provider request failed")
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "stats_unavailable",
			Message: "failed to load dashboard data",
		})
	default:
		log.GetLogger(c.UserContext()).WithError(err).Error("stats request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toEducation(in []domain.EducationStat) []EducationResponse {
	out := make([]EducationResponse, 0, len(in))
	for _, e := range in {
		out = append(out, EducationResponse{Level: e.Level, Count: e.Count})
	}
	return out
}

func toNote(n domain.Note) NoteResponse {
	return NoteResponse{ID: n.ID, UserID: n.UserID, Content: n.Content, CreatedAt: n.CreatedAt}
}

func toPoints(s seriesdomain.Series) []PointResponse {
	out := make([]PointResponse, 0, len(s.Buckets))
	for _, p := range s.Points() {
		out = append(out, PointResponse{Label: p.Label, Count: p.Count})
	}
	return out
}

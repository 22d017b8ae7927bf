package fiber

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"device-status-service/internal/platform/httpx"
	"device-status-service/internal/platform/logging"
	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
	"device-status-service/internal/summary/core/usecase"
)

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) (*domain.Dashboard, error)
}

type GetBreakdownUseCase interface {
	Execute(ctx context.Context, in usecase.GetBreakdownInput) (*usecase.PlatformBreakdown, error)
}

type CompareUseCase interface {
	Execute(ctx context.Context, in usecase.CompareInput) (*domain.Comparison, error)
}

type SummaryHandler struct {
	summaryUC   GetSummaryUseCase
	breakdownUC GetBreakdownUseCase
	compareUC   CompareUseCase
}

func NewSummaryHandler(summaryUC GetSummaryUseCase, breakdownUC GetBreakdownUseCase, compareUC CompareUseCase) *SummaryHandler {
	return &SummaryHandler{
		summaryUC:   summaryUC,
		breakdownUC: breakdownUC,
		compareUC:   compareUC,
	}
}

// Register mounts the summary routes on r.
func (h *SummaryHandler) Register(r fiber.Router) {
	r.Get("/summary/:date", h.GetSummary)
	r.Get("/summary/:date/platforms/:platform", h.GetPlatformBreakdown)
	r.Get("/compare/:date", h.Compare)
	r.Get("/classify", h.Classify)
}

// GetSummary godoc
// @Summary Daily status summary
// @Description Categorized per-platform counts, totals, health score and insights for one day
// @Tags Summary
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param platform query string false "Restrict to one platform"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/summary/{date} [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	req := summaryRequest{
		Date:     c.Params("date"),
		Platform: c.Query("platform", ""),
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.summaryUC.Execute(c.UserContext(), usecase.GetSummaryInput{
		Date:     req.Date,
		Platform: req.Platform,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := SummaryResponse{
		Date:         res.Date,
		FromSnapshot: res.FromSnapshot,
		Summary:      toPlatformSummaries(res.Summary),
		PlatformData: toPlatformSummaries(res.PlatformData),
		Totals: TotalsResponse{
			Active:   res.Totals.Active,
			Inactive: res.Totals.Inactive,
			Error:    res.Totals.Error,
			Other:    res.Totals.Other,
			Accounts: res.Totals.Accounts(),
		},
		Statuses: res.Statuses,
		Health:   HealthResponse{Score: res.HealthScore, Label: res.HealthLabel},
		Insights: make([]InsightResponse, 0, len(res.Insights)),
	}
	if resp.Statuses == nil {
		resp.Statuses = []string{}
	}
	for _, in := range res.Insights {
		resp.Insights = append(resp.Insights, InsightResponse{
			Label: in.Label,
			Value: in.Value,
			Type:  string(in.Type),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetPlatformBreakdown godoc
// @Summary Status breakdown of one platform
// @Description Case-insensitively merged status counts, largest first
// @Tags Summary
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param platform path string true "Platform"
// @Success 200 {object} BreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/summary/{date}/platforms/{platform} [get]
func (h *SummaryHandler) GetPlatformBreakdown(c *fiber.Ctx) error {
	req := breakdownRequest{
		Date:     c.Params("date"),
		Platform: c.Params("platform"),
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.breakdownUC.Execute(c.UserContext(), usecase.GetBreakdownInput{
		Date:     req.Date,
		Platform: req.Platform,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := BreakdownResponse{
		Date:     res.Date,
		Platform: res.Platform,
		Total:    res.Total,
		Statuses: make([]StatusCountResponse, 0, len(res.Statuses)),
	}
	for _, s := range res.Statuses {
		resp.Statuses = append(resp.Statuses, StatusCountResponse{
			DisplayName: s.DisplayName,
			Category:    string(s.Category),
			Count:       s.Count,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// Compare godoc
// @Summary Day-over-day comparison
// @Description Per-platform and per-status counts of a day against the previous calendar day
// @Tags Summary
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/compare/{date} [get]
func (h *SummaryHandler) Compare(c *fiber.Ctx) error {
	req := summaryRequest{Date: c.Params("date")}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.compareUC.Execute(c.UserContext(), usecase.CompareInput{Date: req.Date})
	if err != nil {
		return writeError(c, err)
	}

	resp := CompareResponse{
		Date:         res.Date,
		PreviousDate: res.PreviousDate,
		Platforms:    make([]PlatformDiffResponse, 0, len(res.Platforms)),
	}
	for _, p := range res.Platforms {
		pr := PlatformDiffResponse{
			Platform: p.Platform,
			Total:    toDiff(p.Total),
			Statuses: make([]StatusDiffResponse, 0, len(p.Statuses)),
		}
		for _, s := range p.Statuses {
			pr.Statuses = append(pr.Statuses, StatusDiffResponse{
				Status:       s.Status,
				DiffResponse: toDiff(s.DiffResult),
			})
		}
		resp.Platforms = append(resp.Platforms, pr)
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// Classify godoc
// @Summary Classify a status label
// @Description Returns the category and display name of a raw status label
// @Tags Summary
// @Produce json
// @Param status query string false "Raw status label"
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/classify [get]
func (h *SummaryHandler) Classify(c *fiber.Ctx) error {
	req := classifyRequest{Status: c.Query("status", "")}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	return c.Status(http.StatusOK).JSON(ClassifyResponse{
		Status:      req.Status,
		Category:    string(domain.Classify(req.Status)),
		DisplayName: domain.FormatStatus(req.Status),
	})
}

func toPlatformSummaries(list []domain.PlatformSummary) []PlatformSummaryResponse {
	out := make([]PlatformSummaryResponse, 0, len(list))
	for _, s := range list {
		details := map[string]int64(s.Details)
		if details == nil {
			details = map[string]int64{}
		}
		out = append(out, PlatformSummaryResponse{
			Platform: s.Platform,
			Active:   s.Active,
			Inactive: s.Inactive,
			Error:    s.Error,
			Other:    s.Other,
			Total:    s.Total,
			Details:  details,
		})
	}
	return out
}

func toDiff(d domain.DiffResult) DiffResponse {
	return DiffResponse{
		YesterdayCount: d.YesterdayCount,
		TodayCount:     d.TodayCount,
		Diff:           d.Diff,
		PercentChange:  d.PercentChange,
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: err.Error(),
	})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidPlatform):
		return badRequest(c, err)
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrSourceUnavailable):
		logging.Ctx(c.UserContext()).Warn().Err(err).Msg("monitoring api unavailable")
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_unavailable",
			Message: "monitoring API is unavailable",
		})
	default:
		logging.Ctx(c.UserContext()).Error().Err(err).Msg("unhandled error")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

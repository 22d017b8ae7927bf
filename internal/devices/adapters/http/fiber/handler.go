package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
	"device-status-service/internal/devices/core/usecase"
	"device-status-service/internal/platform/httpx"
	"device-status-service/internal/platform/logging"
)

type ListInactiveUseCase interface {
	Execute(ctx context.Context, in usecase.ListInactiveInput) (*domain.InactiveList, error)
}

type ListNoAppFoundUseCase interface {
	Execute(ctx context.Context, in usecase.ListNoAppFoundInput) (*domain.NoAppList, error)
}

type DeviceHistoryUseCase interface {
	Execute(ctx context.Context, in usecase.DeviceHistoryInput) (*domain.DeviceHistory, error)
}

type DevicesByStatusUseCase interface {
	Execute(ctx context.Context, in usecase.DevicesByStatusInput) (*domain.StatusDevices, error)
}

type DeviceHandler struct {
	inactiveUC ListInactiveUseCase
	noAppUC    ListNoAppFoundUseCase
	historyUC  DeviceHistoryUseCase
	statusUC   DevicesByStatusUseCase
}

func NewDeviceHandler(
	inactiveUC ListInactiveUseCase,
	noAppUC ListNoAppFoundUseCase,
	historyUC DeviceHistoryUseCase,
	statusUC DevicesByStatusUseCase,
) *DeviceHandler {
	return &DeviceHandler{
		inactiveUC: inactiveUC,
		noAppUC:    noAppUC,
		historyUC:  historyUC,
		statusUC:   statusUC,
	}
}

func (h *DeviceHandler) Register(r fiber.Router) {
	r.Get("/inactive/:date", h.ListInactive)
	r.Get("/no-app-found/:date", h.ListNoAppFound)
	r.Get("/devices/:device_id", h.DeviceHistory)
	r.Get("/devices/:device_id/:date", h.DeviceHistory)
	r.Get("/status-devices", h.DevicesByStatus)
}

// ListInactive godoc
// @Summary Inactive devices of a day
// @Description Inactive records grouped per device, in order of first appearance
// @Tags Devices
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param platform query string false "Platform"
// @Param device_id query string false "Device id"
// @Param limit query int false "Max records (1-1000)"
// @Success 200 {object} InactiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/inactive/{date} [get]
func (h *DeviceHandler) ListInactive(c *fiber.Ctx) error {
	req := inactiveRequest{
		Date:     c.Params("date"),
		Platform: c.Query("platform", ""),
		DeviceID: c.Query("device_id", ""),
	}
	if s := c.Query("limit", ""); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_request",
				Message: "invalid 'limit' parameter",
			})
		}
		req.Limit = n
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.inactiveUC.Execute(c.UserContext(), usecase.ListInactiveInput{
		Date:     req.Date,
		Platform: req.Platform,
		DeviceID: req.DeviceID,
		Limit:    req.Limit,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := InactiveResponse{
		Date: res.Date,
		Filters: FiltersResponse{
			Platform: nonEmpty(res.Platform),
			DeviceID: nonEmpty(res.DeviceID),
		},
		InactiveCount: len(res.Records),
		DeviceCount:   len(res.Devices),
		Devices:       make([]InactiveDeviceResponse, 0, len(res.Devices)),
		Records:       toRecords(res.Records),
	}
	for _, d := range res.Devices {
		resp.Devices = append(resp.Devices, InactiveDeviceResponse{
			DeviceID:      d.DeviceID,
			InactiveCount: d.InactiveCount,
			Platforms:     d.Platforms,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// ListNoAppFound godoc
// @Summary Devices missing a monitored app
// @Tags Devices
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param platform query string false "Platform"
// @Param device_id query string false "Device id"
// @Success 200 {object} NoAppResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/no-app-found/{date} [get]
func (h *DeviceHandler) ListNoAppFound(c *fiber.Ctx) error {
	req := noAppRequest{
		Date:     c.Params("date"),
		Platform: c.Query("platform", ""),
		DeviceID: c.Query("device_id", ""),
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.noAppUC.Execute(c.UserContext(), usecase.ListNoAppFoundInput{
		Date:     req.Date,
		Platform: req.Platform,
		DeviceID: req.DeviceID,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := NoAppResponse{
		Date:        res.Date,
		Platform:    nonEmpty(res.Platform),
		DeviceCount: res.DeviceCount,
		Devices:     make([]NoAppDeviceResponse, 0, len(res.Devices)),
	}
	for _, d := range res.Devices {
		resp.Devices = append(resp.Devices, NoAppDeviceResponse{
			DeviceID:        d.DeviceID,
			MissingAppCount: d.MissingAppCount,
			Platforms:       d.Platforms,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DeviceHistory godoc
// @Summary Status history of one device
// @Description All records of a device grouped by date, newest first. The date segment restricts it to one day.
// @Tags Devices
// @Produce json
// @Param device_id path string true "Device id"
// @Param date path string false "Date (YYYY-MM-DD)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/devices/{device_id} [get]
// @Router /api/devices/{device_id}/{date} [get]
func (h *DeviceHandler) DeviceHistory(c *fiber.Ctx) error {
	req := historyRequest{
		DeviceID: c.Params("device_id"),
		Date:     c.Params("date"),
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.historyUC.Execute(c.UserContext(), usecase.DeviceHistoryInput{
		DeviceID: req.DeviceID,
		Date:     req.Date,
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := HistoryResponse{
		DeviceID: res.DeviceID,
		Date:     res.Date,
		Records:  toRecords(res.Records),
		ByDate:   make([]DateRecordsResponse, 0, len(res.ByDate)),
	}
	for _, d := range res.ByDate {
		resp.ByDate = append(resp.ByDate, DateRecordsResponse{
			Date:    d.Date,
			Records: toRecords(d.Records),
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// DevicesByStatus godoc
// @Summary Devices reporting a given status
// @Tags Devices
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param platform query string true "Platform"
// @Param account_status query string true "Raw status label"
// @Success 200 {object} StatusDevicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/status-devices [get]
func (h *DeviceHandler) DevicesByStatus(c *fiber.Ctx) error {
	req := statusDevicesRequest{
		Date:          c.Query("date", ""),
		Platform:      c.Query("platform", ""),
		AccountStatus: c.Query("account_status", ""),
	}
	if err := httpx.Validate(req); err != nil {
		return badRequest(c, err)
	}

	res, err := h.statusUC.Execute(c.UserContext(), usecase.DevicesByStatusInput{
		Date:          req.Date,
		Platform:      req.Platform,
		AccountStatus: req.AccountStatus,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(StatusDevicesResponse{
		Date:          res.Date,
		Platform:      res.Platform,
		AccountStatus: res.AccountStatus,
		Count:         len(res.Devices),
		Data:          toRecords(res.Devices),
	})
}

func toRecords(in []domain.DeviceRecord) []DeviceRecordResponse {
	out := make([]DeviceRecordResponse, 0, len(in))
	for _, r := range in {
		out = append(out, DeviceRecordResponse{
			DeviceID:      r.DeviceID,
			Platform:      r.Platform,
			AccountStatus: r.AccountStatus,
			Category:      r.Category,
			Reason:        r.Reason,
			Date:          r.Date,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
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
		errors.Is(err, usecase.ErrInvalidDeviceID),
		errors.Is(err, usecase.ErrInvalidLimit),
		errors.Is(err, usecase.ErrInvalidStatusQuery):
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

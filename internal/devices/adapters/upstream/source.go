package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
	"device-status-service/internal/platform/upstream"
)

type JSONGetter interface {
	GetJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error
}

type recordDTO struct {
	DeviceID      string `json:"device_id"`
	Platform      string `json:"platform"`
	AccountStatus string `json:"account_status"`
	Reason        string `json:"reason"`
	Date          string `json:"date"`
	CreatedAt     string `json:"created_at"`
}

type inactiveResponse struct {
	Date    string `json:"date"`
	Filters struct {
		Platform *string `json:"platform"`
		DeviceID *string `json:"device_id"`
	} `json:"filters"`
	InactiveCount int         `json:"inactive_count"`
	Data          []recordDTO `json:"data"`
}

type noAppDeviceDTO struct {
	DeviceID        string   `json:"device_id"`
	MissingAppCount int      `json:"missing_app_count"`
	Platforms       []string `json:"platforms"`
}

type noAppResponse struct {
	Date        string           `json:"date"`
	Platform    *string          `json:"platform"`
	DeviceCount int              `json:"device_count"`
	Devices     []noAppDeviceDTO `json:"devices"`
}

type historyResponse struct {
	DeviceID string      `json:"device_id"`
	Date     string      `json:"date"`
	Records  []recordDTO `json:"records"`
}

type statusDevicesResponse struct {
	Data []recordDTO `json:"data"`
}

// DeviceSource reads device records from the monitoring API.
type DeviceSource struct {
	client JSONGetter
}

func NewDeviceSource(client JSONGetter) *DeviceSource {
	return &DeviceSource{client: client}
}

var _ ports.DeviceSourcePort = (*DeviceSource)(nil)

func (s *DeviceSource) FetchInactive(ctx context.Context, f ports.InactiveFilter) ([]domain.DeviceRecord, error) {
	q := url.Values{}
	setOptional(q, "platform", f.Platform)
	setOptional(q, "device_id", f.DeviceID)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	var resp inactiveResponse
	if err := s.client.GetJSON(ctx, "inactive", "inactive/"+url.PathEscape(f.Date), q, &resp); err != nil {
		return nil, mapError(err)
	}
	return toRecords(resp.Data), nil
}

func (s *DeviceSource) FetchNoAppFound(ctx context.Context, f ports.NoAppFilter) (*domain.NoAppList, error) {
	q := url.Values{}
	setOptional(q, "platform", f.Platform)
	setOptional(q, "device_id", f.DeviceID)

	var resp noAppResponse
	if err := s.client.GetJSON(ctx, "no_app_found", "no-app-found/"+url.PathEscape(f.Date), q, &resp); err != nil {
		return nil, mapError(err)
	}

	out := &domain.NoAppList{
		Date:        resp.Date,
		DeviceCount: resp.DeviceCount,
		Devices:     make([]domain.NoAppDevice, 0, len(resp.Devices)),
	}
	if resp.Platform != nil {
		out.Platform = *resp.Platform
	}
	for _, d := range resp.Devices {
		platforms := d.Platforms
		if platforms == nil {
			platforms = []string{}
		}
		out.Devices = append(out.Devices, domain.NoAppDevice{
			DeviceID:        d.DeviceID,
			MissingAppCount: d.MissingAppCount,
			Platforms:       platforms,
		})
	}
	return out, nil
}

func (s *DeviceSource) FetchHistory(ctx context.Context, deviceID string) ([]domain.DeviceRecord, error) {
	var resp historyResponse
	if err := s.client.GetJSON(ctx, "device_history", "device/"+url.PathEscape(deviceID), nil, &resp); err != nil {
		return nil, mapError(err)
	}
	return toRecords(resp.Records), nil
}

func (s *DeviceSource) FetchHistoryByDate(ctx context.Context, deviceID, date string) ([]domain.DeviceRecord, error) {
	var resp historyResponse
	path := "device/" + url.PathEscape(deviceID) + "/" + url.PathEscape(date)
	if err := s.client.GetJSON(ctx, "device_history_date", path, nil, &resp); err != nil {
		return nil, mapError(err)
	}
	return toRecords(resp.Records), nil
}

func (s *DeviceSource) FetchByStatus(ctx context.Context, f ports.StatusFilter) ([]domain.DeviceRecord, error) {
	q := url.Values{}
	q.Set("date", f.Date)
	q.Set("platform", f.Platform)
	q.Set("account_status", f.AccountStatus)

	var resp statusDevicesResponse
	if err := s.client.GetJSON(ctx, "status_devices", "devices/", q, &resp); err != nil {
		return nil, mapError(err)
	}
	return toRecords(resp.Data), nil
}

func setOptional(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func toRecords(in []recordDTO) []domain.DeviceRecord {
	out := make([]domain.DeviceRecord, 0, len(in))
	for _, r := range in {
		out = append(out, domain.DeviceRecord{
			DeviceID:      r.DeviceID,
			Platform:      r.Platform,
			AccountStatus: r.AccountStatus,
			Reason:        r.Reason,
			Date:          r.Date,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}

func mapError(err error) error {
	if errors.Is(err, upstream.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrSourceNotFound, err)
	}
	return fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
}

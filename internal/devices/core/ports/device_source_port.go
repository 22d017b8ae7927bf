package ports

import (
	"context"
	"errors"

	"device-status-service/internal/devices/core/domain"
)

var (
	ErrSourceNotFound    = errors.New("not found at source")
	ErrSourceUnavailable = errors.New("source unavailable")
)

type InactiveFilter struct {
	Date     string
	Platform *string
	DeviceID *string
	Limit    int // 0 = source default
}

type NoAppFilter struct {
	Date     string
	Platform *string
	DeviceID *string
}

type StatusFilter struct {
	Date          string
	Platform      string
	AccountStatus string
}

// DeviceSourcePort reads per-device records from the monitoring API.
type DeviceSourcePort interface {
	FetchInactive(ctx context.Context, f InactiveFilter) ([]domain.DeviceRecord, error)
	FetchNoAppFound(ctx context.Context, f NoAppFilter) (*domain.NoAppList, error)
	FetchHistory(ctx context.Context, deviceID string) ([]domain.DeviceRecord, error)
	FetchHistoryByDate(ctx context.Context, deviceID, date string) ([]domain.DeviceRecord, error)
	FetchByStatus(ctx context.Context, f StatusFilter) ([]domain.DeviceRecord, error)
}

package usecase

import (
	"context"
	"strings"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
)

type DevicesByStatusInput struct {
	Date          string
	Platform      string
	AccountStatus string
}

type DevicesByStatusUseCase struct {
	source ports.DeviceSourcePort
}

func NewDevicesByStatusUseCase(source ports.DeviceSourcePort) *DevicesByStatusUseCase {
	return &DevicesByStatusUseCase{source: source}
}

// Execute lists the devices of one platform that reported a given raw
// status on a day. The status is passed to the source verbatim.
func (uc *DevicesByStatusUseCase) Execute(ctx context.Context, in DevicesByStatusInput) (*domain.StatusDevices, error) {
	platform := strings.TrimSpace(in.Platform)
	if in.Date == "" || platform == "" || strings.TrimSpace(in.AccountStatus) == "" {
		return nil, ErrInvalidStatusQuery
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}

	f := ports.StatusFilter{
		Date:          in.Date,
		Platform:      platform,
		AccountStatus: in.AccountStatus,
	}

	records, err := uc.source.FetchByStatus(ctx, f)
	if err != nil {
		return nil, mapSourceError(err, "devices with status "+in.AccountStatus)
	}

	return &domain.StatusDevices{
		Date:          in.Date,
		Platform:      platform,
		AccountStatus: in.AccountStatus,
		Devices:       classify(records),
	}, nil
}

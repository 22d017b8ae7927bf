package usecase

import (
	"context"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
)

type DeviceHistoryInput struct {
	DeviceID string
	Date     string // optional, restricts the history to one day
}

type DeviceHistoryUseCase struct {
	source ports.DeviceSourcePort
}

func NewDeviceHistoryUseCase(source ports.DeviceSourcePort) *DeviceHistoryUseCase {
	return &DeviceHistoryUseCase{source: source}
}

// Execute returns every record of a device, grouped by date, newest first.
// With Date set only that day is fetched.
func (uc *DeviceHistoryUseCase) Execute(ctx context.Context, in DeviceHistoryInput) (*domain.DeviceHistory, error) {
	id, err := normalizeDeviceID(in.DeviceID)
	if err != nil {
		return nil, err
	}

	var records []domain.DeviceRecord
	if in.Date == "" {
		records, err = uc.source.FetchHistory(ctx, id)
	} else {
		if verr := validateDate(in.Date); verr != nil {
			return nil, verr
		}
		records, err = uc.source.FetchHistoryByDate(ctx, id, in.Date)
	}
	if err != nil {
		return nil, mapSourceError(err, "device "+id)
	}

	records = classify(records)
	return &domain.DeviceHistory{
		DeviceID: id,
		Date:     in.Date,
		Records:  records,
		ByDate:   GroupByDate(records),
	}, nil
}

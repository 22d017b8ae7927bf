package usecase

import (
	"context"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
)

type ListInactiveInput struct {
	Date     string
	Platform string // optional
	DeviceID string // optional
	Limit    int    // 0 = source default
}

type ListInactiveUseCase struct {
	source ports.DeviceSourcePort
}

func NewListInactiveUseCase(source ports.DeviceSourcePort) *ListInactiveUseCase {
	return &ListInactiveUseCase{source: source}
}

// Execute fetches the inactive records of a day and rolls them up per device.
func (uc *ListInactiveUseCase) Execute(ctx context.Context, in ListInactiveInput) (*domain.InactiveList, error) {
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if in.Limit < 0 || in.Limit > MaxLimit {
		return nil, ErrInvalidLimit
	}

	f := ports.InactiveFilter{
		Date:     in.Date,
		Platform: optional(in.Platform),
		DeviceID: optional(in.DeviceID),
		Limit:    in.Limit,
	}

	records, err := uc.source.FetchInactive(ctx, f)
	if err != nil {
		return nil, mapSourceError(err, "inactive devices for "+in.Date)
	}

	res := &domain.InactiveList{
		Date:    in.Date,
		Records: classify(records),
		Devices: GroupByDevice(records),
	}
	if f.Platform != nil {
		res.Platform = *f.Platform
	}
	if f.DeviceID != nil {
		res.DeviceID = *f.DeviceID
	}
	return res, nil
}

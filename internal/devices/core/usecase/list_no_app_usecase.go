package usecase

import (
	"context"

	"device-status-service/internal/devices/core/domain"
	"device-status-service/internal/devices/core/ports"
)

type ListNoAppFoundInput struct {
	Date     string
	Platform string // optional
	DeviceID string // optional
}

type ListNoAppFoundUseCase struct {
	source ports.DeviceSourcePort
}

func NewListNoAppFoundUseCase(source ports.DeviceSourcePort) *ListNoAppFoundUseCase {
	return &ListNoAppFoundUseCase{source: source}
}

// Execute lists devices on which a monitored app was not installed.
func (uc *ListNoAppFoundUseCase) Execute(ctx context.Context, in ListNoAppFoundInput) (*domain.NoAppList, error) {
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}

	f := ports.NoAppFilter{
		Date:     in.Date,
		Platform: optional(in.Platform),
		DeviceID: optional(in.DeviceID),
	}

	res, err := uc.source.FetchNoAppFound(ctx, f)
	if err != nil {
		return nil, mapSourceError(err, "no-app devices for "+in.Date)
	}

	out := *res
	if out.Date == "" {
		out.Date = in.Date
	}
	if out.Devices == nil {
		out.Devices = []domain.NoAppDevice{}
	}
	// the source count is advisory; the list is what we serve
	out.DeviceCount = len(out.Devices)
	return &out, nil
}

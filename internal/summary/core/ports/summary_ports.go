package ports

import (
	"context"
	"errors"

	"device-status-service/internal/summary/core/domain"
)

var (
	// ErrSourceNotFound: the source has no data for the request.
	ErrSourceNotFound = errors.New("not found at source")
	// ErrSourceUnavailable: the source could not be reached or answered badly.
	ErrSourceUnavailable = errors.New("source unavailable")
)

type SummaryFilter struct {
	Date     string
	Platform *string // optional
}

// SummarySourcePort reads raw daily status counts from the monitoring API.
type SummarySourcePort interface {
	FetchSummary(ctx context.Context, f SummaryFilter) (*domain.SummaryRaw, error)
}

// SnapshotStorePort keeps the last raw summary seen per date so the
// dashboard can still render when the monitoring API is down.
type SnapshotStorePort interface {
	SaveSnapshot(ctx context.Context, s *domain.SummaryRaw) error
	// LoadSnapshot returns nil, nil when nothing is stored for the date.
	LoadSnapshot(ctx context.Context, f SummaryFilter) (*domain.SummaryRaw, error)
}

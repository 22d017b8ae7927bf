package usecase

import (
	"context"

	"device-status-service/internal/platform/metrics"
	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
)

type GetSummaryInput struct {
	Date     string
	Platform string // optional
}

type GetSummaryUseCase struct {
	loader summaryLoader
}

// NewGetSummaryUseCase builds the dashboard use case. store is optional.
func NewGetSummaryUseCase(source ports.SummarySourcePort, store ports.SnapshotStorePort) *GetSummaryUseCase {
	return &GetSummaryUseCase{loader: summaryLoader{source: source, store: store}}
}

// Execute fetches the raw summary for a day and derives everything the
// overview page shows from it.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) (*domain.Dashboard, error) {
	res, err := uc.loader.load(ctx, in.Date, in.Platform)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(res.raw.Summary)
	for _, s := range summary {
		metrics.RecordUnclassified(s.Platform, s.Other)
	}

	totals := TotalCounts(summary)
	score := HealthScore(totals)

	date := res.raw.Date
	if date == "" {
		date = in.Date
	}

	return &domain.Dashboard{
		Date:         date,
		Summary:      summary,
		PlatformData: PlatformData(summary),
		Totals:       totals,
		Statuses:     AllStatuses(summary),
		HealthScore:  score,
		HealthLabel:  HealthLabel(score),
		Insights:     QuickInsights(summary, score),
		FromSnapshot: res.fromSnapshot,
	}, nil
}

type GetBreakdownInput struct {
	Date     string
	Platform string
}

type PlatformBreakdown struct {
	Date     string
	Platform string
	Total    int64
	Statuses []domain.StatusCount
}

type GetBreakdownUseCase struct {
	loader summaryLoader
}

func NewGetBreakdownUseCase(source ports.SummarySourcePort, store ports.SnapshotStorePort) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{loader: summaryLoader{source: source, store: store}}
}

// Execute returns the merged per-status breakdown of one platform.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, in GetBreakdownInput) (*PlatformBreakdown, error) {
	if in.Platform == "" {
		return nil, ErrInvalidPlatform
	}

	res, err := uc.loader.load(ctx, in.Date, "")
	if err != nil {
		return nil, err
	}

	summary := Aggregate(res.raw.Summary)
	details := PlatformStatusBreakdown(summary, in.Platform)
	if details == nil {
		return nil, ErrNotFound
	}

	statuses := MergeStatuses(details)
	var total int64
	for _, s := range statuses {
		total += s.Count
	}

	return &PlatformBreakdown{
		Date:     in.Date,
		Platform: in.Platform,
		Total:    total,
		Statuses: statuses,
	}, nil
}

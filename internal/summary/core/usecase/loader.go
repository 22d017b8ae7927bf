package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"device-status-service/internal/platform/logging"
	"device-status-service/internal/platform/metrics"
	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
)

// summaryLoader fetches a raw summary from the source and keeps the snapshot
// store in sync. store may be nil.
type summaryLoader struct {
	source ports.SummarySourcePort
	store  ports.SnapshotStorePort
}

type loadResult struct {
	raw          *domain.SummaryRaw
	fromSnapshot bool
}

func (l summaryLoader) load(ctx context.Context, date, platform string) (loadResult, error) {
	if err := validateDate(date); err != nil {
		return loadResult{}, err
	}

	f := ports.SummaryFilter{Date: date}
	if p := strings.TrimSpace(platform); p != "" {
		f.Platform = &p
	}

	raw, err := l.source.FetchSummary(ctx, f)
	if err == nil {
		l.save(ctx, raw, f)
		return loadResult{raw: raw}, nil
	}

	if errors.Is(err, ports.ErrSourceNotFound) {
		return loadResult{}, fmt.Errorf("%w: %s", ErrNotFound, date)
	}

	if l.store == nil {
		return loadResult{}, err
	}

	snap, serr := l.store.LoadSnapshot(ctx, f)
	if serr != nil {
		logging.Ctx(ctx).Warn().Err(serr).Str("date", date).Msg("snapshot lookup failed")
		return loadResult{}, err
	}
	if snap == nil {
		return loadResult{}, err
	}

	metrics.SnapshotFallbacks.Inc()
	logging.Ctx(ctx).Warn().Err(err).Str("date", date).Msg("upstream unavailable, serving stored snapshot")
	return loadResult{raw: snap, fromSnapshot: true}, nil
}

// save stores full-day summaries only; a platform-filtered response would
// overwrite the other platforms of the day.
func (l summaryLoader) save(ctx context.Context, raw *domain.SummaryRaw, f ports.SummaryFilter) {
	if l.store == nil || f.Platform != nil || raw == nil {
		return
	}
	// Keyed on the requested date, which is what LoadSnapshot looks up.
	snap := *raw
	snap.Date = f.Date
	if err := l.store.SaveSnapshot(ctx, &snap); err != nil {
		metrics.SnapshotWriteErrors.Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("date", f.Date).Msg("snapshot write failed")
	}
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

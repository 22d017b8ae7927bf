package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lib/pq"

	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
)

// SnapshotRepository keeps one raw summary per date as JSONB.
type SnapshotRepository struct {
	db DB
}

func NewSnapshotRepository(db DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ ports.SnapshotStorePort = (*SnapshotRepository)(nil)

const createSnapshotsSQL = `
CREATE TABLE IF NOT EXISTS summary_snapshots (
    snapshot_date DATE PRIMARY KEY,
    platforms     TEXT[] NOT NULL DEFAULT '{}',
    payload       JSONB NOT NULL,
    fetched_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

const upsertSnapshotSQL = `
INSERT INTO summary_snapshots (
    snapshot_date,
    platforms,
    payload,
    fetched_at
) VALUES (
    $1, $2, $3, now()
)
ON CONFLICT (snapshot_date) DO UPDATE
SET platforms  = EXCLUDED.platforms,
    payload    = EXCLUDED.payload,
    fetched_at = EXCLUDED.fetched_at;
`

const selectSnapshotSQL = `
SELECT payload
FROM summary_snapshots
WHERE snapshot_date = $1
`

type snapshotPayload struct {
	Date    string            `json:"date"`
	Summary []platformPayload `json:"summary"`
}

type platformPayload struct {
	Platform string           `json:"platform"`
	Summary  map[string]int64 `json:"summary"`
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (r *SnapshotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createSnapshotsSQL)
	return err
}

// Ping reports whether the database is reachable.
func (r *SnapshotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, s *domain.SummaryRaw) error {
	p := snapshotPayload{
		Date:    s.Date,
		Summary: make([]platformPayload, 0, len(s.Summary)),
	}
	platforms := make([]string, 0, len(s.Summary))
	for _, ps := range s.Summary {
		p.Summary = append(p.Summary, platformPayload{Platform: ps.Platform, Summary: ps.Summary})
		platforms = append(platforms, ps.Platform)
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, upsertSnapshotSQL, s.Date, pq.Array(platforms), payload); err != nil {
		return fmt.Errorf("save snapshot %s: %w", s.Date, err)
	}
	return nil
}

// LoadSnapshot returns the stored summary for f.Date, narrowed to
// f.Platform when set. Platform matching is case-insensitive.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, f ports.SummaryFilter) (*domain.SummaryRaw, error) {
	rows, err := r.db.QueryContext(ctx, selectSnapshotSQL, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var payload []byte
	if err := rows.Scan(&payload); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var p snapshotPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", f.Date, err)
	}

	out := &domain.SummaryRaw{
		Date:    p.Date,
		Summary: make([]domain.PlatformSummaryRaw, 0, len(p.Summary)),
	}
	if out.Date == "" {
		out.Date = f.Date
	}

	for _, ps := range p.Summary {
		if f.Platform != nil && !strings.EqualFold(ps.Platform, *f.Platform) {
			continue
		}
		counts := domain.RawStatusCount(ps.Summary)
		if counts == nil {
			counts = domain.RawStatusCount{}
		}
		out.Summary = append(out.Summary, domain.PlatformSummaryRaw{Platform: ps.Platform, Summary: counts})
	}

	return out, nil
}

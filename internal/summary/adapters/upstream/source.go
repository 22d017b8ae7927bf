package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"device-status-service/internal/platform/upstream"
	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
)

// JSONGetter is the slice of *upstream.Client this adapter needs.
type JSONGetter interface {
	GetJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error
}

type summaryResponse struct {
	Date    string        `json:"date"`
	Summary []platformDTO `json:"summary"`
}

type platformDTO struct {
	Platform string           `json:"platform"`
	Summary  map[string]int64 `json:"summary"`
}

var ErrMalformedResponse = errors.New("malformed summary response")

type SummarySource struct {
	client JSONGetter
}

func NewSummarySource(client JSONGetter) *SummarySource {
	return &SummarySource{client: client}
}

var _ ports.SummarySourcePort = (*SummarySource)(nil)

func (s *SummarySource) FetchSummary(ctx context.Context, f ports.SummaryFilter) (*domain.SummaryRaw, error) {
	q := url.Values{}
	if f.Platform != nil {
		q.Set("platform", *f.Platform)
	}

	var resp summaryResponse
	if err := s.client.GetJSON(ctx, "summary", "summary/"+url.PathEscape(f.Date), q, &resp); err != nil {
		return nil, mapError(err)
	}

	out := &domain.SummaryRaw{
		Date:    resp.Date,
		Summary: make([]domain.PlatformSummaryRaw, 0, len(resp.Summary)),
	}
	if out.Date == "" {
		out.Date = f.Date
	}

	for _, p := range resp.Summary {
		counts := make(domain.RawStatusCount, len(p.Summary))
		for status, n := range p.Summary {
			if n < 0 {
				return nil, fmt.Errorf("%w: %w: %s/%s has count %d", ports.ErrSourceUnavailable, ErrMalformedResponse, p.Platform, status, n)
			}
			counts[status] = n
		}
		out.Summary = append(out.Summary, domain.PlatformSummaryRaw{
			Platform: p.Platform,
			Summary:  counts,
		})
	}

	return out, nil
}

func mapError(err error) error {
	if errors.Is(err, upstream.ErrNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrSourceNotFound, err)
	}
	return fmt.Errorf("%w: %w", ports.ErrSourceUnavailable, err)
}

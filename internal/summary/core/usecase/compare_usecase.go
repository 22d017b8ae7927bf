package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"device-status-service/internal/summary/core/domain"
	"device-status-service/internal/summary/core/ports"
)

type CompareInput struct {
	Date string
}

type CompareUseCase struct {
	loader summaryLoader
}

func NewCompareUseCase(source ports.SummarySourcePort, store ports.SnapshotStorePort) *CompareUseCase {
	return &CompareUseCase{loader: summaryLoader{source: source, store: store}}
}

// Execute diffs the given day against the previous calendar day. Both days
// are fetched concurrently; the diff runs once both have arrived.
func (uc *CompareUseCase) Execute(ctx context.Context, in CompareInput) (*domain.Comparison, error) {
	prev, err := PreviousDay(in.Date)
	if err != nil {
		return nil, err
	}

	var today, yesterday loadResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = uc.loader.load(gctx, in.Date, "")
		return err
	})
	g.Go(func() error {
		var err error
		yesterday, err = uc.loader.load(gctx, prev, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := Compare(today.raw, yesterday.raw)
	res.Date = in.Date
	res.PreviousDate = prev
	return &res, nil
}

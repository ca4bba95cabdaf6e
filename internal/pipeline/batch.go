package pipeline

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loi-rocket/dealflow-cli/internal/model"
)

// BatchResult is the outcome of analyzing one batch of listings. Results keep
// input order; failed slots are nil and counted in Failed.
type BatchResult struct {
	Results []*model.ListingFull
	Failed  int
}

// MapBatch analyzes listings concurrently. Each record is independent, so this
// is a plain data-parallel map: per-listing failures are logged and counted
// but never abort the batch. Concurrency below 1 runs sequentially.
func (a *Analyzer) MapBatch(ctx context.Context, listings []model.ListingRawData, concurrency int) (*BatchResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]*model.ListingFull, len(listings))
	var failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range listings {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			full, err := a.Compute(&listings[i])
			if err != nil {
				failed.Add(1)
				zap.L().Error("pipeline: listing failed",
					zap.Int("index", i),
					zap.String("address", listings[i].PropAddress),
					zap.Error(err),
				)
				return nil
			}
			results[i] = full
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	zap.L().Info("pipeline: batch complete",
		zap.Int("listings", len(listings)),
		zap.Int64("failed", failed.Load()),
		zap.Int("concurrency", concurrency),
	)

	return &BatchResult{Results: results, Failed: int(failed.Load())}, nil
}

// Summarize builds the run summary for a batch result.
func (r *BatchResult) Summarize() *model.RunSummary {
	s := &model.RunSummary{
		Listings:   len(r.Results),
		Failed:     r.Failed,
		Strategies: make(map[model.AcquisitionStrategy]int),
	}
	for _, full := range r.Results {
		if full != nil {
			s.Strategies[full.AcquisitionStrategy]++
		}
	}
	return s
}

package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.CompetitorFinder = (*CompetitorFinder)(nil)

// CompetitorFinder is a mock implementation of shopinsight.CompetitorFinder.
type CompetitorFinder struct {
	FindCompetitorsFn func(ctx context.Context, storeURL string, max int) ([]string, error)
}

func (f *CompetitorFinder) FindCompetitors(ctx context.Context, storeURL string, max int) ([]string, error) {
	return f.FindCompetitorsFn(ctx, storeURL, max)
}

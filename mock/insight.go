package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.InsightService = (*InsightService)(nil)

// InsightService is a mock implementation of shopinsight.InsightService.
type InsightService struct {
	BuildInsightFn       func(ctx context.Context, storeURL string) (*shopinsight.StoreInsight, error)
	AnalyzeCompetitorsFn func(ctx context.Context, storeURL string, max int) (*shopinsight.CompetitorReport, error)
}

func (s *InsightService) BuildInsight(ctx context.Context, storeURL string) (*shopinsight.StoreInsight, error) {
	return s.BuildInsightFn(ctx, storeURL)
}

func (s *InsightService) AnalyzeCompetitors(ctx context.Context, storeURL string, max int) (*shopinsight.CompetitorReport, error) {
	return s.AnalyzeCompetitorsFn(ctx, storeURL, max)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with debug logging.
type LoggingCatalogService struct {
	next   shopinsight.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next shopinsight.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// FetchCatalog logs the product count and delegates to the wrapped service.
func (s *LoggingCatalogService) FetchCatalog(ctx context.Context, storeURL string) (products []shopinsight.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("catalog",
			"store", storeURL,
			"products", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchCatalog(ctx, storeURL)
}

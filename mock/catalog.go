package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of shopinsight.CatalogService.
type CatalogService struct {
	FetchCatalogFn func(ctx context.Context, storeURL string) ([]shopinsight.Product, error)
}

func (s *CatalogService) FetchCatalog(ctx context.Context, storeURL string) ([]shopinsight.Product, error) {
	return s.FetchCatalogFn(ctx, storeURL)
}

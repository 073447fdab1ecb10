package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.BrandService = (*BrandService)(nil)

// BrandService is a mock implementation of shopinsight.BrandService.
type BrandService struct {
	SaveInsightFn    func(ctx context.Context, insight *shopinsight.StoreInsight) (*shopinsight.Brand, error)
	FindBrandByURLFn func(ctx context.Context, url string) (*shopinsight.Brand, error)
	FindBrandsFn     func(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.Brand, error)
	FindProductsFn   func(ctx context.Context, brandID string) ([]shopinsight.Product, error)
	FindFAQsFn       func(ctx context.Context, brandID string) ([]shopinsight.FAQ, error)
	DeleteBrandFn    func(ctx context.Context, id string) error
}

func (s *BrandService) SaveInsight(ctx context.Context, insight *shopinsight.StoreInsight) (*shopinsight.Brand, error) {
	return s.SaveInsightFn(ctx, insight)
}

func (s *BrandService) FindBrandByURL(ctx context.Context, url string) (*shopinsight.Brand, error) {
	return s.FindBrandByURLFn(ctx, url)
}

func (s *BrandService) FindBrands(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.Brand, error) {
	return s.FindBrandsFn(ctx, filter)
}

func (s *BrandService) FindProducts(ctx context.Context, brandID string) ([]shopinsight.Product, error) {
	return s.FindProductsFn(ctx, brandID)
}

func (s *BrandService) FindFAQs(ctx context.Context, brandID string) ([]shopinsight.FAQ, error) {
	return s.FindFAQsFn(ctx, brandID)
}

func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	return s.DeleteBrandFn(ctx, id)
}

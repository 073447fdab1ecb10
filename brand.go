package shopinsight

import (
	"context"
	"time"
)

// Brand is the persisted summary of one storefront, keyed by its URL.
// Its products and FAQs are child records replaced on every save.
type Brand struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	About         *string   `json:"about"`
	PrivacyPolicy *string   `json:"privacy_policy"`
	ReturnPolicy  *string   `json:"return_policy"`
	ContentHash   string    `json:"content_hash"`
	ProductCount  int       `json:"product_count"`
	FAQCount      int       `json:"faq_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Validate returns an error if the brand contains invalid fields.
func (b *Brand) Validate() error {
	if b.URL == "" {
		return Errorf(EINVALID, "brand URL required")
	}
	return nil
}

// BrandService represents a service for persisting store insights.
type BrandService interface {
	// SaveInsight creates or updates the brand keyed by the insight's store
	// URL and replaces its products and FAQs. The write is atomic: on
	// failure nothing is changed.
	SaveInsight(ctx context.Context, insight *StoreInsight) (*Brand, error)

	// FindBrandByURL retrieves a brand by its store URL.
	// Returns ENOTFOUND if the brand does not exist.
	FindBrandByURL(ctx context.Context, url string) (*Brand, error)

	// FindBrands retrieves brands matching the filter.
	FindBrands(ctx context.Context, filter BrandFilter) ([]*Brand, error)

	// FindProducts retrieves a brand's products in their saved order.
	FindProducts(ctx context.Context, brandID string) ([]Product, error)

	// FindFAQs retrieves a brand's FAQs in their saved order.
	FindFAQs(ctx context.Context, brandID string) ([]FAQ, error)

	// DeleteBrand permanently removes a brand with its products and FAQs.
	// Returns ENOTFOUND if the brand does not exist.
	DeleteBrand(ctx context.Context, id string) error
}

// BrandFilter represents a filter for FindBrands.
type BrandFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

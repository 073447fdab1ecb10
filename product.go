package shopinsight

import "context"

// CatalogPageSize is the number of products requested per listing page.
const CatalogPageSize = 250

// HeroProductLimit caps the number of hero products taken from a storefront's home page.
const HeroProductLimit = 8

// Product represents a storefront product.
// Catalog products always carry Price and Image; hero products only carry
// Title and URL.
type Product struct {
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Price *float64 `json:"price"`
	Image *string  `json:"image"`
}

// CatalogService retrieves a storefront's complete product listing.
type CatalogService interface {
	// FetchCatalog pages through the storefront's structured product
	// listing and returns every product found. Pagination stops at the
	// first failed or empty page.
	// Returns EINVALID if storeURL cannot be parsed.
	FetchCatalog(ctx context.Context, storeURL string) ([]Product, error)
}

package shopinsight

import (
	"context"
	"time"
)

// DefaultFetchTimeout is the per-request timeout for storefront requests.
const DefaultFetchTimeout = 10 * time.Second

// Fetcher retrieves raw HTML from URLs.
// Implementations may use plain HTTP or browser automation for storefronts
// that render client-side.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// Implementations return an error for transport failures and for
	// any response status other than 200.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

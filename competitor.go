package shopinsight

import "context"

// DefaultMaxCompetitors is the number of competitor candidates analysed by default.
const DefaultMaxCompetitors = 3

// CompetitorFinder discovers storefronts related to a given store.
type CompetitorFinder interface {
	// FindCompetitors runs a single best-effort web search and returns at
	// most max candidate storefront URLs. A failed search yields an empty
	// list, not an error.
	FindCompetitors(ctx context.Context, storeURL string, max int) ([]string, error)
}

// CompetitorReport holds the insights built for a store's competitors.
type CompetitorReport struct {
	OriginalStore string          `json:"original_store"`
	Competitors   []*StoreInsight `json:"competitors"`
}

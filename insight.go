package shopinsight

import (
	"context"
	"net/url"
	"strings"
)

// Social platforms recognised in storefront links, in lookup order.
var SocialPlatforms = []string{"instagram", "facebook", "twitter", "tiktok"}

// Important link categories.
const (
	LinkOrderTracking = "order_tracking"
	LinkContactUs     = "contact_us"
	LinkBlog          = "blog"
)

// FAQ is a question and answer pair scraped from a storefront's FAQ page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Contacts holds contact identifiers found in a storefront's visible text.
// Both lists are deduplicated.
type Contacts struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// StoreInsight is the consolidated brand insight for one storefront.
// Optional text facets are nil when not found; collections are never nil
// once normalized.
type StoreInsight struct {
	StoreURL       string            `json:"store_url"`
	Products       []Product         `json:"products"`
	HeroProducts   []Product         `json:"hero_products"`
	PrivacyPolicy  *string           `json:"privacy_policy"`
	ReturnPolicy   *string           `json:"return_policy"`
	FAQs           []FAQ             `json:"faqs"`
	SocialHandles  map[string]string `json:"social_handles"`
	Contacts       Contacts          `json:"contacts"`
	About          *string           `json:"about"`
	ImportantLinks map[string]string `json:"important_links"`
}

// NewStoreInsight returns an insight for storeURL with every collection empty.
func NewStoreInsight(storeURL string) *StoreInsight {
	si := &StoreInsight{StoreURL: storeURL}
	si.Normalize()
	return si
}

// Normalize replaces nil collections with empty ones.
func (si *StoreInsight) Normalize() {
	if si.Products == nil {
		si.Products = []Product{}
	}
	if si.HeroProducts == nil {
		si.HeroProducts = []Product{}
	}
	if si.FAQs == nil {
		si.FAQs = []FAQ{}
	}
	if si.SocialHandles == nil {
		si.SocialHandles = map[string]string{}
	}
	if si.Contacts.Emails == nil {
		si.Contacts.Emails = []string{}
	}
	if si.Contacts.Phones == nil {
		si.Contacts.Phones = []string{}
	}
	if si.ImportantLinks == nil {
		si.ImportantLinks = map[string]string{}
	}
}

// ValidateStoreURL returns EINVALID unless rawURL is an absolute http(s) URL.
func ValidateStoreURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return Errorf(EINVALID, "store URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid store URL %q: %v", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "store URL must be an absolute http(s) URL: %q", rawURL)
	}
	return nil
}

// StoreScraper extracts the heuristic facets of a storefront.
//
// Each method loads the pages it needs on its own and shares no state with
// the others, so they may run concurrently. Missing pages or content yield
// the facet's empty value with a nil error; an error reports an unexpected
// failure such as an unusable store URL or a cancelled context.
type StoreScraper interface {
	HeroProducts(ctx context.Context, storeURL string) ([]Product, error)
	PrivacyPolicy(ctx context.Context, storeURL string) (*string, error)
	ReturnPolicy(ctx context.Context, storeURL string) (*string, error)
	FAQs(ctx context.Context, storeURL string) ([]FAQ, error)
	SocialHandles(ctx context.Context, storeURL string) (map[string]string, error)
	Contacts(ctx context.Context, storeURL string) (Contacts, error)
	About(ctx context.Context, storeURL string) (*string, error)
	ImportantLinks(ctx context.Context, storeURL string) (map[string]string, error)
}

// InsightService builds and persists store insights.
type InsightService interface {
	// BuildInsight gathers every facet of the storefront concurrently and
	// persists the result. Facet failures never fail the build; only an
	// invalid store URL or a persistence failure returns an error.
	BuildInsight(ctx context.Context, storeURL string) (*StoreInsight, error)

	// AnalyzeCompetitors discovers storefronts related to storeURL and
	// builds an insight for each of them.
	AnalyzeCompetitors(ctx context.Context, storeURL string, max int) (*CompetitorReport, error)
}

package goquery

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
	"golang.org/x/net/publicsuffix"
)

// DefaultSearchURL is the HTML search endpoint queried for related stores.
const DefaultSearchURL = "https://html.duckduckgo.com/html/"

// storefrontMarkers identify result links that plausibly point at a storefront.
var storefrontMarkers = []string{"shopify", productPathMarker}

// Ensure CompetitorFinder implements shopinsight.CompetitorFinder at compile time.
var _ shopinsight.CompetitorFinder = (*CompetitorFinder)(nil)

// CompetitorFinder discovers related storefronts through one web search.
type CompetitorFinder struct {
	fetcher   shopinsight.Fetcher
	searchURL string
	logger    *slog.Logger
}

// CompetitorOption configures a CompetitorFinder.
type CompetitorOption func(*CompetitorFinder)

// WithSearchURL overrides the search endpoint.
func WithSearchURL(u string) CompetitorOption {
	return func(f *CompetitorFinder) {
		f.searchURL = u
	}
}

// WithLogger sets the logger used to report failed searches.
func WithLogger(logger *slog.Logger) CompetitorOption {
	return func(f *CompetitorFinder) {
		f.logger = logger
	}
}

// NewCompetitorFinder creates a CompetitorFinder that searches through fetcher.
func NewCompetitorFinder(fetcher shopinsight.Fetcher, opts ...CompetitorOption) *CompetitorFinder {
	f := &CompetitorFinder{
		fetcher:   fetcher,
		searchURL: DefaultSearchURL,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FindCompetitors searches for pages related to storeURL and returns at
// most max storefront candidates. A failed search returns an empty list.
func (f *CompetitorFinder) FindCompetitors(ctx context.Context, storeURL string, max int) ([]string, error) {
	if err := shopinsight.ValidateStoreURL(storeURL); err != nil {
		return nil, err
	}
	if max <= 0 {
		max = shopinsight.DefaultMaxCompetitors
	}

	q := url.Values{"q": {"related:" + storeURL}}
	html, err := f.fetcher.Fetch(ctx, f.searchURL+"?"+q.Encode())
	if err != nil {
		f.logger.Warn("competitor search failed", "store", storeURL, "err", err)
		return []string{}, nil
	}

	doc, err := ParseHTML(html)
	if err != nil {
		f.logger.Warn("competitor search unparsable", "store", storeURL, "err", err)
		return []string{}, nil
	}

	return FilterCompetitorLinks(ExtractSearchResults(doc), storeURL, max), nil
}

// ExtractSearchResults returns the target URLs of search result anchors in
// document order. Search engine redirect links are unwrapped.
func ExtractSearchResults(doc *goquery.Document) []string {
	var links []string
	doc.Find("a.result__a").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		links = append(links, unwrapRedirect(href))
	})
	return links
}

// FilterCompetitorLinks keeps absolute http(s) links that look like
// storefronts and are not on the store's own site, without duplicates,
// up to max links.
func FilterCompetitorLinks(links []string, storeURL string, max int) []string {
	own := siteOf(storeURL)
	result := []string{}
	seen := make(map[string]bool)
	for _, link := range links {
		if len(result) >= max {
			break
		}
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			continue
		}
		if seen[link] || !containsAny(strings.ToLower(link), storefrontMarkers) {
			continue
		}
		if own != "" && siteOf(link) == own {
			continue
		}
		seen[link] = true
		result = append(result, link)
	}
	return result
}

// unwrapRedirect returns the destination of a "/l/?uddg=" redirect link,
// or href unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil || !strings.HasSuffix(u.Path, "/l/") {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// siteOf returns the registrable domain of rawURL, falling back to its host.
func siteOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if site, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return site
	}
	return host
}

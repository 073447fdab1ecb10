// Package goquery implements storefront page loading and the heuristic
// facet extractors on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// PageLoader retrieves a URL and parses it into a document tree.
// Load never fails: transport errors, non-200 responses and parse failures
// all yield a nil document.
type PageLoader struct {
	fetcher shopinsight.Fetcher
	logger  *slog.Logger
}

// NewPageLoader creates a PageLoader on top of fetcher.
// A nil logger discards log output.
func NewPageLoader(fetcher shopinsight.Fetcher, logger *slog.Logger) *PageLoader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PageLoader{fetcher: fetcher, logger: logger}
}

// Load fetches url and returns its parsed document, or nil when the page is
// unavailable for any reason.
func (l *PageLoader) Load(ctx context.Context, url string) *goquery.Document {
	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		l.logger.Debug("page unavailable", "url", url, "err", err)
		return nil
	}

	doc, err := ParseHTML(html)
	if err != nil {
		l.logger.Debug("page unparsable", "url", url, "err", err)
		return nil
	}
	return doc
}

// ParseHTML parses an HTML string into a document tree.
func ParseHTML(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

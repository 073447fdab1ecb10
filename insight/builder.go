// Package insight assembles store insights.
// It fans out the catalog fetch and the heuristic extractors for one store,
// tolerates the failure of any of them, and persists the combined record.
package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure Builder implements shopinsight.InsightService at compile time.
var _ shopinsight.InsightService = (*Builder)(nil)

// Builder builds store insights from a catalog service and a store scraper.
type Builder struct {
	Catalog     shopinsight.CatalogService
	Scraper     shopinsight.StoreScraper
	Competitors shopinsight.CompetitorFinder

	// Brands persists built insights. Nil disables persistence.
	Brands shopinsight.BrandService

	// Logger receives facet failures. Nil discards them.
	Logger *slog.Logger
}

// BuildInsight gathers every facet of storeURL concurrently.
//
// All facets run to completion; none is cancelled because another failed.
// A facet that returns an error or panics is logged and left at its empty
// default. The only errors returned are an invalid store URL and a failure
// to persist the result.
func (b *Builder) BuildInsight(ctx context.Context, storeURL string) (*shopinsight.StoreInsight, error) {
	if err := shopinsight.ValidateStoreURL(storeURL); err != nil {
		return nil, err
	}
	if b.Catalog == nil || b.Scraper == nil {
		return nil, shopinsight.Errorf(shopinsight.EINTERNAL, "insight builder requires a catalog and a scraper")
	}

	begin := time.Now()
	si := shopinsight.NewStoreInsight(storeURL)
	fanout := &facets{ctx: ctx, storeURL: storeURL, logger: b.logger()}

	gather(fanout, "products", &si.Products, b.Catalog.FetchCatalog)
	gather(fanout, "hero_products", &si.HeroProducts, b.Scraper.HeroProducts)
	gather(fanout, "privacy_policy", &si.PrivacyPolicy, b.Scraper.PrivacyPolicy)
	gather(fanout, "return_policy", &si.ReturnPolicy, b.Scraper.ReturnPolicy)
	gather(fanout, "faqs", &si.FAQs, b.Scraper.FAQs)
	gather(fanout, "social_handles", &si.SocialHandles, b.Scraper.SocialHandles)
	gather(fanout, "contacts", &si.Contacts, b.Scraper.Contacts)
	gather(fanout, "about", &si.About, b.Scraper.About)
	gather(fanout, "important_links", &si.ImportantLinks, b.Scraper.ImportantLinks)
	fanout.wait()

	si.Normalize()

	b.logger().Info("insight built",
		"store", storeURL,
		"products", len(si.Products),
		"faqs", len(si.FAQs),
		"failed_facets", fanout.failed,
		"duration", time.Since(begin),
	)

	if b.Brands != nil {
		if _, err := b.Brands.SaveInsight(ctx, si); err != nil {
			return nil, fmt.Errorf("saving insight for %s: %w", storeURL, err)
		}
	}

	return si, nil
}

// AnalyzeCompetitors discovers up to max related storefronts and builds an
// insight for each, in discovery order. Candidates whose build fails are
// skipped.
func (b *Builder) AnalyzeCompetitors(ctx context.Context, storeURL string, max int) (*shopinsight.CompetitorReport, error) {
	if err := shopinsight.ValidateStoreURL(storeURL); err != nil {
		return nil, err
	}
	if b.Competitors == nil {
		return nil, shopinsight.Errorf(shopinsight.EINTERNAL, "competitor discovery not configured")
	}

	candidates, err := b.Competitors.FindCompetitors(ctx, storeURL, max)
	if err != nil {
		return nil, fmt.Errorf("finding competitors: %w", err)
	}

	report := &shopinsight.CompetitorReport{
		OriginalStore: storeURL,
		Competitors:   []*shopinsight.StoreInsight{},
	}
	for _, candidate := range candidates {
		si, err := b.BuildInsight(ctx, candidate)
		if err != nil {
			b.logger().Warn("competitor skipped", "store", candidate, "err", err)
			continue
		}
		report.Competitors = append(report.Competitors, si)
	}
	return report, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return b.Logger
}

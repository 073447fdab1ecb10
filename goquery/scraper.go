package goquery

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// Ensure Scraper implements shopinsight.StoreScraper at compile time.
var _ shopinsight.StoreScraper = (*Scraper)(nil)

// Scraper extracts heuristic facets from a storefront.
// Every method loads the store's home page itself, and at most one linked
// page, so methods are independent and safe to run concurrently.
type Scraper struct {
	pages *PageLoader
}

// NewScraper creates a Scraper that loads pages through pages.
func NewScraper(pages *PageLoader) *Scraper {
	return &Scraper{pages: pages}
}

// HeroProducts returns the product links featured on the home page.
func (s *Scraper) HeroProducts(ctx context.Context, storeURL string) ([]shopinsight.Product, error) {
	base, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return []shopinsight.Product{}, err
	}
	return ExtractHeroProducts(doc, base), nil
}

// PrivacyPolicy returns the text of the page linked as the privacy policy.
func (s *Scraper) PrivacyPolicy(ctx context.Context, storeURL string) (*string, error) {
	return s.policy(ctx, storeURL, PrivacyKeywords)
}

// ReturnPolicy returns the text of the page linked as the return or refund policy.
func (s *Scraper) ReturnPolicy(ctx context.Context, storeURL string) (*string, error) {
	return s.policy(ctx, storeURL, ReturnKeywords)
}

// policy follows anchors whose text matches keywords in document order and
// returns the visible text of the first linked page that loads.
func (s *Scraper) policy(ctx context.Context, storeURL string, keywords []string) (*string, error) {
	base, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return nil, err
	}
	for _, link := range FindLinksByText(doc, base, keywords) {
		if page := s.pages.Load(ctx, link); page != nil {
			text := VisibleText(page)
			return &text, nil
		}
	}
	return nil, nil
}

// FAQs returns the question and answer pairs found on the linked FAQ page.
func (s *Scraper) FAQs(ctx context.Context, storeURL string) ([]shopinsight.FAQ, error) {
	page, err := s.linkedPage(ctx, storeURL, FAQKeywords)
	if err != nil || page == nil {
		return []shopinsight.FAQ{}, err
	}
	return ExtractFAQs(page), nil
}

// SocialHandles returns the first link found for each social platform.
func (s *Scraper) SocialHandles(ctx context.Context, storeURL string) (map[string]string, error) {
	base, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return map[string]string{}, err
	}
	return ExtractSocialHandles(doc, base), nil
}

// Contacts returns the emails and phone numbers in the home page's visible text.
func (s *Scraper) Contacts(ctx context.Context, storeURL string) (shopinsight.Contacts, error) {
	_, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return shopinsight.Contacts{Emails: []string{}, Phones: []string{}}, err
	}
	return ExtractContacts(VisibleText(doc)), nil
}

// About returns the visible text of the linked about page.
func (s *Scraper) About(ctx context.Context, storeURL string) (*string, error) {
	page, err := s.linkedPage(ctx, storeURL, AboutKeywords)
	if err != nil || page == nil {
		return nil, err
	}
	text := VisibleText(page)
	return &text, nil
}

// ImportantLinks returns the order tracking, contact and blog links.
func (s *Scraper) ImportantLinks(ctx context.Context, storeURL string) (map[string]string, error) {
	base, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return map[string]string{}, err
	}
	return ExtractImportantLinks(doc, base), nil
}

// home parses storeURL and loads the store's home page.
// The returned document is nil when the page is unavailable.
func (s *Scraper) home(ctx context.Context, storeURL string) (*url.URL, *goquery.Document, error) {
	if err := shopinsight.ValidateStoreURL(storeURL); err != nil {
		return nil, nil, err
	}
	base, err := url.Parse(storeURL)
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return base, s.pages.Load(ctx, storeURL), nil
}

// linkedPage loads the page behind the first home page anchor whose text
// or href matches keywords.
func (s *Scraper) linkedPage(ctx context.Context, storeURL string, keywords []string) (*goquery.Document, error) {
	base, doc, err := s.home(ctx, storeURL)
	if err != nil || doc == nil {
		return nil, err
	}
	link, ok := FindLinkByTextOrHref(doc, base, keywords)
	if !ok {
		return nil, nil
	}
	return s.pages.Load(ctx, link), nil
}

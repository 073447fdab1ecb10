package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// productPathMarker identifies links to product detail pages.
const productPathMarker = "/products/"

// ExtractHeroProducts returns the first shopinsight.HeroProductLimit anchors
// that link to a product page and carry visible text, in document order.
// Only Title and URL are populated.
func ExtractHeroProducts(doc *goquery.Document, base *url.URL) []shopinsight.Product {
	hero := []shopinsight.Product{}
	eachAnchor(doc, func(href, text string) bool {
		if strings.Contains(href, productPathMarker) && text != "" {
			hero = append(hero, shopinsight.Product{
				Title: text,
				URL:   resolveURL(base, href),
			})
		}
		return len(hero) < shopinsight.HeroProductLimit
	})
	return hero
}

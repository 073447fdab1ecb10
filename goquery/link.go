package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Keyword sets used to locate storefront pages.
var (
	PrivacyKeywords = []string{"privacy"}
	ReturnKeywords  = []string{"return", "refund"}
	FAQKeywords     = []string{"faq", "question"}
	AboutKeywords   = []string{"about"}
)

// FindLinksByText returns the resolved targets of every anchor whose
// lower-cased text contains any keyword, in document order without
// duplicates.
func FindLinksByText(doc *goquery.Document, base *url.URL, keywords []string) []string {
	var links []string
	seen := make(map[string]bool)
	eachAnchor(doc, func(href, text string) bool {
		if !containsAny(strings.ToLower(text), keywords) {
			return true
		}
		resolved := resolveURL(base, href)
		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
		return true
	})
	return links
}

// FindLinkByTextOrHref returns the resolved target of the first anchor
// whose text or href contains any keyword, case-insensitively.
func FindLinkByTextOrHref(doc *goquery.Document, base *url.URL, keywords []string) (string, bool) {
	var found string
	eachAnchor(doc, func(href, text string) bool {
		if containsAny(strings.ToLower(text+href), keywords) {
			found = resolveURL(base, href)
			return false
		}
		return true
	})
	return found, found != ""
}

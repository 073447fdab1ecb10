package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// linkCategory maps an important link category to the anchor text that identifies it.
type linkCategory struct {
	name     string
	keywords []string
}

var importantLinkCategories = []linkCategory{
	{name: shopinsight.LinkOrderTracking, keywords: []string{"track", "tracking"}},
	{name: shopinsight.LinkContactUs, keywords: []string{"contact"}},
	{name: shopinsight.LinkBlog, keywords: []string{"blog"}},
}

// ExtractImportantLinks maps each important link category to the first
// anchor whose text matches it. One anchor may fill several categories.
func ExtractImportantLinks(doc *goquery.Document, base *url.URL) map[string]string {
	links := make(map[string]string)
	eachAnchor(doc, func(href, text string) bool {
		lower := strings.ToLower(text)
		for _, cat := range importantLinkCategories {
			if _, ok := links[cat.name]; ok {
				continue
			}
			if containsAny(lower, cat.keywords) {
				links[cat.name] = resolveURL(base, href)
			}
		}
		return len(links) < len(importantLinkCategories)
	})
	return links
}

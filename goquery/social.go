package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// ExtractSocialHandles maps each platform in shopinsight.SocialPlatforms to
// the first link whose href mentions it. Anchors are visited in document
// order and each anchor claims at most one platform.
func ExtractSocialHandles(doc *goquery.Document, base *url.URL) map[string]string {
	socials := make(map[string]string)
	eachAnchor(doc, func(href, _ string) bool {
		lower := strings.ToLower(href)
		for _, platform := range shopinsight.SocialPlatforms {
			if _, ok := socials[platform]; ok {
				continue
			}
			if strings.Contains(lower, platform) {
				socials[platform] = resolveURL(base, href)
				break
			}
		}
		return len(socials) < len(shopinsight.SocialPlatforms)
	})
	return socials
}

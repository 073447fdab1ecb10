package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopinsight/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractSocialHandles(t *testing.T) {
	t.Parallel()

	t.Run("keeps the first link per platform", func(t *testing.T) {
		t.Parallel()

		html := `<footer>
<a href="https://instagram.com/first">IG</a>
<a href="https://www.instagram.com/second">IG again</a>
<a href="https://facebook.com/shop">FB</a>
</footer>`

		socials := goquery.ExtractSocialHandles(mustParse(t, html), mustURL(t, "https://shop.example.com"))

		assert.Equal(t, map[string]string{
			"instagram": "https://instagram.com/first",
			"facebook":  "https://facebook.com/shop",
		}, socials)
	})

	t.Run("finds every supported platform", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://twitter.com/shop">t</a>
<a href="https://www.tiktok.com/@shop">tt</a>
<a href="https://facebook.com/shop">f</a>
<a href="https://INSTAGRAM.com/shop">i</a>`

		socials := goquery.ExtractSocialHandles(mustParse(t, html), mustURL(t, "https://shop.example.com"))

		assert.Len(t, socials, 4)
		assert.Equal(t, "https://www.tiktok.com/@shop", socials["tiktok"])
		assert.Equal(t, "https://INSTAGRAM.com/shop", socials["instagram"])
	})

	t.Run("returns empty map without social links", func(t *testing.T) {
		t.Parallel()

		socials := goquery.ExtractSocialHandles(mustParse(t, `<a href="/cart">Cart</a>`), mustURL(t, "https://shop.example.com"))

		assert.NotNil(t, socials)
		assert.Empty(t, socials)
	})
}

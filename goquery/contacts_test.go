package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopinsight/goquery"
	"github.com/stretchr/testify/assert"
)

func TestExtractContacts(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates repeated email", func(t *testing.T) {
		t.Parallel()

		contacts := goquery.ExtractContacts("Write to help@shop.example.com or help@shop.example.com.")

		assert.Equal(t, []string{"help@shop.example.com"}, contacts.Emails)
	})

	t.Run("finds phone numbers with separators", func(t *testing.T) {
		t.Parallel()

		contacts := goquery.ExtractContacts("Call +1 555-123-4567 or 020 7946 0958 today")

		assert.ElementsMatch(t, []string{"+1 555-123-4567", "020 7946 0958"}, contacts.Phones)
	})

	t.Run("ignores short digit runs", func(t *testing.T) {
		t.Parallel()

		contacts := goquery.ExtractContacts("Save 20% on 3 items, open 9 to 5")

		assert.Empty(t, contacts.Phones)
		assert.Empty(t, contacts.Emails)
		assert.NotNil(t, contacts.Phones)
		assert.NotNil(t, contacts.Emails)
	})

	t.Run("rejects candidates with fewer than eight digits", func(t *testing.T) {
		t.Parallel()

		contacts := goquery.ExtractContacts("code 1 - - - - - - 2 end")

		assert.Empty(t, contacts.Phones)
	})

	t.Run("does not join digits across lines", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p>Call +1 555 123 4567</p><span>Order 2024</span><span>12 34 56 78</span>`)
		contacts := goquery.ExtractContacts(goquery.VisibleText(doc))

		assert.Equal(t, []string{"+1 555 123 4567", "12 34 56 78"}, contacts.Phones)
	})
}

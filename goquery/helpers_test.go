package goquery_test

import (
	"net/url"
	"testing"

	pq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight/goquery"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) *pq.Document {
	t.Helper()
	doc, err := goquery.ParseHTML(html)
	require.NoError(t, err)
	return doc
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

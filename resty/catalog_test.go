package resty_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/shopinsight"
	shopresty "github.com/fwojciec/shopinsight/resty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listing builds a products.json body with n items named after page.
func listing(page, n int) map[string]any {
	items := make([]map[string]any, 0, n)
	for i := range n {
		items = append(items, map[string]any{
			"title":    fmt.Sprintf("Product %d-%d", page, i),
			"handle":   fmt.Sprintf("product-%d-%d", page, i),
			"variants": []map[string]any{{"price": "10.00"}},
			"image":    map[string]any{"src": "https://cdn.example.com/p.png"},
		})
	}
	return map[string]any{"products": items}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestCatalogService_FetchCatalog(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first empty page", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			assert.Equal(t, "/products.json", r.URL.Path)
			assert.Equal(t, "250", r.URL.Query().Get("limit"))
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == 1 {
				writeJSON(w, listing(1, 250))
				return
			}
			writeJSON(w, listing(page, 0))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Len(t, products, 250)
		assert.Equal(t, int32(2), requests.Load())
	})

	t.Run("maps price from the first variant only", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") != "1" {
				writeJSON(w, listing(2, 0))
				return
			}
			_, _ = w.Write([]byte(`{"products":[{
				"title": "Tea Set",
				"handle": "tea-set",
				"variants": [{"price": "19.99"}, {"price": "29.99"}],
				"image": {"src": "https://cdn.example.com/tea.png"}
			}]}`))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL+"/")

		require.NoError(t, err)
		require.Len(t, products, 1)
		p := products[0]
		assert.Equal(t, "Tea Set", p.Title)
		assert.Equal(t, server.URL+"/products/tea-set", p.URL)
		require.NotNil(t, p.Price)
		assert.InDelta(t, 19.99, *p.Price, 0.0001)
		require.NotNil(t, p.Image)
		assert.Equal(t, "https://cdn.example.com/tea.png", *p.Image)
	})

	t.Run("defaults missing fields", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") != "1" {
				writeJSON(w, listing(2, 0))
				return
			}
			_, _ = w.Write([]byte(`{"products":[{"handle":"bare","variants":[],"image":null},{"handle":"numeric","variants":[{"price":7.5}]}]}`))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "", products[0].Title)
		assert.Equal(t, 0.0, *products[0].Price)
		assert.Equal(t, "", *products[0].Image)
		assert.Equal(t, 7.5, *products[1].Price)
	})

	t.Run("stops on non-200 response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "1" {
				writeJSON(w, listing(1, 3))
				return
			}
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("returns empty catalog when listing is missing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("stops on undecodable body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("bounds pagination by max pages", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			writeJSON(w, listing(page, 2))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService(shopresty.WithMaxPages(3)).FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Len(t, products, 6)
		assert.Equal(t, int32(3), requests.Load())
	})

	t.Run("bounds pagination by deadline", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(20 * time.Millisecond)
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			writeJSON(w, listing(page, 1))
		}))
		defer server.Close()

		svc := shopresty.NewCatalogService(
			shopresty.WithMaxPages(0),
			shopresty.WithDeadline(150*time.Millisecond),
		)

		start := time.Now()
		products, err := svc.FetchCatalog(context.Background(), server.URL)

		require.NoError(t, err)
		assert.NotEmpty(t, products)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("drops query and fragment from the store URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/products.json" || r.URL.Query().Get("ref") != "" {
				http.NotFound(w, r)
				return
			}
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == 1 {
				writeJSON(w, listing(1, 1))
				return
			}
			writeJSON(w, listing(page, 0))
		}))
		defer server.Close()

		products, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), server.URL+"/?ref=1#top")

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, server.URL+"/products/product-1-0", products[0].URL)
	})

	t.Run("rejects invalid store URL", func(t *testing.T) {
		t.Parallel()

		_, err := shopresty.NewCatalogService().FetchCatalog(context.Background(), "shop")

		assert.Equal(t, shopinsight.EINVALID, shopinsight.ErrorCode(err))
	})
}

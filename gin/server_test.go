package gin_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/shopinsight"
	shopgin "github.com/fwojciec/shopinsight/gin"
	"github.com/fwojciec/shopinsight/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, s *shopgin.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	w := serve(t, &shopgin.Server{}, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestServer_FetchInsights(t *testing.T) {
	t.Parallel()

	t.Run("returns the built insight", func(t *testing.T) {
		t.Parallel()

		s := &shopgin.Server{
			Insights: &mock.InsightService{
				BuildInsightFn: func(_ context.Context, storeURL string) (*shopinsight.StoreInsight, error) {
					si := shopinsight.NewStoreInsight(storeURL)
					si.About = new(string)
					*si.About = "About us"
					return si, nil
				},
			},
		}

		w := serve(t, s, http.MethodPost, "/fetch-shopify-insights?website_url=https://shop.example.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"store_url": "https://shop.example.com",
			"products": [],
			"hero_products": [],
			"privacy_policy": null,
			"return_policy": null,
			"faqs": [],
			"social_handles": {},
			"contacts": {"emails": [], "phones": []},
			"about": "About us",
			"important_links": {}
		}`, w.Body.String())
	})

	t.Run("rejects missing website_url", func(t *testing.T) {
		t.Parallel()

		w := serve(t, &shopgin.Server{}, http.MethodPost, "/fetch-shopify-insights")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"detail":"website_url is required"}`, w.Body.String())
	})

	t.Run("rejects relative website_url", func(t *testing.T) {
		t.Parallel()

		w := serve(t, &shopgin.Server{}, http.MethodPost, "/fetch-shopify-insights?website_url=shop.example.com")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("hides internal error details", func(t *testing.T) {
		t.Parallel()

		s := &shopgin.Server{
			Insights: &mock.InsightService{
				BuildInsightFn: func(_ context.Context, _ string) (*shopinsight.StoreInsight, error) {
					return nil, errors.New("database is locked")
				},
			},
		}

		w := serve(t, s, http.MethodPost, "/fetch-shopify-insights?website_url=https://shop.example.com")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Internal error."}`, w.Body.String())
	})
}

func TestServer_ListBrands(t *testing.T) {
	t.Parallel()

	t.Run("lists brand summaries", func(t *testing.T) {
		t.Parallel()

		about := "Tea people"
		s := &shopgin.Server{
			Brands: &mock.BrandService{
				FindBrandsFn: func(_ context.Context, _ shopinsight.BrandFilter) ([]*shopinsight.Brand, error) {
					return []*shopinsight.Brand{
						{ID: "b1", URL: "https://tea.example.com", About: &about, ProductCount: 4},
						{ID: "b2", URL: "https://mugs.example.com"},
					}, nil
				},
			},
		}

		w := serve(t, s, http.MethodGet, "/brands")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"id":"b1","url":"https://tea.example.com","about":"Tea people"},
			{"id":"b2","url":"https://mugs.example.com","about":null}
		]`, w.Body.String())
	})

	t.Run("returns empty array when there are no brands", func(t *testing.T) {
		t.Parallel()

		s := &shopgin.Server{
			Brands: &mock.BrandService{
				FindBrandsFn: func(_ context.Context, _ shopinsight.BrandFilter) ([]*shopinsight.Brand, error) {
					return nil, nil
				},
			},
		}

		w := serve(t, s, http.MethodGet, "/brands")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestServer_Competitors(t *testing.T) {
	t.Parallel()

	t.Run("passes max and returns the report", func(t *testing.T) {
		t.Parallel()

		var gotMax int
		s := &shopgin.Server{
			Insights: &mock.InsightService{
				AnalyzeCompetitorsFn: func(_ context.Context, storeURL string, max int) (*shopinsight.CompetitorReport, error) {
					gotMax = max
					return &shopinsight.CompetitorReport{
						OriginalStore: storeURL,
						Competitors:   []*shopinsight.StoreInsight{},
					}, nil
				},
			},
		}

		w := serve(t, s, http.MethodPost, "/competitors?website_url=https://shop.example.com&max=5")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, gotMax)
		assert.JSONEq(t, `{"original_store":"https://shop.example.com","competitors":[]}`, w.Body.String())
	})

	t.Run("defaults max to three", func(t *testing.T) {
		t.Parallel()

		var gotMax int
		s := &shopgin.Server{
			Insights: &mock.InsightService{
				AnalyzeCompetitorsFn: func(_ context.Context, storeURL string, max int) (*shopinsight.CompetitorReport, error) {
					gotMax = max
					return &shopinsight.CompetitorReport{OriginalStore: storeURL, Competitors: []*shopinsight.StoreInsight{}}, nil
				},
			},
		}

		w := serve(t, s, http.MethodPost, "/competitors?website_url=https://shop.example.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, gotMax)
	})

	t.Run("rejects non-numeric max", func(t *testing.T) {
		t.Parallel()

		w := serve(t, &shopgin.Server{}, http.MethodPost, "/competitors?website_url=https://shop.example.com&max=lots")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- (&shopgin.Server{}).Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

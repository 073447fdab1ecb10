// Package resty implements shopinsight.CatalogService against a storefront's
// structured product listing using github.com/go-resty/resty/v2.
package resty

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/shopinsight"
	"github.com/go-resty/resty/v2"
)

// Catalog pagination bounds.
const (
	DefaultMaxPages = 100
	DefaultDeadline = 2 * time.Minute
)

// Ensure CatalogService implements shopinsight.CatalogService at compile time.
var _ shopinsight.CatalogService = (*CatalogService)(nil)

// CatalogService pages through a storefront's products.json listing.
type CatalogService struct {
	client   *resty.Client
	maxPages int
	deadline time.Duration
	logger   *slog.Logger
}

// Option configures a CatalogService.
type Option func(*CatalogService)

// WithMaxPages caps the number of listing pages requested.
func WithMaxPages(n int) Option {
	return func(s *CatalogService) {
		s.maxPages = n
	}
}

// WithDeadline bounds the total time spent paginating.
func WithDeadline(d time.Duration) Option {
	return func(s *CatalogService) {
		s.deadline = d
	}
}

// WithTimeout sets the timeout of each page request.
func WithTimeout(d time.Duration) Option {
	return func(s *CatalogService) {
		s.client.SetTimeout(d)
	}
}

// WithLogger sets the logger used to report why pagination stopped.
func WithLogger(logger *slog.Logger) Option {
	return func(s *CatalogService) {
		s.logger = logger
	}
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(opts ...Option) *CatalogService {
	client := resty.New()
	client.SetTimeout(shopinsight.DefaultFetchTimeout)
	client.SetHeader("Accept", "application/json")

	s := &CatalogService{
		client:   client,
		maxPages: DefaultMaxPages,
		deadline: DefaultDeadline,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// listingPage is one page of the products.json listing.
type listingPage struct {
	Products []listingItem `json:"products"`
}

type listingItem struct {
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	Variants []struct {
		Price price `json:"price"`
	} `json:"variants"`
	Image *struct {
		Src string `json:"src"`
	} `json:"image"`
}

// price decodes a variant price given either as a JSON string or number.
// Unparsable values decode to zero.
type price float64

func (p *price) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = price(f)
	return nil
}

// FetchCatalog requests listing pages from page 1 until a page fails or
// comes back empty, the page cap is reached, or the deadline passes.
// Products gathered before pagination stopped are returned.
func (s *CatalogService) FetchCatalog(ctx context.Context, storeURL string) ([]shopinsight.Product, error) {
	if err := shopinsight.ValidateStoreURL(storeURL); err != nil {
		return nil, err
	}
	root, err := storeRoot(storeURL)
	if err != nil {
		return nil, err
	}

	if s.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.deadline)
		defer cancel()
	}

	products := []shopinsight.Product{}
	for page := 1; ; page++ {
		if s.maxPages > 0 && page > s.maxPages {
			s.logger.Warn("catalog page limit reached", "store", storeURL, "pages", s.maxPages, "products", len(products))
			break
		}

		items, err := s.fetchPage(ctx, root, page)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				s.logger.Warn("catalog deadline reached", "store", storeURL, "page", page, "products", len(products))
			} else {
				s.logger.Debug("catalog page unavailable", "store", storeURL, "page", page, "err", err)
			}
			break
		}
		if len(items) == 0 {
			break
		}

		for _, item := range items {
			products = append(products, toProduct(root, item))
		}
	}

	return products, nil
}

// storeRoot returns storeURL without query, fragment or trailing slash,
// ready to have listing and product paths appended.
func storeRoot(storeURL string) (string, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "invalid store URL: %v", err)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return u.String(), nil
}

// fetchPage requests one listing page. A non-200 status is an error.
func (s *CatalogService) fetchPage(ctx context.Context, root string, page int) ([]listingItem, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"limit": strconv.Itoa(shopinsight.CatalogPageSize),
			"page":  strconv.Itoa(page),
		}).
		Get(root + "/products.json")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, shopinsight.Errorf(shopinsight.ENOTFOUND, "HTTP %d for page %d", resp.StatusCode(), page)
	}

	var listing listingPage
	if err := json.Unmarshal(resp.Body(), &listing); err != nil {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "decoding page %d: %v", page, err)
	}
	return listing.Products, nil
}

// toProduct maps a listing item to a Product. Only the first variant's
// price is used; missing prices and images default to zero values.
func toProduct(root string, item listingItem) shopinsight.Product {
	var amount float64
	if len(item.Variants) > 0 {
		amount = float64(item.Variants[0].Price)
	}
	var image string
	if item.Image != nil {
		image = item.Image.Src
	}
	return shopinsight.Product{
		Title: item.Title,
		URL:   root + "/products/" + item.Handle,
		Price: &amount,
		Image: &image,
	}
}

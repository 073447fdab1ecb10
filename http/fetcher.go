// Package http provides an HTTP-based implementation of shopinsight.Fetcher
// for storefront pages that don't require JavaScript rendering.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/shopinsight"
)

// DefaultUserAgent identifies the fetcher to storefronts. Some storefront
// platforms answer bare Go clients with a bot challenge page.
const DefaultUserAgent = "Mozilla/5.0 (compatible; shopinsight/1.0)"

// Ensure Fetcher implements shopinsight.Fetcher at compile time.
var _ shopinsight.Fetcher = (*Fetcher)(nil)

// Limiter paces requests per domain.
type Limiter interface {
	Wait(ctx context.Context, domain string) error
}

// Fetcher retrieves HTML content from URLs using HTTP requests.
// It performs a single attempt per call; there are no retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to shopinsight.DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter paces requests per host. Nil disables pacing.
func WithLimiter(l Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   shopinsight.DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return "", err
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

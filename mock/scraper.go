package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.StoreScraper = (*StoreScraper)(nil)

// StoreScraper is a mock implementation of shopinsight.StoreScraper.
// Methods whose Fn field is nil return the facet's empty value.
type StoreScraper struct {
	HeroProductsFn   func(ctx context.Context, storeURL string) ([]shopinsight.Product, error)
	PrivacyPolicyFn  func(ctx context.Context, storeURL string) (*string, error)
	ReturnPolicyFn   func(ctx context.Context, storeURL string) (*string, error)
	FAQsFn           func(ctx context.Context, storeURL string) ([]shopinsight.FAQ, error)
	SocialHandlesFn  func(ctx context.Context, storeURL string) (map[string]string, error)
	ContactsFn       func(ctx context.Context, storeURL string) (shopinsight.Contacts, error)
	AboutFn          func(ctx context.Context, storeURL string) (*string, error)
	ImportantLinksFn func(ctx context.Context, storeURL string) (map[string]string, error)
}

func (s *StoreScraper) HeroProducts(ctx context.Context, storeURL string) ([]shopinsight.Product, error) {
	if s.HeroProductsFn == nil {
		return nil, nil
	}
	return s.HeroProductsFn(ctx, storeURL)
}

func (s *StoreScraper) PrivacyPolicy(ctx context.Context, storeURL string) (*string, error) {
	if s.PrivacyPolicyFn == nil {
		return nil, nil
	}
	return s.PrivacyPolicyFn(ctx, storeURL)
}

func (s *StoreScraper) ReturnPolicy(ctx context.Context, storeURL string) (*string, error) {
	if s.ReturnPolicyFn == nil {
		return nil, nil
	}
	return s.ReturnPolicyFn(ctx, storeURL)
}

func (s *StoreScraper) FAQs(ctx context.Context, storeURL string) ([]shopinsight.FAQ, error) {
	if s.FAQsFn == nil {
		return nil, nil
	}
	return s.FAQsFn(ctx, storeURL)
}

func (s *StoreScraper) SocialHandles(ctx context.Context, storeURL string) (map[string]string, error) {
	if s.SocialHandlesFn == nil {
		return nil, nil
	}
	return s.SocialHandlesFn(ctx, storeURL)
}

func (s *StoreScraper) Contacts(ctx context.Context, storeURL string) (shopinsight.Contacts, error) {
	if s.ContactsFn == nil {
		return shopinsight.Contacts{}, nil
	}
	return s.ContactsFn(ctx, storeURL)
}

func (s *StoreScraper) About(ctx context.Context, storeURL string) (*string, error) {
	if s.AboutFn == nil {
		return nil, nil
	}
	return s.AboutFn(ctx, storeURL)
}

func (s *StoreScraper) ImportantLinks(ctx context.Context, storeURL string) (map[string]string, error) {
	if s.ImportantLinksFn == nil {
		return nil, nil
	}
	return s.ImportantLinksFn(ctx, storeURL)
}

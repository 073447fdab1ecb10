package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	brand, err := deps.Brands.FindBrandByURL(deps.Ctx, c.URL)
	if err != nil {
		if shopinsight.ErrorCode(err) == shopinsight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: brand %q not found. Use 'shopinsight brands' to see saved brands.\n", c.URL)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		}
		return err
	}

	products, err := deps.Brands.FindProducts(deps.Ctx, brand.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}
	faqs, err := deps.Brands.FindFAQs(deps.Ctx, brand.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	w := deps.Stdout
	fmt.Fprintf(w, "%s (%s)\n", brand.URL, brand.ID)
	fmt.Fprintf(w, "Updated: %s  Hash: %s\n", brand.UpdatedAt.Format(time.DateTime), brand.ContentHash)
	if brand.About != nil {
		fmt.Fprintf(w, "\nAbout:\n%s\n", *brand.About)
	}

	fmt.Fprintf(w, "\nProducts (%d):\n", len(products))
	for _, p := range products {
		if p.Price != nil {
			fmt.Fprintf(w, "  %s  %.2f  %s\n", p.Title, *p.Price, p.URL)
		} else {
			fmt.Fprintf(w, "  %s  %s\n", p.Title, p.URL)
		}
	}

	if len(faqs) > 0 {
		fmt.Fprintf(w, "\nFAQs (%d):\n", len(faqs))
		for _, f := range faqs {
			fmt.Fprintf(w, "  Q: %s\n  A: %s\n", f.Question, f.Answer)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Run executes the brands command.
func (c *BrandsCmd) Run(deps *Dependencies) error {
	brands, err := deps.Brands.FindBrands(deps.Ctx, shopinsight.BrandFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if len(brands) == 0 {
		fmt.Fprintln(deps.Stdout, "No brands saved. Use 'shopinsight fetch' to add one.")
		return nil
	}

	for _, b := range brands {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d products  %d faqs  %s\n",
			b.ID, b.URL, b.ProductCount, b.FAQCount, b.UpdatedAt.Format(time.DateTime))
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/shopinsight"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return shopinsight.Errorf(shopinsight.EINVALID, "use --force to confirm deletion")
	}

	brand, err := deps.Brands.FindBrandByURL(deps.Ctx, c.URL)
	if shopinsight.ErrorCode(err) == shopinsight.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: brand %q not found. Use 'shopinsight brands' to see saved brands.\n", c.URL)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if err := deps.Brands.DeleteBrand(deps.Ctx, brand.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted brand %q\n", brand.URL)
	return nil
}

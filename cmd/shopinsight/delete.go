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

	if err := deps.Brands.DeleteBrand(deps.Ctx, c.ID); err != nil {
		if shopinsight.ErrorCode(err) == shopinsight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: brand %q not found. Use 'shopinsight list' to see saved brands.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted brand %s\n", c.ID)
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/shopinsight"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	brand, err := deps.Brands.FindBrandByID(deps.Ctx, c.ID)
	if err != nil {
		if shopinsight.ErrorCode(err) == shopinsight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: brand %q not found. Use 'shopinsight list' to see saved brands.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, brand)
	}

	writeProfile(deps.Stdout, brand)
	for _, f := range brand.FAQs {
		fmt.Fprintf(deps.Stdout, "\nQ: %s\nA: %s\n", f.Question, f.Answer)
	}
	return nil
}

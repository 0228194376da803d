package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter shopinsight.BrandFilter
	if c.Store != "" {
		filter.StoreName = &c.Store
	}

	brands, err := deps.Brands.FindBrands(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if len(brands) == 0 {
		fmt.Fprintln(deps.Stdout, "No brands found. Use 'shopinsight fetch' to scrape one.")
		return nil
	}

	for _, b := range brands {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d products  %s  %s\n",
			b.ID, b.StoreName, len(b.Products), b.Fingerprint, b.CreatedAt.Format(time.DateTime))
	}

	return nil
}

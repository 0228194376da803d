package main

import (
	"fmt"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/fs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	scraper := deps.NewScraper(c.Concurrency)

	result, err := scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	for _, step := range result.Steps {
		if step.Status == shopinsight.StatusFailed {
			fmt.Fprintf(deps.Stderr, "warning: %s\n", step)
		}
	}

	if !c.NoSave {
		if err := deps.Brands.CreateBrand(deps.Ctx, result.Profile); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
			return err
		}
	}

	if c.Out != "" {
		path, err := fs.NewWriter(c.Out).WriteProfile(deps.Ctx, result.Profile)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: failed to write profile: %v\n", err)
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
	}

	if c.JSON {
		return writeJSON(deps.Stdout, result.Profile)
	}

	writeProfile(deps.Stdout, result.Profile)
	if !c.NoSave {
		fmt.Fprintf(deps.Stdout, "Saved brand %s\n", result.Profile.ID)
	}
	return nil
}

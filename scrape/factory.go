package scrape

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

// Ensure Factory implements shopinsight.Scraper.
var _ shopinsight.Scraper = Factory(nil)

// Factory builds a fresh Pipeline for every Scrape call and closes it
// afterwards, so each run gets its own HTTP session. Long-lived callers
// such as the API server hold a Factory instead of a Pipeline.
type Factory func() *Pipeline

// Scrape builds a pipeline, runs it and closes it.
func (f Factory) Scrape(ctx context.Context, rootURL string) (*shopinsight.ScrapeResult, error) {
	p := f()
	defer p.Close()
	return p.Scrape(ctx, rootURL)
}

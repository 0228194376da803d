package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of shopinsight.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, rootURL string) (*shopinsight.ScrapeResult, error)
}

func (s *Scraper) Scrape(ctx context.Context, rootURL string) (*shopinsight.ScrapeResult, error) {
	return s.ScrapeFn(ctx, rootURL)
}

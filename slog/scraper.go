package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingScraper implements shopinsight.Scraper.
var _ shopinsight.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs the outcome of every step.
type LoggingScraper struct {
	next   shopinsight.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next shopinsight.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper. Failed steps are logged at WARN,
// the rest at DEBUG, followed by one summary line.
func (s *LoggingScraper) Scrape(ctx context.Context, rootURL string) (result *shopinsight.ScrapeResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", rootURL, "duration", time.Since(begin), "err", err}
		if result != nil {
			for _, step := range result.Steps {
				level := slog.LevelDebug
				if step.Status == shopinsight.StatusFailed {
					level = slog.LevelWarn
				}
				s.logger.Log(ctx, level, "step",
					"step", string(step.Step),
					"status", string(step.Status),
					"url", step.URL,
					"err", step.Err,
				)
			}
			if result.Profile != nil {
				attrs = append(attrs,
					"products", len(result.Profile.Products),
					"faqs", len(result.Profile.FAQs),
				)
			}
		}
		s.logger.Info("scrape", attrs...)
	}(time.Now())
	return s.next.Scrape(ctx, rootURL)
}

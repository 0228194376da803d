package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingClassifier implements shopinsight.LinkClassifier.
var _ shopinsight.LinkClassifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a LinkClassifier and logs what each category
// received.
type LoggingClassifier struct {
	next   shopinsight.LinkClassifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next shopinsight.LinkClassifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the bucket sizes.
func (c *LoggingClassifier) Classify(html string, rootURL string) (links *shopinsight.ClassifiedLinks, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", rootURL, "duration", time.Since(begin), "err", err}
		if links != nil {
			attrs = append(attrs,
				"products", len(links.Products),
				"about", links.About != nil,
				"faq", links.FAQ != nil,
				"privacy", links.Privacy != nil,
				"refund", links.Refund != nil,
				"policies", len(links.Policies),
				"social", len(links.Social),
				"important", len(links.Important),
			)
		}
		c.logger.Debug("classify", attrs...)
	}(time.Now())
	return c.next.Classify(html, rootURL)
}

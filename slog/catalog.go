package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingCatalogService implements shopinsight.CatalogService.
var _ shopinsight.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging.
type LoggingCatalogService struct {
	next   shopinsight.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next shopinsight.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// FetchProducts delegates to the wrapped service and logs the operation.
func (s *LoggingCatalogService) FetchProducts(ctx context.Context, rootURL string) (products []*shopinsight.Product, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog",
			"url", rootURL,
			"count", len(products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchProducts(ctx, rootURL)
}

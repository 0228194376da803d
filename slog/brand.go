package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/shopinsight"
)

// Ensure LoggingBrandService implements shopinsight.BrandService.
var _ shopinsight.BrandService = (*LoggingBrandService)(nil)

// LoggingBrandService wraps a BrandService with logging.
type LoggingBrandService struct {
	next   shopinsight.BrandService
	logger *slog.Logger
}

// NewLoggingBrandService creates a new LoggingBrandService.
func NewLoggingBrandService(next shopinsight.BrandService, logger *slog.Logger) *LoggingBrandService {
	return &LoggingBrandService{next: next, logger: logger}
}

// CreateBrand delegates to the wrapped service and logs the assigned ID.
func (s *LoggingBrandService) CreateBrand(ctx context.Context, brand *shopinsight.BrandProfile) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create brand",
			"store", brand.StoreName,
			"id", brand.ID,
			"products", len(brand.Products),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateBrand(ctx, brand)
}

// FindBrandByID delegates to the wrapped service.
func (s *LoggingBrandService) FindBrandByID(ctx context.Context, id string) (brand *shopinsight.BrandProfile, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find brand",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBrandByID(ctx, id)
}

// FindBrands delegates to the wrapped service.
func (s *LoggingBrandService) FindBrands(ctx context.Context, filter shopinsight.BrandFilter) (brands []*shopinsight.BrandProfile, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find brands",
			"count", len(brands),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindBrands(ctx, filter)
}

// DeleteBrand delegates to the wrapped service.
func (s *LoggingBrandService) DeleteBrand(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete brand",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteBrand(ctx, id)
}

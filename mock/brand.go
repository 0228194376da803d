package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.BrandService = (*BrandService)(nil)

// BrandService is a mock implementation of shopinsight.BrandService.
type BrandService struct {
	CreateBrandFn   func(ctx context.Context, brand *shopinsight.BrandProfile) error
	FindBrandByIDFn func(ctx context.Context, id string) (*shopinsight.BrandProfile, error)
	FindBrandsFn    func(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error)
	DeleteBrandFn   func(ctx context.Context, id string) error
}

func (s *BrandService) CreateBrand(ctx context.Context, brand *shopinsight.BrandProfile) error {
	return s.CreateBrandFn(ctx, brand)
}

func (s *BrandService) FindBrandByID(ctx context.Context, id string) (*shopinsight.BrandProfile, error) {
	return s.FindBrandByIDFn(ctx, id)
}

func (s *BrandService) FindBrands(ctx context.Context, filter shopinsight.BrandFilter) ([]*shopinsight.BrandProfile, error) {
	return s.FindBrandsFn(ctx, filter)
}

func (s *BrandService) DeleteBrand(ctx context.Context, id string) error {
	return s.DeleteBrandFn(ctx, id)
}

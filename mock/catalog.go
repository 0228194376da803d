package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of shopinsight.CatalogService.
type CatalogService struct {
	FetchProductsFn func(ctx context.Context, rootURL string) ([]*shopinsight.Product, error)
}

func (s *CatalogService) FetchProducts(ctx context.Context, rootURL string) ([]*shopinsight.Product, error) {
	return s.FetchProductsFn(ctx, rootURL)
}

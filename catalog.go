package shopinsight

import "context"

// CatalogPath is the well-known path of the structured product feed.
const CatalogPath = "/products.json"

// CatalogService reads the store's structured product feed.
type CatalogService interface {
	// FetchProducts returns the feed's products tagged SourceCatalog.
	// Malformed items are skipped. Returns EUNAVAILABLE when the feed
	// cannot be fetched or decoded.
	FetchProducts(ctx context.Context, rootURL string) ([]*Product, error)
}

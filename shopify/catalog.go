// Package shopify reads the structured product feed that Shopify
// storefronts expose at /products.json.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/shopinsight"
)

// Ensure CatalogService implements shopinsight.CatalogService.
var _ shopinsight.CatalogService = (*CatalogService)(nil)

// CatalogService fetches and decodes the product feed through the scrape's
// Fetcher, so the feed request shares the session of the other page fetches.
type CatalogService struct {
	fetcher shopinsight.Fetcher
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// If logger is nil, slog.Default() is used.
func NewCatalogService(fetcher shopinsight.Fetcher, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{fetcher: fetcher, logger: logger}
}

// feed is the envelope of /products.json. Items are kept raw so that one
// malformed product cannot fail the whole decode.
type feed struct {
	Products []json.RawMessage `json:"products"`
}

type item struct {
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Variants []variant `json:"variants"`
}

type variant struct {
	// Price is a JSON string in Shopify feeds, but some proxies emit numbers.
	Price json.RawMessage `json:"price"`
}

// FetchProducts returns the products listed in the feed at rootURL.
func (s *CatalogService) FetchProducts(ctx context.Context, rootURL string) ([]*shopinsight.Product, error) {
	base, err := url.Parse(rootURL)
	if err != nil {
		return nil, shopinsight.Errorf(shopinsight.EUNAVAILABLE, "invalid root URL: %v", err)
	}
	feedURL := base.ResolveReference(&url.URL{Path: shopinsight.CatalogPath})

	body, err := s.fetcher.Fetch(ctx, feedURL.String())
	if err != nil {
		return nil, shopinsight.Errorf(shopinsight.EUNAVAILABLE, "product feed unavailable: %v", err)
	}

	var f feed
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		return nil, shopinsight.Errorf(shopinsight.EUNAVAILABLE, "product feed is not valid JSON: %v", err)
	}

	products := make([]*shopinsight.Product, 0, len(f.Products))
	for i, raw := range f.Products {
		p, err := decodeProduct(base, raw)
		if err != nil {
			s.logger.Warn("skipping catalog item", "url", feedURL.String(), "index", i, "err", err)
			continue
		}
		products = append(products, p)
	}

	return products, nil
}

// decodeProduct maps one feed item to a catalog product.
func decodeProduct(base *url.URL, raw json.RawMessage) (*shopinsight.Product, error) {
	var it item
	if err := json.Unmarshal(raw, &it); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	if it.Handle == "" {
		return nil, fmt.Errorf("item %q has no handle", it.Title)
	}

	var price *float64
	if len(it.Variants) > 0 {
		v, err := parsePrice(it.Variants[0].Price)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Handle, err)
		}
		price = v
	}

	productURL := base.ResolveReference(&url.URL{Path: "/products/" + it.Handle})

	return &shopinsight.Product{
		Title:  it.Title,
		Price:  price,
		URL:    productURL.String(),
		Source: shopinsight.SourceCatalog,
	}, nil
}

// parsePrice accepts a JSON string or number. A missing or null price
// yields nil rather than zero.
func parsePrice(raw json.RawMessage) (*float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("decode price: %w", err)
		}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", s, err)
	}
	return &v, nil
}

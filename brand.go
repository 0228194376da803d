package shopinsight

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// BrandProfile is the structured profile extracted from a single storefront.
// A profile is assembled once per scrape and not modified afterwards.
type BrandProfile struct {
	ID             string              `json:"id,omitempty"`
	StoreName      string              `json:"storeName"`
	RootURL        string              `json:"rootUrl"`
	Products       []*Product          `json:"products"`
	FAQs           []*FAQ              `json:"faqs"`
	PrivacyPolicy  string              `json:"privacyPolicy"`
	RefundPolicy   string              `json:"refundPolicy"`
	About          string              `json:"about"`
	Contact        ContactInfo         `json:"contact"`
	SocialLinks    map[Platform]string `json:"socialLinks"`
	ImportantLinks map[string]string   `json:"importantLinks"`
	Fingerprint    string              `json:"fingerprint,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// Validate returns an error if the profile violates its invariants.
func (b *BrandProfile) Validate() error {
	if b.StoreName == "" {
		return Errorf(EINVALID, "brand store name required")
	}
	if b.RootURL == "" {
		return Errorf(EINVALID, "brand root URL required")
	}

	seen := make(map[string]bool, len(b.Products))
	for _, p := range b.Products {
		if !IsAbsoluteURL(p.URL) {
			return Errorf(EINVALID, "product URL %q is not absolute", p.URL)
		}
		if seen[p.URL] {
			return Errorf(EINVALID, "duplicate product URL %q", p.URL)
		}
		seen[p.URL] = true
	}
	for _, f := range b.FAQs {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HeroProducts returns the products featured on the home page, including
// catalog products a home page link pointed at.
func (b *BrandProfile) HeroProducts() []*Product {
	var heroes []*Product
	for _, p := range b.Products {
		if p.Hero {
			heroes = append(heroes, p)
		}
	}
	return heroes
}

// ProductSource records where a product was discovered.
type ProductSource string

// Product sources.
const (
	SourceCatalog ProductSource = "catalog"
	SourceHero    ProductSource = "hero"
)

// Product is a single item sold by the store.
type Product struct {
	Title string `json:"title"`
	// Price is nil when the feed had no variant to read it from, or when the
	// product was only seen as a home page link.
	Price  *float64      `json:"price"`
	URL    string        `json:"url"`
	Source ProductSource `json:"source"`
	// Hero is set when the home page links to the product, whichever source
	// supplied its title and price.
	Hero bool `json:"hero"`
}

// FAQ is a question and answer pair from the store's FAQ page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Validate returns an error if the FAQ is missing either half.
func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return Errorf(EINVALID, "FAQ question required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return Errorf(EINVALID, "FAQ answer required")
	}
	return nil
}

// ContactInfo holds contact details found in the home page markup.
type ContactInfo struct {
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// StoreName derives the store identifier from a root URL: the lower-cased
// host name with any port and a leading "www." removed. Returns an empty string when the URL
// has no host.
func StoreName(rootURL string) string {
	u, err := url.Parse(strings.TrimSpace(rootURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// IsAbsoluteURL reports whether raw parses as a URL with both scheme and host.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// BrandService represents a service for persisting brand profiles.
type BrandService interface {
	// CreateBrand stores the profile and all of its children atomically.
	// Sets ID and CreatedAt on success.
	CreateBrand(ctx context.Context, brand *BrandProfile) error

	// FindBrandByID retrieves a brand with its products, FAQs and links.
	// Returns ENOTFOUND if brand does not exist.
	FindBrandByID(ctx context.Context, id string) (*BrandProfile, error)

	// FindBrands retrieves brands matching the filter, newest first.
	FindBrands(ctx context.Context, filter BrandFilter) ([]*BrandProfile, error)

	// DeleteBrand permanently removes a brand and all associated rows.
	// Returns ENOTFOUND if brand does not exist.
	DeleteBrand(ctx context.Context, id string) error
}

// BrandFilter represents a filter for FindBrands.
type BrandFilter struct {
	ID        *string `json:"id"`
	StoreName *string `json:"storeName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

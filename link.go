package shopinsight

// LinkCategory is the purpose assigned to a home page anchor.
type LinkCategory string

// Link categories produced by a LinkClassifier.
const (
	CategoryProduct   LinkCategory = "product"
	CategoryAbout     LinkCategory = "about"
	CategoryFAQ       LinkCategory = "faq"
	CategoryPrivacy   LinkCategory = "privacy"
	CategoryRefund    LinkCategory = "refund"
	CategoryPolicy    LinkCategory = "policy" // matched a policy rule but neither privacy nor refund
	CategorySocial    LinkCategory = "social"
	CategoryImportant LinkCategory = "important"
)

// TieBreak decides which anchor wins when several land in the same bucket.
type TieBreak int

// Tie-break rules.
const (
	// FirstSeen keeps the earliest anchor in document order.
	FirstSeen TieBreak = iota
	// LastSeen lets later anchors overwrite earlier ones.
	LastSeen
	// Accumulate keeps every distinct anchor in first-seen order.
	Accumulate
)

// CategoryTieBreak holds the tie-break rule for every category. Social links
// are first-seen per platform and important links last-seen per visible text.
var CategoryTieBreak = map[LinkCategory]TieBreak{
	CategoryProduct:   Accumulate,
	CategoryAbout:     FirstSeen,
	CategoryFAQ:       FirstSeen,
	CategoryPrivacy:   FirstSeen,
	CategoryRefund:    FirstSeen,
	CategoryPolicy:    Accumulate,
	CategorySocial:    FirstSeen,
	CategoryImportant: LastSeen,
}

// ExclusiveCategories are tested in this order for every anchor; the first
// one that matches and still has an open bucket claims the anchor.
var ExclusiveCategories = []LinkCategory{CategoryAbout, CategoryFAQ, CategoryPolicy}

// Platform is a social network recognised in home page links.
type Platform string

// Supported social platforms.
const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformTikTok    Platform = "tiktok"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
)

// Platforms lists every supported platform in matching order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformTikTok,
	PlatformLinkedIn,
	PlatformYouTube,
}

// Link is an anchor resolved against the store root.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// ClassifiedLinks is the result of one classification pass over a home page.
type ClassifiedLinks struct {
	// Products are hero product links, unique by canonical URL.
	Products []Link

	About   *Link
	FAQ     *Link
	Privacy *Link
	Refund  *Link

	// Policies holds policy links that named neither privacy nor refund.
	// They are reported but never fetched.
	Policies []Link

	Social    map[Platform]string
	Important map[string]string
}

// NewClassifiedLinks returns an empty result with initialized maps.
func NewClassifiedLinks() *ClassifiedLinks {
	return &ClassifiedLinks{
		Social:    make(map[Platform]string),
		Important: make(map[string]string),
	}
}

// Target returns the link selected for a single-page category, or nil.
func (c *ClassifiedLinks) Target(category LinkCategory) *Link {
	switch category {
	case CategoryAbout:
		return c.About
	case CategoryFAQ:
		return c.FAQ
	case CategoryPrivacy:
		return c.Privacy
	case CategoryRefund:
		return c.Refund
	}
	return nil
}

// HeroProducts converts product links into hero products with no price.
func (c *ClassifiedLinks) HeroProducts() []*Product {
	products := make([]*Product, 0, len(c.Products))
	for _, l := range c.Products {
		products = append(products, &Product{
			Title:  l.Text,
			URL:    l.URL,
			Source: SourceHero,
			Hero:   true,
		})
	}
	return products
}

// LinkClassifier buckets the anchors of a home page by purpose.
type LinkClassifier interface {
	// Classify parses html and classifies every anchor. Relative hrefs are
	// resolved against rootURL.
	Classify(html string, rootURL string) (*ClassifiedLinks, error)
}

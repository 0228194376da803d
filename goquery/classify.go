package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// Ensure Classifier implements shopinsight.LinkClassifier.
var _ shopinsight.LinkClassifier = (*Classifier)(nil)

// productPathMarker identifies product detail pages in a resolved path.
const productPathMarker = "/products/"

// importantKeywords mark footer and utility links by their visible text.
var importantKeywords = []string{"blog", "track", "order", "help", "contact"}

// platformPattern finds the leftmost platform name in an href.
var platformPattern = func() *regexp.Regexp {
	names := make([]string, 0, len(shopinsight.Platforms))
	for _, p := range shopinsight.Platforms {
		names = append(names, regexp.QuoteMeta(string(p)))
	}
	return regexp.MustCompile(strings.Join(names, "|"))
}()

// Classifier buckets home page anchors in a single pass in document order.
// Product, social and important link rules apply to every anchor
// independently; about, FAQ and policy rules form an exclusive chain.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// anchor is one <a href> with its lower-cased match inputs.
type anchor struct {
	link  shopinsight.Link
	href  string // lower-cased raw href
	text  string // lower-cased visible text
	path  string // resolved URL path
	canon string // resolved URL without query
}

// Classify parses html and classifies every anchor.
func (c *Classifier) Classify(html string, rootURL string) (*shopinsight.ClassifiedLinks, error) {
	base, err := url.Parse(rootURL)
	if err != nil {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "invalid root URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "failed to parse HTML: %v", err)
	}

	result := shopinsight.NewClassifiedLinks()
	seenProducts := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		a, ok := newAnchor(base, sel)
		if !ok {
			return
		}

		if strings.Contains(a.path, productPathMarker) && !seenProducts[a.canon] {
			seenProducts[a.canon] = true
			result.Products = append(result.Products, shopinsight.Link{URL: a.canon, Text: a.link.Text})
		}

		for _, category := range shopinsight.ExclusiveCategories {
			if claim(result, category, a) {
				break
			}
		}

		if platform := platformPattern.FindString(a.href); platform != "" {
			assignSocial(result, shopinsight.Platform(platform), a.link.URL)
		}

		if containsAny(a.text, importantKeywords) {
			assignImportant(result, a.link)
		}
	})

	return result, nil
}

func newAnchor(base *url.URL, sel *goquery.Selection) (anchor, bool) {
	href, exists := sel.Attr("href")
	if !exists || strings.TrimSpace(href) == "" || isNonHTTPLink(href) {
		return anchor{}, false
	}

	resolved := resolveURL(base, href)
	if resolved == "" {
		return anchor{}, false
	}
	u, err := url.Parse(resolved)
	if err != nil {
		return anchor{}, false
	}

	text := collapseSpace(sel.Text())
	return anchor{
		link:  shopinsight.Link{URL: resolved, Text: text},
		href:  strings.ToLower(href),
		text:  strings.ToLower(text),
		path:  strings.ToLower(u.Path),
		canon: canonicalURL(resolved),
	}, true
}

// claim offers the anchor to one exclusive category. It returns true when
// the anchor matched the category's rule and landed in an open bucket.
func claim(result *shopinsight.ClassifiedLinks, category shopinsight.LinkCategory, a anchor) bool {
	switch category {
	case shopinsight.CategoryAbout:
		if strings.Contains(a.href, "about") || strings.Contains(a.text, "about") {
			return assignTarget(&result.About, category, a.link)
		}
	case shopinsight.CategoryFAQ:
		if strings.Contains(a.href, "faq") || strings.Contains(a.text, "frequently asked") {
			return assignTarget(&result.FAQ, category, a.link)
		}
	case shopinsight.CategoryPolicy:
		if !containsAny(a.href, []string{"policy", "privacy", "refund"}) {
			return false
		}
		switch {
		case strings.Contains(a.href, "refund"):
			return assignTarget(&result.Refund, shopinsight.CategoryRefund, a.link)
		case strings.Contains(a.href, "privacy"):
			return assignTarget(&result.Privacy, shopinsight.CategoryPrivacy, a.link)
		default:
			for _, l := range result.Policies {
				if l.URL == a.link.URL {
					return true
				}
			}
			result.Policies = append(result.Policies, a.link)
			return true
		}
	}
	return false
}

// assignTarget fills a single-link bucket according to the category's
// tie-break rule.
func assignTarget(slot **shopinsight.Link, category shopinsight.LinkCategory, link shopinsight.Link) bool {
	if *slot != nil && shopinsight.CategoryTieBreak[category] == shopinsight.FirstSeen {
		return false
	}
	l := link
	*slot = &l
	return true
}

func assignSocial(result *shopinsight.ClassifiedLinks, platform shopinsight.Platform, u string) {
	if _, ok := result.Social[platform]; ok && shopinsight.CategoryTieBreak[shopinsight.CategorySocial] == shopinsight.FirstSeen {
		return
	}
	result.Social[platform] = u
}

func assignImportant(result *shopinsight.ClassifiedLinks, link shopinsight.Link) {
	if _, ok := result.Important[link.Text]; ok && shopinsight.CategoryTieBreak[shopinsight.CategoryImportant] == shopinsight.FirstSeen {
		return
	}
	result.Important[link.Text] = link.URL
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

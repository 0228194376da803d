// Package scrape runs the brand profile extraction pipeline. It fetches the
// product feed and home page, classifies home page links, extracts the
// linked about, FAQ and policy pages, and merges everything into one
// profile.
package scrape

import (
	"context"
	"strings"

	"github.com/fwojciec/shopinsight"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements shopinsight.Scraper.
var _ shopinsight.Scraper = (*Pipeline)(nil)

// Pipeline orchestrates a single scrape. All fetches go through Fetcher, so
// one Pipeline should serve one run and be discarded afterwards.
type Pipeline struct {
	Fetcher    shopinsight.Fetcher
	Catalog    shopinsight.CatalogService
	Classifier shopinsight.LinkClassifier
	Normalizer shopinsight.TextNormalizer
	FAQs       shopinsight.FAQExtractor

	// Concurrency bounds how many targeted pages are fetched at once.
	// Values below 1 fetch them one at a time.
	Concurrency int
}

// Close releases the pipeline's HTTP session.
func (p *Pipeline) Close() error {
	if p.Fetcher == nil {
		return nil
	}
	return p.Fetcher.Close()
}

// Scrape runs every stage against rootURL and assembles the profile.
// Per-resource failures are recorded in the returned steps; only the loss
// of both the product feed and the home page fails the scrape.
func (p *Pipeline) Scrape(ctx context.Context, rootURL string) (*shopinsight.ScrapeResult, error) {
	rootURL = strings.TrimSpace(rootURL)
	if rootURL == "" {
		return nil, shopinsight.Errorf(shopinsight.EINVALID, "root URL required")
	}

	catalog, catalogStep := p.fetchCatalog(ctx, rootURL)
	home, homeStep := p.fetchHome(ctx, rootURL)

	if catalogStep.Status == shopinsight.StatusFailed && homeStep.Status == shopinsight.StatusFailed {
		return nil, shopinsight.Errorf(shopinsight.EUNAVAILABLE, "store %s is unreachable: %v", rootURL, homeStep.Err)
	}

	profile := &shopinsight.BrandProfile{
		StoreName: shopinsight.StoreName(rootURL),
		RootURL:   rootURL,
		FAQs:      []*shopinsight.FAQ{},
		Contact:   shopinsight.ContactInfo{Emails: []string{}, Phones: []string{}},
	}

	links := shopinsight.NewClassifiedLinks()
	if homeStep.Status != shopinsight.StatusFailed {
		classified, err := p.Classifier.Classify(home, rootURL)
		if err != nil {
			homeStep.Status = shopinsight.StatusFailed
			homeStep.Err = err
		} else {
			links = classified
		}
		profile.Contact = shopinsight.ExtractContacts(home)
	}

	steps := []shopinsight.StepResult{catalogStep, homeStep}
	steps = append(steps, p.extractTargets(ctx, links, profile)...)

	profile.Products = shopinsight.MergeProducts(catalog, links.HeroProducts())
	profile.SocialLinks = links.Social
	profile.ImportantLinks = links.Important
	profile.Fingerprint = Fingerprint(profile)

	return &shopinsight.ScrapeResult{Profile: profile, Steps: steps}, nil
}

func (p *Pipeline) fetchCatalog(ctx context.Context, rootURL string) ([]*shopinsight.Product, shopinsight.StepResult) {
	step := shopinsight.StepResult{Step: shopinsight.StepCatalog, URL: strings.TrimRight(rootURL, "/") + shopinsight.CatalogPath}

	products, err := p.Catalog.FetchProducts(ctx, rootURL)
	if err != nil {
		step.Status = shopinsight.StatusFailed
		step.Err = err
		return nil, step
	}
	step.Status = statusFor(len(products) > 0)
	return products, step
}

func (p *Pipeline) fetchHome(ctx context.Context, rootURL string) (string, shopinsight.StepResult) {
	step := shopinsight.StepResult{Step: shopinsight.StepHome, URL: rootURL}

	body, err := p.Fetcher.Fetch(ctx, rootURL)
	if err != nil {
		step.Status = shopinsight.StatusFailed
		step.Err = err
		return "", step
	}
	step.Status = statusFor(strings.TrimSpace(body) != "")
	return body, step
}

// target is one targeted page: the link chosen by the classifier and the
// extraction that stores its fragment in the profile.
type target struct {
	step    shopinsight.Step
	link    *shopinsight.Link
	extract func(body string) bool
}

// extractTargets fetches each targeted page at most once. Each target
// writes only its own profile field, so targets may run concurrently.
func (p *Pipeline) extractTargets(ctx context.Context, links *shopinsight.ClassifiedLinks, profile *shopinsight.BrandProfile) []shopinsight.StepResult {
	targets := []target{
		{
			step: shopinsight.StepAbout,
			link: links.About,
			extract: func(body string) bool {
				profile.About = p.Normalizer.Normalize(body)
				return profile.About != ""
			},
		},
		{
			step: shopinsight.StepFAQ,
			link: links.FAQ,
			extract: func(body string) bool {
				if faqs := p.FAQs.ExtractFAQs(body); faqs != nil {
					profile.FAQs = faqs
				}
				return len(profile.FAQs) > 0
			},
		},
		{
			step: shopinsight.StepPrivacy,
			link: links.Privacy,
			extract: func(body string) bool {
				profile.PrivacyPolicy = p.Normalizer.Normalize(body)
				return profile.PrivacyPolicy != ""
			},
		},
		{
			step: shopinsight.StepRefund,
			link: links.Refund,
			extract: func(body string) bool {
				profile.RefundPolicy = p.Normalizer.Normalize(body)
				return profile.RefundPolicy != ""
			},
		},
	}

	concurrency := p.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]shopinsight.StepResult, len(targets))
	var g errgroup.Group
	g.SetLimit(concurrency)

	for i, t := range targets {
		g.Go(func() error {
			results[i] = p.runTarget(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (p *Pipeline) runTarget(ctx context.Context, t target) shopinsight.StepResult {
	step := shopinsight.StepResult{Step: t.step}
	if t.link == nil {
		step.Status = shopinsight.StatusSkipped
		return step
	}
	step.URL = t.link.URL

	body, err := p.Fetcher.Fetch(ctx, t.link.URL)
	if err != nil {
		step.Status = shopinsight.StatusFailed
		step.Err = err
		return step
	}
	step.Status = statusFor(t.extract(body))
	return step
}

func statusFor(found bool) shopinsight.StepStatus {
	if found {
		return shopinsight.StatusOK
	}
	return shopinsight.StatusEmpty
}

package shopinsight

import (
	"context"
	"fmt"
)

// Step names a single fetch-and-extract stage of a scrape.
type Step string

// Pipeline steps.
const (
	StepCatalog Step = "catalog"
	StepHome    Step = "home"
	StepAbout   Step = "about"
	StepFAQ     Step = "faq"
	StepPrivacy Step = "privacy"
	StepRefund  Step = "refund"
)

// StepStatus is the outcome of a step.
type StepStatus string

// Step outcomes.
const (
	// StatusOK means the resource was fetched and produced data.
	StatusOK StepStatus = "ok"
	// StatusEmpty means the resource was fetched but yielded nothing.
	StatusEmpty StepStatus = "empty"
	// StatusFailed means the fetch failed; Err holds the reason.
	StatusFailed StepStatus = "failed"
	// StatusSkipped means the home page had no link for the step.
	StatusSkipped StepStatus = "skipped"
)

// StepResult records the outcome of one step. Failures are scoped to the
// step and never abort the scrape on their own.
type StepResult struct {
	Step   Step       `json:"step"`
	URL    string     `json:"url,omitempty"`
	Status StepStatus `json:"status"`
	Err    error      `json:"-"`
}

// String returns a one-line human readable summary.
func (r StepResult) String() string {
	s := fmt.Sprintf("%s: %s", r.Step, r.Status)
	if r.URL != "" {
		s += " " + r.URL
	}
	if r.Err != nil {
		s += fmt.Sprintf(" (%v)", r.Err)
	}
	return s
}

// ScrapeResult is the outcome of a successful scrape.
type ScrapeResult struct {
	Profile *BrandProfile
	Steps   []StepResult
}

// Step returns the result recorded for step, if any.
func (r *ScrapeResult) Step(step Step) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == step {
			return s, true
		}
	}
	return StepResult{}, false
}

// Scraper builds a brand profile from a store root URL.
type Scraper interface {
	// Scrape runs the whole extraction pipeline against rootURL.
	// Returns EINVALID for an empty root URL and EUNAVAILABLE when neither
	// the product feed nor the home page could be fetched.
	Scrape(ctx context.Context, rootURL string) (*ScrapeResult, error)
}

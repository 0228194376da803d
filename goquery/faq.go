package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
)

// Ensure FAQExtractor implements shopinsight.FAQExtractor.
var _ shopinsight.FAQExtractor = (*FAQExtractor)(nil)

// qaPattern matches explicit "Q: ... A: ..." pairs, one per line.
var qaPattern = regexp.MustCompile(`(?s)Q[:)]\s*(.*?)\nA[:)]\s*(.*?)\n`)

// questionSelector is used by the structural fallback.
const questionSelector = "h3, strong"

// FAQExtractor pulls FAQs from a page, first by matching explicit Q/A
// pairs in the page text and otherwise by pairing headings with the
// element that follows them.
type FAQExtractor struct {
	maxPatternMatches int
}

// NewFAQExtractor creates a new FAQExtractor.
func NewFAQExtractor() *FAQExtractor {
	return &FAQExtractor{maxPatternMatches: shopinsight.MaxPatternFAQs}
}

// ExtractFAQs returns the FAQs found in markup.
func (e *FAQExtractor) ExtractFAQs(markup string) []*shopinsight.FAQ {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	doc.Find("script, style, noscript, template").Remove()

	if faqs := e.fromPattern(doc.Text()); len(faqs) > 0 {
		return faqs
	}
	return fromStructure(doc)
}

func (e *FAQExtractor) fromPattern(text string) []*shopinsight.FAQ {
	var faqs []*shopinsight.FAQ
	for _, m := range qaPattern.FindAllStringSubmatch(text, e.maxPatternMatches) {
		faq := &shopinsight.FAQ{
			Question: strings.TrimSpace(m[1]),
			Answer:   strings.TrimSpace(m[2]),
		}
		if faq.Validate() != nil {
			continue
		}
		faqs = append(faqs, faq)
	}
	return faqs
}

// fromStructure treats each heading or emphasis element as a question and
// its next sibling element as the answer.
func fromStructure(doc *goquery.Document) []*shopinsight.FAQ {
	var faqs []*shopinsight.FAQ
	doc.Find(questionSelector).Each(func(_ int, sel *goquery.Selection) {
		next := sel.Next()
		if next.Length() == 0 {
			return
		}
		faq := &shopinsight.FAQ{
			Question: collapseSpace(sel.Text()),
			Answer:   collapseSpace(next.Text()),
		}
		if faq.Validate() != nil {
			return
		}
		faqs = append(faqs, faq)
	})
	return faqs
}

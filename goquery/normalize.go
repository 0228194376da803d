package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopinsight"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements shopinsight.TextNormalizer.
var _ shopinsight.TextNormalizer = (*Normalizer)(nil)

// chromeSelector matches elements that never carry page content.
const chromeSelector = `script, style, noscript, svg, template, iframe, header, footer, nav, [hidden], [aria-hidden="true"]`

// loadingPattern matches "loading" placeholders left by lazy widgets.
var loadingPattern = regexp.MustCompile(`(?i)loading\.{0,3}`)

// Normalizer converts page markup to bounded plain text.
type Normalizer struct {
	maxLength int
}

// NewNormalizer creates a Normalizer that truncates to shopinsight.MaxTextLength.
func NewNormalizer() *Normalizer {
	return &Normalizer{maxLength: shopinsight.MaxTextLength}
}

// Normalize strips chrome elements, joins text nodes with spaces, removes
// loading placeholders, collapses whitespace and truncates the result.
// Malformed markup is parsed leniently; the method never fails.
func (n *Normalizer) Normalize(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	doc.Find(chromeSelector).Remove()

	var b strings.Builder
	for _, node := range doc.Nodes {
		writeText(&b, node)
	}

	text := loadingPattern.ReplaceAllString(b.String(), " ")
	text = collapseSpace(text)
	return truncate(text, n.maxLength)
}

// writeText appends every text node below node, each followed by a space.
func writeText(b *strings.Builder, node *html.Node) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		b.WriteByte(' ')
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
}

// truncate cuts s to at most limit characters without splitting a rune.
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return strings.TrimSpace(s[:i])
		}
		count++
	}
	return s
}

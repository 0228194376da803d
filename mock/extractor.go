package mock

import "github.com/fwojciec/shopinsight"

var _ shopinsight.TextNormalizer = (*TextNormalizer)(nil)

// TextNormalizer is a mock implementation of shopinsight.TextNormalizer.
type TextNormalizer struct {
	NormalizeFn func(html string) string
}

func (n *TextNormalizer) Normalize(html string) string {
	return n.NormalizeFn(html)
}

var _ shopinsight.FAQExtractor = (*FAQExtractor)(nil)

// FAQExtractor is a mock implementation of shopinsight.FAQExtractor.
type FAQExtractor struct {
	ExtractFAQsFn func(html string) []*shopinsight.FAQ
}

func (e *FAQExtractor) ExtractFAQs(html string) []*shopinsight.FAQ {
	return e.ExtractFAQsFn(html)
}

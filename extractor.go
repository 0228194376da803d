package shopinsight

// MaxTextLength bounds normalized page text, in characters.
const MaxTextLength = 2000

// MaxPatternFAQs bounds the number of FAQs taken from explicit "Q: A:" pairs.
const MaxPatternFAQs = 10

// TextNormalizer turns page markup into bounded plain text.
type TextNormalizer interface {
	// Normalize strips non-content markup and returns at most
	// MaxTextLength characters of whitespace-collapsed text.
	Normalize(html string) string
}

// FAQExtractor pulls question and answer pairs out of an FAQ page.
type FAQExtractor interface {
	// ExtractFAQs returns the FAQs found in html. Pairs with an empty
	// question or answer are never returned.
	ExtractFAQs(html string) []*FAQ
}

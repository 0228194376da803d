package mock

import "github.com/fwojciec/shopinsight"

var _ shopinsight.LinkClassifier = (*LinkClassifier)(nil)

// LinkClassifier is a mock implementation of shopinsight.LinkClassifier.
type LinkClassifier struct {
	ClassifyFn func(html string, rootURL string) (*shopinsight.ClassifiedLinks, error)
}

func (c *LinkClassifier) Classify(html string, rootURL string) (*shopinsight.ClassifiedLinks, error) {
	return c.ClassifyFn(html, rootURL)
}

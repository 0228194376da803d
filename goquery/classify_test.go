package goquery_test

import (
	"testing"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "https://shop.example.com"

func classify(t *testing.T, html string) *shopinsight.ClassifiedLinks {
	t.Helper()
	links, err := goquery.NewClassifier().Classify(html, root)
	require.NoError(t, err)
	return links
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates product links by canonical URL", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/products/socks?variant=1">Wool Socks</a>
<a href="/products/socks?utm_source=hero#reviews">Shop socks</a>
<a href="https://shop.example.com/collections/all/products/hat">Hat</a>
</body>`

		links := classify(t, html)

		require.Len(t, links.Products, 2)
		assert.Equal(t, "https://shop.example.com/products/socks", links.Products[0].URL)
		assert.Equal(t, "Wool Socks", links.Products[0].Text)
		assert.Equal(t, "https://shop.example.com/collections/all/products/hat", links.Products[1].URL)
	})

	t.Run("picks the first about and FAQ links", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/pages/about-us">About Us</a>
<a href="/pages/our-story">About the founders</a>
<a href="/pages/faq">Help</a>
<a href="/pages/questions">Frequently Asked Questions</a>
</body>`

		links := classify(t, html)

		require.NotNil(t, links.About)
		assert.Equal(t, "https://shop.example.com/pages/about-us", links.About.URL)
		assert.Equal(t, "About Us", links.About.Text)
		require.NotNil(t, links.FAQ)
		assert.Equal(t, "https://shop.example.com/pages/faq", links.FAQ.URL)
	})

	t.Run("an anchor claimed by about is not reused for FAQ", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="/pages/about-faq">About</a><a href="/pages/faq">FAQ</a></body>`

		links := classify(t, html)

		require.NotNil(t, links.About)
		assert.Equal(t, "https://shop.example.com/pages/about-faq", links.About.URL)
		require.NotNil(t, links.FAQ)
		assert.Equal(t, "https://shop.example.com/pages/faq", links.FAQ.URL)
	})

	t.Run("falls through to the next category when a bucket is full", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="/pages/about">About</a><a href="/pages/about-faq">More</a></body>`

		links := classify(t, html)

		require.NotNil(t, links.FAQ)
		assert.Equal(t, "https://shop.example.com/pages/about-faq", links.FAQ.URL)
	})

	t.Run("splits policy links into refund and privacy", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/policies/privacy-policy">Privacy</a>
<a href="/policies/refund-policy">Refunds</a>
<a href="/policies/terms-of-service-policy">Terms</a>
<a href="/policies/privacy-v2">Privacy again</a>
</body>`

		links := classify(t, html)

		require.NotNil(t, links.Privacy)
		assert.Equal(t, "https://shop.example.com/policies/privacy-policy", links.Privacy.URL)
		require.NotNil(t, links.Refund)
		assert.Equal(t, "https://shop.example.com/policies/refund-policy", links.Refund.URL)
		require.Len(t, links.Policies, 1)
		assert.Equal(t, "https://shop.example.com/policies/terms-of-service-policy", links.Policies[0].URL)
	})

	t.Run("keeps the first link per social platform", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="https://instagram.com/shop">IG</a>
<a href="https://www.instagram.com/other">IG 2</a>
<a href="https://facebook.com/shop">FB</a>
<a href="https://youtube.com/@shop">YT</a>
</body>`

		links := classify(t, html)

		assert.Equal(t, map[shopinsight.Platform]string{
			shopinsight.PlatformInstagram: "https://instagram.com/shop",
			shopinsight.PlatformFacebook:  "https://facebook.com/shop",
			shopinsight.PlatformYouTube:   "https://youtube.com/@shop",
		}, links.Social)
	})

	t.Run("keeps the last important link per text", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/blogs/news">Blog</a>
<a href="/apps/track">Track your order</a>
<a href="/blogs/journal">Blog</a>
<a href="/pages/shipping">Shipping</a>
</body>`

		links := classify(t, html)

		assert.Equal(t, map[string]string{
			"Blog":             "https://shop.example.com/blogs/journal",
			"Track your order": "https://shop.example.com/apps/track",
		}, links.Important)
	})

	t.Run("an anchor can be both social and important", func(t *testing.T) {
		t.Parallel()

		html := `<body><a href="https://instagram.com/shop">Contact us on Instagram</a></body>`

		links := classify(t, html)

		assert.Equal(t, "https://instagram.com/shop", links.Social[shopinsight.PlatformInstagram])
		assert.Equal(t, "https://instagram.com/shop", links.Important["Contact us on Instagram"])
	})

	t.Run("skips non-HTTP links and produces only absolute URLs", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="mailto:help@shop.example.com">Contact</a>
<a href="javascript:void(0)">About</a>
<a href="tel:+18005550199">Help line</a>
<a href="../pages/help">Help center</a>
</body>`

		links := classify(t, html)

		assert.Nil(t, links.About)
		require.Len(t, links.Important, 1)
		for _, u := range links.Important {
			assert.True(t, shopinsight.IsAbsoluteURL(u), u)
		}
	})

	t.Run("returns empty result for page without anchors", func(t *testing.T) {
		t.Parallel()

		links := classify(t, `<p>hi</p>`)

		assert.Empty(t, links.Products)
		assert.Nil(t, links.About)
		assert.Nil(t, links.FAQ)
		assert.Nil(t, links.Privacy)
		assert.Nil(t, links.Refund)
		assert.Empty(t, links.Social)
		assert.Empty(t, links.Important)
	})

	t.Run("returns error for invalid root URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewClassifier().Classify(`<a href="/x">x</a>`, "://bad")
		require.Error(t, err)
		assert.Equal(t, shopinsight.EINVALID, shopinsight.ErrorCode(err))
	})
}

func TestCategoryTieBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, shopinsight.FirstSeen, shopinsight.CategoryTieBreak[shopinsight.CategorySocial])
	assert.Equal(t, shopinsight.LastSeen, shopinsight.CategoryTieBreak[shopinsight.CategoryImportant])
	assert.Equal(t, shopinsight.FirstSeen, shopinsight.CategoryTieBreak[shopinsight.CategoryAbout])
}

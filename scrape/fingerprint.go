package scrape

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/shopinsight"
)

// Fingerprint returns a stable hash of the profile's scraped content.
// Products, FAQs, contacts and links are hashed as sorted sets, so two
// scrapes of an unchanged store produce the same fingerprint regardless of
// discovery order. ID, CreatedAt and the fingerprint itself are ignored.
func Fingerprint(b *shopinsight.BrandProfile) string {
	h := xxhash.New()

	field(h, "store", b.StoreName)
	field(h, "about", b.About)
	field(h, "privacy", b.PrivacyPolicy)
	field(h, "refund", b.RefundPolicy)

	products := make([]string, 0, len(b.Products))
	for _, p := range b.Products {
		price := "-"
		if p.Price != nil {
			price = strconv.FormatFloat(*p.Price, 'f', -1, 64)
		}
		products = append(products, join(p.URL, p.Title, price, string(p.Source), strconv.FormatBool(p.Hero)))
	}
	set(h, "product", products)

	faqs := make([]string, 0, len(b.FAQs))
	for _, f := range b.FAQs {
		faqs = append(faqs, join(f.Question, f.Answer))
	}
	set(h, "faq", faqs)

	set(h, "email", append([]string(nil), b.Contact.Emails...))
	set(h, "phone", append([]string(nil), b.Contact.Phones...))

	social := make([]string, 0, len(b.SocialLinks))
	for platform, u := range b.SocialLinks {
		social = append(social, join(string(platform), u))
	}
	set(h, "social", social)

	important := make([]string, 0, len(b.ImportantLinks))
	for label, u := range b.ImportantLinks {
		important = append(important, join(label, u))
	}
	set(h, "link", important)

	return fmt.Sprintf("%016x", h.Sum64())
}

func field(w io.Writer, name, value string) {
	_, _ = io.WriteString(w, join(name, value))
	_, _ = w.Write([]byte{'\n'})
}

func set(w io.Writer, name string, values []string) {
	sort.Strings(values)
	for _, v := range values {
		field(w, name, v)
	}
}

func join(parts ...string) string {
	var n int
	for _, p := range parts {
		n += len(p) + 1
	}
	buf := make([]byte, 0, n)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, 0)
		}
		buf = append(buf, p...)
	}
	return string(buf)
}

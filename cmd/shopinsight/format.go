package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/fwojciec/shopinsight"
)

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeProfile writes a human readable summary of a brand profile.
func writeProfile(w io.Writer, b *shopinsight.BrandProfile) {
	if b.ID != "" {
		fmt.Fprintf(w, "ID:        %s\n", b.ID)
	}
	fmt.Fprintf(w, "Store:     %s\n", b.StoreName)
	fmt.Fprintf(w, "URL:       %s\n", b.RootURL)
	fmt.Fprintf(w, "Products:  %d (%d hero)\n", len(b.Products), len(b.HeroProducts()))
	fmt.Fprintf(w, "FAQs:      %d\n", len(b.FAQs))
	fmt.Fprintf(w, "About:     %s\n", presence(b.About))
	fmt.Fprintf(w, "Privacy:   %s\n", presence(b.PrivacyPolicy))
	fmt.Fprintf(w, "Refund:    %s\n", presence(b.RefundPolicy))
	fmt.Fprintf(w, "Emails:    %s\n", list(b.Contact.Emails))
	fmt.Fprintf(w, "Phones:    %s\n", list(b.Contact.Phones))

	for _, p := range slices.Sorted(maps.Keys(b.SocialLinks)) {
		fmt.Fprintf(w, "Social:    %s %s\n", p, b.SocialLinks[p])
	}
	for _, name := range slices.Sorted(maps.Keys(b.ImportantLinks)) {
		fmt.Fprintf(w, "Link:      %s %s\n", name, b.ImportantLinks[name])
	}
	if b.Fingerprint != "" {
		fmt.Fprintf(w, "Hash:      %s\n", b.Fingerprint)
	}

	for _, p := range b.Products {
		price := "-"
		if p.Price != nil {
			price = fmt.Sprintf("%.2f", *p.Price)
		}
		label := string(p.Source)
		if p.Hero && p.Source != shopinsight.SourceHero {
			label += ",hero"
		}
		fmt.Fprintf(w, "  [%s] %s  %s  %s\n", label, p.Title, price, p.URL)
	}
}

func presence(s string) string {
	if s == "" {
		return "none"
	}
	return fmt.Sprintf("%d chars", len([]rune(s)))
}

func list(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

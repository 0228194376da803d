package shopinsight

import (
	"regexp"
	"sort"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{7,}\d`)
)

// ExtractContacts pattern-matches email addresses and phone numbers in raw
// page markup. Matching runs on the markup rather than normalized text so
// phone punctuation survives. Both lists are deduplicated and sorted.
func ExtractContacts(markup string) ContactInfo {
	return ContactInfo{
		Emails: uniqueMatches(emailPattern, markup),
		Phones: uniqueMatches(phonePattern, markup),
	}
}

func uniqueMatches(re *regexp.Regexp, s string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, m := range re.FindAllString(s, -1) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

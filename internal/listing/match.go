package listing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// matcher tests names against a case-insensitive substring query. Both sides
// are NFC normalized so decomposed (macOS) and composed input compare equal.
type matcher struct {
	caser  cases.Caser
	needle string
}

// newMatcher returns nil for an empty query, which matches everything.
func newMatcher(query string) *matcher {
	if query == "" {
		return nil
	}
	m := &matcher{caser: cases.Fold()}
	m.needle = m.fold(query)
	return m
}

func (m *matcher) fold(s string) string {
	return m.caser.String(norm.NFC.String(s))
}

func (m *matcher) Match(name string) bool {
	if m == nil {
		return true
	}
	return strings.Contains(m.fold(name), m.needle)
}

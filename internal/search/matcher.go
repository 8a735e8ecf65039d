// Package search implements literal text matching and restorable
// highlighting over roster markup trees.
package search

import "regexp"

// Match is one occurrence of the term in a text, as byte offset and
// length
type Match struct {
	Offset int
	Length int
}

// Matcher scans text for a literal term, case-insensitively. A nil
// Matcher matches nothing and means "no filtering".
type Matcher struct {
	re   *regexp.Regexp
	term string
}

// NewMatcher compiles a matcher for a literal term. All pattern
// metacharacters in the term are escaped, so "a.b*c" matches only the
// literal substring "a.b*c". An empty term yields nil.
func NewMatcher(term string) *Matcher {
	if term == "" {
		return nil
	}
	return &Matcher{
		re:   regexp.MustCompile("(?i)" + regexp.QuoteMeta(term)),
		term: term,
	}
}

// Term returns the original search term
func (m *Matcher) Term() string {
	if m == nil {
		return ""
	}
	return m.term
}

// Find returns every occurrence of the term in text, in order
func (m *Matcher) Find(text string) []Match {
	if m == nil || text == "" {
		return nil
	}
	locs := m.re.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	matches := make([]Match, len(locs))
	for i, loc := range locs {
		matches[i] = Match{Offset: loc[0], Length: loc[1] - loc[0]}
	}
	return matches
}

// Contains reports whether text contains the term
func (m *Matcher) Contains(text string) bool {
	if m == nil {
		return false
	}
	return m.re.MatchString(text)
}

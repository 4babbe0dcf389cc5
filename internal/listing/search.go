package listing

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search is a compiled free-text term. Matching is a case-folded substring
// test against each searchable value of a record.
type Search struct {
	term   string
	folded string
	caser  cases.Caser
}

// NewSearch prepares term for matching. Whitespace-only terms match everything.
func NewSearch(term string) Search {
	s := Search{term: term, caser: cases.Fold()}
	if strings.TrimSpace(term) != "" {
		s.folded = s.caser.String(term)
	}
	return s
}

// Term returns the term as entered.
func (s Search) Term() string { return s.term }

// Empty reports whether the search accepts every record.
func (s Search) Empty() bool { return s.folded == "" }

// Match reports whether record contains the term in one of its searchable values.
func (s Search) Match(record Record) bool {
	if s.Empty() {
		return true
	}
	for _, value := range record.SearchText() {
		if value == "" {
			continue
		}
		if strings.Contains(s.caser.String(value), s.folded) {
			return true
		}
	}
	return false
}

// MatchesSearch is a one-off form of NewSearch(term).Match(record).
func MatchesSearch(record Record, term string) bool {
	return NewSearch(term).Match(record)
}

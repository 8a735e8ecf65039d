// Package filter decides row visibility from the combination of a
// free-text term and an optional active status category, and derives
// the per-category counts shown in the toolbar.
package filter

import (
	"strings"

	"callsheet/internal/roster"
	"callsheet/internal/search"
)

// State is the current filter selection. Both parts are optional and
// combine with AND semantics. State is passed explicitly into every
// operation; there is no hidden module-level filter state.
type State struct {
	Term   string // free-text substring filter, "" = no text filter
	Status string // active category key, "" = no category filter
}

// Result summarizes one filter pass
type Result struct {
	// Visible is the number of rows left showing
	Visible int

	// NoResults is true iff nothing matched and a term was supplied;
	// it is never set for an empty term, even over an empty roster
	NoResults bool
}

// Apply reconciles every row's visibility and highlighting with the
// given state. Each row is restored to pristine first, so a pass is a
// pure function of the current rows and state. Shown rows with a
// non-empty term get each matching cell highlighted.
func Apply(rows []*roster.Entry, s State) Result {
	m := search.NewMatcher(s.Term)

	matched := 0
	for _, e := range rows {
		e.RestoreAll()

		textMatch := m == nil || m.Contains(e.FlatText())
		statusMatch := s.Status == "" || strings.Contains(roster.Classify(e), s.Status)

		show := textMatch && statusMatch
		e.Hidden = !show
		if !show {
			continue
		}
		matched++

		if m != nil {
			for _, c := range e.Cells {
				if m.Contains(c.Content().FlatText()) {
					search.Highlight(c.Content(), m)
				}
			}
		}
	}

	return Result{
		Visible:   matched,
		NoResults: matched == 0 && s.Term != "",
	}
}

// Toggle implements the single-select category toggle: selecting the
// active key again clears it, selecting a different key replaces it.
// Toggle is self-inverse.
func Toggle(s State, key string) State {
	if s.Status == key {
		s.Status = ""
	} else {
		s.Status = key
	}
	return s
}

// Clear resets the filter state to empty
func Clear() State {
	return State{}
}

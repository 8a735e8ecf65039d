package filter

import "callsheet/internal/roster"

// Counts is derived from live row state and never stored durably
type Counts struct {
	// ByStatus buckets rows by classified category key; buckets are
	// mutually exclusive (classifier precedence)
	ByStatus map[string]int

	// Unclassified counts rows matching no category
	Unclassified int

	// Total is the full row count
	Total int

	// Visible counts rows that are not filtered out and not inside a
	// collapsed group
	Visible int
}

// Count recomputes all counts from the current rows. collapsed marks
// groups whose rows are hidden by an ancestor and therefore must not
// count as visible. Count is idempotent: the same rows always produce
// the same counts regardless of how often it runs.
func Count(rows []*roster.Entry, collapsed map[string]bool) Counts {
	c := Counts{ByStatus: make(map[string]int)}

	for _, e := range rows {
		c.Total++

		if key := roster.Classify(e); key != "" {
			c.ByStatus[key]++
		} else {
			c.Unclassified++
		}

		if !e.Hidden && !collapsed[e.Group] {
			c.Visible++
		}
	}

	return c
}

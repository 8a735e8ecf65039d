package filter

import (
	"testing"

	"callsheet/internal/config"
	"callsheet/internal/roster"
)

func countRows() []*roster.Entry {
	config.SetGlobal(config.DefaultConfig())
	return []*roster.Entry{
		roster.NewEntry(1, "Arjun", "91111", "Not called", "", "Priya"),
		roster.NewEntry(2, "Asha", "92222", "Confirmed", "", "Priya"),
		roster.NewEntry(3, "Divya", "93333", "Confirmed", "", "Sunil"),
		roster.NewEntry(4, "Meera", "94444", "something odd", "", ""),
	}
}

func TestCountBuckets(t *testing.T) {
	rows := countRows()
	c := Count(rows, nil)

	if c.Total != 4 {
		t.Errorf("Total = %d, want 4", c.Total)
	}
	if c.ByStatus["confirmed"] != 2 {
		t.Errorf("confirmed = %d, want 2", c.ByStatus["confirmed"])
	}
	if c.ByStatus["not-called"] != 1 {
		t.Errorf("not-called = %d, want 1", c.ByStatus["not-called"])
	}
	if c.Unclassified != 1 {
		t.Errorf("Unclassified = %d, want 1", c.Unclassified)
	}

	// Buckets are mutually exclusive and cover every row
	sum := c.Unclassified
	for _, n := range c.ByStatus {
		sum += n
	}
	if sum != c.Total {
		t.Errorf("bucket sum = %d, want %d", sum, c.Total)
	}
}

func TestCountVisibleRespectsHidden(t *testing.T) {
	rows := countRows()
	rows[0].Hidden = true
	rows[3].Hidden = true

	c := Count(rows, nil)
	if c.Visible != 2 {
		t.Errorf("Visible = %d, want 2", c.Visible)
	}
	// Hidden rows still count toward their status bucket
	if c.ByStatus["not-called"] != 1 {
		t.Errorf("not-called = %d, want 1", c.ByStatus["not-called"])
	}
}

func TestCountVisibleRespectsCollapsedGroups(t *testing.T) {
	rows := countRows()
	c := Count(rows, map[string]bool{"Priya": true})

	// Two rows fold away under Priya; Divya and Meera remain
	if c.Visible != 2 {
		t.Errorf("Visible = %d, want 2", c.Visible)
	}
	if c.Total != 4 {
		t.Errorf("Total = %d, want 4", c.Total)
	}
}

func TestCountIsIdempotent(t *testing.T) {
	rows := countRows()
	first := Count(rows, nil)
	for i := 0; i < 3; i++ {
		again := Count(rows, nil)
		if again.Total != first.Total || again.Visible != first.Visible ||
			again.Unclassified != first.Unclassified {
			t.Fatal("repeated counts over unchanged rows must be identical")
		}
		for k, v := range first.ByStatus {
			if again.ByStatus[k] != v {
				t.Fatalf("bucket %q changed: %d -> %d", k, v, again.ByStatus[k])
			}
		}
	}
}

func TestCountEmptyRoster(t *testing.T) {
	c := Count(nil, nil)
	if c.Total != 0 || c.Visible != 0 || c.Unclassified != 0 {
		t.Errorf("empty roster counts = %+v", c)
	}
}

package roster

import (
	"testing"

	"callsheet/internal/config"
)

func TestClassifyFromBadge(t *testing.T) {
	config.SetGlobal(config.DefaultConfig())

	tests := []struct {
		status string
		want   string
	}{
		{"Confirmed", "confirmed"},
		{"  CONFIRMED  ", "confirmed"},
		{"WhatsApp sent", "whatsapp"},
		{"not reachable", "not-reachable"},
		{"Not coming", "not-coming"},
		{"weird note", ""},
		{"", ""},
	}
	for _, tt := range tests {
		e := NewEntry(1, "Asha", "99", tt.status, "", "")
		if got := Classify(e); got != tt.want {
			t.Errorf("Classify(badge=%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestClassifyFallbackToRowText(t *testing.T) {
	config.SetGlobal(config.DefaultConfig())

	// No badge at all: the full row text is scanned
	e := NewEntry(1, "Asha", "99", "", "family is busy this week", "")
	e.Cells[e.statusCell] = NewCell(Span(""))

	if got := Classify(e); got != "busy" {
		t.Errorf("Classify = %q, want %q", got, "busy")
	}
}

func TestClassifyEmptyBadgeDoesNotFallBack(t *testing.T) {
	config.SetGlobal(config.DefaultConfig())

	// The badge exists but is blank; remarks mention a keyword. The
	// blank badge wins: the row stays unclassified.
	e := NewEntry(1, "Asha", "99", "", "confirmed by phone", "")

	if got := Classify(e); got != "" {
		t.Errorf("Classify = %q, want empty", got)
	}
}

func TestClassifyPrecedenceIsConfigOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	config.SetGlobal(cfg)

	// "not called, will confirm" contains keywords of both not-called
	// and confirmed; the earlier status wins
	e := NewEntry(1, "Asha", "99", "not called, will confirm", "", "")
	if got := Classify(e); got != "not-called" {
		t.Errorf("Classify = %q, want %q", got, "not-called")
	}
}

package roster

import "testing"

func TestNewEntryCellLayout(t *testing.T) {
	e := NewEntry(3, "Asha Rao", "+91 98765 43210", "Confirmed", "spoke tuesday", "Priya")

	if len(e.Cells) != 5 {
		t.Fatalf("expected 5 cells, got %d", len(e.Cells))
	}
	if got := e.Cells[0].Content().FlatText(); got != "3" {
		t.Errorf("seq cell = %q, want %q", got, "3")
	}
	if got := e.Cells[1].Content().FlatText(); got != "Asha Rao" {
		t.Errorf("name cell = %q", got)
	}

	link := e.Cells[2].Content().FindClass(ClassLink)
	if link == nil {
		t.Fatal("phone cell should contain a link span")
	}
	if link.Href != "https://wa.me/919876543210" {
		t.Errorf("link href = %q", link.Href)
	}

	badge, ok := e.Badge()
	if !ok {
		t.Fatal("expected a status badge")
	}
	if badge != "Confirmed" {
		t.Errorf("badge = %q, want %q", badge, "Confirmed")
	}
}

func TestBadgeAbsent(t *testing.T) {
	e := NewEntry(1, "Ravi", "123", "", "", "")
	e.Cells[e.statusCell] = NewCell(Span(""))

	if _, ok := e.Badge(); ok {
		t.Error("expected no badge after replacing the status cell")
	}
}

func TestBadgeEmptyButPresent(t *testing.T) {
	e := NewEntry(1, "Ravi", "123", "", "", "")

	badge, ok := e.Badge()
	if !ok {
		t.Fatal("an empty status still builds a badge span")
	}
	if badge != "" {
		t.Errorf("badge = %q, want empty", badge)
	}
}

func TestFlatTextJoinsCells(t *testing.T) {
	e := NewEntry(1, "Asha", "99", "Busy", "retry", "")
	got := e.FlatText()
	want := "1 Asha 99 Busy retry"
	if got != want {
		t.Errorf("FlatText() = %q, want %q", got, want)
	}
}

func TestRestoreUndoesMutation(t *testing.T) {
	e := NewEntry(1, "Asha", "99", "Busy", "retry", "")
	pristine := e.Cells[1].Pristine().Clone()

	// Simulate a highlight pass rewriting the name cell
	e.Cells[1].Content().Children = []*Node{Mark("Asha")}
	e.RestoreAll()

	if !e.Cells[1].Content().Equal(pristine) {
		t.Error("restore did not rebuild the original markup")
	}
}

func TestRestoreIsIdempotent(t *testing.T) {
	e := NewEntry(1, "Asha", "99", "Busy", "retry", "")
	e.RestoreAll()
	first := e.Cells[1].Content().Clone()
	e.RestoreAll()
	e.RestoreAll()
	if !e.Cells[1].Content().Equal(first) {
		t.Error("repeated restore changed the markup")
	}
}

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+91 98765 43210", "https://wa.me/919876543210"},
		{"98765-43210", "https://wa.me/9876543210"},
		{"", "https://wa.me/"},
	}
	for _, tt := range tests {
		if got := WhatsAppLink(tt.phone); got != tt.want {
			t.Errorf("WhatsAppLink(%q) = %q, want %q", tt.phone, got, tt.want)
		}
	}
}

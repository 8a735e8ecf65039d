package roster

import (
	"strings"
	"testing"
)

const sampleCSV = `Parent Name,Contact Phone Number,Call Status,Remarks,Assigned To
Meera Iyer,+91 90000 11111,Confirmed,coming with family,Priya
Arjun Nair,+91 90000 22222,Not called,,Priya
,,,,
Divya Menon,+91 90000 33333,,left voicemail,Sunil
`

func TestLoadReader(t *testing.T) {
	r, err := LoadReader(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}

	if len(r.Entries) != 3 {
		t.Fatalf("expected 3 entries after dropping the blank row, got %d", len(r.Entries))
	}
	if !r.HasStatus {
		t.Error("expected HasStatus for a source with a Call Status column")
	}

	// Sorted case-insensitively by name, renumbered from 1
	wantNames := []string{"Arjun Nair", "Divya Menon", "Meera Iyer"}
	for i, want := range wantNames {
		e := r.Entries[i]
		if e.Name != want {
			t.Errorf("entry %d name = %q, want %q", i, e.Name, want)
		}
		if e.Seq != i+1 {
			t.Errorf("entry %d seq = %d, want %d", i, e.Seq, i+1)
		}
	}

	if r.Entries[2].Group != "Priya" {
		t.Errorf("group = %q, want %q", r.Entries[2].Group, "Priya")
	}

	badge, ok := r.Entries[2].Badge()
	if !ok || badge != "Confirmed" {
		t.Errorf("badge = %q ok=%v, want Confirmed", badge, ok)
	}
}

func TestLoadReaderHeaderAliases(t *testing.T) {
	csv := "Name,Phone,Status\nRavi,123,Busy\n"
	r, err := LoadReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if len(r.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Entries))
	}
	if r.Entries[0].Phone != "123" {
		t.Errorf("phone = %q", r.Entries[0].Phone)
	}
}

func TestLoadReaderNoStatusColumn(t *testing.T) {
	csv := "Name,Phone,Remarks\nRavi,123,said not coming\n"
	r, err := LoadReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if r.HasStatus {
		t.Error("HasStatus should be false without a status column")
	}
	if _, ok := r.Entries[0].Badge(); ok {
		t.Error("rows from a status-less source should carry no badge")
	}
}

func TestLoadReaderEmpty(t *testing.T) {
	r, err := LoadReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if len(r.Entries) != 0 {
		t.Errorf("expected no entries, got %d", len(r.Entries))
	}
	if len(r.Headers) != 5 {
		t.Errorf("expected canonical headers, got %v", r.Headers)
	}
}

func TestLoadReaderRaggedRows(t *testing.T) {
	csv := "Name,Phone,Status\nRavi,123\nAsha,456,Busy,extra\n"
	r, err := LoadReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadReader should tolerate ragged rows: %v", err)
	}
	if len(r.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(r.Entries))
	}
}

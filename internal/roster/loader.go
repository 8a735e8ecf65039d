package roster

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// Column aliases accepted when normalizing CSV headers. Matching is
// case-insensitive after trimming.
var (
	nameAliases    = []string{"contact name", "name", "member name", "parent name"}
	phoneAliases   = []string{"contact phone number", "phone", "phone number", "mobile", "member whatsapp phone number"}
	statusAliases  = []string{"call status", "status"}
	remarksAliases = []string{"remarks", "notes", "comment"}
	groupAliases   = []string{"assigned to", "samiti member", "caller", "assigned caller"}
)

// Roster is a loaded call list
type Roster struct {
	Entries []*Entry
	Headers []string

	// HasStatus reports whether the source had a status column; without
	// it classification falls back to full row text
	HasStatus bool
}

// Headers for the canonical cell layout
var canonicalHeaders = []string{"#", "Name", "Phone", "Status", "Remarks"}

// Load reads a call-log CSV from disk
func Load(path string) (*Roster, error) {
	f, err := os.Open(path) //nolint:gosec // roster path comes from flag/config
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return r, nil
}

// LoadReader parses call-log CSV content. Headers are normalized via
// the alias lists; rows where name and phone are both blank are
// dropped; surviving rows are sorted case-insensitively by name and
// numbered from 1.
func LoadReader(r io.Reader) (*Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Roster{Headers: canonicalHeaders}, nil
	}

	header := records[0]
	nameIdx := findColumn(header, nameAliases)
	phoneIdx := findColumn(header, phoneAliases)
	statusIdx := findColumn(header, statusAliases)
	remarksIdx := findColumn(header, remarksAliases)
	groupIdx := findColumn(header, groupAliases)

	roster := &Roster{
		Headers:   canonicalHeaders,
		HasStatus: statusIdx >= 0,
	}

	type rawRow struct {
		name, phone, status, remarks, group string
	}
	var rows []rawRow
	for _, rec := range records[1:] {
		row := rawRow{
			name:    field(rec, nameIdx),
			phone:   field(rec, phoneIdx),
			status:  field(rec, statusIdx),
			remarks: field(rec, remarksIdx),
			group:   field(rec, groupIdx),
		}
		if row.name == "" && row.phone == "" {
			continue
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].name) < strings.ToLower(rows[j].name)
	})

	for i, row := range rows {
		e := NewEntry(i+1, row.name, row.phone, row.status, row.remarks, row.group)
		if statusIdx < 0 {
			// No status column in the source: drop the badge so
			// classification scans the full row text instead
			e.Cells[e.statusCell] = NewCell(Span(""))
		}
		roster.Entries = append(roster.Entries, e)
	}

	return roster, nil
}

// FetchSheetCSV downloads a published Google Sheet tab as CSV and
// parses it. Works for sheets viewable by link.
func FetchSheetCSV(ctx context.Context, sheetID, gid string) (*Roster, error) {
	url := fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", sheetID, gid)

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download sheet: unexpected status %s", resp.Status)
	}

	return LoadReader(resp.Body)
}

// findColumn returns the index of the first header matching any alias,
// or -1
func findColumn(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if h == a {
				return i
			}
		}
	}
	return -1
}

// field safely extracts and trims a record field
func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

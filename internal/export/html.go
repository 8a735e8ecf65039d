package export

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"time"

	catppuccin "github.com/catppuccin/go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"callsheet/internal/config"
	"callsheet/internal/roster"
)

// Page is the template payload for the static searchable list
type Page struct {
	Title    string
	Updated  string
	Headers  []string
	Rows     []Row
	Statuses []StatusButton
}

// Row is one table row. GroupHeader rows render as a full-width section
// divider instead of data cells.
type Row struct {
	GroupHeader bool
	Group       string

	Seq         int
	Name        string
	Phone       string
	WhatsApp    string
	StatusKey   string
	StatusLabel string
	Remarks     string
}

// StatusButton is one filter button with its initial count
type StatusButton struct {
	Key   string
	Label string
	Hex   string
	Count int
}

var page = template.Must(template.New("page").Parse(pageTemplate))

// BuildPage assembles the template payload from a loaded roster.
// Grouped rows follow their group header in first-appearance order,
// ungrouped rows come first, matching the terminal layout.
func BuildPage(r *roster.Roster, cfg *config.Config, title string) Page {
	if cfg == nil {
		cfg = config.Global()
	}

	p := Page{
		Title:   title,
		Updated: time.Now().Format("2006-01-02 15:04:05"),
		Headers: r.Headers,
	}

	counts := make(map[string]int)
	for _, e := range r.Entries {
		counts[roster.Classify(e)]++
	}
	for _, def := range cfg.Statuses {
		p.Statuses = append(p.Statuses, StatusButton{
			Key:   def.Key,
			Label: def.Label,
			Hex:   badgeHex(def.Color),
			Count: counts[def.Key],
		})
	}

	appendRow := func(e *roster.Entry) {
		key := roster.Classify(e)
		label := ""
		if badge, ok := e.Badge(); ok {
			label = badge
		}
		if label == "" && key != "" {
			if def := cfg.StatusByKey(key); def != nil {
				label = def.Label
			}
		}
		p.Rows = append(p.Rows, Row{
			Seq:         e.Seq,
			Name:        e.Name,
			Phone:       e.Phone,
			WhatsApp:    roster.WhatsAppLink(e.Phone),
			StatusKey:   key,
			StatusLabel: label,
			Remarks:     e.Cells[4].Content().FlatText(),
		})
	}

	var groups []string
	seen := make(map[string]bool)
	for _, e := range r.Entries {
		if e.Group != "" && !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}

	for _, e := range r.Entries {
		if e.Group == "" {
			appendRow(e)
		}
	}
	for _, g := range groups {
		p.Rows = append(p.Rows, Row{GroupHeader: true, Group: g})
		for _, e := range r.Entries {
			if e.Group == g {
				appendRow(e)
			}
		}
	}

	return p
}

// Render writes the searchable page for a roster
func Render(w io.Writer, r *roster.Roster, cfg *config.Config, title string) error {
	return page.Execute(w, BuildPage(r, cfg, title))
}

// WriteFile renders the page to a file
func WriteFile(path string, r *roster.Roster, cfg *config.Config, title string) error {
	f, err := os.Create(path) //nolint:gosec // output path comes from flag
	if err != nil {
		return err
	}
	if err := Render(f, r, cfg, title); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}

// LoadFunc produces a fresh roster for each request, so a served page
// always reflects the file on disk
type LoadFunc func() (*roster.Roster, error)

// Handler serves the searchable page at / and /list.html
func Handler(load LoadFunc, cfg *config.Config, title string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	serve := func(w http.ResponseWriter, req *http.Request) {
		data, err := load()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Render(w, data, cfg, title); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}

	r.Get("/", serve)
	r.Get("/list.html", serve)
	return r
}

// Serve blocks serving the page on addr
func Serve(addr string, load LoadFunc, cfg *config.Config, title string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(load, cfg, title),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// badgeHex maps a catppuccin color name to its latte hex for the light
// page background
func badgeHex(name string) string {
	fl := catppuccin.Latte
	switch name {
	case "rosewater":
		return fl.Rosewater().Hex
	case "flamingo":
		return fl.Flamingo().Hex
	case "pink":
		return fl.Pink().Hex
	case "mauve":
		return fl.Mauve().Hex
	case "red":
		return fl.Red().Hex
	case "maroon":
		return fl.Maroon().Hex
	case "peach":
		return fl.Peach().Hex
	case "yellow":
		return fl.Yellow().Hex
	case "green":
		return fl.Green().Hex
	case "teal":
		return fl.Teal().Hex
	case "sky":
		return fl.Sky().Hex
	case "sapphire":
		return fl.Sapphire().Hex
	case "blue":
		return fl.Blue().Hex
	case "lavender":
		return fl.Lavender().Hex
	default:
		return fl.Overlay1().Hex
	}
}

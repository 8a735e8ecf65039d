package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"callsheet/internal/config"
	"callsheet/internal/export"
	"callsheet/internal/roster"
	"callsheet/internal/tui"
)

func main() {
	var (
		csvPath    = flag.String("csv", "", "path to the call-log CSV (default from config)")
		sheetID    = flag.String("sheet-id", "", "Google Sheet ID to fetch instead of a local CSV")
		gid        = flag.String("gid", "0", "sheet tab gid when -sheet-id is set")
		configPath = flag.String("config", "", "path to config.yaml (default: standard lookup)")
		exportPath = flag.String("export", "", "write a static searchable HTML page and exit")
		serveAddr  = flag.String("serve", "", "serve the searchable page on this address (e.g. :8080)")
		title      = flag.String("title", "Call Sheet", "page title for export and serve modes")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	path := *csvPath
	if path == "" {
		path = cfg.RosterPath
	}

	load := func() (*roster.Roster, error) {
		if *sheetID != "" {
			return roster.FetchSheetCSV(context.Background(), *sheetID, *gid)
		}
		return roster.Load(path)
	}

	switch {
	case *exportPath != "":
		r, err := load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading roster: %v\n", err)
			os.Exit(1)
		}
		if err := export.WriteFile(*exportPath, r, cfg, *title); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *exportPath, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *exportPath)

	case *serveAddr != "":
		fmt.Printf("Serving on %s\n", *serveAddr)
		if err := export.Serve(*serveAddr, load, cfg, *title); err != nil {
			fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
			os.Exit(1)
		}

	default:
		opts := tui.ModelOptions{SheetID: *sheetID, GID: *gid}
		if *sheetID == "" {
			opts.Path = path
		}
		p := tea.NewProgram(tui.NewModel(cfg, opts), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running program: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromDefaultPath()
}

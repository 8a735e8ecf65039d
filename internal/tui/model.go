package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"callsheet/internal/config"
	"callsheet/internal/filter"
	"callsheet/internal/roster"
)

// ModelOptions configures the roster source
type ModelOptions struct {
	// Path is the local call-log CSV; watched for external changes
	Path string

	// SheetID/GID fetch a published Google Sheet tab instead of a local
	// file (no watching in that mode)
	SheetID string
	GID     string
}

// Model represents the application state
type Model struct {
	cfg  *config.Config
	opts ModelOptions

	// Core state
	rows    []*roster.Entry
	headers []string
	watcher *roster.Watcher

	// Filter state, passed explicitly into every filter pass
	state     filter.State
	counts    filter.Counts
	noResults bool

	// Collapsed caller groups; rows under a collapsed group are not
	// visible and do not count as such
	collapsed map[string]bool

	// UI components
	rowList     list.Model
	rowDelegate *rowDelegate
	searchInput textinput.Model
	theme       theme

	// Debounce bookkeeping: a new keystroke bumps the sequence, which
	// implicitly cancels any pending filter pass
	searchSeq uint64

	// Toolbar panel state
	panelOpen bool
	panelIdx  int

	// UI dimensions
	width  int
	height int

	// Error state
	err error
}

// NewModel creates a new Model with initialized state
func NewModel(cfg *config.Config, opts ModelOptions) Model {
	if cfg == nil {
		cfg = config.Global()
	}

	t := newTheme(cfg.Theme)
	delegate := newRowDelegate(t)

	input := textinput.New()
	input.Placeholder = "Search name, number, status..."
	input.Prompt = "/ "
	input.CharLimit = 120

	m := Model{
		cfg:         cfg,
		opts:        opts,
		collapsed:   make(map[string]bool),
		rowDelegate: delegate,
		searchInput: input,
		theme:       t,
	}

	m.rowList = list.New([]list.Item{}, delegate, 0, 0)
	m.rowList.SetShowTitle(false)
	m.rowList.SetShowHelp(false)
	m.rowList.SetShowStatusBar(false)
	m.rowList.SetFilteringEnabled(false)
	m.rowList.DisableQuitKeybindings()

	if opts.Path != "" {
		watcher, err := roster.NewWatcher(opts.Path)
		if err == nil {
			m.watcher = watcher
			watcher.Start()
		}
		// A missing watcher is not fatal; live reload is best-effort
	}

	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRosterCmd()}
	if m.watcher != nil {
		cmds = append(cmds, m.watchRosterCmd())
	}
	return tea.Batch(cmds...)
}

// Message types
type (
	rosterLoadedMsg   *roster.Roster
	rosterChangedMsg  roster.WatchEvent
	searchDebounceMsg struct{ seq uint64 }
	refreshCountsMsg  struct{}
	errMsg            struct{ error }
)

// loadRosterCmd loads the roster from its configured source
func (m Model) loadRosterCmd() tea.Cmd {
	opts := m.opts
	return func() tea.Msg {
		var (
			r   *roster.Roster
			err error
		)
		if opts.SheetID != "" {
			r, err = roster.FetchSheetCSV(context.Background(), opts.SheetID, opts.GID)
		} else {
			r, err = roster.Load(opts.Path)
		}
		if err != nil {
			return errMsg{err}
		}
		return rosterLoadedMsg(r)
	}
}

// watchRosterCmd waits for the next external roster change
func (m Model) watchRosterCmd() tea.Cmd {
	w := m.watcher
	return func() tea.Msg {
		select {
		case event := <-w.Events:
			return rosterChangedMsg(event)
		case err := <-w.Errors:
			return errMsg{err}
		}
	}
}

// debounceCmd schedules the filter pass for the current keystroke
// sequence after the configured quiet period
func (m Model) debounceCmd(seq uint64) tea.Cmd {
	delay := time.Duration(m.cfg.DebounceMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

// refreshCountsCmd defers a count refresh so visibility changes settle
// first. Redundant scheduling is harmless: the refresh is idempotent.
func (m Model) refreshCountsCmd() tea.Cmd {
	delay := time.Duration(m.cfg.CountDelayMs) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return refreshCountsMsg{}
	})
}

// applyFilter reconciles row visibility, highlighting and list content
// with the current filter state, and schedules a count refresh
func (m Model) applyFilter() (Model, tea.Cmd) {
	res := filter.Apply(m.rows, m.state)
	m.noResults = res.NoResults
	m = m.rebuildItems()
	return m, m.refreshCountsCmd()
}

// rebuildItems regenerates the visible list: group headers in order of
// first appearance, visible rows beneath them, collapsed groups folded
// to their header
func (m Model) rebuildItems() Model {
	var items []list.Item

	seen := make(map[string]int) // group -> index into headers slice
	type groupAgg struct {
		name    string
		visible int
	}
	var order []groupAgg

	for _, e := range m.rows {
		if e.Group == "" {
			continue
		}
		if _, ok := seen[e.Group]; !ok {
			seen[e.Group] = len(order)
			order = append(order, groupAgg{name: e.Group})
		}
		if !e.Hidden {
			order[seen[e.Group]].visible++
		}
	}

	// Ungrouped rows first, then each group under its header
	for _, e := range m.rows {
		if e.Group == "" && !e.Hidden {
			items = append(items, rowItem{entry: e})
		}
	}
	for _, g := range order {
		items = append(items, groupItem{
			name:      g.name,
			collapsed: m.collapsed[g.name],
			rows:      g.visible,
		})
		if m.collapsed[g.name] {
			continue
		}
		for _, e := range m.rows {
			if e.Group == g.name && !e.Hidden {
				items = append(items, rowItem{entry: e})
			}
		}
	}

	m.rowList.SetItems(items)
	if m.rowList.Index() >= len(items) {
		m.rowList.Select(0)
	}
	return m
}

// refreshCounts recomputes the toolbar counts from live row state
func (m Model) refreshCounts() Model {
	m.counts = filter.Count(m.rows, m.collapsed)
	return m
}

// updateListSizes updates list dimensions based on terminal size
func (m Model) updateListSizes() Model {
	// Reserve space for header (2), search line (2), column headers (1),
	// no-results line (1), help (2)
	listHeight := m.height - 8
	if m.panelOpen {
		listHeight -= m.panelHeight()
	}
	if listHeight < 3 {
		listHeight = 3
	}
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}

	m.rowDelegate.SetWidth(listWidth)
	m.rowList.SetSize(listWidth, listHeight)
	return m
}

// selectedGroup returns the group header under the cursor, or ""
func (m Model) selectedGroup() string {
	if item, ok := m.rowList.SelectedItem().(groupItem); ok {
		return item.name
	}
	return ""
}

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"callsheet/internal/filter"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m = m.updateListSizes()
		return m, nil

	case rosterLoadedMsg:
		m.rows = msg.Entries
		m.headers = msg.Headers
		m.err = nil
		var cmd tea.Cmd
		m, cmd = m.applyFilter()
		return m, cmd

	case rosterChangedMsg:
		// External mutation: reload, re-apply the current filter and
		// let the deferred count refresh follow
		return m, tea.Batch(m.loadRosterCmd(), m.watchRosterCmd())

	case searchDebounceMsg:
		// Stale timers were implicitly cancelled by a newer keystroke
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.state.Term = m.searchInput.Value()
		var cmd tea.Cmd
		m, cmd = m.applyFilter()
		return m, cmd

	case refreshCountsMsg:
		m = m.refreshCounts()
		return m, nil

	case errMsg:
		m.err = msg.error
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keys by mode: search input, open panel, then the
// normal table bindings
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.searchInput.Focused() {
		return m.handleSearchKey(msg)
	}
	if m.panelOpen {
		return m.handlePanelKey(msg)
	}
	return m.handleTableKey(msg)
}

// handleSearchKey feeds keys to the search box and debounces filter
// passes
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		return m, nil
	case "enter":
		// Apply immediately, skipping the pending debounce
		m.searchInput.Blur()
		m.searchSeq++
		m.state.Term = m.searchInput.Value()
		var cmd tea.Cmd
		m, cmd = m.applyFilter()
		return m, cmd
	}

	before := m.searchInput.Value()
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(inputCmd, m.debounceCmd(m.searchSeq))
	}
	return m, inputCmd
}

// handlePanelKey drives the filter panel. Bindings exist only while the
// panel is open; anything outside them closes it, like a click outside
// the panel.
func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := m.cfg.Statuses

	switch msg.String() {
	case "esc":
		m.panelOpen = false
		m = m.updateListSizes()
		return m, nil

	case "up", "k":
		if m.panelIdx > 0 {
			m.panelIdx--
		}
		return m, nil

	case "down", "j":
		if m.panelIdx < len(statuses)-1 {
			m.panelIdx++
		}
		return m, nil

	case "enter", " ":
		if m.panelIdx >= 0 && m.panelIdx < len(statuses) {
			return m.toggleCategoryFromToolbar(statuses[m.panelIdx].Key)
		}
		return m, nil
	}

	if key := m.statusKeyForDigit(msg.String()); key != "" {
		return m.toggleCategoryFromToolbar(key)
	}

	// Outside interaction: close, then handle the key normally
	m.panelOpen = false
	m = m.updateListSizes()
	return m.handleTableKey(msg)
}

// handleTableKey handles the normal table bindings
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "/":
		m.searchInput.Focus()
		return m, nil

	case "f":
		return m.togglePanel()

	case "c":
		return m.clearAll()

	case "g", "home":
		// Scroll to top
		m.rowList.Select(0)
		return m, nil

	case "z":
		if g := m.selectedGroup(); g != "" {
			m.collapsed[g] = !m.collapsed[g]
			m = m.rebuildItems()
			return m, m.refreshCountsCmd()
		}

	case "r":
		return m, tea.Batch(m.loadRosterCmd(), m.refreshCountsCmd())
	}

	if key := m.statusKeyForDigit(msg.String()); key != "" {
		return m.toggleCategory(key)
	}

	var cmd tea.Cmd
	m.rowList, cmd = m.rowList.Update(msg)
	return m, cmd
}

// togglePanel opens or closes the filter panel. Opening moves the
// cursor to the first status button.
func (m Model) togglePanel() (Model, tea.Cmd) {
	m.panelOpen = !m.panelOpen
	if m.panelOpen {
		m.panelIdx = 0
	}
	m = m.updateListSizes()
	return m, nil
}

// toggleCategory flips the single-select status filter and re-renders
// button state from the result
func (m Model) toggleCategory(key string) (Model, tea.Cmd) {
	m.state = filter.Toggle(m.state, key)
	var cmd tea.Cmd
	m, cmd = m.applyFilter()
	return m, cmd
}

// toggleCategoryFromToolbar applies the category and closes the panel
func (m Model) toggleCategoryFromToolbar(key string) (Model, tea.Cmd) {
	m.panelOpen = false
	m = m.updateListSizes()
	return m.toggleCategory(key)
}

// clearAll resets filter state, restores all rows, clears the search
// box and hides the no-results indicator
func (m Model) clearAll() (Model, tea.Cmd) {
	m.state = filter.Clear()
	m.searchInput.SetValue("")
	m.searchSeq++ // cancel any pending debounce pass
	var cmd tea.Cmd
	m, cmd = m.applyFilter()
	return m, cmd
}

// statusKeyForDigit maps "1".."9" to the n-th configured status key
func (m Model) statusKeyForDigit(s string) string {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return ""
	}
	idx := int(s[0] - '1')
	if idx >= len(m.cfg.Statuses) {
		return ""
	}
	return m.cfg.Statuses[idx].Key
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		_ = m.watcher.Stop()
	}
	return m, tea.Quit
}

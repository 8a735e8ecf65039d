package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"callsheet/internal/config"
)

// theme holds the resolved styles for the configured catppuccin flavour
type theme struct {
	flavour catppuccin.Flavour

	title        lipgloss.Style
	status       lipgloss.Style
	help         lipgloss.Style
	muted        lipgloss.Style
	columnHeader lipgloss.Style
	selected     lipgloss.Style
	groupHeader  lipgloss.Style
	err          lipgloss.Style

	// mark mirrors the original table's <mark>: dark text on yellow
	mark lipgloss.Style

	link      lipgloss.Style
	noResults lipgloss.Style

	panelBorder    lipgloss.Style
	buttonActive   lipgloss.Style
	buttonInactive lipgloss.Style
	buttonCursor   lipgloss.Style
	countBadge     lipgloss.Style
}

// newTheme builds the style set for a flavour name
func newTheme(name string) theme {
	fl := flavour(name)

	base := lipgloss.NewStyle().Foreground(lipgloss.Color(fl.Text().Hex))
	mutedColor := lipgloss.Color(fl.Overlay1().Hex)

	return theme{
		flavour: fl,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fl.Mauve().Hex)),

		status: lipgloss.NewStyle().Foreground(mutedColor),
		help:   lipgloss.NewStyle().Foreground(mutedColor),
		muted:  lipgloss.NewStyle().Foreground(mutedColor),

		columnHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fl.Subtext1().Hex)).
			Underline(true),

		selected: lipgloss.NewStyle().
			Background(lipgloss.Color(fl.Surface1().Hex)).
			Foreground(lipgloss.Color(fl.Text().Hex)).
			Bold(true),

		groupHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fl.Sapphire().Hex)),

		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Red().Hex)).
			Bold(true).
			Padding(1),

		mark: lipgloss.NewStyle().
			Background(lipgloss.Color(fl.Yellow().Hex)).
			Foreground(lipgloss.Color(fl.Crust().Hex)).
			Bold(true),

		link: base.Underline(true).
			Foreground(lipgloss.Color(fl.Blue().Hex)),

		noResults: lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true),

		panelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(fl.Surface2().Hex)).
			Padding(0, 1),

		buttonActive: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(fl.Mauve().Hex)).
			Foreground(lipgloss.Color(fl.Crust().Hex)).
			Padding(0, 1),

		buttonInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fl.Text().Hex)).
			Padding(0, 1),

		buttonCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(fl.Mauve().Hex)),

		countBadge: lipgloss.NewStyle().
			Background(lipgloss.Color(fl.Surface1().Hex)).
			Foreground(lipgloss.Color(fl.Subtext1().Hex)).
			Padding(0, 1),
	}
}

// flavour maps a config theme name to a catppuccin flavour
func flavour(name string) catppuccin.Flavour {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// badgeStyle returns the style for a status badge, colored by the
// status definition's catppuccin color name
func (t theme) badgeStyle(def *config.StatusDef) lipgloss.Style {
	color := "overlay0"
	if def != nil && def.Color != "" {
		color = def.Color
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.colorByName(color).Hex))
}

// colorByName resolves a catppuccin color name on the active flavour.
// Unknown names fall back to the text color.
func (t theme) colorByName(name string) catppuccin.Color {
	fl := t.flavour
	switch name {
	case "rosewater":
		return fl.Rosewater()
	case "flamingo":
		return fl.Flamingo()
	case "pink":
		return fl.Pink()
	case "mauve":
		return fl.Mauve()
	case "red":
		return fl.Red()
	case "maroon":
		return fl.Maroon()
	case "peach":
		return fl.Peach()
	case "yellow":
		return fl.Yellow()
	case "green":
		return fl.Green()
	case "teal":
		return fl.Teal()
	case "sky":
		return fl.Sky()
	case "sapphire":
		return fl.Sapphire()
	case "blue":
		return fl.Blue()
	case "lavender":
		return fl.Lavender()
	case "subtext1":
		return fl.Subtext1()
	case "subtext0":
		return fl.Subtext0()
	case "overlay2":
		return fl.Overlay2()
	case "overlay1":
		return fl.Overlay1()
	case "overlay0":
		return fl.Overlay0()
	default:
		return fl.Text()
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
const (
	ColorHeader    = lipgloss.Color("63")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("229")
	ColorAccent    = lipgloss.Color("37")
	ColorSelection = lipgloss.Color("57")
)

// Paginator icons.
const (
	IconJumpPrev = "«"
	IconPrev     = "‹"
	IconNext     = "›"
	IconJumpNext = "»"
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// TableHeaderStyle styles the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorMuted).
				BorderBottom(true).
				Bold(true).
				Padding(0, 1)

	// TableCellStyle pads body cells like the header.
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	// TableSelectedStyle highlights the cursor row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelection).
				Bold(false)

	// PageStyle renders a page number.
	PageStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	// CurrentPageStyle renders the current page number.
	CurrentPageStyle = lipgloss.NewStyle().
				Foreground(ColorValue).
				Background(ColorAccent).
				Padding(0, 1)

	// ArrowStyle renders prev/next and jump markers.
	ArrowStyle = lipgloss.NewStyle().Foreground(ColorLabel).Padding(0, 1)

	// PageSizeStyle renders the page-size selector.
	PageSizeStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	// HelpStyle renders the key help line.
	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	// FallbackSelectedStyle highlights the selected card in the responsive view.
	FallbackSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelection)
)

package ui

import "github.com/charmbracelet/lipgloss"

// palette mirrors the journal's two moods: lavender for light, baby
// pink for dark.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	text      lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	errorCol  lipgloss.Color
}

var lightPalette = palette{
	primary:   lipgloss.Color("#9D8DF1"),
	secondary: lipgloss.Color("#C8B6FF"),
	text:      lipgloss.Color("#2D3436"),
	muted:     lipgloss.Color("#A0A0A0"),
	border:    lipgloss.Color("#E2E2E2"),
	errorCol:  lipgloss.Color("#E57373"),
}

var darkPalette = palette{
	primary:   lipgloss.Color("#FFB7C5"),
	secondary: lipgloss.Color("#FFD1DC"),
	text:      lipgloss.Color("#F8F7F4"),
	muted:     lipgloss.Color("#888888"),
	border:    lipgloss.Color("#333333"),
	errorCol:  lipgloss.Color("#F38BA8"),
}

type style struct {
	topBar    lipgloss.Style
	statusBar lipgloss.Style
	title     lipgloss.Style
	date      lipgloss.Style
	question  lipgloss.Style
	faint     lipgloss.Style
	accent    lipgloss.Style
	errText   lipgloss.Style
	chipOn    lipgloss.Style
	chipOff   lipgloss.Style
	box       lipgloss.Style
	today     lipgloss.Style
	selected  lipgloss.Style
	hasEntry  lipgloss.Style
}

func makeStyle(p palette) style {
	return style{
		topBar:    lipgloss.NewStyle().Foreground(p.primary).Bold(true).Padding(0, 1),
		statusBar: lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		title:     lipgloss.NewStyle().Foreground(p.text).Bold(true),
		date:      lipgloss.NewStyle().Foreground(p.muted),
		question:  lipgloss.NewStyle().Foreground(p.text).Italic(true),
		faint:     lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		accent:    lipgloss.NewStyle().Foreground(p.primary),
		errText:   lipgloss.NewStyle().Foreground(p.errorCol).Bold(true),
		chipOn:    lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		chipOff:   lipgloss.NewStyle().Foreground(p.muted).Faint(true),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(1, 2),
		today:     lipgloss.NewStyle().Foreground(p.primary).Bold(true),
		selected:  lipgloss.NewStyle().Foreground(p.secondary).Reverse(true),
		hasEntry:  lipgloss.NewStyle().Foreground(p.primary),
	}
}

func (m *Model) applyTheme(dark bool) {
	if dark {
		m.st = makeStyle(darkPalette)
		return
	}
	m.st = makeStyle(lightPalette)
}

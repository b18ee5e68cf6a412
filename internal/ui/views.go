package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/state"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.mode == modeLock {
		return m.renderLock()
	}

	top := m.renderTopBar()
	status := m.statusBar()

	var body string
	switch m.app.ActiveView {
	case state.ViewDaily:
		body = m.renderDaily()
	case state.ViewCalendar:
		body = m.renderCalendar()
	case state.ViewSummary:
		body = m.renderSummary()
	}

	innerH := m.height - lipgloss.Height(top) - lipgloss.Height(status)
	if innerH < 4 {
		innerH = 4
	}
	body = lipgloss.Place(m.width, innerH, lipgloss.Center, lipgloss.Center, body)

	ui := lipgloss.JoinVertical(lipgloss.Left, top, body, status)

	switch m.mode {
	case modeSettings:
		ui = overlayCenter(ui, m.renderSettings())
	case modePinSetup:
		ui = overlayCenter(ui, m.renderPinSetup())
	}
	return ui
}

func (m Model) renderTopBar() string {
	names := []string{"Daily", "Calendar", "Summary"}
	var tabs []string
	for i, n := range names {
		if state.View(i) == m.app.ActiveView {
			tabs = append(tabs, m.st.chipOn.Render(n))
		} else {
			tabs = append(tabs, m.st.chipOff.Render(n))
		}
	}
	right := m.now.Format("Mon, Jan 2")
	return m.st.topBar.Render("oneline  " + strings.Join(tabs, " · ") + "  |  " + right)
}

func (m Model) statusBar() string {
	hints := "Tab views • Ctrl+O settings • Ctrl+C quit"
	if m.app.ActiveView == state.ViewDaily {
		hints = "Ctrl+S save • Ctrl+G guided/free • Ctrl+L language • " + hints
	}
	if m.status != "" {
		hints = m.status + "   |   " + hints
	}
	return m.st.statusBar.Render(hints)
}

// ----- daily -----

func (m Model) renderDaily() string {
	var b strings.Builder

	date := m.now.Format("Monday, January 2")
	b.WriteString(m.st.date.Render(strings.ToUpper(date)))
	b.WriteString("\n\n")

	if m.guided {
		b.WriteString(m.st.chipOn.Render("[ Guided ]") + " " + m.st.chipOff.Render("  Free  "))
	} else {
		b.WriteString(m.st.chipOff.Render("  Guided  ") + " " + m.st.chipOn.Render("[ Free ]"))
	}
	if m.guided {
		b.WriteString("  " + m.st.faint.Render(strings.ToUpper(string(m.lang))))
	}
	b.WriteString("\n\n")

	switch {
	case m.guided && m.loadingQuestion:
		b.WriteString(m.st.faint.Render("Thinking..."))
	case m.guided:
		b.WriteString(m.st.question.Render(m.question))
	default:
		b.WriteString(m.st.faint.Render(freeModePrompt))
	}
	b.WriteString("\n\n")

	b.WriteString(m.editor.View())
	b.WriteString("\n")
	count := len([]rune(strings.TrimSpace(m.editor.Value())))
	b.WriteString(m.st.faint.Render(fmt.Sprintf("%d/%d", count, journal.MaxTextLen)))

	if m.inputErr != "" {
		b.WriteString("\n" + m.st.errText.Render(m.inputErr))
	}
	if _, ok := m.app.Entries.Get(journal.DateKey(m.now)); ok {
		b.WriteString("\n\n" + m.st.accent.Render("✓ Captured for today"))
	}

	return m.st.box.Render(b.String())
}

// ----- lock -----

func (m Model) renderLock() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("A Moment of Peace"))
	b.WriteString("\n")
	b.WriteString(m.st.faint.Render("ENTER PIN TO UNLOCK"))
	b.WriteString("\n\n")

	dot := m.st.accent
	if m.pinFlash {
		dot = m.st.errText
	}
	var dots []string
	for i := 0; i < 4; i++ {
		if i < len(m.pinInput) || m.pinFlash {
			dots = append(dots, dot.Render("●"))
		} else {
			dots = append(dots, m.st.faint.Render("○"))
		}
	}
	b.WriteString(strings.Join(dots, "  "))
	if m.pinFlash {
		b.WriteString("\n\n" + m.st.errText.Render("Not quite."))
	}

	box := m.st.box.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ----- calendar -----

func (m Model) renderCalendar() string {
	year, month := m.calCursor.Year(), m.calCursor.Month()

	var grid strings.Builder
	grid.WriteString(m.st.title.Render(m.calCursor.Format("January 2006")))
	grid.WriteString("\n\n")
	grid.WriteString(m.st.faint.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	grid.WriteString("\n")

	startWeekday := int(m.calCursor.Weekday())
	total := daysIn(m.calCursor)

	for week := 0; week < 6; week++ {
		wrote := false
		var line strings.Builder
		for wd := 0; wd < 7; wd++ {
			day := week*7 + wd - startWeekday + 1
			if day < 1 || day > total {
				line.WriteString("    ")
				continue
			}
			wrote = true
			_, hasEntry := m.app.Entries.Get(cellDateKey(year, month, day))

			cell := fmt.Sprintf("%2d", day)
			if hasEntry {
				cell += "•"
			} else {
				cell += " "
			}

			switch {
			case day == m.calSelected:
				cell = m.st.selected.Render("[" + cell + "]")
			case isToday(m.now, year, month, day):
				cell = m.st.today.Render("(" + cell + ")")
			default:
				cell = " " + cell + " "
				if hasEntry {
					cell = m.st.hasEntry.Render(cell)
				}
			}
			line.WriteString(cell)
		}
		if wrote {
			grid.WriteString(line.String())
			grid.WriteString("\n")
		}
	}

	grid.WriteString("\n")
	grid.WriteString(m.st.faint.Render("←/→ month • ↑/↓ week • Enter open • t today"))

	out := m.st.box.Render(grid.String())

	if m.detail != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.renderDetail(*m.detail))
	}
	return out
}

func (m Model) renderDetail(e journal.Entry) string {
	var b strings.Builder
	label := e.Date
	if t, err := time.Parse(journal.DateLayout, e.Date); err == nil {
		label = t.Format("January 2, Mon")
	}
	b.WriteString(m.st.date.Render(strings.ToUpper(label)))
	b.WriteString("\n")
	if e.Question != "" {
		b.WriteString(m.st.question.Render(e.Question))
		b.WriteString("\n")
	}
	b.WriteString(wrapText(e.Text, 56))
	b.WriteString("\n")
	b.WriteString(m.st.faint.Render("Esc to close"))
	return m.st.box.Render(b.String())
}

// ----- summary -----

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("The Week's Whisper"))
	b.WriteString("\n")
	b.WriteString(m.st.faint.Render("REFLECTIONS ON YOUR LATEST JOURNEY"))
	b.WriteString("\n\n")

	b.WriteString(m.st.accent.Render("AI REFLECTION"))
	b.WriteString("\n")
	if m.loadingInsight {
		b.WriteString(m.st.faint.Render("Listening to your week..."))
	} else {
		b.WriteString(m.st.question.Render("“" + wrapText(m.insightText, 56) + "”"))
	}
	b.WriteString("\n\n")

	if len(m.recent) == 0 {
		b.WriteString(m.st.faint.Render("Quiet moments... keep writing to see your history."))
		return m.st.box.Render(b.String())
	}

	for i, e := range m.recent {
		if i > 0 {
			b.WriteString("\n")
		}
		label := e.Date
		if t, err := time.Parse(journal.DateLayout, e.Date); err == nil {
			label = t.Format("Mon, Jan 2")
		}
		b.WriteString(m.st.date.Render("○ " + strings.ToUpper(label)))
		b.WriteString("\n")
		if e.Question != "" {
			b.WriteString("  " + m.st.faint.Render(truncate(e.Question, 52)) + "\n")
		}
		b.WriteString("  " + wrapText(e.Text, 54) + "\n")
	}

	return m.st.box.Render(b.String())
}

// ----- settings -----

func (m Model) renderSettings() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("Settings"))
	b.WriteString("\n\n")

	theme := "light"
	if m.app.DarkMode {
		theme = "dark"
	}
	b.WriteString(fmt.Sprintf(" d  Theme: %s\n", m.st.accent.Render(theme)))

	if m.app.Gate.Required() {
		b.WriteString(" p  Remove PIN lock\n")
		b.WriteString(" l  Lock journal now\n")
	} else {
		b.WriteString(" p  Enable PIN lock\n")
		b.WriteString(m.st.faint.Render(" l  Lock journal (set a PIN first)") + "\n")
	}
	b.WriteString("\n" + m.st.faint.Render("Esc to close"))
	return m.st.box.Render(b.String())
}

func (m Model) renderPinSetup() string {
	var b strings.Builder
	b.WriteString(m.st.title.Render("Enable PIN lock"))
	b.WriteString("\n\n")
	b.WriteString("New 4-digit PIN: " + m.pinSetup.View())
	if m.pinSetupErr != "" {
		b.WriteString("\n" + m.st.errText.Render(m.pinSetupErr))
	}
	b.WriteString("\n\n" + m.st.faint.Render("Enter to save • Esc to cancel"))
	return m.st.box.Render(b.String())
}

// ----- helpers -----

func overlayCenter(base, modal string) string {
	w := lipgloss.Width(base)
	h := lipgloss.Height(base)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, modal)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

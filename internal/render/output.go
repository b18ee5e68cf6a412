package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/oneline/internal/journal"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
)

// Config contains configuration for output rendering
type Config struct {
	Format OutputFormat
	Color  bool
}

func DefaultConfig() *Config {
	return &Config{Format: FormatDefault, Color: true}
}

// Renderer handles output formatting
type Renderer struct {
	config *Config
	styles *styles
}

type styles struct {
	Date     lipgloss.Style
	Question lipgloss.Style
	Text     lipgloss.Style
	Meta     lipgloss.Style
}

func NewRenderer(config *Config) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *styles {
	if color {
		return &styles{
			Date:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA")),
			Question: lipgloss.NewStyle().Italic(true).Faint(true),
			Text:     lipgloss.NewStyle(),
			Meta:     lipgloss.NewStyle().Faint(true),
		}
	}
	return &styles{
		Date:     lipgloss.NewStyle().Bold(true),
		Question: lipgloss.NewStyle(),
		Text:     lipgloss.NewStyle(),
		Meta:     lipgloss.NewStyle(),
	}
}

// RenderEntries renders entries in the configured format. The caller
// supplies the order; it is preserved.
func (r *Renderer) RenderEntries(entries []journal.Entry) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(entries)
	case FormatCSV:
		return r.renderCSV(entries)
	default:
		return r.renderDefault(entries)
	}
}

func (r *Renderer) renderDefault(entries []journal.Entry) (string, error) {
	if len(entries) == 0 {
		return r.styles.Meta.Render("No entries yet."), nil
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		label := e.Date
		if t, err := time.Parse(journal.DateLayout, e.Date); err == nil {
			label = t.Format("Mon, Jan 2 2006")
		}
		b.WriteString(r.styles.Date.Render(label))
		b.WriteString("\n")
		if e.Question != "" {
			b.WriteString("  " + r.styles.Question.Render(e.Question) + "\n")
		}
		b.WriteString("  " + r.styles.Text.Render(e.Text) + "\n")
	}
	return b.String(), nil
}

func (r *Renderer) renderJSON(entries []journal.Entry) (string, error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Renderer) renderCSV(entries []journal.Entry) (string, error) {
	var b strings.Builder
	b.WriteString("date,question,text,timestamp\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s,%s,%s,%d\n",
			escapeCSV(e.Date), escapeCSV(e.Question), escapeCSV(e.Text), e.Timestamp))
	}
	return b.String(), nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

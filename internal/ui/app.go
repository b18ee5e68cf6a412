package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ramanasai/oneline/internal/config"
	"github.com/ramanasai/oneline/internal/insight"
	"github.com/ramanasai/oneline/internal/journal"
	"github.com/ramanasai/oneline/internal/localstore"
	"github.com/ramanasai/oneline/internal/pin"
	"github.com/ramanasai/oneline/internal/state"
)

type mode int

const (
	modeView mode = iota
	modeLock
	modeSettings
	modePinSetup
)

const freeModePrompt = "Empty your heart on this line."
const summaryEmptyText = "Your weekly patterns await your first entries."

type Model struct {
	// layout
	width, height int

	// time
	loc *time.Location
	now time.Time

	app      *state.App
	provider *insight.Provider
	cfg      config.Config

	mode mode
	st   style

	// daily view
	editor          textarea.Model
	guided          bool
	lang            insight.Lang
	question        string
	loadingQuestion bool
	questionSeq     int
	inputErr        string

	// lock screen
	pinInput string
	pinFlash bool
	pinSeq   int

	// settings
	pinSetup    textinput.Model
	pinSetupErr string

	// calendar view: cursor is always the first of the shown month
	calCursor   time.Time
	calSelected int
	detail      *journal.Entry

	// summary view
	recent         []journal.Entry
	insightText    string
	loadingInsight bool
	insightSeq     int

	status    string
	statusSeq int
	initCmd   tea.Cmd
}

// Run opens the records, loads state and runs the TUI.
func Run(cfg config.Config) error {
	rec, err := localstore.Open(cfg.DataDir)
	if err != nil {
		return err
	}

	app := state.Load(rec)
	provider := insight.NewProvider(insight.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model))

	m := NewModel(app, provider, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	return runErr
}

// NewModel builds the initial model. The gate decides the first screen.
func NewModel(app *state.App, provider *insight.Provider, cfg config.Config) Model {
	ed := textarea.New()
	ed.Placeholder = "One line is enough..."
	ed.CharLimit = journal.MaxTextLen
	ed.SetHeight(4)
	ed.SetWidth(60)
	ed.ShowLineNumbers = false
	ed.Focus()

	ps := textinput.New()
	ps.Placeholder = "4 digits"
	ps.CharLimit = pin.Length
	ps.Width = 10
	ps.EchoMode = textinput.EchoPassword

	now := time.Now()
	m := Model{
		loc:      now.Location(),
		now:      now,
		app:      app,
		provider: provider,
		cfg:      cfg,
		editor:   ed,
		lang:     insight.Lang(cfg.Language),
		pinSetup: ps,
	}
	m.applyTheme(app.DarkMode)
	m.calCursor = monthStart(now)
	m.calSelected = now.Day()

	if app.Gate.Required() && !app.Gate.Unlocked() {
		m.mode = modeLock
	} else {
		m.mode = modeView
		m, m.initCmd = m.enterDaily()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickNow(), m.initCmd)
}

// ---------- messages & commands ----------

type tickMsg struct{ now time.Time }
type questionMsg struct {
	seq  int
	text string
}
type insightMsg struct {
	seq  int
	text string
}
type pinClearMsg struct{ seq int }
type statusClearMsg struct{ seq int }

func tickNow() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{now: time.Now()} })
}

func (m Model) fetchQuestionCmd() tea.Cmd {
	seq, lang, p := m.questionSeq, m.lang, m.provider
	return func() tea.Msg {
		return questionMsg{seq: seq, text: p.DailyQuestion(context.Background(), lang)}
	}
}

func (m Model) fetchInsightCmd(texts []string) tea.Cmd {
	seq, p := m.insightSeq, m.provider
	return func() tea.Msg {
		return insightMsg{seq: seq, text: p.WeeklyInsight(context.Background(), texts)}
	}
}

func pinClearAfter(seq int) tea.Cmd {
	return tea.Tick(800*time.Millisecond, func(time.Time) tea.Msg { return pinClearMsg{seq: seq} })
}

// setStatus shows a transient status-bar message that expires on its
// own unless a newer one replaces it first.
func (m Model) setStatus(s string) (Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(4*time.Second, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

// ---------- view transitions ----------

func (m Model) enterDaily() (Model, tea.Cmd) {
	m.app.ActiveView = state.ViewDaily
	m.detail = nil
	m.inputErr = ""

	if e, ok := m.app.Entries.Get(journal.DateKey(m.now)); ok {
		if m.editor.Value() == "" {
			m.editor.SetValue(e.Text)
		}
		if e.Question != "" {
			m.question = e.Question
			m.guided = true
		} else {
			m.guided = false
		}
		m.loadingQuestion = false
		return m, nil
	}

	m.guided = true
	if m.question == "" && !m.loadingQuestion {
		m.loadingQuestion = true
		m.questionSeq++
		return m, m.fetchQuestionCmd()
	}
	return m, nil
}

func (m Model) enterCalendar() (Model, tea.Cmd) {
	m.app.ActiveView = state.ViewCalendar
	m.calCursor = monthStart(m.now)
	m.calSelected = m.now.Day()
	m.detail = nil
	return m, nil
}

// enterSummary requests the insight exactly once per entry into the
// view; re-renders reuse the stored text.
func (m Model) enterSummary() (Model, tea.Cmd) {
	m.app.ActiveView = state.ViewSummary
	m.detail = nil
	m.recent = m.app.Entries.Recent(7)

	if len(m.recent) == 0 {
		m.loadingInsight = false
		m.insightText = summaryEmptyText
		return m, nil
	}

	texts := make([]string, len(m.recent))
	for i, e := range m.recent {
		texts[i] = e.Text
	}
	m.loadingInsight = true
	m.insightSeq++
	return m, m.fetchInsightCmd(texts)
}

// ---------- update ----------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		prevDay := journal.DateKey(m.now)
		m.now = msg.now.In(m.loc)
		if journal.DateKey(m.now) != prevDay && m.app.ActiveView == state.ViewDaily && m.mode == modeView {
			// midnight rolled over; today's draft belongs to a new date
			var cmd tea.Cmd
			m.editor.SetValue("")
			m.question = ""
			m, cmd = m.enterDaily()
			return m, tea.Batch(tickNow(), cmd)
		}
		return m, tickNow()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor.SetWidth(clamp(msg.Width-8, 24, 72))
		return m, nil

	case questionMsg:
		// answer to the latest request for today's draft; cache it even
		// when the user has wandered off, only the rendering is gated
		if msg.seq == m.questionSeq {
			m.question = msg.text
			m.loadingQuestion = false
		}
		return m, nil

	case insightMsg:
		if msg.seq == m.insightSeq && m.app.ActiveView == state.ViewSummary {
			m.insightText = msg.text
			m.loadingInsight = false
		}
		return m, nil

	case pinClearMsg:
		if msg.seq == m.pinSeq && m.pinFlash {
			m.pinFlash = false
			m.pinInput = ""
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		k := msg.String()

		if k == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case modeLock:
			return m.updateLock(k)
		case modeSettings:
			return m.updateSettings(k)
		case modePinSetup:
			return m.updatePinSetup(msg)
		case modeView:
			return m.updateView(msg)
		}
	}
	return m, nil
}

func (m Model) updateLock(k string) (tea.Model, tea.Cmd) {
	if m.pinFlash {
		return m, nil
	}
	switch {
	case k == "backspace" && len(m.pinInput) > 0:
		m.pinInput = m.pinInput[:len(m.pinInput)-1]
		return m, nil
	case len(k) == 1 && k[0] >= '0' && k[0] <= '9' && len(m.pinInput) < pin.Length:
		m.pinInput += k
		if len(m.pinInput) < pin.Length {
			return m, nil
		}
		if m.app.Gate.Submit(m.pinInput) {
			m.pinInput = ""
			m.mode = modeView
			var cmd tea.Cmd
			m, cmd = m.enterDaily()
			return m, cmd
		}
		m.pinFlash = true
		m.pinSeq++
		return m, pinClearAfter(m.pinSeq)
	}
	return m, nil
}

func (m Model) updateSettings(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc", "ctrl+o":
		m.mode = modeView
		return m, nil
	case "d":
		m.app.SetDarkMode(!m.app.DarkMode)
		m.applyTheme(m.app.DarkMode)
		return m, nil
	case "p":
		if m.app.Gate.Required() {
			m.app.ClearPIN()
			return m.setStatus("PIN removed")
		}
		m.pinSetup.SetValue("")
		m.pinSetupErr = ""
		m.pinSetup.Focus()
		m.mode = modePinSetup
		return m, nil
	case "l":
		if m.app.Gate.Required() {
			m.app.Gate.Lock()
			m.pinInput = ""
			m.pinFlash = false
			m.mode = modeLock
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updatePinSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeSettings
		return m, nil
	case "enter":
		if err := m.app.SetPIN(m.pinSetup.Value()); err != nil {
			m.pinSetupErr = "PIN must be exactly 4 digits."
			return m, nil
		}
		m.mode = modeSettings
		return m.setStatus("PIN enabled")
	}
	var cmd tea.Cmd
	m.pinSetup, cmd = m.pinSetup.Update(msg)
	return m, cmd
}

func (m Model) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	switch k {
	case "tab":
		return m.switchView(1)
	case "shift+tab":
		return m.switchView(-1)
	case "ctrl+o":
		m.mode = modeSettings
		return m, nil
	}

	switch m.app.ActiveView {
	case state.ViewDaily:
		return m.updateDaily(msg)
	case state.ViewCalendar:
		return m.updateCalendarView(k)
	case state.ViewSummary:
		if k == "q" {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) switchView(dir int) (tea.Model, tea.Cmd) {
	next := (int(m.app.ActiveView) + dir + 3) % 3
	switch state.View(next) {
	case state.ViewDaily:
		return m.enterDaily()
	case state.ViewCalendar:
		return m.enterCalendar()
	default:
		return m.enterSummary()
	}
}

func (m Model) updateDaily(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+g":
		m.guided = !m.guided
		m.inputErr = ""
		if m.guided && m.question == "" && !m.loadingQuestion {
			m.loadingQuestion = true
			m.questionSeq++
			return m, m.fetchQuestionCmd()
		}
		return m, nil
	case "ctrl+l":
		if m.lang == insight.LangEnglish {
			m.lang = insight.LangArabic
		} else {
			m.lang = insight.LangEnglish
		}
		if m.guided {
			m.loadingQuestion = true
			m.questionSeq++
			return m, m.fetchQuestionCmd()
		}
		return m, nil
	case "ctrl+s":
		return m.saveEntry()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// saveEntry upserts today's line. Empty text is a silent no-op;
// oversize text is rejected without touching the store.
func (m Model) saveEntry() (tea.Model, tea.Cmd) {
	clean, err := journal.CleanText(m.editor.Value())
	switch err {
	case nil:
	case journal.ErrEmptyText:
		return m, nil
	default:
		m.inputErr = "Keep it to 300 characters."
		return m, nil
	}

	question := ""
	if m.guided {
		question = m.question
	}
	e := journal.Entry{
		Date:      journal.DateKey(m.now),
		Text:      clean,
		Question:  question,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := m.app.Entries.Upsert(e); err != nil {
		return m.setStatus("save failed: " + err.Error())
	}
	m.inputErr = ""
	m.editor.SetValue(clean)
	return m.setStatus("Captured for today")
}

func (m Model) updateCalendarView(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "esc":
		m.detail = nil
		return m, nil
	case "q":
		if m.detail == nil {
			return m, tea.Quit
		}
		m.detail = nil
		return m, nil
	case "left", "h":
		m.calCursor = m.calCursor.AddDate(0, -1, 0)
		m.calSelected = clamp(m.calSelected, 1, daysIn(m.calCursor))
		m.detail = nil
		return m, nil
	case "right", "l":
		m.calCursor = m.calCursor.AddDate(0, 1, 0)
		m.calSelected = clamp(m.calSelected, 1, daysIn(m.calCursor))
		m.detail = nil
		return m, nil
	case "up", "k":
		m.calSelected = clamp(m.calSelected-7, 1, daysIn(m.calCursor))
		return m, nil
	case "down", "j":
		m.calSelected = clamp(m.calSelected+7, 1, daysIn(m.calCursor))
		return m, nil
	case "t":
		m.calCursor = monthStart(m.now)
		m.calSelected = m.now.Day()
		return m, nil
	case "enter":
		key := cellDateKey(m.calCursor.Year(), m.calCursor.Month(), m.calSelected)
		if e, ok := m.app.Entries.Get(key); ok {
			m.detail = &e
		}
		return m, nil
	}
	return m, nil
}

// ---------- calendar math ----------

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func daysIn(monthCursor time.Time) int {
	return monthStart(monthCursor).AddDate(0, 1, -1).Day()
}

// cellDateKey builds the zero-padded store key for a grid cell.
func cellDateKey(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(journal.DateLayout)
}

// isToday marks a cell only when the cursor's month and year match the
// real current ones and the day number matches the real current day.
func isToday(now time.Time, year int, month time.Month, day int) bool {
	return now.Year() == year && now.Month() == month && now.Day() == day
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

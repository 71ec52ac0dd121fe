// Package tui provides the Bubble Tea boss fight interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/lyricboss/internal/session"
	"github.com/verte-zerg/lyricboss/internal/stats"
)

const (
	fallbackWidth = 80
	minPanelWidth = 30
	healthShare   = 0.65
)

// Model implements the Bubble Tea typing UI.
type Model struct {
	session *session.Session
	lines   []string
	title   string
	log     zerolog.Logger

	keys     keyMap
	help     help.Model
	health   progress.Model
	progress progress.Model

	// wrong is the last rejected rune, shown until an outcome clears it.
	wrong    bool
	lastRune rune

	width  int
	height int
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	panelTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A")).Padding(0, 1)
	lineHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	typedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	cursorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FADB14")).Bold(true)
	wrongCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#595959"))
	messageStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
)

// NewModel constructs a typing TUI model around s.
func NewModel(s *session.Session, title string, logger zerolog.Logger) *Model {
	m := &Model{
		session:  s,
		lines:    s.Lines(),
		title:    title,
		log:      logger,
		keys:     newKeyMap(),
		help:     help.New(),
		health:   progress.New(progress.WithSolidFill("#52C41A"), progress.WithoutPercentage()),
		progress: progress.New(progress.WithSolidFill("#13C2C2"), progress.WithoutPercentage()),
	}
	m.syncKeys()
	m.resize(fallbackWidth)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize(m.width)
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeySpace:
			m.submit(' ')
		case tea.KeyEnter:
			m.submit('\n')
		case tea.KeyTab:
			m.submit('\t')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.submit(r)
			}
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) submit(r rune) {
	out := m.session.Submit(r)
	switch {
	case out.Kind == session.Wrong:
		m.wrong = true
		m.lastRune = out.Rune
	case out.ClearsWrongHint():
		m.wrong = false
	}
	m.syncKeys()

	ev := m.log.Debug()
	if out.Kind == session.Victory || out.Kind == session.Restarted {
		ev = m.log.Info()
	}
	ev.Str("outcome", out.String()).
		Int("cursor", m.session.Cursor()).
		Float64("health", m.session.Health()).
		Msg("input")
}

func (m *Model) syncKeys() {
	m.keys.Restart.SetEnabled(m.session.AwaitingRestart())
}

// contentWidth is the outer width of every panel.
func contentWidth(total int) int {
	w := int(float64(total) * 0.70)
	if w < minPanelWidth {
		w = minPanelWidth
	}
	return w
}

func (m *Model) resize(total int) {
	w := contentWidth(total)
	left := int(float64(w) * healthShare)
	m.health.Width = maxInt(left-panelChrome, 1)
	m.progress.Width = maxInt(w-left-panelChrome, 1)
	m.help.Width = w
}

// panelChrome is the horizontal space taken by a panel border and padding.
const panelChrome = 4

// View implements tea.Model.
func (m *Model) View() string {
	total := m.width
	if total == 0 {
		total = fallbackWidth
	}
	w := contentWidth(total)
	left := int(float64(w) * healthShare)

	header := panel("", centered(titleStyle.Render(m.title), w-panelChrome), w)
	gauges := lipgloss.JoinHorizontal(lipgloss.Top,
		panel("Boss HP", m.renderHealth(), left),
		panel("Progress", m.renderProgress(), w-left),
	)
	lyrics := panel("Lyrics", m.renderLyrics(w-panelChrome), w)
	message := panel("Message", centered(messageStyle.Render(m.session.Message()), w-panelChrome), w)
	footer := m.help.View(m.keys)

	content := lipgloss.JoinVertical(lipgloss.Left, header, gauges, lyrics, message, footer)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHealth() string {
	pct := stats.ClampPercent(m.session.Health())
	label := fmt.Sprintf("%5.1f%%", pct)
	return m.health.ViewAs(pct/100) + "\n" + label
}

func (m *Model) renderProgress() string {
	pct := stats.ClampPercent(m.session.Progress())
	label := fmt.Sprintf("%5.1f%% (%d/%d)", pct, m.session.Cursor(), m.session.Total())
	return m.progress.ViewAs(pct/100) + "\n" + label
}

func (m *Model) renderLyrics(width int) string {
	lineIdx, typed := m.session.LineState()
	var current []rune
	if lineIdx < len(m.lines) {
		current = []rune(m.lines[lineIdx])
	}
	lineNo := lineIdx + 1
	if len(m.lines) == 0 {
		lineNo = 0
	}
	head := lineHeaderStyle.Render(fmt.Sprintf("Line %d/%d", lineNo, len(m.lines))) +
		"   " + fmt.Sprintf("Position %d/%d", typed, len(current))
	if m.wrong {
		head += "   " + wrongCursorStyle.Render(fmt.Sprintf("typed %q", m.lastRune))
	}

	rows := wrapStyledRunes(buildStyledRunes(current, typed, m.wrong), width)
	body := make([]string, 0, len(rows)+1)
	body = append(body, centered(head, width))
	for _, row := range rows {
		body = append(body, centered(row, width))
	}
	return strings.Join(body, "\n")
}

func panel(title, body string, width int) string {
	if title != "" {
		body = panelTitleStyle.Render(title) + "\n" + body
	}
	return panelStyle.Width(width - 2).Render(body)
}

func centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

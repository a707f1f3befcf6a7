// Package terminal renders the countdown in a terminal with Bubble Tea.
package terminal

import (
	"strings"
	"time"

	"chronotimer/internal/core/model"
	"chronotimer/internal/ui/pump"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TickMsg asks the model to poll the result stream.
type TickMsg time.Time

// Canceller stops the loop feeding the model.
type Canceller interface {
	Cancel()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")).Padding(1, 2)
	footerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Padding(1, 2)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for a running timer.
type Model struct {
	source pump.Source
	cancel Canceller
	every  time.Duration

	header string
	footer string
	clock  bool

	value    string
	fatal    bool
	finished bool

	width  int
	height int
}

// New builds a model that polls source every interval.
func New(source pump.Source, cancel Canceller, every time.Duration, settings model.Settings) Model {
	if every <= 0 {
		every = time.Millisecond
	}
	clock := settings.Mode() == model.ModeClock
	header, footer := settings.Header, settings.Footer
	if clock {
		header, footer = "", ""
	}
	return Model{
		source: source,
		cancel: cancel,
		every:  every,
		header: header,
		footer: footer,
		clock:  clock,
		value:  "--",
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancel.Cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case TickMsg:
		if result, ok := pump.DrainLatest(m.source); ok {
			m.value = result.Text
			m.fatal = result.IsFatal()
		}
		if m.source.Finished() {
			m.finished = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var lines []string
	if m.header != "" {
		lines = append(lines, headerStyle.Render(m.header))
	}
	if m.fatal {
		lines = append(lines, errorStyle.Render(m.value))
	} else {
		lines = append(lines, valueStyle.Render(m.value))
	}
	if m.footer != "" {
		lines = append(lines, footerStyle.Render(m.footer))
	}
	lines = append(lines, "", hintStyle.Render("q: quit"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return strings.TrimRight(body, " ") + "\n"
}

// Value returns the text currently shown.
func (m Model) Value() string {
	return m.value
}

// Finished reports whether the stream has ended and ticking stopped.
func (m Model) Finished() bool {
	return m.finished
}

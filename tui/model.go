// Package tui is a terminal version of the formatter window: an input
// textarea, a scrollable output pane and a status line.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yllada/json-formatter/common"
	"github.com/yllada/json-formatter/formatter"
)

type pane int

const (
	inputPane pane = iota
	outputPane
)

// chrome is the number of rows used by the title, borders, status and help.
const chrome = 8

var (
	accent = lipgloss.Color("#2196F3")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	paneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))

	activePaneStyle = paneStyle.BorderForeground(accent)
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC27E"))
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#E01B24"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Model is the Bubble Tea model of the terminal formatter.
type Model struct {
	input  textarea.Model
	output viewport.Model
	keys   keyMap
	focus  pane
	result *formatter.Result
	status string
	width  int
	height int
}

// New returns a model with an empty, focused input pane.
func New() Model {
	input := textarea.New()
	input.Placeholder = "Paste JSON here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.Focus()

	return Model{
		input:  input,
		output: viewport.New(0, 0),
		keys:   defaultKeyMap(),
		status: "Ready",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Format):
			m.format()
			return m, nil
		case key.Matches(msg, m.keys.SwitchPane):
			return m.switchPane()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == inputPane {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m *Model) format() {
	result := formatter.Format(m.input.Value())
	m.result = &result
	m.output.SetContent(result.Output)
	m.output.GotoTop()

	if result.OK() {
		m.status = fmt.Sprintf("Formatted %d lines", result.Lines)
	} else {
		m.status = result.Output
	}
}

func (m Model) switchPane() (tea.Model, tea.Cmd) {
	if m.focus == inputPane {
		m.focus = outputPane
		m.input.Blur()
		return m, nil
	}
	m.focus = inputPane
	return m, m.input.Focus()
}

// layout splits the rows left after the chrome between the two panes.
func (m *Model) layout() {
	inner := m.width - 2
	if inner < 1 {
		inner = 1
	}
	rows := m.height - chrome
	if rows < 2 {
		rows = 2
	}

	m.input.SetWidth(inner)
	m.input.SetHeight(rows / 2)
	m.output.Width = inner
	m.output.Height = rows - rows/2
}

// View implements tea.Model.
func (m Model) View() string {
	inputStyle, outputStyle := activePaneStyle, paneStyle
	if m.focus == outputPane {
		inputStyle, outputStyle = paneStyle, activePaneStyle
	}

	status := okStyle.Render(m.status)
	if m.result != nil && !m.result.OK() {
		status = errStyle.Render(m.status)
	}

	var help []string
	for _, b := range m.keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(common.AppName),
		inputStyle.Render(m.input.View()),
		status,
		outputStyle.Render(m.output.View()),
		helpStyle.Render(strings.Join(help, " • ")),
	)
}

// Run starts the terminal formatter and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

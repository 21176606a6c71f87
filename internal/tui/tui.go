// Package tui provides the interactive terminal front end: a title input,
// a spinner while the cascade runs, and the rendered recommendation cards.
package tui

import (
	"context"
	"strings"

	"github.com/Digital-Shane/cinerec/internal/recommend"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Recommender produces recommendations for a free-text title query.
type Recommender interface {
	Recommend(ctx context.Context, title string) recommend.Result
}

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseResults
)

type resultMsg struct {
	result recommend.Result
}

// Model is the bubbletea model for the interactive session.
type Model struct {
	recommender Recommender

	// ctx is canceled when the user quits, aborting any in-flight fetch.
	ctx    context.Context
	cancel context.CancelFunc

	input   textinput.Model
	spin    spinner.Model
	phase   phase
	result  *recommend.Result
	width   int
	height  int
	lastRaw string
}

// NewModel creates the interactive model.
func NewModel(r Recommender) Model {
	input := textinput.New()
	input.Placeholder = "Enter a movie you like"
	input.CharLimit = 200
	input.Width = 48
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = titleStyle

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		recommender: r,
		ctx:         ctx,
		cancel:      cancel,
		input:       input,
		spin:        spin,
		phase:       phaseInput,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "enter":
			switch m.phase {
			case phaseInput:
				query := strings.TrimSpace(m.input.Value())
				if query == "" {
					return m, nil
				}
				m.lastRaw = query
				m.phase = phaseLoading
				return m, tea.Batch(m.spin.Tick, m.fetch(query))
			case phaseResults:
				m.phase = phaseInput
				m.input.SetValue("")
				m.input.Focus()
				return m, textinput.Blink
			}
		}

	case resultMsg:
		result := msg.result
		m.result = &result
		m.phase = phaseResults
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.phase == phaseInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("cinerec — movie recommendations"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("enter: recommend • esc: quit"))
	case phaseLoading:
		b.WriteString(m.spin.View())
		b.WriteString("Fetching recommendations for ")
		b.WriteString(labelStyle.Render(m.lastRaw))
		b.WriteString("…")
	case phaseResults:
		if m.result != nil {
			b.WriteString(RenderResult(*m.result, m.width))
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("enter: new search • esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) fetch(query string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{result: m.recommender.Recommend(m.ctx, query)}
	}
}

// Run starts the interactive program and blocks until it exits.
func Run(r Recommender) error {
	_, err := tea.NewProgram(NewModel(r), tea.WithAltScreen()).Run()
	return err
}

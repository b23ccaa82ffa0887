package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/rpn2tex/internal/rpn"
	"github.com/msto63/rpn2tex/internal/rpn/diag"
	"github.com/msto63/rpn2tex/internal/rpn/latex"
	"github.com/msto63/rpn2tex/internal/rpn/parser"
)

// Model is the interactive converter's TUI model
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	textarea textarea.Model

	// Conversion state
	opts   latex.Options
	result string
	errMsg string
}

// NewModel creates a new TUI model with the given generator options
func NewModel(opts latex.Options) Model {
	ta := textarea.New()
	ta.Placeholder = "RPN expression, e.g. 5 3 +"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return Model{
		textarea: ta,
		opts:     opts,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(min(msg.Width-6, 100))
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlL:
			m.textarea.Reset()
			m.result = ""
			m.errMsg = ""
			return m, nil
		}
	}

	m.textarea, cmd = m.textarea.Update(msg)
	m.convert()

	return m, cmd
}

// convert re-runs the pipeline over the current input
func (m *Model) convert() {
	input := m.textarea.Value()
	if strings.TrimSpace(input) == "" {
		m.result = ""
		m.errMsg = ""
		return
	}

	result, err := rpn.Convert(input, m.opts)
	if err != nil {
		m.result = ""
		m.errMsg = formatError(input, err)
		return
	}

	m.result = result
	m.errMsg = ""
}

// formatError renders a pipeline error with source context
func formatError(input string, err error) string {
	formatter := diag.NewFormatter(input)

	var lexErr *parser.LexError
	var parseErr *parser.ParseError

	switch {
	case errors.As(err, &lexErr):
		return formatter.Format(lexErr.Message, lexErr.Line, lexErr.Column)
	case errors.As(err, &parseErr):
		return formatter.Format(parseErr.Message, parseErr.Line, parseErr.Column)
	default:
		return err.Error()
	}
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("rpn2tex"))
	b.WriteString("\n")
	b.WriteString(FocusedBoxStyle.Render(m.textarea.View()))
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(BoxStyle.Render(ErrorStyle.Render(m.errMsg)))
	case m.result != "":
		b.WriteString(BoxStyle.Render(ResultStyle.Render(m.result)))
	default:
		b.WriteString(HintStyle.Render("Type an RPN expression to convert it."))
	}

	b.WriteString("\n\n")
	b.WriteString(StatusBarStyle.Render("Ctrl+L: clear  Ctrl+C: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

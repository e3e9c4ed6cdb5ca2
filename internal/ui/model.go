package ui

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"quizpad/internal/app"
	"quizpad/internal/clipboard"
	"quizpad/internal/prompt"
)

// Options configures the terminal quiz surface.
type Options struct {
	NoColor       bool
	FeedbackDelay time.Duration
	Prompt        prompt.Options
	// Copy places text on the clipboard; nil disables copying.
	Copy func(text string) error
}

var errNoClipboard = errors.New("clipboard not available")

type mode int

const (
	modeQuiz mode = iota
	modePaste
)

// Model renders a workspace as an interactive quiz using Bubble Tea.
type Model struct {
	workspace *app.Workspace
	opts      Options
	keys      keyMap
	help      help.Model
	paste     textarea.Model
	mode      mode

	loadErr     string
	feedback    string
	feedbackSeq int
	width       int
}

// clearFeedbackMsg clears the copy feedback unless a newer copy replaced it.
type clearFeedbackMsg struct {
	seq int
}

// NewModel constructs a quiz surface over workspace.
func NewModel(workspace *app.Workspace, opts Options) Model {
	if opts.FeedbackDelay <= 0 {
		opts.FeedbackDelay = clipboard.DefaultFeedbackDelay
	}
	paste := textarea.New()
	paste.Placeholder = "Paste the JSON response here..."
	paste.ShowLineNumbers = false
	paste.CharLimit = 0
	paste.SetHeight(12)
	return Model{
		workspace: workspace,
		opts:      opts,
		keys:      defaultKeyMap(),
		help:      help.New(),
		paste:     paste,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update forwards user actions into the workspace.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.paste.SetWidth(max(typed.Width-4, 20))
		return m, nil
	case clearFeedbackMsg:
		if typed.seq == m.feedbackSeq {
			m.feedback = ""
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode == modePaste {
			return m.updatePaste(typed)
		}
		return m.updateQuiz(typed)
	}
	if m.mode == modePaste {
		var cmd tea.Cmd
		m.paste, cmd = m.paste.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.workspace.Session()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Choose):
		if index, ok := choiceIndex(msg.String()); ok {
			session.SelectAnswer(session.Current(), index)
		}
	case key.Matches(msg, m.keys.Previous):
		session.Previous()
	case key.Matches(msg, m.keys.Next):
		session.Next()
	case key.Matches(msg, m.keys.Restart):
		if session.AnsweredCount() > 0 {
			session.Restart()
		}
	case key.Matches(msg, m.keys.Paste):
		m.mode = modePaste
		m.loadErr = ""
		return m, m.paste.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m.copyPrompt()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeQuiz
		m.loadErr = ""
		m.paste.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Load):
		if _, err := m.workspace.Load([]byte(m.paste.Value())); err != nil {
			m.loadErr = err.Error()
			return m, nil
		}
		m.mode = modeQuiz
		m.loadErr = ""
		m.paste.Reset()
		m.paste.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.paste, cmd = m.paste.Update(msg)
	return m, cmd
}

func (m Model) copyPrompt() (tea.Model, tea.Cmd) {
	text, err := prompt.Build(m.opts.Prompt)
	if err == nil {
		if m.opts.Copy == nil {
			err = errNoClipboard
		} else {
			err = m.opts.Copy(text)
		}
	}
	m.feedback = clipboard.Feedback(err)
	m.feedbackSeq++
	seq := m.feedbackSeq
	return m, tea.Tick(m.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return clearFeedbackMsg{seq: seq}
	})
}

// View renders the current screen.
func (m Model) View() string {
	if m.mode == modePaste {
		return renderPaste(m)
	}
	return renderQuiz(m)
}

// Run starts the terminal surface and blocks until the user quits.
func Run(workspace *app.Workspace, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(workspace, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Package ui holds the interactive terminal components of scribe.
package ui

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	_red     = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
	_green   = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	_magenta = lipgloss.AdaptiveColor{Light: "5", Dark: "13"}
	_gray    = lipgloss.Color("8")
)

// ErrCancelled is reported by [Prompt] when the user backs out of it.
var ErrCancelled = errors.New("user cancelled")

// Field is the single question asked by a [Prompt].
type Field interface {
	// Init is called once when the prompt starts.
	Init() tea.Cmd

	// Update handles a message.
	// Return [AcceptField] to finish the prompt.
	Update(msg tea.Msg) tea.Cmd

	// Render writes the field's current state.
	Render(io.Writer)

	// Err reports a failure inside the field.
	// It's shown below the field, and returned by [Prompt.Run].
	Err() error

	// Title is shown before the field. It may be empty.
	Title() string

	// Description is shown below the field until it's accepted.
	// It may be empty.
	Description() string
}

type acceptFieldMsg struct{}

// AcceptField is a [tea.Cmd] that finishes the prompt
// with the field's current value.
func AcceptField() tea.Msg {
	return acceptFieldMsg{}
}

// PromptKeyMap holds the key bindings of a [Prompt].
type PromptKeyMap struct {
	Cancel key.Binding
}

// DefaultPromptKeyMap is the default key map for a [Prompt].
var DefaultPromptKeyMap = PromptKeyMap{
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// PromptStyle controls how a [Prompt] looks.
type PromptStyle struct {
	Title       lipgloss.Style
	Description lipgloss.Style
	Error       lipgloss.Style

	// Done is applied to the whole field after it's accepted.
	Done lipgloss.Style
}

// DefaultPromptStyle is the default style for a [Prompt].
var DefaultPromptStyle = PromptStyle{
	Title:       lipgloss.NewStyle().Foreground(_green).Bold(true),
	Description: lipgloss.NewStyle().Foreground(_gray).Faint(true),
	Error:       lipgloss.NewStyle().Foreground(_red),
	Done:        lipgloss.NewStyle().Faint(true),
}

// Prompt asks the user about a single [Field].
// It's a [tea.Model], normally driven by [Prompt.Run].
type Prompt struct {
	KeyMap PromptKeyMap
	Style  PromptStyle

	field Field
	done  bool
	err   error
}

var _ tea.Model = (*Prompt)(nil)

// NewPrompt builds a prompt for the given field.
func NewPrompt(field Field) *Prompt {
	return &Prompt{
		KeyMap: DefaultPromptKeyMap,
		Style:  DefaultPromptStyle,
		field:  field,
	}
}

// RunOptions specifies options for [Prompt.Run].
type RunOptions struct {
	// Input to read key presses from.
	// Defaults to os.Stdin.
	Input io.Reader

	// Output to draw to.
	// Defaults to os.Stdout.
	Output io.Writer

	// WithoutSignals stops the program from handling
	// interrupts on its own.
	WithoutSignals bool
}

// Run shows the prompt and blocks until it's accepted or cancelled.
func (p *Prompt) Run(opts *RunOptions) error {
	opts = cmp.Or(opts, &RunOptions{})

	var teaOpts []tea.ProgramOption
	if opts.Input != nil {
		teaOpts = append(teaOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(opts.Output))
	}
	if opts.WithoutSignals {
		teaOpts = append(teaOpts, tea.WithoutSignals())
	}

	if _, err := tea.NewProgram(p, teaOpts...).Run(); err != nil {
		return err
	}
	return p.Err()
}

// Err reports whether the prompt was cancelled or the field failed.
func (p *Prompt) Err() error {
	return errors.Join(p.err, p.field.Err())
}

// Init implements tea.Model.
func (p *Prompt) Init() tea.Cmd {
	return p.field.Init()
}

// Update implements tea.Model.
func (p *Prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.done {
		return p, tea.Quit
	}

	switch msg := msg.(type) {
	case acceptFieldMsg:
		p.done = true
		return p, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, p.KeyMap.Cancel) {
			p.err = ErrCancelled
			return p, tea.Quit
		}
	}

	return p, p.field.Update(msg)
}

// View implements tea.Model.
func (p *Prompt) View() string {
	var s strings.Builder
	if title := p.field.Title(); title != "" {
		fmt.Fprintf(&s, "%s: ", p.Style.Title.Render(title))
	}
	p.field.Render(&s)
	if err := p.field.Err(); err != nil {
		fmt.Fprintf(&s, "\n%s", p.Style.Error.Render(err.Error()))
	}

	if p.done {
		return p.Style.Done.Render(s.String()) + "\n"
	}

	if desc := p.field.Description(); desc != "" {
		fmt.Fprintf(&s, "\n%s", p.Style.Description.Render(desc))
	}
	return s.String()
}

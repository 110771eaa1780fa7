package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.abhg.dev/scribe/internal/editor"
)

// OpenEditorKeyMap defines the key bindings for [OpenEditor].
type OpenEditorKeyMap struct {
	Edit   key.Binding
	Accept key.Binding
}

// DefaultOpenEditorKeyMap is the default key map for an [OpenEditor] field.
var DefaultOpenEditorKeyMap = OpenEditorKeyMap{
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "open editor"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("enter/tab", "accept"),
	),
}

// OpenEditorStyle defines the display style for [OpenEditor].
type OpenEditorStyle struct {
	Key    lipgloss.Style // how to highlight keys
	Editor lipgloss.Style
}

// DefaultOpenEditorStyle is the default style for an [OpenEditor] field.
var DefaultOpenEditorStyle = OpenEditorStyle{
	Key:    lipgloss.NewStyle().Foreground(_magenta),
	Editor: lipgloss.NewStyle().Foreground(_green),
}

// _teaExec runs an external command with the program's UI suspended.
var _teaExec = tea.Exec

// OpenEditor is a field that asks the user to press a key
// to open an editor and write a message,
// or to accept the current value as is.
//
// The editor runs through tea.Exec,
// which releases the terminal before the editor starts
// and restores the program's UI after it exits.
type OpenEditor struct {
	KeyMap OpenEditorKeyMap
	Style  OpenEditorStyle

	ctx     context.Context
	runner  *editor.Runner
	command editor.Command

	title string
	desc  string

	value *string
	err   error
}

var _ Field = (*OpenEditor)(nil)

// NewOpenEditor builds an [OpenEditor] field
// that edits value with the given editor command.
//
// The current value is used as the initial content of the editor,
// and replaced with the edited text when the editor exits.
// If the user skips the editor, value is left unchanged.
func NewOpenEditor(ctx context.Context, runner *editor.Runner, cmd editor.Command, value *string) *OpenEditor {
	return &OpenEditor{
		KeyMap:  DefaultOpenEditorKeyMap,
		Style:   DefaultOpenEditorStyle,
		ctx:     ctx,
		runner:  runner,
		command: cmd,
		value:   value,
	}
}

// Err reports any errors encountered during the operation.
func (a *OpenEditor) Err() error {
	return a.err
}

// WithTitle sets the title for the field.
func (a *OpenEditor) WithTitle(title string) *OpenEditor {
	a.title = title
	return a
}

// Title returns the title for the field.
func (a *OpenEditor) Title() string {
	return a.title
}

// WithDescription sets the description for the field.
func (a *OpenEditor) WithDescription(desc string) *OpenEditor {
	a.desc = desc
	return a
}

// Description returns the description for the field.
func (a *OpenEditor) Description() string {
	return a.desc
}

// Init initializes the field.
func (a *OpenEditor) Init() tea.Cmd {
	return nil
}

type editorExitedMsg struct {
	session *editor.Session
	err     error
}

// Update receives a new event from bubbletea
// and updates the field's internal state.
func (a *OpenEditor) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorExitedMsg:
		if msg.err != nil {
			a.err = fmt.Errorf("run editor: %w", msg.err)
			return tea.Quit
		}

		// A file left empty clears the value.
		text, _ := msg.session.Result()
		*a.value = text

		// The field is accepted automatically after the editor is
		// closed.
		return AcceptField

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.KeyMap.Edit):
			session := a.runner.Session(a.ctx, *a.value, a.command)
			return _teaExec(session, func(err error) tea.Msg {
				return editorExitedMsg{session: session, err: err}
			})

		case key.Matches(msg, a.KeyMap.Accept):
			return AcceptField
		}
	}

	return nil
}

// Render renders the field to the screen.
func (a *OpenEditor) Render(w io.Writer) {
	fmt.Fprintf(w, "Press [%v] to open %v or [%v] to skip",
		a.Style.Key.Render(a.KeyMap.Edit.Help().Key),
		a.Style.Editor.Render(a.command.Name()),
		a.Style.Key.Render(a.KeyMap.Accept.Help().Key),
	)
}

// Package dateinput renders a datetime.Input as five text fields that
// unlock left to right.
package dateinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/chromatic/internal/datetime"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Italic(true)
)

// separators[i] is printed after field i.
var separators = [...]string{" - ", " - ", "   ", " : ", ""}

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
	}
}

type Model struct {
	input   *datetime.Input
	fields  []textinput.Model
	focus   datetime.Field
	focused bool
	keys    KeyMap
}

func New() Model {
	m := Model{
		input: datetime.NewInput(),
		keys:  DefaultKeyMap(),
	}
	for _, f := range datetime.Fields() {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder()
		ti.CharLimit = f.MaxLength()
		ti.Width = f.MaxLength()
		m.fields = append(m.fields, ti)
	}
	return m
}

func (m Model) Keys() KeyMap {
	return m.keys
}

// Value is the valid prefix entered so far.
func (m Model) Value() datetime.PartialDate {
	return m.input.CurrentValue()
}

func (m Model) DisplayText() string {
	return m.input.DisplayText()
}

// FocusedField is the field that receives keystrokes.
func (m Model) FocusedField() datetime.Field {
	return m.focus
}

func (m Model) Raw(f datetime.Field) string {
	return m.fields[f].Value()
}

func (m Model) Enabled(f datetime.Field) bool {
	return m.input.Enabled(f)
}

// SetValue loads a stored schedule and focuses the first field that is
// still open for input.
func (m *Model) SetValue(p datetime.PartialDate) {
	m.input.Populate(p)
	m.sync()
	m.focus = m.lastEnabled()
	m.refocus()
}

func (m *Model) Reset() {
	m.input.Reset()
	m.sync()
	m.focus = datetime.Year
	m.refocus()
}

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.refocus()
}

func (m *Model) Blur() {
	m.focused = false
	for i := range m.fields {
		m.fields[i].Blur()
	}
}

func (m Model) Focused() bool {
	return m.focused
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
		return m, cmd
	}
	if !m.focused {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Next):
		return m, m.move(m.focus.Next)
	case key.Matches(keyMsg, m.keys.Prev):
		return m, m.move(m.focus.Prev)
	}

	var cmd tea.Cmd
	before := m.fields[m.focus].Value()
	m.fields[m.focus], cmd = m.fields[m.focus].Update(keyMsg)
	after := m.fields[m.focus].Value()
	if after == before {
		return m, cmd
	}

	m.input.HandleFieldChange(m.focus, after)
	m.sync()

	if m.input.Valid(m.focus) && len(after) == m.focus.MaxLength() {
		if next, ok := m.focus.Next(); ok && m.input.Enabled(next) {
			return m, tea.Batch(cmd, m.move(m.focus.Next))
		}
	}
	return m, cmd
}

// move shifts focus in one direction, only onto enabled fields.
func (m *Model) move(step func() (datetime.Field, bool)) tea.Cmd {
	target, ok := step()
	if !ok || !m.input.Enabled(target) {
		return nil
	}
	m.focus = target
	return m.refocus()
}

func (m *Model) refocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.fields {
		if m.focused && datetime.Field(i) == m.focus {
			cmd = m.fields[i].Focus()
			m.fields[i].CursorEnd()
		} else {
			m.fields[i].Blur()
		}
	}
	return cmd
}

// sync copies the core's raw text back into the widgets, which clears
// fields that were disabled by an upstream edit.
func (m *Model) sync() {
	for _, f := range datetime.Fields() {
		if raw := m.input.Raw(f); m.fields[f].Value() != raw {
			m.fields[f].SetValue(raw)
		}
	}
}

func (m Model) lastEnabled() datetime.Field {
	last := datetime.Year
	for _, f := range datetime.Fields() {
		if m.input.Enabled(f) {
			last = f
		}
	}
	return last
}

func (m Model) View() string {
	var row strings.Builder
	for _, f := range datetime.Fields() {
		state := m.input.State(f)
		switch {
		case !state.Enabled:
			row.WriteString(disabledStyle.Render(f.Placeholder()))
		case state.Err != nil && f != m.focus:
			row.WriteString(invalidStyle.Render(pad(state.Raw, f.MaxLength())))
		default:
			row.WriteString(m.fields[f].View())
		}
		row.WriteString(labelStyle.Render(separators[f]))
	}

	lines := []string{row.String(), summaryStyle.Render(m.input.DisplayText())}
	if err := m.input.Err(m.focus); err != nil {
		lines = append(lines, errorStyle.Render(err.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package tasktable

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/chromatic/internal/models"
)

type EditTaskMsg struct {
	Task models.Task
}

type DeleteTaskMsg struct {
	Task models.Task
}

type ToggleTaskMsg struct {
	Task models.Task
}

const (
	statusWidth   = 10
	categoryWidth = 10
	dateWidth     = 28
	minTitleWidth = 12
)

type KeyMap struct {
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle done"),
		),
	}
}

type Model struct {
	table table.Model
	tasks []models.Task
	keys  KeyMap
}

func New(tasks []models.Task, width, height int) Model {
	t := table.New(
		table.WithColumns(columns(width)),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	m := Model{table: t, keys: DefaultKeyMap()}
	m.SetTasks(tasks)
	return m
}

func columns(width int) []table.Column {
	title := width - statusWidth - categoryWidth - dateWidth - 8
	if title < minTitleWidth {
		title = minTitleWidth
	}
	return []table.Column{
		{Title: "Title", Width: title},
		{Title: "Status", Width: statusWidth},
		{Title: "Category", Width: categoryWidth},
		{Title: "Date/Time", Width: dateWidth},
	}
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m *Model) SetTasks(tasks []models.Task) {
	m.tasks = tasks
	rows := make([]table.Row, len(tasks))
	for i, t := range tasks {
		rows[i] = table.Row{t.Title, t.Status.Label(), t.Category.Label(), t.ScheduleText()}
	}
	m.table.SetRows(rows)
	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) Tasks() []models.Task {
	return m.tasks
}

// Selected returns the task under the cursor.
func (m Model) Selected() (models.Task, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[c], true
}

func (m *Model) SetSize(width, height int) {
	m.table.SetColumns(columns(width))
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

func (m *Model) Focus() {
	m.table.Focus()
}

func (m *Model) Blur() {
	m.table.Blur()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.table.Focused() {
		var emit func(models.Task) tea.Msg
		switch {
		case key.Matches(msg, m.keys.Edit):
			emit = func(t models.Task) tea.Msg { return EditTaskMsg{Task: t} }
		case key.Matches(msg, m.keys.Delete):
			emit = func(t models.Task) tea.Msg { return DeleteTaskMsg{Task: t} }
		case key.Matches(msg, m.keys.Toggle):
			emit = func(t models.Task) tea.Msg { return ToggleTaskMsg{Task: t} }
		}
		if emit != nil {
			task, ok := m.Selected()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return emit(task) }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.tasks) == 0 {
		return "\n  No tasks yet.\n  Pick 'Create task' to add one."
	}
	return m.table.View()
}

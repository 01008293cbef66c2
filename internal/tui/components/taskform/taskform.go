// Package taskform collects a task's details with a huh form and its
// schedule with a dateinput.
package taskform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/models"
	"github.com/julianstephens/chromatic/internal/tui/components/dateinput"
)

// SubmitMsg carries the finished task. IsNew tells create from edit.
type SubmitMsg struct {
	Task  models.Task
	IsNew bool
}

type CancelMsg struct{}

type step int

const (
	stepDetails step = iota
	stepSchedule
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Submit key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// values is shared with the huh fields, which write through pointers.
type values struct {
	Title       string
	Description string
	Category    models.Category
	Status      models.Status
}

type Model struct {
	task   models.Task
	isNew  bool
	values *values
	form   *huh.Form
	date   dateinput.Model
	step   step
	keys   KeyMap
	width  int
}

// NewCreate returns an empty form for a new task.
func NewCreate() Model {
	return newModel(models.NewTask(""), true)
}

// NewEdit returns a form filled from an existing task.
func NewEdit(task models.Task) Model {
	return newModel(task, false)
}

func newModel(task models.Task, isNew bool) Model {
	m := Model{
		task:  task,
		isNew: isNew,
		values: &values{
			Title:       task.Title,
			Description: task.Description,
			Category:    task.Category,
			Status:      task.Status,
		},
		date: dateinput.New(),
		keys: DefaultKeyMap(),
	}
	m.date.SetValue(task.Schedule)
	m.form = m.newDetailsForm()
	return m
}

func (m Model) newDetailsForm() *huh.Form {
	categories := make([]huh.Option[models.Category], 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, huh.NewOption(c.Label(), c))
	}
	statuses := make([]huh.Option[models.Status], 0, len(models.Statuses()))
	for _, s := range models.Statuses() {
		statuses = append(statuses, huh.NewOption(s.Label(), s))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				CharLimit(constants.MaxTitleLength).
				Value(&m.values.Title).
				Validate(models.ValidateTitle),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&m.values.Description),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categories...).
				Value(&m.values.Category),
			huh.NewSelect[models.Status]().
				Title("Status").
				Options(statuses...).
				Value(&m.values.Status),
		),
	).WithShowHelp(true)
	if m.width > 0 {
		form = form.WithWidth(m.width)
	}
	return form
}

func (m Model) IsNew() bool {
	return m.isNew
}

// OnSchedule reports whether the date step is showing.
func (m Model) OnSchedule() bool {
	return m.step == stepSchedule
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m *Model) SetWidth(width int) {
	m.width = width
	m.form = m.form.WithWidth(width)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.step == stepSchedule {
		return m.updateSchedule(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Back) {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.step = stepSchedule
		return m, m.date.Focus()
	case huh.StateAborted:
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, cmd
}

func (m Model) updateSchedule(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			task := m.Task()
			isNew := m.isNew
			return m, func() tea.Msg { return SubmitMsg{Task: task, IsNew: isNew} }
		case key.Matches(msg, m.keys.Back):
			m.date.Blur()
			m.step = stepDetails
			m.form = m.newDetailsForm()
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.date, cmd = m.date.Update(msg)
	return m, cmd
}

// Task applies the form's current values to the task being edited.
func (m Model) Task() models.Task {
	t := m.task
	t.Title = strings.TrimSpace(m.values.Title)
	t.Description = strings.TrimSpace(m.values.Description)
	t.Category = m.values.Category
	t.Status = m.values.Status
	t.Schedule = m.date.Value()
	if t.Status == models.StatusPending && t.IsScheduled() {
		t.Status = models.StatusScheduled
	}
	t.Touch()
	return t
}

func (m Model) View() string {
	heading := "New task"
	if !m.isNew {
		heading = "Edit task"
	}

	if m.step == stepDetails {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(heading),
			"",
			m.form.View(),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading+": schedule"),
		"",
		m.date.View(),
		"",
		hintStyle.Render("tab/shift+tab move • enter save • esc back"),
	)
}

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/chromatic/internal/logger"
	"github.com/julianstephens/chromatic/internal/models"
	"github.com/julianstephens/chromatic/internal/storage"
	"github.com/julianstephens/chromatic/internal/tui/components/taskform"
	"github.com/julianstephens/chromatic/internal/tui/components/tasktable"
	"github.com/julianstephens/chromatic/internal/validation"
)

type SessionState int

const (
	StateTable SessionState = iota
	StateCreate
	StateEdit
	StateConfirmDelete
)

type pane int

const (
	paneSidebar pane = iota
	paneContent
)

// menuItem is a sidebar entry that opens a view.
type menuItem struct {
	title string
	state SessionState
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.title }

type Model struct {
	store         storage.Provider
	state         SessionState
	focus         pane
	keys          KeyMap
	help          help.Model
	sidebar       list.Model
	table         tasktable.Model
	createForm    taskform.Model
	editForm      taskform.Model
	pendingDelete *models.Task
	status        string
	statusIsError bool

	validationWarning   string
	validationConflicts []validation.Conflict
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	sidebar := list.New([]list.Item{
		menuItem{title: "Table view", state: StateTable},
		menuItem{title: "Create task", state: StateCreate},
	}, delegate, sidebarWidth, 6)
	sidebar.SetShowTitle(false)
	sidebar.SetShowStatusBar(false)
	sidebar.SetShowPagination(false)
	sidebar.SetShowHelp(false)
	sidebar.SetFilteringEnabled(false)
	sidebar.DisableQuitKeybindings()

	m := Model{
		store:      store,
		state:      StateTable,
		focus:      paneContent,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		sidebar:    sidebar,
		table:      tasktable.New(nil, 80, 10),
		createForm: taskform.NewCreate(),
	}
	m.refresh()
	m.applyFocus()
	return m
}

func (m Model) State() SessionState {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the table from the store.
func (m *Model) refresh() {
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		m.setError("failed to load tasks", err)
		return
	}
	m.table.SetTasks(tasks)
	m.updateValidationStatus(tasks)
}

func (m *Model) updateValidationStatus(tasks []models.Task) {
	result := validation.New().ValidateTasks(tasks, time.Now())
	m.validationConflicts = result.Conflicts
	if !result.HasConflicts() {
		m.validationWarning = ""
		return
	}
	m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
}

func (m *Model) applyFocus() {
	if m.state == StateTable && m.focus == paneContent {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusIsError = false
}

func (m *Model) setError(msg string, err error) {
	logger.Error(msg, "error", err)
	m.status = fmt.Sprintf("%s: %v", msg, err)
	m.statusIsError = true
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateTable:
		tk := m.table.Keys()
		keys = append(keys, tk.Edit, tk.Delete, tk.Toggle)
	case StateCreate, StateEdit:
		fk := taskform.DefaultKeyMap()
		keys = []key.Binding{fk.Submit, fk.Back}
	case StateConfirmDelete:
		keys = []key.Binding{m.keys.Confirm, m.keys.Cancel}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp(), {m.keys.Up, m.keys.Down, m.keys.Select}}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/chromatic/internal/tui/components/taskform"
	"github.com/julianstephens/chromatic/internal/tui/components/tasktable"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case taskform.SubmitMsg:
		return m.handleSubmit(msg)

	case taskform.CancelMsg:
		if m.state == StateEdit {
			m.state = StateTable
		} else {
			m.createForm = taskform.NewCreate()
			m.focus = paneSidebar
		}
		m.applyFocus()
		return m, nil

	case tasktable.EditTaskMsg:
		m.editForm = taskform.NewEdit(msg.Task)
		m.editForm.SetWidth(m.contentWidth())
		m.state = StateEdit
		m.applyFocus()
		return m, m.editForm.Init()

	case tasktable.DeleteTaskMsg:
		task := msg.Task
		m.pendingDelete = &task
		m.state = StateConfirmDelete
		m.applyFocus()
		return m, nil

	case tasktable.ToggleTaskMsg:
		task := msg.Task
		task.ToggleComplete()
		if err := m.store.UpdateTask(task); err != nil {
			m.setError("failed to update task", err)
		} else {
			m.setStatus("%q is now %s", task.Title, task.Status.Label())
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateConfirmDelete:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.deletePending()
		case key.Matches(msg, m.keys.Cancel):
			m.pendingDelete = nil
			m.state = StateTable
			m.applyFocus()
		}
		return m, nil

	case StateEdit:
		return m.forward(msg)

	case StateCreate:
		if m.focus == paneContent {
			return m.forward(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		if m.focus == paneSidebar {
			m.focus = paneContent
		} else {
			m.focus = paneSidebar
		}
		m.applyFocus()
		return m, nil
	}

	if m.focus == paneSidebar {
		if key.Matches(msg, m.keys.Select) {
			return m.open()
		}
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	return m.forward(msg)
}

// open switches to the view selected in the sidebar.
func (m Model) open() (tea.Model, tea.Cmd) {
	item, ok := m.sidebar.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}
	m.state = item.state
	m.focus = paneContent
	m.applyFocus()
	if item.state == StateCreate {
		m.createForm = taskform.NewCreate()
		m.createForm.SetWidth(m.contentWidth())
		return m, m.createForm.Init()
	}
	return m, nil
}

// forward hands a message to the component that owns the current view.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateTable:
		m.table, cmd = m.table.Update(msg)
	case StateCreate:
		m.createForm, cmd = m.createForm.Update(msg)
	case StateEdit:
		m.editForm, cmd = m.editForm.Update(msg)
	}
	return m, cmd
}

func (m Model) handleSubmit(msg taskform.SubmitMsg) (tea.Model, tea.Cmd) {
	if msg.IsNew {
		if err := m.store.AddTask(msg.Task); err != nil {
			m.setError("failed to add task", err)
			return m, nil
		}
		m.setStatus("added %q", msg.Task.Title)
		m.createForm = taskform.NewCreate()
	} else {
		if err := m.store.UpdateTask(msg.Task); err != nil {
			m.setError("failed to update task", err)
			return m, nil
		}
		m.setStatus("saved %q", msg.Task.Title)
	}
	m.state = StateTable
	m.focus = paneContent
	m.sidebar.Select(0)
	m.refresh()
	m.applyFocus()
	return m, nil
}

func (m *Model) deletePending() {
	task := m.pendingDelete
	m.pendingDelete = nil
	m.state = StateTable
	if task != nil {
		if err := m.store.DeleteTask(task.ID); err != nil {
			m.setError("failed to delete task", err)
		} else {
			m.setStatus("deleted %q", task.Title)
		}
	}
	m.refresh()
	m.applyFocus()
}

func (m Model) contentWidth() int {
	w := m.width - sidebarWidth - 8
	if w < 40 {
		w = 40
	}
	return w
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	m.sidebar.SetSize(sidebarWidth, m.bodyHeight())
	m.table.SetSize(m.contentWidth(), m.bodyHeight()-2)
	m.createForm.SetWidth(m.contentWidth())
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/chromatic/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case StateEdit:
		body = m.viewPopup(m.editForm.View())
	case StateConfirmDelete:
		body = m.viewConfirmDelete()
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewContent())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(constants.AppTitle),
		body,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) paneStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return activePaneStyle
	}
	return paneStyle
}

func (m Model) viewSidebar() string {
	return m.paneStyle(paneSidebar).Width(sidebarWidth).Render(m.sidebar.View())
}

func (m Model) viewContent() string {
	var content string
	if m.state == StateCreate {
		content = m.createForm.View()
	} else {
		content = m.table.View()
	}
	return m.paneStyle(paneContent).Render(content)
}

func (m Model) viewPopup(content string) string {
	return lipgloss.Place(m.width, m.bodyHeight(),
		lipgloss.Center, lipgloss.Center,
		popupStyle.Render(content),
	)
}

func (m Model) viewConfirmDelete() string {
	title := ""
	if m.pendingDelete != nil {
		title = m.pendingDelete.Title
	}
	return m.viewPopup(lipgloss.JoinVertical(lipgloss.Center,
		dangerStyle.Render("Delete this task?"),
		"",
		title,
		"",
		"[y] Yes    [n] No",
	))
}

func (m Model) viewStatus() string {
	var parts []string
	if m.status != "" {
		if m.statusIsError {
			parts = append(parts, errorStatusStyle.Render(m.status))
		} else {
			parts = append(parts, statusStyle.Render(m.status))
		}
	}
	if m.validationWarning != "" {
		parts = append(parts, warningStyle.Render(m.validationWarning))
	}
	return strings.Join(parts, "  ")
}

func (m Model) bodyHeight() int {
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

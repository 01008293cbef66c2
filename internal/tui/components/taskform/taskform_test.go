package taskform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/chromatic/internal/datetime"
	"github.com/julianstephens/chromatic/internal/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// toSchedule skips the huh step, which needs a running program to submit.
func toSchedule(m Model) Model {
	m.step = stepSchedule
	m.date.Focus()
	return m
}

func TestEditKeepsTaskFields(t *testing.T) {
	task := models.NewTask("Call mom")
	task.Description = "sunday"
	task.Category = models.CategorySocial
	task.Status = models.StatusScheduled
	task.Schedule = datetime.NewPartialDate(2025, 5, 11, 18, 0)

	m := NewEdit(task)
	assert.False(t, m.IsNew())

	got := m.Task()
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Call mom", got.Title)
	assert.Equal(t, "sunday", got.Description)
	assert.Equal(t, models.CategorySocial, got.Category)
	assert.Equal(t, models.StatusScheduled, got.Status)
	assert.True(t, got.Schedule.Equal(task.Schedule), "schedule = %s", got.Schedule)
	assert.Equal(t, task.CreatedAt, got.CreatedAt)
}

func TestScheduleStepSubmits(t *testing.T) {
	m := NewCreate()
	m.values.Title = "  Dentist  "
	m = toSchedule(m)
	require.True(t, m.OnSchedule())

	for _, r := range "20250603" {
		m, _ = m.Update(keyRunes(string(r)))
	}
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.True(t, msg.IsNew)
	assert.Equal(t, "Dentist", msg.Task.Title)
	assert.Equal(t, models.StatusScheduled, msg.Task.Status)
	assert.Equal(t, "June 3, 2025", datetime.FormatDate(msg.Task.Schedule))
	assert.NoError(t, msg.Task.Validate())
}

func TestSubmitWithoutSchedule(t *testing.T) {
	m := NewCreate()
	m.values.Title = "Someday"
	m = toSchedule(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd().(SubmitMsg)
	assert.False(t, msg.Task.IsScheduled())
	assert.Equal(t, models.StatusPending, msg.Task.Status)
}

func TestEscNavigation(t *testing.T) {
	m := toSchedule(NewCreate())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.OnSchedule(), "esc on the schedule goes back to details")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(CancelMsg)
	assert.True(t, ok, "esc on details cancels")
}

func TestBackKeepsValues(t *testing.T) {
	m := NewCreate()
	m.values.Title = "Groceries"
	m.values.Category = models.CategoryHome
	m = toSchedule(m)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	got := m.Task()
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, models.CategoryHome, got.Category)
}

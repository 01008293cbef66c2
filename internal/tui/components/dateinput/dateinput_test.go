package dateinput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/chromatic/internal/datetime"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, t tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: t})
	return m
}

func newFocused() Model {
	m := New()
	m.Focus()
	return m
}

func TestTypingAdvancesThroughFields(t *testing.T) {
	m := newFocused()
	m = typeText(m, "2024")
	if m.FocusedField() != datetime.Month {
		t.Fatalf("focus = %s after a full year, want month", m.FocusedField())
	}
	m = typeText(m, "02")
	m = typeText(m, "29")
	m = typeText(m, "09")
	m = typeText(m, "05")

	want := datetime.NewPartialDate(2024, 2, 29, 9, 5)
	if got := m.Value(); !got.Equal(want) {
		t.Errorf("Value = %s, want %s", got, want)
	}
	if got := m.DisplayText(); got != "February 29, 2024 | 9h05" {
		t.Errorf("DisplayText = %q", got)
	}
	if m.FocusedField() != datetime.Minute {
		t.Errorf("focus = %s, want minute", m.FocusedField())
	}
}

func TestShortValueNeedsTab(t *testing.T) {
	m := newFocused()
	m = typeText(m, "2024")
	m = typeText(m, "3")
	if m.FocusedField() != datetime.Month {
		t.Fatalf("focus moved before the month was complete")
	}
	m = press(m, tea.KeyTab)
	if m.FocusedField() != datetime.Day {
		t.Fatalf("tab did not move to day, focus = %s", m.FocusedField())
	}
	if got := m.DisplayText(); got != "March 2024" {
		t.Errorf("DisplayText = %q", got)
	}
}

func TestTabStopsAtDisabledField(t *testing.T) {
	m := newFocused()
	m = press(m, tea.KeyTab)
	if m.FocusedField() != datetime.Year {
		t.Errorf("tab left an empty year, focus = %s", m.FocusedField())
	}
	m = typeText(m, "20")
	m = press(m, tea.KeyTab)
	if m.FocusedField() != datetime.Year {
		t.Errorf("tab left an invalid year, focus = %s", m.FocusedField())
	}
	m = press(m, tea.KeyShiftTab)
	if m.FocusedField() != datetime.Year {
		t.Errorf("shift+tab moved before year, focus = %s", m.FocusedField())
	}
}

func TestUpstreamEditClearsDownstream(t *testing.T) {
	m := newFocused()
	m = typeText(m, "202403151030")
	if !m.Value().Equal(datetime.NewPartialDate(2024, 3, 15, 10, 30)) {
		t.Fatalf("Value = %s", m.Value())
	}

	for m.FocusedField() != datetime.Year {
		m = press(m, tea.KeyShiftTab)
	}
	m = press(m, tea.KeyBackspace)

	if m.Enabled(datetime.Month) {
		t.Error("month still enabled after breaking the year")
	}
	for _, f := range []datetime.Field{datetime.Month, datetime.Day, datetime.Hour, datetime.Minute} {
		if m.Raw(f) != "" {
			t.Errorf("%s widget kept %q", f, m.Raw(f))
		}
	}
	if got := m.DisplayText(); got != datetime.NoDate {
		t.Errorf("DisplayText = %q", got)
	}
}

func TestErrorShownForFocusedField(t *testing.T) {
	m := newFocused()
	m = typeText(m, "2023")
	m = typeText(m, "02")
	m = typeText(m, "30")

	if m.FocusedField() != datetime.Day {
		t.Fatalf("focus = %s, want day", m.FocusedField())
	}
	if !strings.Contains(m.View(), "The specific date does not exist.") {
		t.Errorf("view missing calendar error:\n%s", m.View())
	}
	if got := m.DisplayText(); got != "February 2023" {
		t.Errorf("DisplayText = %q", got)
	}
}

func TestBlurredIgnoresKeys(t *testing.T) {
	m := New()
	m = typeText(m, "2024")
	if m.Raw(datetime.Year) != "" {
		t.Errorf("blurred input accepted text %q", m.Raw(datetime.Year))
	}
}

func TestSetValueAndReset(t *testing.T) {
	m := newFocused()
	m.SetValue(datetime.NewPartialDate(2025, 12))
	if m.Raw(datetime.Year) != "2025" || m.Raw(datetime.Month) != "12" {
		t.Errorf("widgets = %q %q", m.Raw(datetime.Year), m.Raw(datetime.Month))
	}
	if m.FocusedField() != datetime.Day {
		t.Errorf("focus = %s, want the first open field", m.FocusedField())
	}

	m = typeText(m, "31")
	if !m.Value().Equal(datetime.NewPartialDate(2025, 12, 31)) {
		t.Errorf("Value = %s", m.Value())
	}

	m.Reset()
	if !m.Value().IsEmpty() || m.FocusedField() != datetime.Year {
		t.Errorf("Reset left %s focused on %s", m.Value(), m.FocusedField())
	}
}

// Package validation finds problems across the stored task list that no
// single task can detect on its own.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/chromatic/internal/datetime"
	"github.com/julianstephens/chromatic/internal/models"
)

type ConflictType string

const (
	ConflictDuplicateTitle  ConflictType = "duplicate_title"
	ConflictSameTime        ConflictType = "same_time"
	ConflictOverdue         ConflictType = "overdue"
	ConflictInvalidTask     ConflictType = "invalid_task"
	ConflictStatusMismatch  ConflictType = "status_mismatch"
)

type Conflict struct {
	Type        ConflictType
	Description string
	TaskIDs     []string
}

type Result struct {
	Conflicts []Conflict
}

func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Count returns the number of conflicts of type t.
func (r *Result) Count(t ConflictType) int {
	n := 0
	for _, c := range r.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

type FixAction struct {
	Action         string
	SourceConflict Conflict
}

type Validator struct {
	loc *time.Location
}

func New() *Validator {
	return &Validator{loc: time.Local}
}

// ValidateTasks checks the whole task list as of now. Only open tasks
// (pending or scheduled) take part in the duplicate, same time and overdue
// checks.
func (v *Validator) ValidateTasks(tasks []models.Task, now time.Time) Result {
	result := Result{Conflicts: []Conflict{}}

	byTitle := map[string][]models.Task{}
	byMinute := map[int64][]models.Task{}

	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTask,
				Description: fmt.Sprintf("Task %s is invalid: %v", task.ID, err),
				TaskIDs:     []string{task.ID},
			})
			continue
		}

		if task.Status == models.StatusScheduled && !task.IsScheduled() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictStatusMismatch,
				Description: fmt.Sprintf("Task %q is marked scheduled but has no date", task.Title),
				TaskIDs:     []string{task.ID},
			})
		}

		if !isOpen(task) {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(task.Title))
		if key != "" {
			byTitle[key] = append(byTitle[key], task)
		}

		if task.Schedule.HasTime() {
			start := task.Schedule.Time(v.loc)
			byMinute[start.Unix()] = append(byMinute[start.Unix()], task)
		}

		if task.IsScheduled() && !End(task.Schedule, v.loc).After(now) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOverdue,
				Description: fmt.Sprintf("Task %q was due %s", task.Title, datetime.FormatDate(task.Schedule)),
				TaskIDs:     []string{task.ID},
			})
		}
	}

	for _, key := range sortedKeys(byTitle) {
		group := byTitle[key]
		if len(group) < 2 {
			continue
		}
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictDuplicateTitle,
			Description: fmt.Sprintf("Duplicate task title: %q (%d tasks)", group[0].Title, len(group)),
			TaskIDs:     ids(group),
		})
	}

	for _, key := range sortedKeys(byMinute) {
		group := byMinute[key]
		if len(group) < 2 {
			continue
		}
		titles := make([]string, len(group))
		for i, t := range group {
			titles[i] = fmt.Sprintf("%q", t.Title)
		}
		slot := datetime.FormatDate(group[0].Schedule)
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictSameTime,
			Description: fmt.Sprintf("Tasks share the slot %s: %s", slot, strings.Join(titles, ", ")),
			TaskIDs:     ids(group),
		})
	}

	return result
}

// End is the first instant after the period a schedule names: the year for
// a year, the month for a month and so on down to the minute.
func End(p datetime.PartialDate, loc *time.Location) time.Time {
	p = p.Prefix()
	start := p.Time(loc)
	switch p.Len() {
	case 0:
		return time.Time{}
	case 1:
		return start.AddDate(1, 0, 0)
	case 2:
		return start.AddDate(0, 1, 0)
	case 3:
		return start.AddDate(0, 0, 1)
	case 4:
		return start.Add(time.Hour)
	default:
		return start.Add(time.Minute)
	}
}

// AutoFixDuplicates keeps the oldest task of every duplicate title group and
// deletes the rest through deleteFunc.
func AutoFixDuplicates(conflicts []Conflict, tasks []models.Task, deleteFunc func(id string) error) []FixAction {
	byID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	var actions []FixAction
	for _, c := range conflicts {
		if c.Type != ConflictDuplicateTitle {
			continue
		}
		var group []models.Task
		for _, id := range c.TaskIDs {
			if t, ok := byID[id]; ok {
				group = append(group, t)
			}
		}
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			if !group[i].CreatedAt.Equal(group[j].CreatedAt) {
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			}
			return group[i].ID < group[j].ID
		})

		keep := group[0]
		var deleted, failed []string
		for _, t := range group[1:] {
			if err := deleteFunc(t.ID); err != nil {
				failed = append(failed, t.ID)
			} else {
				deleted = append(deleted, t.ID)
			}
		}

		msg := fmt.Sprintf("Removed %d duplicate task(s) titled %q (kept ID: %s)", len(deleted), keep.Title, keep.ID)
		if len(failed) > 0 {
			msg += fmt.Sprintf(" (failed to remove: %v)", failed)
		}
		actions = append(actions, FixAction{Action: msg, SourceConflict: c})
	}
	return actions
}

func isOpen(t models.Task) bool {
	return t.Status == models.StatusPending || t.Status == models.StatusScheduled
}

func ids(tasks []models.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func sortedKeys[K string | int64, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

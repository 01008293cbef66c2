package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/julianstephens/chromatic/internal/constants"
	"github.com/julianstephens/chromatic/internal/datetime"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusComplete  Status = "complete"
	StatusCancelled Status = "cancelled"
	StatusArchived  Status = "archived"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusScheduled, StatusComplete, StatusCancelled, StatusArchived}
}

func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusScheduled:
		return "Scheduled"
	case StatusComplete:
		return "Complete"
	case StatusCancelled:
		return "Cancelled"
	case StatusArchived:
		return "Archived"
	}
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid status: %q", s)
}

type Category string

const (
	CategoryNone   Category = ""
	CategoryWork   Category = "work"
	CategorySocial Category = "social"
	CategoryHome   Category = "home"
)

// Categories lists every category, CategoryNone first.
func Categories() []Category {
	return []Category{CategoryNone, CategoryWork, CategorySocial, CategoryHome}
}

func (c Category) Label() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryWork:
		return "Work"
	case CategorySocial:
		return "Social"
	case CategoryHome:
		return "Home"
	}
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "none" {
		return CategoryNone, nil
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %q", s)
}

type Task struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Status      Status               `json:"status"`
	Category    Category             `json:"category,omitempty"`
	Schedule    datetime.PartialDate `json:"schedule"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewTask returns a pending, unscheduled task with a fresh ID.
func NewTask(title string) Task {
	now := time.Now().UTC().Truncate(time.Second)
	return Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return fmt.Errorf("title must be at most %d characters", constants.MaxTitleLength)
	}
	return nil
}

// Validate checks the task before it is stored. The schedule is replayed
// through a datetime.Input so stored dates obey the same rules as typed ones.
func (t Task) Validate() error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}

	in := datetime.NewInput()
	in.Populate(t.Schedule)
	if !in.CurrentValue().Equal(t.Schedule) {
		if f, err := in.FirstError(); err != nil {
			return fmt.Errorf("invalid schedule %s: %w", f, err)
		}
		return fmt.Errorf("invalid schedule: parts must be set in order")
	}
	return nil
}

func (t Task) IsScheduled() bool {
	return !t.Schedule.IsEmpty()
}

// ToggleComplete flips the task between complete and its open status.
func (t *Task) ToggleComplete() {
	if t.Status == StatusComplete {
		if t.IsScheduled() {
			t.Status = StatusScheduled
		} else {
			t.Status = StatusPending
		}
	} else {
		t.Status = StatusComplete
	}
	t.Touch()
}

func (t *Task) Touch() {
	t.UpdatedAt = time.Now().UTC().Truncate(time.Second)
}

// ScheduleText is the human readable schedule, "No date" when unset.
func (t Task) ScheduleText() string {
	return datetime.FormatDate(t.Schedule)
}

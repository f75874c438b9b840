package project

import (
	"time"

	"github.com/nwittstock/folio/internal/domain/task"
)

// Status is the project lifecycle state. Unlike task status it is its own
// independent enumeration, set directly rather than derived from a column.
type Status string

const (
	StatusIdea       Status = "idea"
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Valid reports whether s is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusIdea, StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a portfolio entry that owns a board of tasks. A task's lifecycle
// is scoped to exactly one project; moving a task across columns never moves
// it across projects.
type Project struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Status       Status      `json:"status"`
	Technologies []string    `json:"technologies"`
	Tags         []string    `json:"tags"`
	Tasks        []task.Task `json:"tasks"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Patch holds partial updates for a project. Nil fields are left unchanged.
type Patch struct {
	Title        *string
	Description  *string
	Status       *Status
	Technologies *[]string
	Tags         *[]string
}

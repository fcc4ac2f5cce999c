package core

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

type Task struct {
	ID          string
	Description string
	Status      Status
	Date        time.Time
}

// SkippedTask is a stored line that could not be read back as a task.
type SkippedTask struct {
	Line int
	Raw  string
	Err  error
}

type TaskList struct {
	Tasks   []Task
	Skipped []SkippedTask
}

// Outcome is the result of a complete or delete request.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeUpdated
	OutcomeAlreadyDone
	OutcomeDeleted
)

type AuthMessage struct {
	Username string
	Password string
}

type TaskMessage struct {
	Description string
	Date        string
}

// Session identifies a logged in user. Token is passed back on every task call.
type Session struct {
	Username string
	Token    string
}

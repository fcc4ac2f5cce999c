package repository

import "time"

// DateLayout is the on-disk form of a task date.
const DateLayout = "2006-01-02"

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

type Credential struct {
	Username     string
	PasswordHash string
}

// SkippedRecord is a task line that could not be decoded. Line is 1-based.
type SkippedRecord struct {
	Line int
	Raw  string
	Err  error
}

type TaskList struct {
	Tasks   []Task
	Skipped []SkippedRecord
}

type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeUpdated
	OutcomeAlreadyDone
	OutcomeDeleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeAlreadyDone:
		return "already done"
	case OutcomeDeleted:
		return "deleted"
	default:
		return "not found"
	}
}

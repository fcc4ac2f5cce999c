package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tasker/internal/repository"
	"time"

	"go.uber.org/zap"
)

// Tracker implements registration, login and the task use cases on top of
// the credential and task repositories.
type Tracker struct {
	logs        *zap.SugaredLogger
	credentials CredentialRepository
	tasks       TaskRepository
	sessions    SessionIssuer
	hasher      Hasher
	sessionTTL  time.Duration
}

// NewTracker is a constructor function for the Tracker type.
func NewTracker(logger *zap.SugaredLogger, credentials CredentialRepository, tasks TaskRepository, sessions SessionIssuer, hasher Hasher, sessionTTL time.Duration) *Tracker {
	return &Tracker{
		logs:        logger,
		credentials: credentials,
		tasks:       tasks,
		sessions:    sessions,
		hasher:      hasher,
		sessionTTL:  sessionTTL,
	}
}

// CheckUsername tells whether username can be registered. It fails with
// ErrEmptyField, ErrInvalidUsername or ErrDuplicateUser.
func (t *Tracker) CheckUsername(ctx context.Context, username string) error {
	if err := validateUsername(username); err != nil {
		return err
	}

	exists, err := t.credentials.UserExists(ctx, username)
	if err != nil {
		return fmt.Errorf("check user exists: %w", err)
	}
	if exists {
		return ErrDuplicateUser
	}

	return nil
}

// Register stores a new username with the hash of its password and opens a session for it.
func (t *Tracker) Register(ctx context.Context, msg AuthMessage) (Session, error) {
	if err := validateUsername(msg.Username); err != nil {
		return Session{}, err
	}
	if msg.Password == "" {
		return Session{}, fmt.Errorf("password: %w", ErrEmptyField)
	}

	if err := t.CheckUsername(ctx, msg.Username); err != nil {
		return Session{}, err
	}

	hash, err := t.hasher.Hash(msg.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	err = t.credentials.SaveCredential(ctx, repository.Credential{
		Username:     msg.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return Session{}, fmt.Errorf("save credential: %w", err)
	}

	t.logs.Infow("user registered", "username", msg.Username)

	return t.openSession(msg.Username)
}

// Authenticate checks the credentials against the store. The first line with
// a matching username and password wins.
func (t *Tracker) Authenticate(ctx context.Context, msg AuthMessage) (Session, error) {
	credentials, err := t.credentials.FindCredentials(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialsNotFound) {
			return Session{}, ErrStoreNotFound
		}
		return Session{}, fmt.Errorf("find credentials: %w", err)
	}

	for _, credential := range credentials {
		if t.hasher.Verify(credential.PasswordHash, msg.Password) {
			t.logs.Infow("user logged in", "username", msg.Username)
			return t.openSession(msg.Username)
		}
	}

	t.logs.Warnw("login rejected", "username", msg.Username)
	return Session{}, ErrInvalidCredentials
}

// AddTask creates a pending task dated msg.Date for the session's user.
func (t *Tracker) AddTask(ctx context.Context, token string, msg TaskMessage) (Task, error) {
	username, err := t.resolveSession(token)
	if err != nil {
		return Task{}, err
	}

	if strings.TrimSpace(msg.Description) == "" {
		return Task{}, fmt.Errorf("description: %w", ErrEmptyField)
	}

	date, err := ParseDate(msg.Date)
	if err != nil {
		return Task{}, err
	}

	task := repository.Task{
		ID:          repository.NewID(),
		Description: msg.Description,
		Status:      repository.StatusPending,
		Date:        date,
	}
	if err := t.tasks.AddTask(ctx, username, task); err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}

	t.logs.Infow("task added", "username", username, "task_id", task.ID)

	return repoTaskToTask(task), nil
}

// ListTasks returns the user's tasks in file order. Unreadable lines are
// returned in Skipped instead of failing the listing.
func (t *Tracker) ListTasks(ctx context.Context, token string) (TaskList, error) {
	username, err := t.resolveSession(token)
	if err != nil {
		return TaskList{}, err
	}

	list, err := t.tasks.GetTasks(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TaskList{}, ErrNoTasks
		}
		return TaskList{}, fmt.Errorf("get tasks: %w", err)
	}

	result := TaskList{
		Tasks:   make([]Task, 0, len(list.Tasks)),
		Skipped: make([]SkippedTask, 0, len(list.Skipped)),
	}
	for _, task := range list.Tasks {
		result.Tasks = append(result.Tasks, repoTaskToTask(task))
	}
	for _, skipped := range list.Skipped {
		t.logs.Warnw("skipping malformed task line", "username", username, "line", skipped.Line, "error", skipped.Err)
		result.Skipped = append(result.Skipped, SkippedTask{
			Line: skipped.Line,
			Raw:  skipped.Raw,
			Err:  skipped.Err,
		})
	}

	return result, nil
}

// CompleteTask marks a task completed. Completing it again reports OutcomeAlreadyDone.
func (t *Tracker) CompleteTask(ctx context.Context, token, taskID string) (Outcome, error) {
	username, err := t.resolveSession(token)
	if err != nil {
		return OutcomeNotFound, err
	}
	if strings.TrimSpace(taskID) == "" {
		return OutcomeNotFound, fmt.Errorf("task id: %w", ErrEmptyField)
	}

	outcome, err := t.tasks.CompleteTask(ctx, username, strings.TrimSpace(taskID))
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("complete task: %w", err)
	}

	t.logs.Infow("complete task", "username", username, "task_id", taskID, "outcome", outcome.String())

	return repoOutcomeToOutcome(outcome), nil
}

func (t *Tracker) DeleteTask(ctx context.Context, token, taskID string) (Outcome, error) {
	username, err := t.resolveSession(token)
	if err != nil {
		return OutcomeNotFound, err
	}
	if strings.TrimSpace(taskID) == "" {
		return OutcomeNotFound, fmt.Errorf("task id: %w", ErrEmptyField)
	}

	outcome, err := t.tasks.DeleteTask(ctx, username, strings.TrimSpace(taskID))
	if err != nil {
		return OutcomeNotFound, fmt.Errorf("delete task: %w", err)
	}

	t.logs.Infow("delete task", "username", username, "task_id", taskID, "outcome", outcome.String())

	return repoOutcomeToOutcome(outcome), nil
}

// DateInputLayout accepts YYYY-MM-DD with or without zero padding on month and day.
const DateInputLayout = "2006-1-2"

// ParseDate parses a YYYY-MM-DD calendar date. "2024-1-5" is read as 2024-01-05.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateInputLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return date, nil
}

func (t *Tracker) openSession(username string) (Session, error) {
	token, err := t.sessions.Issue(username, t.sessionTTL)
	if err != nil {
		return Session{}, fmt.Errorf("issue session token: %w", err)
	}

	return Session{
		Username: username,
		Token:    token,
	}, nil
}

func (t *Tracker) resolveSession(token string) (string, error) {
	username, err := t.sessions.Subject(token)
	if err != nil {
		t.logs.Warnw("session rejected", "error", err)
		return "", fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	return username, nil
}

// validateUsername rejects names that would corrupt the credential line or
// escape the task directory.
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username: %w", ErrEmptyField)
	}
	if strings.ContainsAny(username, `:/\`) || strings.ContainsAny(username, "\r\n") {
		return ErrInvalidUsername
	}
	if username == "." || username == ".." {
		return ErrInvalidUsername
	}
	return nil
}

func repoTaskToTask(task repository.Task) Task {
	return Task{
		ID:          task.ID,
		Description: task.Description,
		Status:      Status(task.Status),
		Date:        task.Date,
	}
}

func repoOutcomeToOutcome(outcome repository.Outcome) Outcome {
	switch outcome {
	case repository.OutcomeUpdated:
		return OutcomeUpdated
	case repository.OutcomeAlreadyDone:
		return OutcomeAlreadyDone
	case repository.OutcomeDeleted:
		return OutcomeDeleted
	default:
		return OutcomeNotFound
	}
}

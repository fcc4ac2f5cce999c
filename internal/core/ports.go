package core

import (
	"context"
	"tasker/internal/repository"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CredentialRepository . CredentialRepository
type CredentialRepository interface {
	UserExists(ctx context.Context, username string) (bool, error)
	SaveCredential(ctx context.Context, credential repository.Credential) error
	FindCredentials(ctx context.Context, username string) ([]repository.Credential, error)
}

//counterfeiter:generate -o fake -fake-name TaskRepository . TaskRepository
type TaskRepository interface {
	AddTask(ctx context.Context, username string, task repository.Task) error
	GetTasks(ctx context.Context, username string) (repository.TaskList, error)
	CompleteTask(ctx context.Context, username string, taskID string) (repository.Outcome, error)
	DeleteTask(ctx context.Context, username string, taskID string) (repository.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name SessionIssuer . SessionIssuer
type SessionIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Subject(token string) (string, error)
}

package handler

import (
	"context"
	"tasker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TaskService . TaskService
type TaskService interface {
	CheckUsername(ctx context.Context, username string) error
	Register(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Session, error)
	AddTask(ctx context.Context, token string, msg core.TaskMessage) (core.Task, error)
	ListTasks(ctx context.Context, token string) (core.TaskList, error)
	CompleteTask(ctx context.Context, token string, taskID string) (core.Outcome, error)
	DeleteTask(ctx context.Context, token string, taskID string) (core.Outcome, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"tasker/internal/db"

	"go.uber.org/zap"
)

// TaskRepository stores one task file per user.
type TaskRepository struct {
	logs    *zap.SugaredLogger
	db      Storage
	taskDir string
}

func NewTaskRepository(logger *zap.SugaredLogger, db Storage, taskDir string) *TaskRepository {
	return &TaskRepository{
		logs:    logger,
		db:      db,
		taskDir: taskDir,
	}
}

func (r *TaskRepository) AddTask(ctx context.Context, username string, task Task) error {
	err := r.db.AppendLine(ctx, taskFilePath(r.taskDir, username), EncodeTask(task))
	if err != nil {
		return fmt.Errorf("append task: %w", err)
	}

	return nil
}

// GetTasks decodes the user's task file. Lines that fail to decode are
// reported in Skipped and left out of Tasks.
func (r *TaskRepository) GetTasks(ctx context.Context, username string) (TaskList, error) {
	lines, err := r.readTaskLines(ctx, username)
	if err != nil {
		return TaskList{}, err
	}

	list := TaskList{Tasks: make([]Task, 0, len(lines))}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := DecodeTask(line)
		if err != nil {
			list.Skipped = append(list.Skipped, SkippedRecord{Line: i + 1, Raw: line, Err: err})
			continue
		}
		list.Tasks = append(list.Tasks, task)
	}

	return list, nil
}

// CompleteTask marks every task with taskID as completed. The file is only
// rewritten when something changed.
func (r *TaskRepository) CompleteTask(ctx context.Context, username, taskID string) (Outcome, error) {
	return r.rewrite(ctx, username, taskID, func(task Task) (string, bool, Outcome) {
		if task.Status == StatusCompleted {
			return EncodeTask(task), true, OutcomeAlreadyDone
		}
		task.Status = StatusCompleted
		return EncodeTask(task), true, OutcomeUpdated
	})
}

// DeleteTask drops every task with taskID from the user's file.
func (r *TaskRepository) DeleteTask(ctx context.Context, username, taskID string) (Outcome, error) {
	return r.rewrite(ctx, username, taskID, func(task Task) (string, bool, Outcome) {
		return "", false, OutcomeDeleted
	})
}

// rewrite applies change to the tasks matching taskID and atomically replaces
// the file. Lines that do not decode are kept byte for byte.
func (r *TaskRepository) rewrite(ctx context.Context, username, taskID string, change func(Task) (string, bool, Outcome)) (Outcome, error) {
	lines, err := r.readTaskLines(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return OutcomeNotFound, nil
		}
		return OutcomeNotFound, err
	}

	outcome := OutcomeNotFound
	dirty := false
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		task, err := DecodeTask(line)
		if err != nil {
			if strings.TrimSpace(line) != "" {
				r.logs.Warnw("preserving malformed task line", "username", username, "line", i+1, "error", err)
			}
			kept = append(kept, line)
			continue
		}
		if task.ID != taskID {
			kept = append(kept, line)
			continue
		}

		newLine, keep, result := change(task)
		if outcome != OutcomeUpdated {
			outcome = result
		}
		if result == OutcomeAlreadyDone {
			kept = append(kept, line)
			continue
		}
		dirty = true
		if keep {
			kept = append(kept, newLine)
		}
	}

	if !dirty {
		return outcome, nil
	}

	if err := r.db.ReplaceLines(ctx, taskFilePath(r.taskDir, username), kept); err != nil {
		return OutcomeNotFound, fmt.Errorf("replace tasks: %w", err)
	}

	return outcome, nil
}

func (r *TaskRepository) readTaskLines(ctx context.Context, username string) ([]string, error) {
	lines, err := r.db.ReadLines(ctx, taskFilePath(r.taskDir, username))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read tasks: %w", err)
	}

	return lines, nil
}

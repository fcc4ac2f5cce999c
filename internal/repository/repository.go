package repository

import (
	"errors"
	"path/filepath"
)

var (
	ErrNotFound            error = errors.New("not found")
	ErrCredentialsNotFound error = errors.New("credential store not found")
)

const taskFileExt = ".txt"

// taskFilePath is the per-user task file: <taskDir>/<username>.txt.
func taskFilePath(taskDir, username string) string {
	return filepath.Join(taskDir, username+taskFileExt)
}

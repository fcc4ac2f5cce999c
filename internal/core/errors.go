package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyField            error = errors.New("field cannot be empty")
	ErrInvalidUsername       error = errors.New("username contains invalid characters")
	ErrDuplicateUser         error = errors.New("username already exists")
	ErrStoreNotFound         error = errors.New("no users registered yet")
	ErrInvalidCredentials    error = errors.New("invalid credentials")
	ErrInvalidDate           error = errors.New("invalid date format, use YYYY-MM-DD")
	ErrNotFound              error = errors.New("not found")
	ErrNoTasks               error = fmt.Errorf("no tasks: %w", ErrNotFound)
	ErrSessionExpired        error = errors.New("session expired")
	ErrUnknownPasswordScheme error = errors.New("unknown password scheme")
)

package repository

import (
	"context"
	"errors"
	"fmt"
	"tasker/internal/db"

	"go.uber.org/zap"
)

// CredentialRepository keeps username:hash lines in an append-only file.
type CredentialRepository struct {
	logs            *zap.SugaredLogger
	db              Storage
	credentialsFile string
	taskDir         string
}

func NewCredentialRepository(logger *zap.SugaredLogger, db Storage, credentialsFile, taskDir string) *CredentialRepository {
	return &CredentialRepository{
		logs:            logger,
		db:              db,
		credentialsFile: credentialsFile,
		taskDir:         taskDir,
	}
}

// UserExists reports whether username is taken. A name counts as taken when it
// has a credential line or when a task file with its name is already present.
func (r *CredentialRepository) UserExists(ctx context.Context, username string) (bool, error) {
	taskFileExists, err := r.db.Exists(ctx, taskFilePath(r.taskDir, username))
	if err != nil {
		return false, fmt.Errorf("check task file: %w", err)
	}
	if taskFileExists {
		return true, nil
	}

	credentials, err := r.FindCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, ErrCredentialsNotFound) {
			return false, nil
		}
		return false, err
	}

	return len(credentials) > 0, nil
}

func (r *CredentialRepository) SaveCredential(ctx context.Context, credential Credential) error {
	err := r.db.AppendLine(ctx, r.credentialsFile, encodeCredential(credential))
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	return nil
}

// FindCredentials returns every credential line for username in file order.
func (r *CredentialRepository) FindCredentials(ctx context.Context, username string) ([]Credential, error) {
	lines, err := r.db.ReadLines(ctx, r.credentialsFile)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrCredentialsNotFound
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var credentials []Credential
	for i, line := range lines {
		credential, err := decodeCredential(line)
		if err != nil {
			r.logs.Warnw("skipping credential line", "line", i+1, "error", err)
			continue
		}
		if credential.Username == username {
			credentials = append(credentials, credential)
		}
	}

	return credentials, nil
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"tasker/internal/config"
	"tasker/internal/console/handler"
	"tasker/internal/core"
	"tasker/internal/db"
	"tasker/internal/repository"
	"tasker/pkg/jwt"
	"tasker/pkg/log"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	// stdout belongs to the menus
	var logOutputs []string
	if config.LogFile != "" {
		logOutputs = append(logOutputs, config.LogFile)
	}

	logger, err := log.NewZapLogger("tasker", config.LogLevel, logOutputs...)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	store := db.NewFlatFileDB()
	if err := store.EnsureDir(config.TaskDir); err != nil {
		logger.Errorw("failed to prepare task directory", "error", err, "task_dir", config.TaskDir)
		return err
	}

	hasher, err := core.NewHasher(config.PasswordScheme)
	if err != nil {
		logger.Errorw("failed to select password hasher", "error", err, "scheme", config.PasswordScheme)
		return err
	}

	// sessions only live as long as the process unless a secret is configured
	secret := config.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	jwtService := jwt.NewJWTService([]byte(secret))

	// repositories
	credentialRepo := repository.NewCredentialRepository(logger, store, config.CredentialsFile, config.TaskDir)
	taskRepo := repository.NewTaskRepository(logger, store, config.TaskDir)

	// tracker
	tracker := core.NewTracker(
		logger,
		credentialRepo,
		taskRepo,
		jwtService,
		hasher,
		config.SessionTTL)

	// handler
	consoleHlr := handler.NewConsoleHandler(
		logger,
		tracker,
		os.Stdin,
		os.Stdout,
		config.ClearScreen)

	logger.Infow("tasker started",
		"credentials_file", config.CredentialsFile,
		"task_dir", config.TaskDir,
		"password_scheme", config.PasswordScheme)

	return run(logger, consoleHlr)
}

func run(logger *zap.SugaredLogger, console *handler.ConsoleHandler) error {
	// expect a signal to stop the session
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		errChan <- console.Run(ctx)
	}()

	var err error
	select {
	case <-ctx.Done():
		logger.Infow("interrupted, shutting down")
		fmt.Fprintln(os.Stdout)
	case err = <-errChan:
	}

	if err != nil {
		logger.Errorw("console session failed", "error", err)
		return fmt.Errorf("console session: %w", err)
	}

	logger.Infow("tasker stopped")
	return nil
}

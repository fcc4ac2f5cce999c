package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var errInvalidValue error = errors.New("invalid config value")

const (
	envPrefix = "TASKER"

	credentialsFileKey = "credentials_file"
	taskDirKey         = "task_dir"
	logLevelKey        = "log_level"
	logFileKey         = "log_file"
	passwordSchemeKey  = "password_scheme"
	sessionSecretKey   = "session_secret"
	sessionTTLKey      = "session_ttl"
	clearScreenKey     = "clear_screen"
)

// App holds every setting the tracker needs. Paths are passed explicitly to
// the stores so nothing depends on process-wide state.
type App struct {
	CredentialsFile string
	TaskDir         string
	LogLevel        zapcore.Level
	LogFile         string
	PasswordScheme  string
	SessionSecret   string
	SessionTTL      time.Duration
	ClearScreen     bool
}

// NewApp reads tasker.yaml (if any) and TASKER_* environment variables on top of the defaults.
func NewApp() (App, error) {
	v := viper.New()
	v.SetConfigName("tasker")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tasker")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return App{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Load(v)
}

// Load builds an App from an already prepared viper instance.
func Load(v *viper.Viper) (App, error) {
	v.SetDefault(credentialsFileKey, "user_credentials.txt")
	v.SetDefault(taskDirKey, "task_data")
	v.SetDefault(logLevelKey, "info")
	v.SetDefault(logFileKey, "tasker.log")
	v.SetDefault(passwordSchemeKey, "sha256")
	v.SetDefault(sessionSecretKey, "")
	v.SetDefault(sessionTTLKey, "8h")
	v.SetDefault(clearScreenKey, true)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	credentialsFile := strings.TrimSpace(v.GetString(credentialsFileKey))
	if credentialsFile == "" {
		return App{}, fmt.Errorf("%w: %s is empty", errInvalidValue, credentialsFileKey)
	}

	taskDir := strings.TrimSpace(v.GetString(taskDirKey))
	if taskDir == "" {
		return App{}, fmt.Errorf("%w: %s is empty", errInvalidValue, taskDirKey)
	}

	level, err := zapcore.ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidValue, logLevelKey, err)
	}

	ttl := v.GetDuration(sessionTTLKey)
	if ttl <= 0 {
		return App{}, fmt.Errorf("%w: %s must be positive, got %q", errInvalidValue, sessionTTLKey, v.GetString(sessionTTLKey))
	}

	return App{
		CredentialsFile: credentialsFile,
		TaskDir:         taskDir,
		LogLevel:        level,
		LogFile:         strings.TrimSpace(v.GetString(logFileKey)),
		PasswordScheme:  strings.ToLower(strings.TrimSpace(v.GetString(passwordSchemeKey))),
		SessionSecret:   v.GetString(sessionSecretKey),
		SessionTTL:      ttl,
		ClearScreen:     v.GetBool(clearScreenKey),
	}, nil
}

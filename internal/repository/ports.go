package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	Exists(ctx context.Context, path string) (bool, error)
	AppendLine(ctx context.Context, path string, line string) error
	ReadLines(ctx context.Context, path string) ([]string, error)
	ReplaceLines(ctx context.Context, path string, lines []string) error
}

package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMalformedRecord error = errors.New("malformed record")

const (
	fieldSeparator = ":"
	taskFieldCount = 4
)

var (
	fieldEscaper = strings.NewReplacer(
		"%", "%25",
		":", "%3A",
		"\n", "%0A",
		"\r", "%0D",
	)
	fieldUnescaper = strings.NewReplacer(
		"%3A", ":", "%3a", ":",
		"%0A", "\n", "%0a", "\n",
		"%0D", "\r", "%0d", "\r",
		"%25", "%",
	)
)

// EncodeTask renders a task as id:description:status:date. Fields are
// percent-escaped so a separator inside a description survives the round trip.
func EncodeTask(task Task) string {
	return strings.Join([]string{
		fieldEscaper.Replace(task.ID),
		fieldEscaper.Replace(task.Description),
		string(task.Status),
		task.Date.Format(DateLayout),
	}, fieldSeparator)
}

// DecodeTask parses a line written by EncodeTask. Unescaped lines are accepted as-is.
func DecodeTask(line string) (Task, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(fields) != taskFieldCount {
		return Task{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, taskFieldCount, len(fields))
	}

	id := fieldUnescaper.Replace(fields[0])
	if id == "" {
		return Task{}, fmt.Errorf("%w: empty task id", ErrMalformedRecord)
	}

	status := Status(fields[2])
	if status != StatusPending && status != StatusCompleted {
		return Task{}, fmt.Errorf("%w: unknown status %q", ErrMalformedRecord, fields[2])
	}

	date, err := time.Parse(DateLayout, fields[3])
	if err != nil {
		return Task{}, fmt.Errorf("%w: invalid date %q: %w", ErrMalformedRecord, fields[3], err)
	}

	return Task{
		ID:          id,
		Description: fieldUnescaper.Replace(fields[1]),
		Status:      status,
		Date:        date,
	}, nil
}

func encodeCredential(c Credential) string {
	return c.Username + fieldSeparator + c.PasswordHash
}

func decodeCredential(line string) (Credential, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(fields) != 2 {
		return Credential{}, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformedRecord, len(fields))
	}
	return Credential{
		Username:     fields[0],
		PasswordHash: fields[1],
	}, nil
}

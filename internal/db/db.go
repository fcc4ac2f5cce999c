package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("record not found")

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// FlatFileDB stores records as newline terminated lines in plain text files.
// It assumes a single process owns the files.
type FlatFileDB struct{}

func NewFlatFileDB() *FlatFileDB {
	return &FlatFileDB{}
}

// EnsureDir creates dir and any missing parents.
func (f *FlatFileDB) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}

func (f *FlatFileDB) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %q: %w", path, err)
}

// AppendLine appends a single line to path, creating the file and its directory when needed.
// A last line left without a terminator is closed first so the records stay apart.
func (f *FlatFileDB) AppendLine(ctx context.Context, path string, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("append to %q: line contains a line break", path)
	}
	if err := f.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return fmt.Errorf("open %q for append: %w", path, err)
	}

	record := line + "\n"
	terminated, err := endsWithNewline(file)
	if err == nil {
		if !terminated {
			record = "\n" + record
		}
		_, err = file.WriteString(record)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("append to %q: %w", path, err)
	}

	return nil
}

// endsWithNewline reports whether file is empty or its last byte is a newline.
func endsWithNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}

	return last[0] == '\n', nil
}

// ReadLines returns every line of path without its terminator. A trailing
// newline does not produce an extra empty line.
func (f *FlatFileDB) ReadLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", path, err)
	}

	if len(data) == 0 {
		return []string{}, nil
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	return strings.Split(string(data), "\n"), nil
}

// ReplaceLines swaps the content of path for lines. The new content is written
// to a temporary file in the same directory, synced and renamed over path, so
// a crash leaves either the old or the new file.
func (f *FlatFileDB) ReplaceLines(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := writeFileAtomic(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("replace %q: %w", path, err)
	}

	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true

	return syncDir(dir)
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}

// Package storage reads and writes the task list as a pipe-delimited text file,
// one task per line.
package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hy4ri/trackerbot/internal/task"
)

// FileName is the default save file name inside the app directory.
const FileName = "data.txt"

// Storage persists tasks to a single file.
type Storage struct {
	path string
}

// New creates a Storage backed by path.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the save file location.
func (s *Storage) Path() string {
	return s.path
}

// Load reads every task from the save file. A missing file is an empty list.
// Any unreadable line fails the whole load and no tasks are returned.
func (s *Storage) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	var tasks []task.Task
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}

		t, err := task.FromRecord(strings.Split(text, "|"))
		if err != nil {
			return nil, &CorruptFileError{Path: s.path, Line: line, Err: err}
		}
		tasks = append(tasks, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, &CorruptFileError{Path: s.path, Line: line + 1, Err: err}
	}

	return tasks, nil
}

// Save overwrites the save file with one record per task, creating the
// parent directory if needed. The new content is written to a temporary file
// and renamed into place, so a failed save keeps the previous file.
func (s *Storage) Save(tasks []task.Task) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(t.Serialize())
		buf.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: s.path, Err: err}
	}

	return nil
}

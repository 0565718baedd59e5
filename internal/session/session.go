// Package session runs user input lines against the task list and keeps the
// save file in step with it. Both front ends drive a Session.
package session

import (
	"log"

	"github.com/hy4ri/trackerbot/internal/command"
	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/storage"
	"github.com/hy4ri/trackerbot/internal/task"
)

// Outcome is what one input line produced.
type Outcome struct {
	// Text is the reply to show, success or failure.
	Text string

	// Err is set when the command failed. The list is unchanged.
	Err error

	// SaveErr is set when the command worked but autosave did not.
	SaveErr error

	// Exit is set when the line ended the session.
	Exit bool

	Result command.Result
}

// Session owns the task list. It is not safe for concurrent use; front ends
// call it from a single goroutine.
type Session struct {
	tasks    *task.List
	store    *storage.Storage
	autosave bool
	dirty    bool
	debugLog *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithAutosave saves after every command that changes the list.
func WithAutosave(on bool) Option {
	return func(s *Session) { s.autosave = on }
}

// WithLogger sets the debug logger. A nil logger disables logging.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.debugLog = l }
}

// New creates a session over tasks. store may be nil, in which case nothing
// is persisted.
func New(tasks *task.List, store *storage.Storage, opts ...Option) *Session {
	if tasks == nil {
		tasks = task.NewList()
	}
	s := &Session{tasks: tasks, store: store}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the save file behind store and starts a session on it.
// An unreadable file does not stop the session: it starts with an empty
// list and the load error is returned alongside it so the caller can show it.
func Open(store *storage.Storage, opts ...Option) (*Session, error) {
	loaded, err := store.Load()
	s := New(task.NewList(loaded...), store, opts...)
	if err != nil {
		s.logf("load %s: %v", store.Path(), err)
		return s, err
	}
	s.logf("loaded %d tasks from %s", s.tasks.Len(), store.Path())
	return s, nil
}

// Handle parses and runs one input line.
func (s *Session) Handle(line string) Outcome {
	cmd := command.Parse(line)
	res, err := command.Execute(cmd, s.tasks)
	if err != nil {
		s.logf("%q: %v", line, err)
		return Outcome{Text: reply.Error(err), Err: err}
	}

	out := Outcome{Text: reply.Text(res), Exit: command.IsExit(cmd), Result: res}
	if command.Mutates(cmd) {
		s.dirty = true
		if s.autosave {
			out.SaveErr = s.Save()
		}
	}
	return out
}

// Save writes the list if it changed since the last successful save.
func (s *Session) Save() error {
	if s.store == nil || !s.dirty {
		return nil
	}
	if err := s.store.Save(s.tasks.Tasks()); err != nil {
		s.logf("save: %v", err)
		return err
	}
	s.dirty = false
	s.logf("saved %d tasks to %s", s.tasks.Len(), s.store.Path())
	return nil
}

// Dirty reports whether there are unsaved changes.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Tasks returns a snapshot of the list.
func (s *Session) Tasks() []task.Task {
	return s.tasks.Tasks()
}

// Len returns the number of tasks.
func (s *Session) Len() int {
	return s.tasks.Len()
}

func (s *Session) logf(format string, args ...any) {
	if s.debugLog != nil {
		s.debugLog.Printf(format, args...)
	}
}

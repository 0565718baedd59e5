// Package task provides the task model, its save-record encoding and the task list.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies a task variant. The value doubles as the save-file type tag.
type Kind string

const (
	KindTodo     Kind = "T"
	KindDeadline Kind = "D"
	KindEvent    Kind = "E"
)

// String returns the human name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Schedule is the variant payload of a task: Todo, Deadline or Event.
type Schedule interface {
	kind() Kind
}

// Todo has no scheduling fields.
type Todo struct{}

// Deadline must be completed by a point in time.
type Deadline struct {
	By time.Time
}

// Event spans an interval. To is always after From.
type Event struct {
	From time.Time
	To   time.Time
}

func (Todo) kind() Kind     { return KindTodo }
func (Deadline) kind() Kind { return KindDeadline }
func (Event) kind() Kind    { return KindEvent }

// Task is a trackable item. Only the done flag changes after construction.
type Task struct {
	description string
	done        bool
	schedule    Schedule
}

// NewTodo creates a todo task.
func NewTodo(description string) (Task, error) {
	return newTask(description, Todo{})
}

// NewDeadline creates a task due by the given time.
func NewDeadline(description string, by time.Time) (Task, error) {
	return newTask(description, Deadline{By: by.UTC()})
}

// NewEvent creates a task spanning from..to.
func NewEvent(description string, from, to time.Time) (Task, error) {
	if !to.After(from) {
		return Task{}, fmt.Errorf("%w: %s is not after %s",
			ErrEventOrder, FormatForDisplay(to), FormatForDisplay(from))
	}
	return newTask(description, Event{From: from.UTC(), To: to.UTC()})
}

func newTask(description string, s Schedule) (Task, error) {
	if err := validateDescription(description); err != nil {
		return Task{}, err
	}
	return Task{description: description, schedule: s}, nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	if strings.ContainsAny(description, "|\r\n") {
		return ErrReservedChar
	}
	return nil
}

// Kind returns the variant of the task.
func (t Task) Kind() Kind {
	if t.schedule == nil {
		return ""
	}
	return t.schedule.kind()
}

// Description returns the task text.
func (t Task) Description() string {
	return t.description
}

// Done reports whether the task is completed.
func (t Task) Done() bool {
	return t.done
}

// Schedule returns the variant payload.
func (t Task) Schedule() Schedule {
	return t.schedule
}

// NextDue returns the time the task needs attention: a deadline's By or an
// event's From. Todos have none.
func (t Task) NextDue() (time.Time, bool) {
	switch s := t.schedule.(type) {
	case Deadline:
		return s.By, true
	case Event:
		return s.From, true
	default:
		return time.Time{}, false
	}
}

// MarkDone flags the task as completed.
func (t *Task) MarkDone() error {
	if t.done {
		return ErrAlreadyDone
	}
	t.done = true
	return nil
}

// MarkUndone flags the task as in progress.
func (t *Task) MarkUndone() error {
	if !t.done {
		return ErrNotDone
	}
	t.done = false
	return nil
}

// Matches reports whether the description contains sub, case-sensitively.
func (t Task) Matches(sub string) bool {
	return strings.Contains(t.description, sub)
}

// Render returns the display line, e.g. "[D][ ] submit report (by: Dec 1 2024)".
func (t Task) Render() string {
	checkbox := "[ ]"
	if t.done {
		checkbox = "[X]"
	}
	base := "[" + string(t.Kind()) + "]" + checkbox + " " + t.description

	switch s := t.schedule.(type) {
	case Todo:
		return base
	case Deadline:
		return base + " (by: " + FormatForDisplay(s.By) + ")"
	case Event:
		return base + " (from: " + FormatForDisplay(s.From) + " | to: " + FormatForDisplay(s.To) + ")"
	default:
		panic(fmt.Sprintf("task: unhandled schedule %T", s))
	}
}

// String implements fmt.Stringer.
func (t Task) String() string {
	return t.Render()
}

// Serialize returns the pipe-delimited save record for the task.
func (t Task) Serialize() string {
	flag := "0"
	if t.done {
		flag = "1"
	}
	fields := []string{string(t.Kind()), flag, t.description}

	switch s := t.schedule.(type) {
	case Todo:
	case Deadline:
		fields = append(fields, FormatForStorage(s.By))
	case Event:
		fields = append(fields, FormatForStorage(s.From), FormatForStorage(s.To))
	default:
		panic(fmt.Sprintf("task: unhandled schedule %T", s))
	}
	return strings.Join(fields, "|")
}

// recordFields is the number of pipe-delimited fields per kind, tag included.
var recordFields = map[Kind]int{
	KindTodo:     3,
	KindDeadline: 4,
	KindEvent:    5,
}

// FromRecord rebuilds a task from a split save record: tag, done flag,
// description, then the variant's stored dates.
func FromRecord(fields []string) (Task, error) {
	if len(fields) == 0 {
		return Task{}, fmt.Errorf("%w: empty record", ErrMalformedRecord)
	}

	kind := Kind(fields[0])
	want, ok := recordFields[kind]
	if !ok {
		return Task{}, fmt.Errorf("%w: unknown task type %q", ErrMalformedRecord, fields[0])
	}
	if len(fields) != want {
		return Task{}, fmt.Errorf("%w: %s records have %d fields, got %d",
			ErrMalformedRecord, kind, want-1, len(fields)-1)
	}

	var done bool
	switch fields[1] {
	case "0":
	case "1":
		done = true
	default:
		return Task{}, fmt.Errorf("%w: done flag %q", ErrMalformedRecord, fields[1])
	}

	dates := make([]time.Time, 0, 2)
	for _, token := range fields[3:] {
		d, err := ParseStoredDate(token)
		if err != nil {
			return Task{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		dates = append(dates, d)
	}

	var (
		t   Task
		err error
	)
	switch kind {
	case KindTodo:
		t, err = NewTodo(fields[2])
	case KindDeadline:
		t, err = NewDeadline(fields[2], dates[0])
	case KindEvent:
		t, err = NewEvent(fields[2], dates[0], dates[1])
	}
	if err != nil {
		return Task{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	t.done = done
	return t, nil
}

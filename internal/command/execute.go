package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hy4ri/trackerbot/internal/parser"
	"github.com/hy4ri/trackerbot/internal/task"
)

// Input errors raised while executing commands.
var (
	ErrInvalidIndex        = errors.New("invalid format")
	ErrTooManyArguments    = errors.New("too many fields")
	ErrUnrecognizedCommand = errors.New("unrecognised command type, try another?")
)

// Action identifies what an executed command did.
type Action int

const (
	ActionAdded Action = iota
	ActionMarked
	ActionUnmarked
	ActionDeleted
	ActionFound
	ActionListed
	ActionExited
)

// Entry is one task in a listing with its 1-based index.
type Entry struct {
	Index int
	Task  task.Task
}

// Result is the structured outcome of a command. Which fields are set
// depends on Action.
type Result struct {
	Action Action

	// Added, Marked, Unmarked, Deleted
	Task  task.Task
	Index int

	// List size after the command.
	Count int

	// Found
	Query string

	// Found, Listed
	Entries []Entry
}

// Execute runs cmd against tasks. On error the list is left as it was.
func Execute(cmd Command, tasks *task.List) (Result, error) {
	switch c := cmd.(type) {
	case Add:
		t, err := parser.ParseTask(c.Kind, c.Text)
		if err != nil {
			return Result{}, err
		}
		return fromReceipt(ActionAdded, tasks.Add(t)), nil

	case Toggle:
		usage := KeywordUnmark
		if c.Done {
			usage = KeywordMark
		}
		i, err := parseIndex(c.Arg, usage)
		if err != nil {
			return Result{}, err
		}
		if c.Done {
			r, err := tasks.Mark(i)
			if err != nil {
				return Result{}, err
			}
			return fromReceipt(ActionMarked, r), nil
		}
		r, err := tasks.Unmark(i)
		if err != nil {
			return Result{}, err
		}
		return fromReceipt(ActionUnmarked, r), nil

	case Delete:
		i, err := parseIndex(c.Arg, KeywordDelete)
		if err != nil {
			return Result{}, err
		}
		r, err := tasks.Delete(i)
		if err != nil {
			return Result{}, err
		}
		return fromReceipt(ActionDeleted, r), nil

	case Find:
		res := Result{Action: ActionFound, Query: c.Query, Count: tasks.Len()}
		for i, t := range tasks.FindAll(c.Query) {
			res.Entries = append(res.Entries, Entry{Index: i, Task: t})
		}
		return res, nil

	case List:
		res := Result{Action: ActionListed, Count: tasks.Len()}
		for i, t := range tasks.All() {
			res.Entries = append(res.Entries, Entry{Index: i, Task: t})
		}
		return res, nil

	case Exit:
		return Result{Action: ActionExited, Count: tasks.Len()}, nil

	case Unknown:
		return Result{}, ErrUnrecognizedCommand

	default:
		panic(fmt.Sprintf("command: unhandled command %T", c))
	}
}

func fromReceipt(a Action, r task.Receipt) Result {
	return Result{Action: a, Task: r.Task, Index: r.Index, Count: r.Count}
}

// parseIndex reads a single integer argument. The integer check comes first,
// so "x 2" is an invalid index and "2 x" has too many arguments.
func parseIndex(arg, keyword string) (int, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %s [number in list range]", ErrInvalidIndex, keyword)
	}
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s [number in list range]", ErrInvalidIndex, keyword)
	}
	if len(fields) > 1 {
		return 0, fmt.Errorf("%w: %s [number in list range]", ErrTooManyArguments, keyword)
	}
	return i, nil
}

// Package parser splits raw input lines and turns add-command text into tasks.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/hy4ri/trackerbot/internal/task"
)

// Usage strings shown with format errors.
const (
	DeadlineUsage = "deadline [description] /by [date]"
	EventUsage    = "event [description] /from [start-date] /to [end-date]"
)

var (
	ErrDeadlineFormat = errors.New("improper format")
	ErrEventFormat    = errors.New("improper format")
)

var token = regexp.MustCompile(`\S+`)

// splitFlags cuts text at every whitespace-delimited token that is one of the
// named flags. It returns the flags in order and the len(flags)+1 trimmed
// segments around them. A flag embedded in a longer word is not split on, so
// callers also count raw occurrences.
func splitFlags(text string, names ...string) (flags, segments []string) {
	start := 0
	for _, loc := range token.FindAllStringIndex(text, -1) {
		word := text[loc[0]:loc[1]]
		if !slices.Contains(names, word) {
			continue
		}
		flags = append(flags, word)
		segments = append(segments, strings.TrimSpace(text[start:loc[0]]))
		start = loc[1]
	}
	segments = append(segments, strings.TrimSpace(text[start:]))
	return flags, segments
}

// SplitLine returns the first whitespace-delimited token of line and the
// trimmed remainder. Both are empty for a blank line.
func SplitLine(line string) (keyword, remainder string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	end := strings.IndexFunc(line, unicode.IsSpace)
	if end < 0 {
		return line, ""
	}
	return line[:end], strings.TrimSpace(line[end:])
}

// ParseTask builds a task of the given kind from the free text of an add command.
func ParseTask(kind task.Kind, text string) (task.Task, error) {
	text = strings.TrimSpace(text)

	switch kind {
	case task.KindTodo:
		return task.NewTodo(text)
	case task.KindDeadline:
		return parseDeadline(text)
	case task.KindEvent:
		return parseEvent(text)
	default:
		return task.Task{}, fmt.Errorf("parser: unknown task kind %q", kind)
	}
}

func parseDeadline(text string) (task.Task, error) {
	flags, segments := splitFlags(text, "/by")
	switch {
	case len(flags) == 0:
		return task.Task{}, fmt.Errorf("%w: %s", ErrDeadlineFormat, DeadlineUsage)
	case len(flags) > 1, strings.Count(text, "/by") != 1:
		return task.Task{}, fmt.Errorf("%w: too many flags: %s", ErrDeadlineFormat, DeadlineUsage)
	}

	desc, by := segments[0], segments[1]
	if desc == "" {
		return task.Task{}, task.ErrEmptyDescription
	}
	if by == "" {
		return task.Task{}, fmt.Errorf("%w: empty /by flag: %s", ErrDeadlineFormat, DeadlineUsage)
	}

	due, err := task.ParseUserDate(by)
	if err != nil {
		return task.Task{}, err
	}
	return task.NewDeadline(desc, due)
}

func parseEvent(text string) (task.Task, error) {
	flags, segments := splitFlags(text, "/from", "/to")
	switch {
	case len(flags) < 2:
		return task.Task{}, fmt.Errorf("%w: %s", ErrEventFormat, EventUsage)
	case len(flags) > 2, strings.Count(text, "/from") != 1, strings.Count(text, "/to") != 1:
		return task.Task{}, fmt.Errorf("%w: too many flags: %s", ErrEventFormat, EventUsage)
	case flags[0] != "/from" || flags[1] != "/to":
		return task.Task{}, fmt.Errorf("%w: /from must come before /to: %s", ErrEventFormat, EventUsage)
	}

	desc, from, to := segments[0], segments[1], segments[2]

	if desc == "" {
		return task.Task{}, task.ErrEmptyDescription
	}
	if from == "" {
		return task.Task{}, fmt.Errorf("%w: empty /from flag: %s", ErrEventFormat, EventUsage)
	}
	if to == "" {
		return task.Task{}, fmt.Errorf("%w: empty /to flag: %s", ErrEventFormat, EventUsage)
	}

	start, err := task.ParseUserDate(from)
	if err != nil {
		return task.Task{}, err
	}
	end, err := task.ParseUserDate(to)
	if err != nil {
		return task.Task{}, err
	}
	return task.NewEvent(desc, start, end)
}

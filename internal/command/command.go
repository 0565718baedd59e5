// Package command resolves parsed input into commands and executes them
// against a task list.
package command

import (
	"github.com/hy4ri/trackerbot/internal/parser"
	"github.com/hy4ri/trackerbot/internal/task"
)

// Command is one parsed user intent. The set of implementations is closed:
// Add, Toggle, Delete, Find, List, Exit and Unknown.
type Command interface {
	command()
}

// Add creates a task of Kind from the free text after the keyword.
type Add struct {
	Kind task.Kind
	Text string
}

// Toggle marks (Done true) or unmarks the task named by Arg.
type Toggle struct {
	Done bool
	Arg  string
}

// Delete removes the task named by Arg.
type Delete struct {
	Arg string
}

// Find lists tasks whose description contains Query.
type Find struct {
	Query string
}

// List shows every task.
type List struct{}

// Exit ends the session.
type Exit struct{}

// Unknown is any unrecognised keyword.
type Unknown struct {
	Keyword string
}

func (Add) command()     {}
func (Toggle) command()  {}
func (Delete) command()  {}
func (Find) command()    {}
func (List) command()    {}
func (Exit) command()    {}
func (Unknown) command() {}

// Keyword constants for the fixed command table.
const (
	KeywordTodo     = "todo"
	KeywordDeadline = "deadline"
	KeywordEvent    = "event"
	KeywordMark     = "mark"
	KeywordUnmark   = "unmark"
	KeywordDelete   = "delete"
	KeywordFind     = "find"
	KeywordList     = "list"
	KeywordBye      = "bye"
)

// Keywords lists the recognised keywords in help order.
var Keywords = []string{
	KeywordTodo, KeywordDeadline, KeywordEvent,
	KeywordMark, KeywordUnmark, KeywordDelete,
	KeywordFind, KeywordList, KeywordBye,
}

// Resolve maps a keyword and its argument text onto a command.
// Keywords are matched exactly; anything else is Unknown.
func Resolve(keyword, rest string) Command {
	switch keyword {
	case KeywordTodo:
		return Add{Kind: task.KindTodo, Text: rest}
	case KeywordDeadline:
		return Add{Kind: task.KindDeadline, Text: rest}
	case KeywordEvent:
		return Add{Kind: task.KindEvent, Text: rest}
	case KeywordMark:
		return Toggle{Done: true, Arg: rest}
	case KeywordUnmark:
		return Toggle{Done: false, Arg: rest}
	case KeywordDelete:
		return Delete{Arg: rest}
	case KeywordFind:
		return Find{Query: rest}
	case KeywordList:
		return List{}
	case KeywordBye:
		return Exit{}
	default:
		return Unknown{Keyword: keyword}
	}
}

// Parse splits a raw input line and resolves it.
func Parse(line string) Command {
	return Resolve(parser.SplitLine(line))
}

// IsExit reports whether cmd ends the session.
func IsExit(cmd Command) bool {
	_, ok := cmd.(Exit)
	return ok
}

// Mutates reports whether executing cmd successfully changes the list.
func Mutates(cmd Command) bool {
	switch cmd.(type) {
	case Add, Toggle, Delete:
		return true
	default:
		return false
	}
}

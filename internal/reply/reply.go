// Package reply turns command results and errors into the text shown to the user.
package reply

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hy4ri/trackerbot/internal/command"
)

// AppName is the assistant name used in greetings.
const AppName = "TrackerBot"

// Greeting is shown when a session starts.
func Greeting() string {
	return "Greetings from " + AppName + "!\nHow may I assist?"
}

// Goodbye is shown when a session ends.
func Goodbye() string {
	return "Thank you for using " + AppName + ". Goodbye."
}

// Text renders a command result.
func Text(res command.Result) string {
	switch res.Action {
	case command.ActionAdded:
		return fmt.Sprintf("I have added this task to my list.\n  %s\n%s on my list.",
			res.Task.Render(), countTasks(res.Count))
	case command.ActionMarked:
		return "This task has been marked as completed.\n  " + res.Task.Render()
	case command.ActionUnmarked:
		return "The task has been marked as incomplete.\n  " + res.Task.Render()
	case command.ActionDeleted:
		return fmt.Sprintf("I have removed this task off of my list.\n  %s\n%s remain on my list.",
			res.Task.Render(), countTasks(res.Count))
	case command.ActionListed:
		if len(res.Entries) == 0 {
			return "No tasks have been added to the list yet."
		}
		return "I am tracking these tasks:\n" + entries(res.Entries)
	case command.ActionFound:
		if len(res.Entries) == 0 {
			return fmt.Sprintf("No tasks on my list contain %q.", res.Query)
		}
		if res.Query == "" {
			return "Every task matches an empty search:\n" + entries(res.Entries)
		}
		return fmt.Sprintf("These tasks contain %q:\n%s", res.Query, entries(res.Entries))
	case command.ActionExited:
		return Goodbye()
	default:
		return ""
	}
}

// Error renders a failure. The list is unchanged whenever this is shown.
func Error(err error) string {
	return "I got some trouble with that input...\n  " + capitalize(err.Error())
}

// Help lists the recognised commands.
func Help() string {
	return strings.Join([]string{
		"Format :: [keyword] [parse string]",
		"  todo [description]",
		"  deadline [description] /by [yyyy-mm-dd[ HHmm]]",
		"  event [description] /from [date] /to [date]",
		"  mark|unmark|delete [number]",
		"  find [text]",
		"  list",
		"  bye",
	}, "\n")
}

func entries(list []command.Entry) string {
	lines := make([]string, len(list))
	for i, e := range list {
		lines[i] = fmt.Sprintf("%d. %s", e.Index, e.Task.Render())
	}
	return strings.Join(lines, "\n")
}

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

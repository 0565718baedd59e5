package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/hy4ri/trackerbot/internal/command"
	"github.com/hy4ri/trackerbot/internal/tui/styles"
)

const maxSuggestions = 5

// promptMark leads the input line and every echoed command in the transcript.
const promptMark = "> "

// CommandLine holds the input line, its history and keyword suggestions.
type CommandLine struct {
	Input            textinput.Model
	History          []string
	HistoryCursor    int
	Suggestions      []string
	SuggestionCursor int
}

// NewCommandLine initializes a focused input line.
func NewCommandLine() *CommandLine {
	input := textinput.New()
	input.Prompt = promptMark
	input.PromptStyle = styles.Prompt
	input.Placeholder = "todo, deadline, event, list, find, mark, unmark, delete, bye"
	input.CharLimit = 500
	input.Width = 50
	input.Focus()

	return &CommandLine{
		Input:         input,
		History:       []string{},
		HistoryCursor: -1,
	}
}

// Submit takes the current input, records it in history and clears the line.
func (c *CommandLine) Submit() string {
	line := c.Input.Value()
	c.Input.Reset()
	c.Suggestions = nil
	c.SuggestionCursor = 0
	c.HistoryCursor = -1

	if strings.TrimSpace(line) == "" {
		return line
	}
	if len(c.History) == 0 || c.History[len(c.History)-1] != line {
		c.History = append(c.History, line)
	}
	return line
}

// Prev recalls the previous history entry.
func (c *CommandLine) Prev() {
	if len(c.History) == 0 {
		return
	}

	if c.HistoryCursor == -1 {
		c.HistoryCursor = len(c.History) - 1
	} else if c.HistoryCursor > 0 {
		c.HistoryCursor--
	}

	c.Input.SetValue(c.History[c.HistoryCursor])
	c.Input.CursorEnd()
}

// Next moves forward in history, back to an empty line past the newest entry.
func (c *CommandLine) Next() {
	if len(c.History) == 0 || c.HistoryCursor == -1 {
		return
	}

	if c.HistoryCursor < len(c.History)-1 {
		c.HistoryCursor++
		c.Input.SetValue(c.History[c.HistoryCursor])
		c.Input.CursorEnd()
	} else {
		c.HistoryCursor = -1
		c.Input.SetValue("")
	}
}

// UpdateSuggestions lists the keywords starting with a partly typed first word.
func (c *CommandLine) UpdateSuggestions() {
	input := c.Input.Value()
	c.SuggestionCursor = 0

	if input == "" || strings.ContainsAny(input, " \t") {
		c.Suggestions = nil
		return
	}

	var matches []string
	for _, name := range command.Keywords {
		if strings.HasPrefix(name, input) && name != input {
			matches = append(matches, name)
		}
	}
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	c.Suggestions = matches
}

// Complete fills in the selected suggestion. Repeated calls cycle through
// the suggestions.
func (c *CommandLine) Complete() bool {
	if len(c.Suggestions) == 0 {
		return false
	}

	name := c.Suggestions[c.SuggestionCursor]
	c.SuggestionCursor = (c.SuggestionCursor + 1) % len(c.Suggestions)
	c.Input.SetValue(name + " ")
	c.Input.CursorEnd()
	return true
}

// View renders the input line with any suggestions under it.
func (c *CommandLine) View() string {
	view := c.Input.View()
	if len(c.Suggestions) == 0 {
		return styles.InputLine.Render(view)
	}

	parts := make([]string, len(c.Suggestions))
	for i, s := range c.Suggestions {
		if i == c.SuggestionCursor {
			parts[i] = styles.KeywordNext.Render(s)
		} else {
			parts[i] = styles.Keyword.Render(s)
		}
	}
	return styles.InputLine.Render(view + "  " + strings.Join(parts, " "))
}

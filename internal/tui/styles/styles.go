// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for the assistant
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#990000"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(0, 1)

	// Title is the style for the header line
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for the save file path next to the title
	Subtitle = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Transcript styles
// NOTE: No margins - they break viewport line counting.
var (
	// Transcript is the border around the conversation viewport
	Transcript = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// UserLine is for echoed user input
	UserLine = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true)

	// BotLine is for replies
	BotLine = lipgloss.NewStyle()

	// BotName prefixes the first line of a reply
	BotName = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	// ErrorLine is for replies to rejected input
	ErrorLine = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// NoticeLine is for save failures and load problems
	NoticeLine = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Rule separates turns in the transcript
	Rule = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input line styles
var (
	// Prompt is the "> " in front of the input
	Prompt = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true)

	// Keyword is a completion candidate under the input
	Keyword = lipgloss.NewStyle().
		Foreground(Subtle)

	// KeywordNext is the candidate the next tab inserts
	KeywordNext = lipgloss.NewStyle().
			Foreground(Highlight).
			Underline(true)

	// InputLine pads the input area
	InputLine = lipgloss.NewStyle().
			Padding(0, 1)
)

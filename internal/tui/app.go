// Package tui provides the chat-style terminal user interface.
package tui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/session"
	"github.com/hy4ri/trackerbot/internal/tui/styles"
)

// entryKind says how a transcript entry is drawn.
type entryKind int

const (
	entryUser entryKind = iota
	entryBot
	entryError
	entryNotice
)

type entry struct {
	kind entryKind
	text string
}

type statusMsg struct {
	msg   string
	isErr bool
}

// Options configures the App.
type Options struct {
	// Notifications enables desktop reminders for deadlines and events.
	Notifications bool
	RemindWithin  time.Duration

	// SavePath is shown in the header.
	SavePath string

	// Notice is shown under the greeting, e.g. why the save file was not loaded.
	Notice string

	Logger *log.Logger
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	session  *session.Session
	debugLog *log.Logger
	notify   notifyFunc

	// Conversation
	transcript []entry
	lastReply  string

	// Components
	commandLine *CommandLine
	viewport    viewport.Model
	help        help.Model
	keymap      Keymap

	// UI state
	statusMsg string
	statusErr bool
	savePath  string
	width     int
	height    int
	showHelp  bool
	quitting  bool

	// Reminders
	notifications bool
	remindWithin  time.Duration
	notified      map[string]bool
}

// NewApp creates the model around a session.
func NewApp(s *session.Session, opts Options) *App {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSeparator

	a := &App{
		session:       s,
		debugLog:      opts.Logger,
		notify:        desktopNotify,
		commandLine:   NewCommandLine(),
		viewport:      viewport.New(0, 0),
		help:          h,
		keymap:        DefaultKeymap(),
		savePath:      opts.SavePath,
		notifications: opts.Notifications,
		remindWithin:  opts.RemindWithin,
		notified:      make(map[string]bool),
	}

	a.push(entryBot, reply.Greeting())
	if opts.Notice != "" {
		a.push(entryNotice, opts.Notice)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if a.notifications {
		cmds = append(cmds, checkDueNow)
	}
	return tea.Batch(cmds...)
}

// push appends to the transcript and scrolls to it.
func (a *App) push(kind entryKind, text string) {
	a.transcript = append(a.transcript, entry{kind: kind, text: text})
	a.refresh()
}

func (a *App) logf(format string, args ...any) {
	if a.debugLog != nil {
		a.debugLog.Printf(format, args...)
	}
}

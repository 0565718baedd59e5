package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hy4ri/trackerbot/internal/reply"
)

// Update implements tea.Model. Every command runs here, so the session is
// only ever touched from the Bubble Tea goroutine.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case checkDueMsg:
		return a, a.handleCheckDue(time.Time(msg))

	case statusMsg:
		a.statusMsg = msg.msg
		a.statusErr = msg.isErr
		return a, nil
	}

	var cmd tea.Cmd
	a.commandLine.Input, cmd = a.commandLine.Input.Update(msg)
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keymap.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keymap.Submit):
		return a.submit()

	case key.Matches(msg, a.keymap.Complete):
		a.commandLine.Complete()
		return a, nil

	case key.Matches(msg, a.keymap.HistoryPrev):
		a.commandLine.Prev()
		return a, nil

	case key.Matches(msg, a.keymap.HistoryNext):
		a.commandLine.Next()
		return a, nil

	case key.Matches(msg, a.keymap.PageUp), key.Matches(msg, a.keymap.PageDown):
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd

	case key.Matches(msg, a.keymap.Copy):
		return a, a.copyLastReply()

	case key.Matches(msg, a.keymap.Save):
		a.save()
		return a, nil

	case key.Matches(msg, a.keymap.Clear):
		a.transcript = nil
		a.refresh()
		return a, nil

	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		a.help.ShowAll = a.showHelp
		if a.showHelp {
			a.transcript = append(a.transcript, entry{kind: entryBot, text: reply.Help()})
		}
		a.layout()
		return a, nil
	}

	var cmd tea.Cmd
	a.commandLine.Input, cmd = a.commandLine.Input.Update(msg)
	a.commandLine.UpdateSuggestions()
	return a, cmd
}

// submit runs the input line through the session.
func (a *App) submit() (tea.Model, tea.Cmd) {
	line := a.commandLine.Submit()
	if strings.TrimSpace(line) == "" {
		return a, nil
	}

	a.push(entryUser, line)
	out := a.session.Handle(line)
	a.logf("%q -> err=%v save=%v", line, out.Err, out.SaveErr)

	kind := entryBot
	if out.Err != nil {
		kind = entryError
	}
	a.push(kind, out.Text)
	a.lastReply = out.Text
	a.statusMsg, a.statusErr = "", false

	if out.SaveErr != nil {
		a.push(entryNotice, reply.Error(out.SaveErr))
		a.statusMsg, a.statusErr = "Autosave failed", true
	}

	if out.Exit {
		a.quitting = true
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) save() {
	if !a.session.Dirty() {
		a.statusMsg, a.statusErr = "Nothing to save", false
		return
	}
	if err := a.session.Save(); err != nil {
		a.push(entryNotice, reply.Error(err))
		a.statusMsg, a.statusErr = "Save failed", true
		return
	}
	a.statusMsg, a.statusErr = "Saved", false
}

// copyLastReply copies the most recent reply to the clipboard.
func (a *App) copyLastReply() tea.Cmd {
	if a.lastReply == "" {
		return nil
	}

	text := a.lastReply
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error(), isErr: true}
		}
		return statusMsg{msg: "Copied: " + firstLine(text)}
	}
}

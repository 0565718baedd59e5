package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/tui/styles"
)

// Lines used around the transcript: header, two border rows, input, status.
const chromeHeight = 5

// View implements tea.Model.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width == 0 {
		return "Loading..."
	}

	return styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		styles.Transcript.Width(a.innerWidth()).Render(a.viewport.View()),
		a.commandLine.View(),
		a.renderStatusBar(),
		a.help.View(a.keymap),
	))
}

// layout sizes the components after a resize or help toggle.
func (a *App) layout() {
	a.help.Width = a.innerWidth()
	a.commandLine.Input.Width = max(a.innerWidth()-4, 10)

	helpHeight := lipgloss.Height(a.help.View(a.keymap))
	a.viewport.Width = max(a.innerWidth()-4, 1)
	a.viewport.Height = max(a.height-chromeHeight-helpHeight, 1)
	a.refresh()
}

// innerWidth is the terminal width minus the app padding.
func (a *App) innerWidth() int {
	return max(a.width-2, 1)
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (a *App) refresh() {
	a.viewport.SetContent(a.renderTranscript())
	a.viewport.GotoBottom()
}

func (a *App) renderTranscript() string {
	width := a.viewport.Width
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	for i, e := range a.transcript {
		if i > 0 && e.kind == entryUser {
			b.WriteString(styles.Rule.Render(strings.Repeat("─", width)))
			b.WriteByte('\n')
		}

		switch e.kind {
		case entryUser:
			b.WriteString(styles.UserLine.Render(echoLine(e.text, width)))
		case entryBot:
			b.WriteString(styles.BotName.Render(reply.AppName) + "\n")
			b.WriteString(styles.BotLine.Width(width).Render(e.text))
		case entryError:
			b.WriteString(styles.BotName.Render(reply.AppName) + "\n")
			b.WriteString(styles.ErrorLine.Width(width).Render(e.text))
		case entryNotice:
			b.WriteString(styles.NoticeLine.Width(width).Render(e.text))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (a *App) renderHeader() string {
	title := styles.Title.Render(reply.AppName)
	room := a.innerWidth() - lipgloss.Width(title) - 1
	if a.savePath == "" || room <= 0 {
		return title
	}
	return title + " " + styles.Subtitle.Render(clipStart(a.savePath, room))
}

func (a *App) renderStatusBar() string {
	width := a.innerWidth()

	left := fmt.Sprintf("%d tasks", a.session.Len())
	if a.session.Dirty() {
		left += " • unsaved"
	}
	if a.notifications {
		left += " • reminders on"
	}

	status := styles.StatusBarText.Render(left)
	if a.statusMsg != "" {
		style := styles.StatusBarSuccess
		if a.statusErr {
			style = styles.StatusBarError
		}
		room := width - lipgloss.Width(left) - 5
		status += styles.StatusBarText.Render("  ") + style.Render(clipEnd(a.statusMsg, room))
	}

	return styles.StatusBar.Width(width).Render(status)
}

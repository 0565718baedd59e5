package tui

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/task"
)

const (
	checkInterval = time.Minute

	// lateGrace still reminds about a task that fell due this recently,
	// so opening the app just after a deadline reports it.
	lateGrace = 5 * time.Minute
)

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(checkInterval, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

func checkDueNow() tea.Msg {
	return checkDueMsg(time.Now())
}

// notifyFunc sends a desktop notification.
type notifyFunc func(title, message string) error

func desktopNotify(title, message string) error {
	return beeep.Notify(title, message, "")
}

type reminder struct {
	key     string
	message string
}

// dueReminders picks the unfinished tasks whose due time lies within
// [now-lateGrace, now+within] and have not been reminded of yet.
// Tasks that are already further overdue are recorded in notified without a
// reminder.
func dueReminders(tasks []task.Task, now time.Time, within time.Duration, notified map[string]bool) []reminder {
	var out []reminder
	for _, t := range tasks {
		if t.Done() {
			continue
		}
		due, ok := t.NextDue()
		if !ok {
			continue
		}

		key := reminderKey(t, due)
		if notified[key] {
			continue
		}

		switch {
		case due.After(now.Add(within)):
			continue
		case now.Sub(due) > lateGrace:
			notified[key] = true
			continue
		}

		notified[key] = true
		out = append(out, reminder{key: key, message: reminderText(t, due)})
	}
	return out
}

func reminderKey(t task.Task, due time.Time) string {
	return string(t.Kind()) + "|" + t.Description() + "|" + strconv.FormatInt(due.Unix(), 10)
}

func reminderText(t task.Task, due time.Time) string {
	when := task.FormatForDisplay(due)
	if t.Kind() == task.KindEvent {
		return fmt.Sprintf("Event starting: %s (%s)", t.Description(), when)
	}
	return fmt.Sprintf("Task due: %s (%s)", t.Description(), when)
}

func (a *App) handleCheckDue(t time.Time) tea.Cmd {
	// Always schedule the next check
	cmds := append([]tea.Cmd{checkDueCmd()}, a.reminderCmds(t)...)
	return tea.Batch(cmds...)
}

// reminderCmds returns one notification command per reminder due at t.
func (a *App) reminderCmds(t time.Time) []tea.Cmd {
	reminders := dueReminders(a.session.Tasks(), t, a.remindWithin, a.notified)
	a.logf("checking reminders at %v: %d due", t, len(reminders))

	notify := a.notify
	cmds := make([]tea.Cmd, 0, len(reminders))
	for _, r := range reminders {
		a.logf("reminding: %s", r.message)
		message := r.message
		cmds = append(cmds, func() tea.Msg {
			if err := notify(reply.AppName, message); err != nil {
				return statusMsg{msg: "Failed to notify: " + err.Error(), isErr: true}
			}
			return nil
		})
	}
	return cmds
}

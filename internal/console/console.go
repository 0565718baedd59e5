// Package console is the plain line-by-line front end: one command per input
// line, each reply framed by separator lines.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hy4ri/trackerbot/internal/reply"
	"github.com/hy4ri/trackerbot/internal/session"
	"github.com/hy4ri/trackerbot/internal/tui/styles"
)

// Separator frames every reply.
var Separator = strings.Repeat("~", 40)

// MaxLineLength caps a single input line in bytes.
const MaxLineLength = 1 << 20

// ErrLineTooLong is reported for an input line over MaxLineLength. The line
// is skipped and reading continues.
var ErrLineTooLong = errors.New("input line is too long")

// Console reads commands from in and writes replies to out.
type Console struct {
	in      io.Reader
	out     io.Writer
	session *session.Session

	rule lipgloss.Style
	fail lipgloss.Style
	warn lipgloss.Style
}

// New creates a console over the given streams. Colours are only used when
// out is a terminal.
func New(in io.Reader, out io.Writer, s *session.Session) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:      in,
		out:     out,
		session: s,
		rule:    r.NewStyle().Foreground(styles.Subtle),
		fail:    r.NewStyle().Foreground(styles.ErrorColor),
		warn:    r.NewStyle().Foreground(styles.WarningColor),
	}
}

// Notice prints a framed warning, such as a failed load, before Run starts.
func (c *Console) Notice(text string) error {
	return c.print(c.warn.Render(text))
}

// Run greets the user and handles lines until "bye" or end of input.
// It returns an error only if reading or writing fails.
func (c *Console) Run() error {
	if err := c.print(reply.Greeting()); err != nil {
		return err
	}

	r := bufio.NewReader(c.in)
	for {
		line, err := readLine(r)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrLineTooLong):
			if err := c.print(c.fail.Render(reply.Error(err))); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}

		out := c.session.Handle(line)
		text := out.Text
		if out.Err != nil {
			text = c.fail.Render(text)
		}
		if out.SaveErr != nil {
			text += "\n" + c.warn.Render(reply.Error(out.SaveErr))
		}
		if err := c.print(text); err != nil {
			return err
		}
		if out.Exit {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A final line with
// no newline still counts. An over-long line is consumed whole and reported
// as ErrLineTooLong.
func readLine(r *bufio.Reader) (string, error) {
	var line []byte
	started, tooLong := false, false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", err
		}
		started = true
		if !tooLong && len(line)+len(chunk) <= MaxLineLength {
			line = append(line, chunk...)
		} else {
			tooLong, line = true, nil
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrLineTooLong, MaxLineLength)
	}
	return string(line), nil
}

func (c *Console) print(text string) error {
	rule := c.rule.Render(Separator)
	_, err := fmt.Fprintf(c.out, "%s\n%s\n%s\n", rule, text, rule)
	return err
}

package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/hy4ri/trackerbot/internal/task"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line, keyword, remainder string
	}{
		{"", "", ""},
		{"   \t ", "", ""},
		{"list", "list", ""},
		{"  list  ", "list", ""},
		{"todo buy milk", "todo", "buy milk"},
		{"todo   buy  milk  ", "todo", "buy  milk"},
		{"\tmark\t3", "mark", "3"},
	}

	for _, tt := range tests {
		keyword, remainder := SplitLine(tt.line)
		if keyword != tt.keyword || remainder != tt.remainder {
			t.Errorf("SplitLine(%q) = (%q, %q), expected (%q, %q)",
				tt.line, keyword, remainder, tt.keyword, tt.remainder)
		}
	}
}

func TestParseTask(t *testing.T) {
	tests := []struct {
		name    string
		kind    task.Kind
		text    string
		want    string
		wantErr error
	}{
		{
			name: "todo",
			kind: task.KindTodo,
			text: "buy milk",
			want: "[T][ ] buy milk",
		},
		{
			name:    "empty todo",
			kind:    task.KindTodo,
			text:    "   ",
			wantErr: task.ErrEmptyDescription,
		},
		{
			name: "deadline",
			kind: task.KindDeadline,
			text: "submit report /by 2024-12-01",
			want: "[D][ ] submit report (by: Dec 1 2024)",
		},
		{
			name: "deadline with time",
			kind: task.KindDeadline,
			text: "submit report /by 2024-12-01 1700",
			want: "[D][ ] submit report (by: Dec 1 2024 17:00)",
		},
		{
			name:    "deadline without description",
			kind:    task.KindDeadline,
			text:    "/by 2024-01-01",
			wantErr: task.ErrEmptyDescription,
		},
		{
			name:    "deadline without flag",
			kind:    task.KindDeadline,
			text:    "submit report 2024-12-01",
			wantErr: ErrDeadlineFormat,
		},
		{
			name:    "deadline with glued flag",
			kind:    task.KindDeadline,
			text:    "submit report/by 2024-12-01",
			wantErr: ErrDeadlineFormat,
		},
		{
			name:    "deadline with two flags",
			kind:    task.KindDeadline,
			text:    "a /by 2024-12-01 /by 2024-12-02",
			wantErr: ErrDeadlineFormat,
		},
		{
			name:    "deadline with flag inside description",
			kind:    task.KindDeadline,
			text:    "submit/by report /by 2024-12-01",
			wantErr: ErrDeadlineFormat,
		},
		{
			name:    "deadline with empty date",
			kind:    task.KindDeadline,
			text:    "submit report /by",
			wantErr: ErrDeadlineFormat,
		},
		{
			name:    "deadline with bad date",
			kind:    task.KindDeadline,
			text:    "submit report /by tomorrow",
			wantErr: task.ErrDateFormat,
		},
		{
			name: "event",
			kind: task.KindEvent,
			text: "trip /from 2024-01-01 /to 2024-01-05",
			want: "[E][ ] trip (from: Jan 1 2024 | to: Jan 5 2024)",
		},
		{
			name:    "event ending before start",
			kind:    task.KindEvent,
			text:    "trip /from 2024-01-01 /to 2023-01-01",
			wantErr: task.ErrEventOrder,
		},
		{
			name:    "event without description",
			kind:    task.KindEvent,
			text:    "/from 2024-01-01 /to 2024-01-05",
			wantErr: task.ErrEmptyDescription,
		},
		{
			name:    "event missing to",
			kind:    task.KindEvent,
			text:    "trip /from 2024-01-01",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event flags reversed",
			kind:    task.KindEvent,
			text:    "trip /to 2024-01-05 /from 2024-01-01",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event with extra flag",
			kind:    task.KindEvent,
			text:    "trip /from 2024-01-01 /to 2024-01-05 /to 2024-01-06",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event with flag inside description",
			kind:    task.KindEvent,
			text:    "trip/to x /from 2024-01-01 /to 2024-01-05",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event with flag inside date",
			kind:    task.KindEvent,
			text:    "trip /from 2024-01-01/from /to 2024-01-05",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event with empty start",
			kind:    task.KindEvent,
			text:    "trip /from /to 2024-01-05",
			wantErr: ErrEventFormat,
		},
		{
			name:    "event with bad end",
			kind:    task.KindEvent,
			text:    "trip /from 2024-01-01 /to later",
			wantErr: task.ErrDateFormat,
		},
		{
			name:    "description with pipe",
			kind:    task.KindTodo,
			text:    "a | b",
			wantErr: task.ErrReservedChar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTask(tt.kind, tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Render() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Render())
			}
		})
	}
}

func TestParseTodoKeepsDescription(t *testing.T) {
	for _, d := range []string{"x", "buy milk", "call mum at 5", "日本語のタスク"} {
		got, err := ParseTask(task.KindTodo, d)
		if err != nil {
			t.Fatalf("ParseTask(%q): %v", d, err)
		}
		r := got.Render()
		if !strings.HasPrefix(r, "[T][ ]") || !strings.Contains(r, d) {
			t.Errorf("unexpected render %q for %q", r, d)
		}
	}
}

func TestDeadlineStoredLine(t *testing.T) {
	got, err := ParseTask(task.KindDeadline, "submit report /by 2024-12-01")
	if err != nil {
		t.Fatal(err)
	}
	if want := "D|0|submit report|1733011200"; got.Serialize() != want {
		t.Errorf("expected %q, got %q", want, got.Serialize())
	}
}

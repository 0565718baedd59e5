package command

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hy4ri/trackerbot/internal/parser"
	"github.com/hy4ri/trackerbot/internal/task"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"todo buy milk", Add{Kind: task.KindTodo, Text: "buy milk"}},
		{"deadline a /by 2024-01-01", Add{Kind: task.KindDeadline, Text: "a /by 2024-01-01"}},
		{"event a /from 2024-01-01 /to 2024-01-02", Add{Kind: task.KindEvent, Text: "a /from 2024-01-01 /to 2024-01-02"}},
		{"mark 2", Toggle{Done: true, Arg: "2"}},
		{"unmark  2 ", Toggle{Done: false, Arg: "2"}},
		{"delete 1", Delete{Arg: "1"}},
		{"find book", Find{Query: "book"}},
		{"find", Find{}},
		{"list", List{}},
		{"list extra", List{}},
		{"bye", Exit{}},
		{"BYE", Unknown{Keyword: "BYE"}},
		{"", Unknown{}},
		{"hello there", Unknown{Keyword: "hello"}},
	}

	for _, tt := range tests {
		if got := Parse(tt.line); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %#v, expected %#v", tt.line, got, tt.want)
		}
	}
}

func TestIsExit(t *testing.T) {
	for _, kw := range Keywords {
		cmd := Resolve(kw, "")
		if got, want := IsExit(cmd), kw == KeywordBye; got != want {
			t.Errorf("IsExit(%s) = %v, expected %v", kw, got, want)
		}
	}
	if IsExit(Unknown{Keyword: "exit"}) {
		t.Error("unknown command must not exit")
	}
}

// run executes each line in order, failing on unexpected errors.
func run(t *testing.T, tasks *task.List, lines ...string) Result {
	t.Helper()
	var res Result
	for _, line := range lines {
		var err error
		res, err = Execute(Parse(line), tasks)
		if err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	return res
}

func TestExecuteAdd(t *testing.T) {
	tasks := task.NewList()

	res := run(t, tasks, "todo buy milk")
	if res.Action != ActionAdded || res.Count != 1 || res.Index != 1 {
		t.Errorf("unexpected result %+v", res)
	}
	got, _ := tasks.Get(1)
	if got.Render() != "[T][ ] buy milk" {
		t.Errorf("expected [T][ ] buy milk, got %q", got.Render())
	}

	run(t, tasks, "deadline submit report /by 2024-12-01")
	got, _ = tasks.Get(2)
	if want := "D|0|submit report|1733011200"; got.Serialize() != want {
		t.Errorf("expected %q, got %q", want, got.Serialize())
	}
}

func TestExecuteErrorsLeaveListUnchanged(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"mark 5", task.ErrIndexOutOfRange},
		{"mark 0", task.ErrIndexOutOfRange},
		{"unmark 1", task.ErrNotDone},
		{"delete 4", task.ErrIndexOutOfRange},
		{"delete", ErrInvalidIndex},
		{"delete one", ErrInvalidIndex},
		{"mark 1 2", ErrTooManyArguments},
		{"mark x 2", ErrInvalidIndex},
		{"mark 1.5", ErrInvalidIndex},
		{"todo", task.ErrEmptyDescription},
		{"deadline /by 2024-01-01", task.ErrEmptyDescription},
		{"deadline report", parser.ErrDeadlineFormat},
		{"event trip /from 2024-01-01 /to 2023-01-01", task.ErrEventOrder},
		{"event trip /from 2024-01-01", parser.ErrEventFormat},
		{"fly away", ErrUnrecognizedCommand},
		{"", ErrUnrecognizedCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			tasks := task.NewList()
			run(t, tasks, "todo a", "todo b", "todo c")
			before := tasks.Tasks()

			_, err := Execute(Parse(tt.line), tasks)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if after := tasks.Tasks(); !reflect.DeepEqual(before, after) {
				t.Errorf("list changed after failed %q", tt.line)
			}
		})
	}
}

func TestExecuteToggleAndDelete(t *testing.T) {
	tasks := task.NewList()
	run(t, tasks, "todo a", "todo b", "todo c")

	res := run(t, tasks, "mark 2")
	if res.Action != ActionMarked || !res.Task.Done() || res.Index != 2 {
		t.Errorf("unexpected mark result %+v", res)
	}

	res = run(t, tasks, "unmark 2")
	if res.Action != ActionUnmarked || res.Task.Done() {
		t.Errorf("unexpected unmark result %+v", res)
	}

	res = run(t, tasks, "delete 1")
	if res.Action != ActionDeleted || res.Task.Description() != "a" || res.Count != 2 {
		t.Errorf("unexpected delete result %+v", res)
	}
	first, _ := tasks.Get(1)
	if first.Description() != "b" {
		t.Errorf("expected b to shift into slot 1, got %q", first.Description())
	}
}

func TestExecuteFindAndList(t *testing.T) {
	tasks := task.NewList()

	res := run(t, tasks, "list")
	if res.Action != ActionListed || len(res.Entries) != 0 || res.Count != 0 {
		t.Errorf("expected empty listing, got %+v", res)
	}

	run(t, tasks, "todo read book", "todo buy milk", "todo return book")

	res = run(t, tasks, "find book")
	var idx []int
	for _, e := range res.Entries {
		idx = append(idx, e.Index)
	}
	if want := []int{1, 3}; !reflect.DeepEqual(idx, want) {
		t.Errorf("expected indices %v, got %v", want, idx)
	}
	if res.Query != "book" {
		t.Errorf("expected query to be echoed, got %q", res.Query)
	}

	res = run(t, tasks, "find")
	if len(res.Entries) != 3 {
		t.Errorf("expected empty query to match all, got %d", len(res.Entries))
	}

	res = run(t, tasks, "list")
	if len(res.Entries) != 3 || res.Entries[2].Index != 3 {
		t.Errorf("unexpected listing %+v", res.Entries)
	}
}

func TestExecuteExit(t *testing.T) {
	tasks := task.NewList()
	res := run(t, tasks, "todo a", "bye")
	if res.Action != ActionExited || tasks.Len() != 1 {
		t.Errorf("unexpected exit result %+v", res)
	}
}

func TestMutates(t *testing.T) {
	for _, cmd := range []Command{Add{}, Toggle{}, Delete{}} {
		if !Mutates(cmd) {
			t.Errorf("expected %T to mutate", cmd)
		}
	}
	for _, cmd := range []Command{Find{}, List{}, Exit{}, Unknown{}} {
		if Mutates(cmd) {
			t.Errorf("expected %T not to mutate", cmd)
		}
	}
}

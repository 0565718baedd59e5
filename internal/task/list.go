package task

import (
	"iter"
	"slices"
)

// Receipt describes the outcome of a list mutation.
type Receipt struct {
	Task  Task // copy of the affected task
	Index int  // 1-based position the task had
	Count int  // list size after the mutation
}

// List is the ordered, 1-indexed collection of tasks for a session.
// It owns its tasks and only hands out copies.
type List struct {
	tasks []Task
}

// NewList creates a list holding copies of the given tasks in order.
func NewList(tasks ...Task) *List {
	return &List{tasks: slices.Clone(tasks)}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in order.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Get returns a copy of the task at 1-based index i.
func (l *List) Get(i int) (Task, error) {
	if err := l.check(i); err != nil {
		return Task{}, err
	}
	return l.tasks[i-1], nil
}

// Add appends a task.
func (l *List) Add(t Task) Receipt {
	l.tasks = append(l.tasks, t)
	return Receipt{Task: t, Index: len(l.tasks), Count: len(l.tasks)}
}

// Mark flags the task at i as done.
func (l *List) Mark(i int) (Receipt, error) {
	return l.toggle(i, (*Task).MarkDone)
}

// Unmark flags the task at i as in progress.
func (l *List) Unmark(i int) (Receipt, error) {
	return l.toggle(i, (*Task).MarkUndone)
}

func (l *List) toggle(i int, apply func(*Task) error) (Receipt, error) {
	if err := l.check(i); err != nil {
		return Receipt{}, err
	}
	if err := apply(&l.tasks[i-1]); err != nil {
		return Receipt{}, err
	}
	return Receipt{Task: l.tasks[i-1], Index: i, Count: len(l.tasks)}, nil
}

// Delete removes the task at i; later tasks shift down by one.
func (l *List) Delete(i int) (Receipt, error) {
	if err := l.check(i); err != nil {
		return Receipt{}, err
	}
	removed := l.tasks[i-1]
	l.tasks = slices.Delete(l.tasks, i-1, i)
	return Receipt{Task: removed, Index: i, Count: len(l.tasks)}, nil
}

// All yields every task with its 1-based index.
func (l *List) All() iter.Seq2[int, Task] {
	return l.FindAll("")
}

// FindAll yields the tasks whose description contains sub, with their
// 1-based indices, in list order. Each range over the result rescans the list.
func (l *List) FindAll(sub string) iter.Seq2[int, Task] {
	return func(yield func(int, Task) bool) {
		for i, t := range l.tasks {
			if !t.Matches(sub) {
				continue
			}
			if !yield(i+1, t) {
				return
			}
		}
	}
}

func (l *List) check(i int) error {
	if i < 1 || i > len(l.tasks) {
		return &IndexError{Index: i, Size: len(l.tasks)}
	}
	return nil
}

// Package task defines the task entity and the ordered in-memory list.
package task

import "fmt"

// Task represents a single to-do entry.
type Task struct {
	Title       string
	Description string
	DueDate     string
	Completed   bool
}

// StatusLabel returns the completion state as shown to the user.
func (t *Task) StatusLabel() string {
	if t.Completed {
		return "Yes"
	}
	return "No"
}

// List is an ordered collection of tasks. Insertion order is display and
// persistence order; tasks are addressed by position only, so removing one
// shifts everything after it.
type List struct {
	tasks []Task
}

// NewList returns an empty task list.
func NewList() *List {
	return &List{}
}

// FromTasks builds a list from existing tasks, preserving their order.
func FromTasks(tasks []Task) *List {
	l := &List{tasks: make([]Task, len(tasks))}
	copy(l.tasks, tasks)
	return l
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends a task to the end of the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at the zero-based index.
func (l *List) Get(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, fmt.Errorf("task index %d out of range [0,%d)", i, len(l.tasks))
	}
	return l.tasks[i], nil
}

// Set replaces the task at the zero-based index wholesale.
func (l *List) Set(i int, t Task) error {
	if i < 0 || i >= len(l.tasks) {
		return fmt.Errorf("task index %d out of range [0,%d)", i, len(l.tasks))
	}
	l.tasks[i] = t
	return nil
}

// Remove deletes the task at the zero-based index. Relative order of the
// remaining tasks is preserved.
func (l *List) Remove(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return fmt.Errorf("task index %d out of range [0,%d)", i, len(l.tasks))
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return nil
}

// Tasks returns a copy of the underlying slice in list order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

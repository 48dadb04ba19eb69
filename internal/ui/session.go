// Package ui implements the interactive menu session.
//
// The session is a blocking read-evaluate-print loop: every prompt blocks
// until the user answers, invalid input reprompts, and nothing here is
// concurrent. Reader and writer are injected so the whole session can be
// driven from tests without a console.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nsavic/todolist-go/internal/date"
	"github.com/nsavic/todolist-go/internal/storage"
	"github.com/nsavic/todolist-go/internal/task"
)

// Session drives the interactive menu loop over a task list.
type Session struct {
	in    *bufio.Reader
	out   io.Writer
	list  *task.List
	store *storage.Store
	log   *log.Logger
	clear bool
}

// NewSession creates a session reading user input from in and writing all
// output to out. clearScreen enables terminal clearing between actions.
func NewSession(in io.Reader, out io.Writer, list *task.List, store *storage.Store, logger *log.Logger, clearScreen bool) *Session {
	return &Session{
		in:    bufio.NewReader(in),
		out:   out,
		list:  list,
		store: store,
		log:   logger,
		clear: clearScreen,
	}
}

// Run executes the menu loop until the user selects Exit. The only error
// returns are exhausted or broken input; every ordinary invalid entry is
// handled by reprompting.
func (s *Session) Run() error {
	s.clearScreen()

	for {
		choice, err := s.readMenuChoice()
		if err != nil {
			return err
		}
		s.clearScreen()

		if choice == '6' {
			if err := s.store.Save(s.list); err != nil {
				s.log.Warn("could not write save file", "path", s.store.Path(), "err", err)
			}
			fmt.Fprintln(s.out, "Thanks for using the application, have a nice day!")
			s.pause("Press enter to exit ...")
			s.clearScreen()
			return nil
		}

		switch choice {
		case '1':
			err = s.add()
		case '2':
			s.view()
		case '3':
			err = s.mark()
		case '4':
			err = s.edit()
		case '5':
			err = s.delete()
		}
		if err != nil {
			return err
		}

		// Pacing pause so multi-line output does not scroll away.
		s.pause("\nPress enter to continue ...")
		s.clearScreen()
	}
}

// readMenuChoice prints the menu and reads selections until one of '1'-'6'
// arrives. Only the first character of the line counts; the rest is
// discarded.
func (s *Session) readMenuChoice() (byte, error) {
	fmt.Fprintln(s.out, titleStyle.Render("-To Do List-"))
	fmt.Fprintln(s.out, "1. Add Task")
	fmt.Fprintln(s.out, "2. View Tasks")
	fmt.Fprintln(s.out, "3. Mark Task as Completed")
	fmt.Fprintln(s.out, "4. Edit Task")
	fmt.Fprintln(s.out, "5. Delete Task")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, "Enter a number 1-6: ")

	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if len(line) > 0 && line[0] >= '1' && line[0] <= '6' {
			return line[0], nil
		}
		fmt.Fprint(s.out, "Invalid input. Please enter a number within range 1-6: ")
	}
}

func (s *Session) add() error {
	fmt.Fprintln(s.out, "Enter task details (Empty to abort operation): ")

	fmt.Fprint(s.out, "Title: ")
	title, err := s.readLine()
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(s.out, "Abort task.")
		return nil
	}

	fmt.Fprint(s.out, "Description: ")
	desc, err := s.readLine()
	if err != nil {
		return err
	}

	due, err := s.promptDate("Due Date (DD/MM/YYYY): ")
	if err != nil {
		return err
	}

	s.list.Add(task.Task{Title: title, Description: desc, DueDate: due})
	fmt.Fprintln(s.out, successStyle.Render("Task added successfully"))
	return nil
}

func (s *Session) view() {
	fmt.Fprintln(s.out, headerStyle.Render("All Tasks"))
	for i, t := range s.list.Tasks() {
		fmt.Fprintln(s.out)
		fmt.Fprintf(s.out, "%-3d", i+1)
		fmt.Fprintf(s.out, "Title: %s\n", t.Title)
		fmt.Fprintf(s.out, "   Desc: %s\n", t.Description)
		fmt.Fprintf(s.out, "   Due Date: %s\n", t.DueDate)
		fmt.Fprintf(s.out, "   Completed: %s\n", t.StatusLabel())
	}
}

func (s *Session) mark() error {
	i, err := s.selectIndex("mark")
	if err != nil || i < 0 {
		return err
	}

	t, err := s.list.Get(i)
	if err != nil {
		return err
	}
	if t.Completed {
		fmt.Fprintln(s.out, "Task is already marked as completed.")
		return nil
	}

	t.Completed = true
	if err := s.list.Set(i, t); err != nil {
		return err
	}
	fmt.Fprintln(s.out, successStyle.Render("Task marked as completed."))
	return nil
}

func (s *Session) edit() error {
	i, err := s.selectIndex("edit")
	if err != nil || i < 0 {
		return err
	}

	// Edit a snapshot; the list is only touched once everything has been
	// collected, so an aborted edit never partially applies.
	t, err := s.list.Get(i)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "Enter task details (Empty to abort operation): ")

	fmt.Fprintf(s.out, "Title (was %s): ", t.Title)
	title, err := s.readLine()
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(s.out, "Abort task.")
		return nil
	}
	t.Title = title

	fmt.Fprintf(s.out, "Description (was %s): ", t.Description)
	desc, err := s.readLine()
	if err != nil {
		return err
	}
	t.Description = desc

	due, err := s.promptDate(fmt.Sprintf("Due Date (DD/MM/YYYY, was %s): ", t.DueDate))
	if err != nil {
		return err
	}
	t.DueDate = due

	if err := s.list.Set(i, t); err != nil {
		return err
	}
	fmt.Fprintln(s.out, successStyle.Render("Task edited successfully"))
	return nil
}

func (s *Session) delete() error {
	i, err := s.selectIndex("remove")
	if err != nil || i < 0 {
		return err
	}

	t, err := s.list.Get(i)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Confirm to delete %q? [y/n]: ", t.Title)
	line, err := s.readLine()
	if err != nil {
		return err
	}
	line = strings.TrimSpace(line)
	if len(line) > 0 && (line[0] == 'y' || line[0] == 'Y') {
		if err := s.list.Remove(i); err != nil {
			return err
		}
		fmt.Fprintln(s.out, successStyle.Render("Task deleted successfully."))
		return nil
	}

	fmt.Fprintln(s.out, "Delete operation cancelled.")
	return nil
}

// selectIndex prompts for a 1-based task number and returns the zero-based
// index. It returns -1 when the user aborts with 0. Non-numeric and
// out-of-range input reprompts; on an empty list the only way out is 0.
func (s *Session) selectIndex(action string) (int, error) {
	for {
		fmt.Fprintf(s.out, "Enter task number to %s (0 to abort operation): ", action)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.out, errorStyle.Render("What you've entered is not a number."))
			continue
		}
		if n == 0 {
			fmt.Fprintln(s.out, "Abort task.")
			return -1, nil
		}
		if n < 1 || n > s.list.Len() {
			fmt.Fprintln(s.out, errorStyle.Render("Task number is out of range."))
			continue
		}
		return n - 1, nil
	}
}

// promptDate reads lines until one parses and validates as a real date,
// then returns it in canonical unpadded D/M/YYYY form. There is no cancel
// path; only a read failure ends the loop early.
func (s *Session) promptDate(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		day, month, year, ok := date.Parse(line)
		if ok && date.IsValid(day, month, year) {
			return date.Canonical(day, month, year), nil
		}
		fmt.Fprint(s.out, "Please enter a valid date: ")
	}
}

// readLine reads one line without its trailing newline. A final unterminated
// line is still returned; the error surfaces only when nothing was read.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// pause blocks until the user presses enter. Read failures are ignored;
// the pause is purely a pacing device.
func (s *Session) pause(msg string) {
	fmt.Fprint(s.out, msg)
	_, _ = s.readLine()
	fmt.Fprintln(s.out)
}

// clearScreen clears the terminal with an ANSI escape when enabled and the
// output is a TTY.
func (s *Session) clearScreen() {
	if !s.clear || !IsTTY(s.out) {
		return
	}
	fmt.Fprint(s.out, "\x1b[2J\x1b[H")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

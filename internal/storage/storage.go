// Package storage loads and saves the task list as a quoted-field text
// file, one task per line:
//
//	"title","description","due_date","completed"
//
// All four fields are always quoted and never escaped, so a title or
// description containing a literal quote or newline corrupts that line.
// This is a documented limitation of the format, kept for compatibility
// with existing save files. The completed field is "1" or "0".
package storage

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nsavic/todolist-go/internal/task"
)

// linePattern matches one persisted task: four quoted, comma-separated
// fields with no quote characters inside.
var linePattern = regexp.MustCompile(`"([^"]*)","([^"]*)","([^"]*)","([^"]*)"`)

// Store reads and writes the save file at a fixed path.
type Store struct {
	path string
	log  *log.Logger
}

// New creates a store for the given save file path.
func New(path string, logger *log.Logger) *Store {
	return &Store{path: path, log: logger}
}

// Path returns the save file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the save file into a task list. A missing or unreadable file
// yields an empty list; lines that do not match the save format are
// skipped with a warning.
func (s *Store) Load() *task.List {
	list := task.NewList()

	f, err := os.Open(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read save file, starting empty", "path", s.path, "err", err)
		}
		return list
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := linePattern.FindStringSubmatch(line)
		if m == nil {
			s.log.Warn("skipping malformed save line", "path", s.path, "line", lineNo)
			continue
		}
		list.Add(task.Task{
			Title:       m[1],
			Description: m[2],
			DueDate:     m[3],
			Completed:   m[4] == "1",
		})
	}
	if err := scanner.Err(); err != nil {
		s.log.Warn("error while reading save file", "path", s.path, "err", err)
	}

	return list
}

// Save writes the task list to the save file, replacing any previous
// content.
func (s *Store) Save(list *task.List) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create save file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, t := range list.Tasks() {
		completed := "0"
		if t.Completed {
			completed = "1"
		}
		if _, err := fmt.Fprintf(w, "\"%s\",\"%s\",\"%s\",\"%s\"\n",
			t.Title, t.Description, t.DueDate, completed); err != nil {
			f.Close()
			return fmt.Errorf("write save file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write save file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save file: %w", err)
	}
	return nil
}

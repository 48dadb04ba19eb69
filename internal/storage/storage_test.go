package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsavic/todolist-go/internal/logging"
	"github.com/nsavic/todolist-go/internal/task"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "save.csv")
	logger := logging.New(io.Discard, logging.Options{Level: "warn"})
	return New(path, logger)
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	list := s.Load()
	if list.Len() != 0 {
		t.Errorf("missing file: got %d tasks, want 0", list.Len())
	}
}

func TestRoundTrip(t *testing.T) {
	s := newTestStore(t)

	original := task.FromTasks([]task.Task{
		{Title: "Buy milk", Description: "2%", DueDate: "5/3/2024"},
		{Title: "Pay rent", Description: "", DueDate: "1/4/2024", Completed: true},
		{Title: "Call, with commas", Description: "desc, more", DueDate: "29/2/2024"},
	})

	if err := s.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := s.Load()
	if loaded.Len() != original.Len() {
		t.Fatalf("loaded %d tasks, want %d", loaded.Len(), original.Len())
	}
	for i, want := range original.Tasks() {
		got, err := loaded.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if got != want {
			t.Errorf("task %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSaveFormat(t *testing.T) {
	s := newTestStore(t)

	list := task.FromTasks([]task.Task{
		{Title: "a", Description: "b", DueDate: "5/3/2024", Completed: true},
		{Title: "c", Description: "", DueDate: "1/1/2025"},
	})
	if err := s.Save(list); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read save file: %v", err)
	}
	want := "\"a\",\"b\",\"5/3/2024\",\"1\"\n\"c\",\"\",\"1/1/2025\",\"0\"\n"
	if string(data) != want {
		t.Errorf("file content:\ngot  %q\nwant %q", string(data), want)
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	s := newTestStore(t)

	content := "\"first\",\"ok\",\"1/1/2024\",\"0\"\n" +
		"this line is garbage\n" +
		"\"missing\",\"fields\"\n" +
		"\"second\",\"also ok\",\"2/2/2024\",\"1\"\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	list := s.Load()
	if list.Len() != 2 {
		t.Fatalf("got %d tasks, want 2", list.Len())
	}

	first, _ := list.Get(0)
	second, _ := list.Get(1)
	if first.Title != "first" || second.Title != "second" {
		t.Errorf("titles: got [%s %s], want [first second]", first.Title, second.Title)
	}
	if !second.Completed {
		t.Error("second task should be completed")
	}
}

func TestCompletedParsesStrictly(t *testing.T) {
	s := newTestStore(t)

	// Only the exact text "1" means completed.
	content := "\"a\",\"\",\"1/1/2024\",\"1\"\n" +
		"\"b\",\"\",\"1/1/2024\",\"0\"\n" +
		"\"c\",\"\",\"1/1/2024\",\"true\"\n" +
		"\"d\",\"\",\"1/1/2024\",\"\"\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	list := s.Load()
	if list.Len() != 4 {
		t.Fatalf("got %d tasks, want 4", list.Len())
	}
	want := []bool{true, false, false, false}
	for i, w := range want {
		got, _ := list.Get(i)
		if got.Completed != w {
			t.Errorf("task %d completed: got %v, want %v", i, got.Completed, w)
		}
	}
}

func TestLoadIgnoresBlankLines(t *testing.T) {
	s := newTestStore(t)

	content := "\"a\",\"\",\"1/1/2024\",\"0\"\n\n\n"
	if err := os.WriteFile(s.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if got := s.Load().Len(); got != 1 {
		t.Errorf("got %d tasks, want 1", got)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	big := task.FromTasks([]task.Task{
		{Title: "one", DueDate: "1/1/2024"},
		{Title: "two", DueDate: "2/1/2024"},
	})
	if err := s.Save(big); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	small := task.FromTasks([]task.Task{{Title: "only", DueDate: "3/1/2024"}})
	if err := s.Save(small); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	list := s.Load()
	if list.Len() != 1 {
		t.Fatalf("got %d tasks after overwrite, want 1", list.Len())
	}
	got, _ := list.Get(0)
	if got.Title != "only" {
		t.Errorf("title: got %q, want only", got.Title)
	}
}

func TestSaveErrorSurfaces(t *testing.T) {
	logger := logging.New(io.Discard, logging.Options{Level: "warn"})
	s := New(filepath.Join(t.TempDir(), "no-such-dir", "save.csv"), logger)

	if err := s.Save(task.NewList()); err == nil {
		t.Error("expected error saving into missing directory, got nil")
	}
}

// Command todolist is an interactive command-line to-do list manager.
package main

import (
	"fmt"
	"os"

	"github.com/nsavic/todolist-go/internal/config"
	"github.com/nsavic/todolist-go/internal/logging"
	"github.com/nsavic/todolist-go/internal/storage"
	"github.com/nsavic/todolist-go/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Prefix: "todolist",
	})

	store := storage.New(cfg.SaveFile, logger)
	list := store.Load()

	session := ui.NewSession(os.Stdin, os.Stdout, list, store, logger, cfg.ClearScreen)
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

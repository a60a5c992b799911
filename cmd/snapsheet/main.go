package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/snapsheet/internal/config"
	"github.com/csheth/snapsheet/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config (default $XDG_CONFIG_HOME/snapsheet/config.toml)")
	mode := flag.String("mode", "", "initial detent: hidden, quarter, half or full")
	draggable := flag.Bool("draggable", true, "allow dragging the sheet with the mouse")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	debug := flag.Bool("debug", os.Getenv("SNAPSHEET_DEBUG") != "", "write a debug log to snapsheet.log")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config (or the default path) and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Sheet.InitialMode = *mode
		case "draggable":
			cfg.Sheet.Draggable = *draggable
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Println("invalid options:", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			fmt.Println("failed to write config:", err)
			os.Exit(1)
		}
		return
	}

	if *debug {
		f, err := tea.LogToFile("snapsheet.log", "snapsheet")
		if err != nil {
			fmt.Println("failed to open debug log:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	initial, _ := cfg.Mode()
	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			InitialMode: initial,
			Draggable:   cfg.Sheet.Draggable,
			Overshoot:   cfg.Sheet.Overshoot,
			TopInset:    cfg.Viewport.TopInset,
			BottomInset: cfg.Viewport.BottomInset,
			Motion:      cfg.Motion(),
			Title:       cfg.Content.Title,
			Body:        cfg.Content.Body,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

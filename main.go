package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/demo"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/ui"
)

type options struct {
	configPath string
	demoID     string
	list       bool
	reduced    bool
	debug      bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML config file (default "+config.DefaultPath+" when present)")
	flag.StringVar(&opts.demoID, "demo", "", "open a demo directly instead of the chapter browser")
	flag.BoolVar(&opts.list, "list", false, "list the demos and exit")
	flag.BoolVar(&opts.reduced, "reduced-motion", false, "jump animations to their end state")
	flag.BoolVar(&opts.debug, "debug", false, "write a debug log to tactile-debug.log")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.debug {
		f, err := tea.LogToFile("tactile-debug.log", "tactile")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.list {
		for _, id := range demo.Default().IDs() {
			title, _ := demo.Default().Title(id)
			fmt.Printf("%-12s %s\n", id, title)
		}
		return nil
	}

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if opts.reduced {
		cfg.Runtime.ReducedMotion = true
	}

	palette := theme.Detect()
	model := newStartupModel(cfg, palette)
	if opts.demoID != "" {
		host, err := ui.New(opts.demoID, cfg, palette)
		if err != nil {
			return err
		}
		model = model.withDemo(host)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		log.Printf("program: %v", err)
		return err
	}
	return nil
}

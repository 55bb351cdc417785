package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/ui"
)

// openDemoCmd builds the host for demo id off the update loop.
func openDemoCmd(id string, cfg *config.Config, palette *theme.Palette) tea.Cmd {
	return func() tea.Msg {
		model, err := ui.New(id, cfg, palette)
		return startupResolvedMsg{id: id, model: model, err: err}
	}
}

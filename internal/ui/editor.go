package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/olivier-w/tactile/internal/config"
)

func newEditor() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "set "
	ti.Placeholder = "stiffness=180"
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

// editorHint lists the fields the editor accepts.
func editorHint() string {
	return "fields: " + strings.Join(config.Fields(), ", ")
}

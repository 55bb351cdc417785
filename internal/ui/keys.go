package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the host's own bindings. Everything else goes to the demo.
type keyMap struct {
	Theme key.Binding
	Edit  key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Theme: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Edit:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit param")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Edit, k.Back, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Theme, k.Edit}, {k.Back, k.Help, k.Quit}}
}

// demoHelp lists each demo's own keys.
var demoHelp = map[string]string{
	"spring":     "click aim  ←/→ move  space swap  p preset  +/- stiffness  [/] damping",
	"momentum":   "drag/wheel scroll  ↑/↓ row  pgup/pgdn fling  home/end  +/- friction",
	"overscroll": "drag past the ends  wheel  ↑/↓ fling  home/end overshoot",
	"pull":       "drag down to pull  ↓/↑ pull  enter refresh  x cancel",
	"carousel":   "drag or flick  ←/→ page  home/end",
	"snap":       "drag or fling the knob  ←/→ tick  home/end",
	"tap":        "tap, double tap, hold or drag  space tap  r reset",
}

package ui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/demo"
	"github.com/olivier-w/tactile/internal/frame"
	"github.com/olivier-w/tactile/internal/pointer"
	"github.com/olivier-w/tactile/internal/theme"
)

// Model is the Bubbletea model hosting one demo. Mouse and key input is
// posted to the demo and a frame is requested; frames run the demo until it
// reports that nothing moves.
type Model struct {
	cfg     *config.Config
	palette *theme.Palette
	demo    demo.Demo
	sched   *frame.Scheduler

	keys    keyMap
	help    help.Model
	editor  textinput.Model
	editing bool

	status string
	failed bool

	stage    stage
	held     bool
	quitting bool
}

// New opens demo id. Configuration errors are returned before any frame
// runs. A nil palette means the dark theme.
func New(id string, cfg *config.Config, palette *theme.Palette) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if palette == nil {
		palette = theme.New(true)
	}
	m := Model{
		cfg:     cfg,
		palette: palette,
		keys:    newKeyMap(),
		help:    help.New(),
		editor:  newEditor(),
		stage: stage{
			cols:  60,
			rows:  12,
			cellW: cfg.Runtime.CellWidthPx,
			cellH: cfg.Runtime.CellHeightPx,
		},
	}
	if err := m.open(id); err != nil {
		return Model{}, err
	}
	return m, nil
}

// open builds demo id with a fresh scheduler. Frames addressed to an older
// scheduler are ignored.
func (m *Model) open(id string) error {
	d, err := demo.New(id, m.cfg, demo.WithPalette(m.palette))
	if err != nil {
		return err
	}
	d.Resize(m.stage.cols, m.stage.rows)
	m.demo = d
	m.sched = frame.NewScheduler(m.cfg.Runtime.FrameInterval, d.Frame)
	m.held = false
	return nil
}

// Demo returns the hosted demo.
func (m Model) Demo() demo.Demo { return m.demo }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sched.Schedule(), tea.SetWindowTitle(appName+" · "+m.demo.Title()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frame.FrameMsg:
		return m, m.sched.Handle(msg)

	case tea.WindowSizeMsg:
		m.stage = m.stage.fit(msg.Width, msg.Height)
		m.help.Width = m.stage.cols
		if m.held {
			m.demo.Post(pointer.Event{Kind: pointer.Cancel, Time: m.sched.Now()})
			m.held = false
		}
		m.demo.Resize(m.stage.cols, m.stage.rows)
		return m, m.sched.Schedule()

	case tea.MouseMsg:
		ev, ok := m.stage.toPointer(msg, m.held, m.sched.Now())
		if !ok {
			return m, nil
		}
		switch ev.Kind {
		case pointer.Down:
			m.held = true
		case pointer.Up:
			m.held = false
		}
		m.demo.Post(ev)
		return m, m.sched.Schedule()

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateKey(msg)
	}

	if m.editing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.failed = "", false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.demo.Close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Back):
		id := m.demo.ID()
		m.demo.Close()
		return m, func() tea.Msg { return DemoClosedMsg{Demo: id} }
	case key.Matches(msg, m.keys.Theme):
		m.palette.Toggle()
		m.status = "theme: " + m.palette.Name()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		m.editor.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.demo.Post(pointer.Event{Kind: pointer.Key, Key: msg.String(), Time: m.sched.Now()})
	return m, m.sched.Schedule()
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		assignment := strings.TrimSpace(m.editor.Value())
		m.closeEditor()
		if assignment == "" {
			return m, nil
		}
		if err := m.apply(assignment); err != nil {
			m.status, m.failed = err.Error(), true
			return m, nil
		}
		m.status = "set " + assignment
		return m, m.sched.Schedule()
	case "esc":
		m.closeEditor()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		m.demo.Close()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editing = false
	m.editor.Reset()
	m.editor.Blur()
}

// apply validates a name=value override against the config and reopens
// the demo with it.
func (m *Model) apply(assignment string) error {
	id := m.demo.ID()
	if err := m.cfg.Assign(id, assignment); err != nil {
		return err
	}
	prev := m.demo
	if err := m.open(id); err != nil {
		return err
	}
	prev.Close()
	log.Printf("ui: %s %s", id, assignment)
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(appName) + "  " + titleStyle.Render(m.demo.Title())
	stageView := stageStyle.
		Width(m.stage.cols).
		Height(m.stage.rows).
		Render(m.demo.View())

	var line string
	switch {
	case m.editing:
		line = m.editor.View() + "  " + helpStyle.Render(editorHint())
	case m.failed:
		line = errorStyle.Render(m.status)
	case m.status != "":
		line = statusStyle.Render(m.status)
	default:
		line = helpStyle.Render(demoHelp[m.demo.ID()])
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + spread(header, helpStyle.Render(m.palette.Name()), m.stage.cols) + "\n")
	b.WriteString("\n")
	b.WriteString(indentBlock(stageView, "  "))
	b.WriteString("\n\n")
	b.WriteString("  " + spread(readoutStyle.Render(m.demo.Readout()),
		statusStyle.Render(renderClock(m.sched.Pending(), m.sched.Frames())), m.stage.cols) + "\n")
	b.WriteString("  " + line + "\n")
	b.WriteString("\n")
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

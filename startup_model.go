package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/tactile/internal/config"
	"github.com/olivier-w/tactile/internal/theme"
	"github.com/olivier-w/tactile/internal/ui"
)

type startupPhase uint8

const (
	phaseBrowse startupPhase = iota
	phaseOpening
	phaseDemo
)

type startupResolvedMsg struct {
	id    string
	model ui.Model
	err   error
}

// startupModel switches between the chapter browser and a hosted demo.
type startupModel struct {
	cfg     *config.Config
	palette *theme.Palette

	browser ui.BrowserModel
	host    ui.Model
	phase   startupPhase
	opening string
	errMsg  string
	width   int
	height  int
	spinner spinner.Model
}

func newStartupModel(cfg *config.Config, palette *theme.Palette) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return startupModel{
		cfg:     cfg,
		palette: palette,
		browser: ui.NewBrowser(),
		phase:   phaseBrowse,
		spinner: s,
	}
}

// withDemo starts directly in an already opened demo.
func (m startupModel) withDemo(host ui.Model) startupModel {
	m.host = host
	m.phase = phaseDemo
	m.browser.Select(host.Demo().ID())
	return m
}

func (m startupModel) Init() tea.Cmd {
	if m.phase == phaseDemo {
		return m.host.Init()
	}
	return tea.Batch(m.browser.Init(), m.spinner.Tick)
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.phase == phaseOpening {
			return m, cmd
		}
		return m, nil

	case ui.BrowserCancelledMsg:
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case ui.BrowserSelectedMsg:
		m.phase = phaseOpening
		m.opening = msg.Demo
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, openDemoCmd(msg.Demo, m.cfg, m.palette))

	case startupResolvedMsg:
		if msg.err != nil {
			log.Printf("startup: open %s: %v", msg.id, msg.err)
			m.phase = phaseBrowse
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.host = msg.model
		m.phase = phaseDemo
		return m, tea.Batch(m.host.Init(), m.resend())

	case ui.DemoClosedMsg:
		m.phase = phaseBrowse
		m.browser.Select(msg.Demo)
		return m, tea.Batch(m.browser.Init(), m.resend())

	case tea.KeyMsg:
		if m.phase == phaseOpening && startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	switch m.phase {
	case phaseBrowse:
		model, cmd := m.browser.Update(msg)
		if browser, ok := model.(ui.BrowserModel); ok {
			m.browser = browser
		}
		return m, cmd
	case phaseDemo:
		model, cmd := m.host.Update(msg)
		if host, ok := model.(ui.Model); ok {
			m.host = host
		}
		return m, cmd
	}
	return m, nil
}

// resend replays the last window size to whichever child is now active.
func (m startupModel) resend() tea.Cmd {
	if m.width == 0 && m.height == 0 {
		return nil
	}
	w, h := m.width, m.height
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

func (m startupModel) View() string {
	switch m.phase {
	case phaseDemo:
		return m.host.View()
	case phaseOpening:
		return m.renderOpeningView()
	}
	if m.errMsg == "" {
		return m.browser.View()
	}
	return "\n  tactile\n\n  " + m.renderError() + "\n\n" + indentBlock(m.browser.View(), "  ")
}

func (m startupModel) renderOpeningView() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("tactile"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(startupStatusStyle.Render(fmt.Sprintf("Opening %s...", m.opening)))
	b.WriteString("\n\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m startupModel) renderError() string {
	return startupErrorStyle.Render(m.errMsg)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	startupErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)

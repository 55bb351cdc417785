package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/tactile/internal/content"
	"github.com/olivier-w/tactile/internal/demo"
)

const appName = "tactile"

type sectionItem struct {
	entry content.Entry
}

func (i sectionItem) Title() string {
	return fmt.Sprintf("%s · %s", i.entry.Chapter.Num, i.entry.Section.Label)
}

func (i sectionItem) Description() string {
	if i.entry.Section.Demo == "" {
		return i.entry.Chapter.Label
	}
	return i.entry.Chapter.Label + " · demo: " + i.entry.Section.Demo
}

func (i sectionItem) FilterValue() string {
	return i.entry.Section.Label + " " + i.entry.Chapter.Label + " " + i.entry.Section.Demo
}

// BrowserModel lists the chapters and opens the demo behind a section.
type BrowserModel struct {
	list     list.Model
	input    textinput.Model
	gotoMode bool
	inputErr string
}

// NewBrowser builds the section list from the content table.
func NewBrowser() BrowserModel {
	entries := content.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = sectionItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#FF5F1F", Dark: "#FF8C00"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#FF5F1F", Dark: "#FF8C00"})

	l := list.New(items, delegate, 80, 20)
	l.Title = appName
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("section", "sections")
	l.Styles.Title = headerStyle

	ti := textinput.New()
	ti.Prompt = "demo: "
	ti.Placeholder = strings.Join(demo.Default().IDs(), ", ")
	ti.CharLimit = 32
	ti.Width = 40

	return BrowserModel{list: l, input: ti}
}

// Select moves the cursor to the first section that opens demo id.
func (m *BrowserModel) Select(id string) {
	for i, item := range m.list.Items() {
		if s, ok := item.(sectionItem); ok && s.entry.Section.Demo == id {
			m.list.Select(i)
			return
		}
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle(appName)
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.gotoMode {
		return m.updateGoto(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(sectionItem)
			if !ok {
				return m, nil
			}
			if item.entry.Section.Demo == "" {
				return m, m.list.NewStatusMessage(statusStyle.Render("no interactive demo in this section"))
			}
			return m, selectCmd(item.entry.Section.Demo, item.entry.Section.ID)
		case "g":
			m.gotoMode = true
			m.inputErr = ""
			m.input.Focus()
			return m, tea.Batch(textinput.Blink, tea.SetWindowTitle(appName+" · go to demo"))
		case "q", "esc", "ctrl+c":
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			return m, func() tea.Msg { return BrowserCancelledMsg{} }
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateGoto(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			id := strings.ToLower(strings.TrimSpace(m.input.Value()))
			if _, ok := demo.Default().Title(id); !ok {
				m.inputErr = fmt.Sprintf("%v: %q", demo.ErrUnknownDemo, id)
				return m, nil
			}
			m.gotoMode = false
			m.input.Reset()
			m.input.Blur()
			return m, selectCmd(id, "")
		case "esc":
			m.gotoMode = false
			m.inputErr = ""
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle(appName)
		case "ctrl+c":
			return m, func() tea.Msg { return BrowserCancelledMsg{} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func selectCmd(id, section string) tea.Cmd {
	return func() tea.Msg {
		return BrowserSelectedMsg{Demo: id, Section: section}
	}
}

func (m BrowserModel) View() string {
	if m.gotoMode {
		s := "\n"
		s += "  " + headerStyle.Render(appName) + "\n"
		s += "\n"
		s += "  " + statusStyle.Render("Go to demo:") + "\n"
		s += "  " + m.input.View() + "\n"
		if m.inputErr != "" {
			s += "  " + errorStyle.Render(m.inputErr) + "\n"
		}
		s += "\n"
		s += "  " + helpStyle.Render("enter open  esc back  ctrl+c quit") + "\n"
		return s
	}
	return m.list.View()
}

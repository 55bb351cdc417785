package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/tactile/internal/content"
)

func updateBrowser(t *testing.T, m BrowserModel, msg tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	b, ok := model.(BrowserModel)
	if !ok {
		t.Fatalf("expected BrowserModel, got %T", model)
	}
	return b, cmd
}

func TestBrowserListsEverySection(t *testing.T) {
	m := NewBrowser()
	if got, want := len(m.list.Items()), len(content.Entries()); got != want {
		t.Fatalf("expected %d items, got %d", want, got)
	}
}

func TestBrowserSectionSelectionReturnsMessage(t *testing.T) {
	m := NewBrowser()

	_, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}

	msg := cmd()
	selected, ok := msg.(BrowserSelectedMsg)
	if !ok {
		t.Fatalf("expected BrowserSelectedMsg, got %T", msg)
	}
	if selected.Demo != "spring" || selected.Section != "sec-direct" {
		t.Fatalf("expected spring from sec-direct, got %+v", selected)
	}
}

func TestBrowserSectionWithoutDemoStaysOpen(t *testing.T) {
	m := NewBrowser()
	m, _ = updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyDown})

	item := m.list.SelectedItem().(sectionItem)
	if item.entry.Section.Demo != "" {
		t.Fatalf("expected a section without demo, got %q", item.entry.Section.Demo)
	}
	_, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a status message command")
	}
	if _, ok := cmd().(BrowserSelectedMsg); ok {
		t.Fatal("expected no selection for a section without demo")
	}
}

func TestBrowserSelectMovesCursor(t *testing.T) {
	m := NewBrowser()
	m.Select("carousel")
	item := m.list.SelectedItem().(sectionItem)
	if item.entry.Section.Demo != "carousel" {
		t.Fatalf("expected carousel section, got %q", item.entry.Section.ID)
	}
}

func TestBrowserGotoOpensDemoByID(t *testing.T) {
	m := NewBrowser()
	m, _ = updateBrowser(t, m, runes("g"))
	if !m.gotoMode {
		t.Fatal("expected go-to prompt")
	}

	m.input.SetValue("snap")
	_, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected selection command")
	}
	selected, ok := cmd().(BrowserSelectedMsg)
	if !ok || selected.Demo != "snap" {
		t.Fatalf("expected snap selection, got %#v", cmd())
	}
}

func TestBrowserGotoRejectsUnknownID(t *testing.T) {
	m := NewBrowser()
	m, _ = updateBrowser(t, m, runes("g"))
	m.input.SetValue("pinch")
	m, cmd := updateBrowser(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command for an unknown id")
	}
	if !m.gotoMode || m.inputErr == "" {
		t.Fatal("expected the prompt to stay open with an error")
	}
}

func TestBrowserCancelReturnsMessage(t *testing.T) {
	m := NewBrowser()

	_, cmd := updateBrowser(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(BrowserCancelledMsg); !ok {
		t.Fatalf("expected BrowserCancelledMsg, got %T", cmd())
	}
}

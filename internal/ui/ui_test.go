package ui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylantmoore/econ450-did-slides/internal/deck"
)

// writeDeck lays out a deck fixture and opens it.
func writeDeck(t *testing.T, files map[string]string) *deck.Deck {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	d, err := deck.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return d
}

// writeFile rewrites one deck file in place (for watch/reload tests).
func writeFile(t *testing.T, d *deck.Deck, name, body string) error {
	t.Helper()
	return os.WriteFile(filepath.Join(d.Dir(), name), []byte(body), 0o644)
}

// numberedDeck builds index.md plus slide-01..slide-NN, each one line.
func numberedDeck(t *testing.T, n int, extra map[string]string) *deck.Deck {
	t.Helper()
	files := map[string]string{"index.md": "# Index"}
	for i := 1; i <= n; i++ {
		files[deck.SlideFile(i)] = "# Slide"
	}
	for name, body := range extra {
		files[name] = body
	}
	return writeDeck(t, files)
}

// step executes a presenter cmd chain until it settles.
func step(t *testing.T, p *PresenterView, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = p.Update(msg)
	}
}

// load puts the presenter on a specific page.
func load(t *testing.T, p *PresenterView, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a navigation cmd")
	}
	step(t, p, cmd)
}

// pump runs a tea.Cmd chain through a model, following batches.
func pump(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	if msg == nil {
		return m
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = pump(t, m, c)
		}
		return m
	}
	var next tea.Cmd
	m, next = m.Update(msg)
	return pump(t, m, next)
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType for
// special keys and Runes for printable ones.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// blockedGate always vetoes navigation.
type blockedGate struct{}

func (blockedGate) NavigationBlocked() bool { return true }

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

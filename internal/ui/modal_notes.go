package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylantmoore/econ450-did-slides/internal/deck"
	"github.com/dylantmoore/econ450-did-slides/internal/render"
)

// NotesModal is the overlay dialog for supplementary note content.
// The body starts as raw markdown and is swapped for the rendered form
// when the asynchronous render completes; a render that never arrives
// leaves the raw text up, never an error.
type NotesModal struct {
	note deck.Note
	body string
}

var _ View = (*NotesModal)(nil)

// NewNotesModal creates the dialog populated from one note entry.
func NewNotesModal(note deck.Note) *NotesModal {
	return &NotesModal{note: note, body: note.Body}
}

// Note returns the note this dialog was opened from.
func (m *NotesModal) Note() deck.Note { return m.note }

// renderNoteCmd re-renders the injected body off the update loop. The
// markdown renderer falls back to the raw source on failure, so this
// cmd cannot fail; it only improves the display.
func renderNoteCmd(r *render.Markdown, note deck.Note) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		return noteRenderedMsg{ID: note.ID, Body: r.Render(note.Body)}
	}
}

// Init implements View.
func (m *NotesModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *NotesModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case noteRenderedMsg:
		// Stale renders for a previously closed note are dropped.
		if msg.ID == m.note.ID {
			m.body = msg.Body
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *NotesModal) View() string {
	title := m.note.Title
	if title == "" {
		title = "Notes"
	}
	content := ModalStyles.Title.Render(title) + "\n\n"
	content += ModalStyles.Body.Render(m.body)
	content += "\n\n" + ModalStyles.Help.Render("Esc: close")
	return ModalStyles.Box.Render(content)
}

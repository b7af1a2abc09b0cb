package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dylantmoore/econ450-did-slides/internal/deck"
	"github.com/dylantmoore/econ450-did-slides/internal/render"
)

// AppModel is the root model: it owns the presenter, the overlay stack,
// and the footer chrome, and routes input between them. While an overlay
// is open the presenter receives no keyboard or surface-click input.
type AppModel struct {
	Presenter *PresenterView
	Overlays  *OverlayStack
	Renderer  *render.Markdown
	Watcher   *deck.Watcher // nil unless watch mode is on
	Keys      KeyMap
	Help      help.Model

	ShowHelp   bool
	Fullscreen bool

	width  int
	height int
}

// NewAppModel wires the root model. The overlay stack passed here must
// be the same one the presenter's NavigationGate was built from.
func NewAppModel(p *PresenterView, overlays *OverlayStack, r *render.Markdown, w *deck.Watcher) *AppModel {
	return &AppModel{
		Presenter:  p,
		Overlays:   overlays,
		Renderer:   r,
		Watcher:    w,
		Keys:       DefaultKeyMap(),
		Help:       help.New(),
		Fullscreen: true,
	}
}

// AsTeaModel adapts the AppModel for tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.Presenter.Init()}
	if a.Watcher != nil {
		cmds = append(cmds, watchCmd(a.Watcher))
	}
	return tea.Batch(cmds...)
}

// watchCmd waits for the next deck edit.
func watchCmd(w *deck.Watcher) tea.Cmd {
	return func() tea.Msg {
		name, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return deckChangedMsg{File: name}
	}
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.Help.Width = msg.Width
		_, cmd := a.Presenter.Update(msg)
		return a, cmd

	case deckChangedMsg:
		_, cmd := a.Presenter.Update(msg)
		if a.Watcher != nil {
			return a, tea.Batch(cmd, watchCmd(a.Watcher))
		}
		return a, cmd

	case OpenNoteMsg:
		a.Overlays.Push(Overlay{View: NewNotesModal(msg.Note), Dismiss: "esc"})
		return a, renderNoteCmd(a.Renderer, msg.Note)

	case ShowGoToMsg:
		_, total := a.Presenter.Position()
		a.Overlays.Push(Overlay{View: NewGoToSlideModal(total), Dismiss: "esc"})
		return a, nil

	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil

	case GoToSlideMsg:
		// The modal must be gone before the presenter consults the gate.
		a.Overlays.Pop()
		return a, a.Presenter.GoToSlide(msg.N)

	case noteRenderedMsg:
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd

	case slideLoadedMsg, loadFailedMsg, reloadedMsg:
		_, cmd := a.Presenter.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		return a.handleMouse(msg)
	}
	return a, nil
}

// handleKey routes keyboard input. An open overlay consumes every key
// (its own close handling takes precedence; presenter shortcuts are
// suppressed entirely), except ctrl+c which always quits.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The overlay's close handling takes precedence over every
		// presenter shortcut (esc never falls through to index nav).
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.Keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.Keys.Help):
		a.ShowHelp = !a.ShowHelp
		a.Help.ShowAll = a.ShowHelp
		return a, nil
	case key.Matches(msg, a.Keys.Fullscreen):
		a.Fullscreen = !a.Fullscreen
		if a.Fullscreen {
			return a, tea.EnterAltScreen
		}
		return a, tea.ExitAltScreen
	case key.Matches(msg, a.Keys.GoTo):
		return a, func() tea.Msg { return ShowGoToMsg{} }
	}

	// Digits 1-9 are the keyboard form of the note trigger buttons.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if slide := a.Presenter.Slide(); slide != nil {
			if note, ok := slide.NoteByIndex(int(s[0] - '1')); ok {
				return a, func() tea.Msg { return OpenNoteMsg{Note: note} }
			}
		}
	}

	_, cmd := a.Presenter.Update(msg)
	return a, cmd
}

// handleMouse implements the click contract: a left click on the slide
// surface advances, footer buttons do their own action instead, and with
// a dialog open a click either dismisses (outside) or is swallowed
// (inside) - it never also advances the slide.
func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}

	if a.Overlays.Len() > 0 {
		inside, closeHit := a.modalHit(msg.X, msg.Y)
		if !inside || closeHit {
			a.Overlays.Pop()
		}
		return a, nil
	}

	cur, total := a.Presenter.Position()
	_, spots := renderStatusBar(a.width, a.barRow(), a.Presenter.Slide(), cur, total)
	if hs, ok := hitTest(spots, msg.X, msg.Y); ok {
		switch hs.Region {
		case RegionHome:
			return a, a.Presenter.GoToIndex()
		case RegionNote:
			if slide := a.Presenter.Slide(); slide != nil {
				if note, ok := slide.NoteByIndex(hs.Note); ok {
					return a, func() tea.Msg { return OpenNoteMsg{Note: note} }
				}
			}
		}
		return a, nil
	}
	if msg.Y == a.barRow() {
		// Footer chrome outside a button is not slide surface.
		return a, nil
	}
	return a, a.Presenter.Next()
}

// modalHit reports whether (x, y) lands on the centered modal box, and
// whether it hit the close-control line (the bottom hint row, inside the
// border and padding).
func (a *appModelAdapter) modalHit(x, y int) (inside, closeHit bool) {
	top, ok := a.Overlays.Peek()
	if !ok {
		return false, false
	}
	mv := top.View.View()
	w := lipgloss.Width(mv)
	h := lipgloss.Height(mv)
	x0 := (a.width - w) / 2
	y0 := (a.contentHeight() - h) / 2
	inside = x >= x0 && x < x0+w && y >= y0 && y < y0+h
	closeHit = inside && y == y0+h-3
	return inside, closeHit
}

// barRow is the terminal row of the status bar.
func (a *appModelAdapter) barRow() int {
	return a.height - 1
}

// contentHeight is the area above the status bar and help lines.
func (a *appModelAdapter) contentHeight() int {
	h := a.height - 1
	if a.ShowHelp {
		h -= lipgloss.Height(a.Help.View(a.Keys))
	}
	if h < 1 {
		h = 1
	}
	return h
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}

	var content string
	if top, ok := a.Overlays.Peek(); ok {
		// The overlay covers the whole slide surface; the modal box is
		// centered within it.
		content = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Center, lipgloss.Center, top.View.View())
	} else {
		content = lipgloss.Place(a.width, a.contentHeight(), lipgloss.Left, lipgloss.Top, a.Presenter.View())
	}

	out := content
	if a.ShowHelp {
		out += "\n" + a.Help.View(a.Keys)
	}
	cur, total := a.Presenter.Position()
	bar, _ := renderStatusBar(a.width, a.barRow(), a.Presenter.Slide(), cur, total)
	return out + "\n" + bar
}

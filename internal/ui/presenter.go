package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylantmoore/econ450-did-slides/internal/deck"
	"github.com/dylantmoore/econ450-did-slides/internal/render"
)

// noFragment is the fragment cursor before anything is revealed.
const noFragment = -1

// PresenterView owns navigation state: the loaded page and the fragment
// cursor. Page navigation is a load of another slide file; fragment steps
// mutate only the cursor. All navigation is vetoed while the gate reports
// an open dialog.
type PresenterView struct {
	deck     *deck.Deck
	renderer *render.Markdown
	gate     NavigationGate
	keys     KeyMap

	slide    *deck.Slide
	fragment int
	empty    bool

	width  int
	height int
}

var _ View = (*PresenterView)(nil)

// NewPresenterView creates a presenter over d. The gate is the only
// channel through which dialog state reaches navigation.
func NewPresenterView(d *deck.Deck, r *render.Markdown, gate NavigationGate) *PresenterView {
	return &PresenterView{
		deck:     d,
		renderer: r,
		gate:     gate,
		keys:     DefaultKeyMap(),
		fragment: noFragment,
	}
}

// Slide returns the currently loaded page, or nil before the first load.
func (p *PresenterView) Slide() *deck.Slide { return p.slide }

// FragmentIndex returns the fragment cursor (-1 = none revealed).
func (p *PresenterView) FragmentIndex() int { return p.fragment }

// Position returns the current/total indicator values. The index page
// reports current 0.
func (p *PresenterView) Position() (current, total int) {
	if p.slide == nil {
		return 1, p.deck.Total()
	}
	return p.slide.Number, p.slide.Total
}

// Init loads the index page; if the deck has none, the first slide.
func (p *PresenterView) Init() tea.Cmd {
	return p.loadCmd(deck.IndexFile)
}

// blocked reports whether an open dialog vetoes navigation.
func (p *PresenterView) blocked() bool {
	return p.gate != nil && p.gate.NavigationBlocked()
}

// Next reveals the next fragment, or navigates: custom target, then the
// numeric scheme. No-op on the last slide with no custom target.
func (p *PresenterView) Next() tea.Cmd {
	if p.blocked() || p.slide == nil {
		return nil
	}
	if p.fragment < len(p.slide.Fragments)-1 {
		p.fragment++
		return nil
	}
	if p.slide.Next != "" {
		return p.loadCmd(p.slide.Next)
	}
	if p.slide.Number < p.slide.Total {
		return p.loadCmd(deck.SlideFile(p.slide.Number + 1))
	}
	return nil
}

// Prev hides the most recently revealed fragment, or navigates back:
// custom target, then the numeric scheme. No-op on the first slide.
func (p *PresenterView) Prev() tea.Cmd {
	if p.blocked() || p.slide == nil {
		return nil
	}
	if p.fragment >= 0 {
		p.fragment--
		return nil
	}
	if p.slide.Prev != "" {
		return p.loadCmd(p.slide.Prev)
	}
	if p.slide.Number > 1 {
		return p.loadCmd(deck.SlideFile(p.slide.Number - 1))
	}
	return nil
}

// GoToSlide navigates to slide n iff 1 <= n <= total; out-of-range
// requests are silent no-ops.
func (p *PresenterView) GoToSlide(n int) tea.Cmd {
	if p.blocked() {
		return nil
	}
	_, total := p.Position()
	if n < 1 || n > total {
		return nil
	}
	return p.loadCmd(deck.SlideFile(n))
}

// GoToIndex navigates to the deck's index page. On the index it is a
// no-op rather than a reload.
func (p *PresenterView) GoToIndex() tea.Cmd {
	if p.blocked() {
		return nil
	}
	if p.slide != nil && p.slide.Number == 0 {
		return nil
	}
	return p.loadCmd(deck.IndexFile)
}

// loadCmd reads a page off the update loop. Failures come back as
// loadFailedMsg and leave the current page untouched.
func (p *PresenterView) loadCmd(file string) tea.Cmd {
	d := p.deck
	return func() tea.Msg {
		s, err := d.Load(file)
		if err != nil {
			return loadFailedMsg{File: file}
		}
		return slideLoadedMsg{Slide: s}
	}
}

// reloadCmd re-reads the current page after a watcher event, clamping the
// fragment cursor to the new fragment count.
func (p *PresenterView) reloadCmd() tea.Cmd {
	if p.slide == nil {
		return nil
	}
	d := p.deck
	file := p.slide.File
	keep := p.fragment
	return func() tea.Msg {
		s, err := d.Load(file)
		if err != nil {
			return loadFailedMsg{File: file}
		}
		if keep >= len(s.Fragments) {
			keep = len(s.Fragments) - 1
		}
		return reloadedMsg{Slide: s, Fragment: keep}
	}
}

// reloadedMsg replaces the current page in place, preserving the
// (clamped) fragment cursor.
type reloadedMsg struct {
	Slide    *deck.Slide
	Fragment int
}

// Update implements View.
func (p *PresenterView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		if p.renderer != nil {
			p.renderer.SetWidth(contentWidth(msg.Width))
		}
		return p, nil

	case slideLoadedMsg:
		p.slide = msg.Slide
		p.fragment = noFragment
		p.empty = false
		return p, nil

	case reloadedMsg:
		p.slide = msg.Slide
		p.fragment = msg.Fragment
		return p, nil

	case loadFailedMsg:
		// A deck with no index page starts on the first slide instead.
		if msg.File == deck.IndexFile && p.slide == nil {
			return p, p.loadCmd(deck.SlideFile(1))
		}
		// Nothing to show: the first-slide fallback failed too.
		if p.slide == nil {
			p.empty = true
		}
		return p, nil

	case deckChangedMsg:
		if p.slide != nil && msg.File == p.slide.File {
			return p, p.reloadCmd()
		}
		return p, nil

	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}
	return p, nil
}

// handleKey maps presentation keys to navigation. Dialog-open
// suppression happens twice: the app routes keys to the overlay first,
// and each navigation method consults the gate.
func (p *PresenterView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Next):
		return p.Next()
	case key.Matches(msg, p.keys.Prev):
		return p.Prev()
	case key.Matches(msg, p.keys.FirstSlide):
		return p.GoToSlide(1)
	case key.Matches(msg, p.keys.LastSlide):
		_, total := p.Position()
		return p.GoToSlide(total)
	case key.Matches(msg, p.keys.Index):
		return p.GoToIndex()
	}
	return nil
}

// View implements View. The status bar is app chrome; this renders only
// the slide surface.
func (p *PresenterView) View() string {
	if p.slide == nil {
		if p.empty {
			return Styles.Slide.Render(Styles.Empty.Render("empty deck: no index.md or slide-01.md"))
		}
		return Styles.Slide.Render(Styles.Empty.Render("loading deck…"))
	}
	var b strings.Builder
	if p.slide.Title != "" {
		b.WriteString(Styles.Title.Render(p.slide.Title))
		b.WriteString("\n\n")
	}
	body := p.slide.Lead
	for i := 0; i <= p.fragment && i < len(p.slide.Fragments); i++ {
		if p.slide.Fragments[i] == "" {
			continue
		}
		body += "\n\n" + p.slide.Fragments[i]
	}
	if p.renderer != nil {
		body = p.renderer.Render(body)
	}
	b.WriteString(body)
	return Styles.Slide.Render(b.String())
}

// contentWidth is the markdown wrap width for a terminal width.
func contentWidth(termWidth int) int {
	w := termWidth - 6
	if w < 20 {
		w = 20
	}
	return w
}

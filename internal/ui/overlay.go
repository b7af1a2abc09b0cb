package ui

import tea "github.com/charmbracelet/bubbletea"

// NavigationGate is consulted by the presenter before any navigation.
// The open dialog is the only gate in this program; the presenter never
// reaches into overlay state directly.
type NavigationGate interface {
	NavigationBlocked() bool
}

// Overlay is a modal view rendered above the presenter with a dismiss key.
type Overlay struct {
	View    View
	Dismiss string // key string that dismisses (e.g. "esc")
}

// IsDismissKey reports whether key should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages open overlays; the topmost receives input first.
// While non-empty, presenter navigation is suppressed.
type OverlayStack struct {
	stack []Overlay
}

// NavigationBlocked implements NavigationGate.
func (s *OverlayStack) NavigationBlocked() bool {
	return len(s.stack) > 0
}

// Push adds an overlay on top.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay and replaces its View with the
// result. The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

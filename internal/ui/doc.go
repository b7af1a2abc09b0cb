// Package ui implements the terminal presentation controller with Bubble Tea.
//
// Core pieces:
//   - View: a screen region with its own model, update, view (Elm-style)
//   - PresenterView: navigation state machine over a deck (slides and fragments)
//   - OverlayStack: modal views rendered above the presenter; an open
//     overlay gates navigation via NavigationGate
//   - NotesModal / GoToSlideModal: the two overlay kinds
//   - AppModel: root model owning message routing, mouse hit testing,
//     and the status bar chrome
package ui

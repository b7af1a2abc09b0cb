package ui

import "github.com/dylantmoore/econ450-did-slides/internal/deck"

// slideLoadedMsg is sent when a navigation target finished loading.
type slideLoadedMsg struct {
	Slide *deck.Slide
}

// loadFailedMsg is sent when a navigation target could not be read.
// Navigation failures are no-ops; the current page stays up.
type loadFailedMsg struct {
	File string
}

// OpenNoteMsg requests the notes dialog for one note entry.
type OpenNoteMsg struct {
	Note deck.Note
}

// ShowGoToMsg requests the go-to-slide input modal.
type ShowGoToMsg struct{}

// GoToSlideMsg is emitted by the go-to modal with the requested number.
// Out-of-range numbers are silently ignored by the presenter.
type GoToSlideMsg struct {
	N int
}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}

// noteRenderedMsg carries the asynchronously rendered note body. A stale
// message for an already-closed note is dropped by id mismatch.
type noteRenderedMsg struct {
	ID   string
	Body string
}

// deckChangedMsg is sent by the watcher when a markdown file was edited.
type deckChangedMsg struct {
	File string
}

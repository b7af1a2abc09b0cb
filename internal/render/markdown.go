// Package render wraps glamour for terminal markdown output.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders slide and note bodies for the terminal. Rendering is
// best effort: any renderer failure falls back to the raw source so the
// deck always displays something.
type Markdown struct {
	style string
	width int
	tr    *glamour.TermRenderer
}

// NewMarkdown creates a renderer with the given glamour style name
// ("auto", "dark", "light", "notty") wrapped to width.
func NewMarkdown(style string, width int) *Markdown {
	m := &Markdown{style: style, width: width}
	m.rebuild()
	return m
}

// SetWidth rebuilds the renderer when the wrap width changes.
func (m *Markdown) SetWidth(w int) {
	if w == m.width {
		return
	}
	m.width = w
	m.rebuild()
}

// Width returns the current wrap width.
func (m *Markdown) Width() int { return m.width }

func (m *Markdown) rebuild() {
	w := m.width
	if w < 20 {
		w = 20
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(w)}
	if m.style == "" || m.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(m.style))
	}
	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		m.tr = nil
		return
	}
	m.tr = tr
}

// Render converts markdown to styled terminal text. On any failure the
// raw source is returned unchanged.
func (m *Markdown) Render(src string) string {
	if m.tr == nil {
		return src
	}
	out, err := m.tr.Render(src)
	if err != nil {
		return src
	}
	// Glamour pads with a leading and trailing blank line; the layout
	// adds its own spacing.
	return strings.Trim(out, "\n")
}

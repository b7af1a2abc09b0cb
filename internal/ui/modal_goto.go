package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GoToSlideModal is a modal for entering a slide number. It always emits
// the entered number; the presenter silently ignores out-of-range
// requests, so the modal does not validate bounds itself.
type GoToSlideModal struct {
	input textinput.Model
	total int
}

var _ View = (*GoToSlideModal)(nil)

// NewGoToSlideModal creates the go-to-slide modal. total is shown as a
// hint only.
func NewGoToSlideModal(total int) *GoToSlideModal {
	ti := textinput.New()
	ti.Placeholder = "slide number"
	ti.CharLimit = 4
	ti.Width = 16
	ti.Focus()
	return &GoToSlideModal{input: ti, total: total}
}

// Init implements View.
func (m *GoToSlideModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *GoToSlideModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		case "enter":
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				return m, func() tea.Msg { return DismissOverlayMsg{} }
			}
			return m, func() tea.Msg { return GoToSlideMsg{N: n} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *GoToSlideModal) View() string {
	content := ModalStyles.Title.Render("Go to slide") + "\n\n"
	content += m.input.View() + "\n\n"
	content += ModalStyles.Help.Render("Enter: go  Esc: cancel  (1-" + strconv.Itoa(m.total) + ")")
	return ModalStyles.Box.Render(content)
}

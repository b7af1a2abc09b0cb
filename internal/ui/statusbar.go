package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/dylantmoore/econ450-did-slides/internal/deck"
)

// maxNoteLabelWidth bounds a note button label so several fit on a row.
const maxNoteLabelWidth = 16

// renderStatusBar builds the one-row footer: home button, note trigger
// buttons, slide title, and the current/total indicator, plus the click
// hotspots for the buttons at row y.
func renderStatusBar(width, y int, slide *deck.Slide, current, total int) (string, []Hotspot) {
	var spots []Hotspot
	var left strings.Builder
	x := 0

	place := func(styled, plain string, region Region, note int) {
		w := runewidth.StringWidth(plain)
		if region != RegionSurface {
			spots = append(spots, Hotspot{Region: region, X0: x, X1: x + w, Y: y, Note: note})
		}
		left.WriteString(styled)
		x += w
	}

	home := "⌂ index"
	place(Styles.BarButton.Render(home), home, RegionHome, 0)

	if slide != nil {
		for i, n := range slide.Notes {
			title := n.Title
			if title == "" {
				title = n.ID
			}
			label := fmt.Sprintf("[%d %s]", i+1, runewidth.Truncate(title, maxNoteLabelWidth, "…"))
			place("  ", "  ", RegionSurface, 0)
			place(Styles.BarButton.Render(label), label, RegionNote, i)
		}
	}

	indicator := fmt.Sprintf("%d/%d", current, total)
	if slide != nil && slide.Number == 0 {
		indicator = fmt.Sprintf("index · %d slides", total)
	}

	// Fill the middle with the slide title, truncated to the free space.
	gap := width - x - runewidth.StringWidth(indicator) - 4
	title := ""
	if slide != nil {
		title = slide.Title
	}
	if gap > 0 {
		title = runewidth.Truncate(title, gap, "…")
		pad := gap - runewidth.StringWidth(title)
		title = "  " + title + strings.Repeat(" ", pad) + "  "
	} else {
		title = " "
	}

	bar := left.String() + Styles.Bar.Render(title) + Styles.Indicator.Render(indicator)
	// On a very narrow terminal the buttons alone can exceed the width;
	// a wrapped bar would push the hotspots off their row.
	return truncate.String(bar, uint(width)), spots
}

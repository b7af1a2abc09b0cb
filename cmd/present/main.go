package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dylantmoore/econ450-did-slides/internal/config"
	"github.com/dylantmoore/econ450-did-slides/internal/deck"
	"github.com/dylantmoore/econ450-did-slides/internal/render"
	"github.com/dylantmoore/econ450-did-slides/internal/ui"
)

func main() {
	theme := flag.String("theme", "", "glamour style: auto, dark, light, notty (overrides present.yml)")
	watch := flag.Bool("watch", false, "reload the current slide when its file changes")
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "present:", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *watch {
		cfg.Watch = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "present:", err)
		os.Exit(1)
	}

	d, err := deck.Open(cfg.DeckDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "present:", err)
		os.Exit(1)
	}

	renderer := render.NewMarkdown(cfg.Theme, 80)

	// Single composition point: the overlay stack doubles as the
	// presenter's navigation gate; nothing is shared ambiently.
	overlays := &ui.OverlayStack{}
	presenter := ui.NewPresenterView(d, renderer, overlays)

	var watcher *deck.Watcher
	if cfg.Watch {
		watcher, err = deck.Watch(cfg.DeckDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "present: watch disabled:", err)
			watcher = nil
		}
	}

	model := ui.NewAppModel(presenter, overlays, renderer, watcher).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	if watcher != nil {
		watcher.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// Package deck loads slide decks from a directory of markdown files.
//
// A deck is a flat directory: an index page (index.md) plus numbered
// slides (slide-01.md, slide-02.md, ...). Each slide may carry YAML
// front matter for navigation metadata and notes, and may split its
// body into progressively revealed fragments with <!-- reveal -->
// markers.
package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// IndexFile is the fixed file name of the deck's index page.
const IndexFile = "index.md"

// slideFileRe matches the fixed two-digit slide numbering scheme.
var slideFileRe = regexp.MustCompile(`^slide-(\d{2})\.md$`)

// Note is a supplementary content block referenced by an info trigger.
// Body is markdown; it is injected into the notes dialog on open.
type Note struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Slide is one loaded page of the deck.
type Slide struct {
	Number    int    // 1-based slide number; 0 for the index page
	Total     int    // total slide count as known to this page
	Title     string
	File      string   // file name this slide was loaded from
	Lead      string   // body before the first reveal marker, always visible
	Fragments []string // progressively revealed sections, in document order
	Next      string   // custom next target file; empty means numeric scheme
	Prev      string   // custom prev target file; empty means numeric scheme
	Notes     []Note
}

// FragmentCount returns the number of reveal fragments on the slide.
func (s *Slide) FragmentCount() int {
	return len(s.Fragments)
}

// NoteByIndex returns the i-th note (0-based), or false if out of range.
func (s *Slide) NoteByIndex(i int) (Note, bool) {
	if i < 0 || i >= len(s.Notes) {
		return Note{}, false
	}
	return s.Notes[i], true
}

// frontMatter is the YAML header of a slide file. All fields are
// optional; malformed front matter is ignored wholesale.
type frontMatter struct {
	Title string `yaml:"title"`
	Slide int    `yaml:"slide"`
	Total int    `yaml:"total"`
	Next  string `yaml:"next"`
	Prev  string `yaml:"prev"`
	Notes []Note `yaml:"notes"`
}

// Deck scans and loads slides from a single directory.
type Deck struct {
	dir   string
	total int
}

// Open scans dir for numbered slide files. The directory must exist;
// a directory with no slides is a valid one-slide deck (the navigation
// defaults of a page with no metadata).
func Open(dir string) (*Deck, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("opening deck %s: %w", dir, err)
	}
	total := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := slideFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		if n > total {
			total = n
		}
	}
	if total == 0 {
		total = 1
	}
	return &Deck{dir: dir, total: total}, nil
}

// Dir returns the deck directory.
func (d *Deck) Dir() string { return d.dir }

// Total returns the slide count derived from the directory scan.
func (d *Deck) Total() int { return d.total }

// SlideFile returns the file name for slide n in the fixed zero-padded
// two-digit scheme (slide-01.md, slide-02.md, ...).
func SlideFile(n int) string {
	return fmt.Sprintf("slide-%02d.md", n)
}

// SlideNumber parses a slide number out of a file name. Returns 0 for
// the index file and -1 for names outside the numbering scheme.
func SlideNumber(file string) int {
	if file == IndexFile {
		return 0
	}
	m := slideFileRe.FindStringSubmatch(file)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}

// Load reads and parses a single slide file by name. The name may be a
// numbered slide, the index file, or a custom navigation target.
func (d *Deck) Load(file string) (*Slide, error) {
	raw, err := os.ReadFile(filepath.Join(d.dir, file))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file, err)
	}
	return d.parse(file, raw), nil
}

// LoadSlide loads the numbered slide n.
func (d *Deck) LoadSlide(n int) (*Slide, error) {
	return d.Load(SlideFile(n))
}

// LoadIndex loads the index page.
func (d *Deck) LoadIndex() (*Slide, error) {
	return d.Load(IndexFile)
}

// parse builds a Slide from raw file contents. Metadata defaults follow
// the page contract: slide number from the file name (fallback 1), total
// from the directory scan (fallback 1), front matter overriding both.
func (d *Deck) parse(file string, raw []byte) *Slide {
	fm, body := splitFrontMatter(raw)
	lead, frags := splitFragments(string(body))

	s := &Slide{
		Number:    1,
		Total:     d.total,
		Title:     fm.Title,
		File:      file,
		Lead:      lead,
		Fragments: frags,
		Next:      fm.Next,
		Prev:      fm.Prev,
		Notes:     fm.Notes,
	}
	if n := SlideNumber(file); n >= 0 {
		s.Number = n
	}
	if fm.Slide > 0 {
		s.Number = fm.Slide
	}
	if fm.Total > 0 {
		s.Total = fm.Total
	}
	return s
}

var fmFence = []byte("---\n")

// splitFrontMatter separates an optional YAML header from the body.
// Anything malformed leaves the whole input as body; a broken header
// never breaks the slide.
func splitFrontMatter(raw []byte) (frontMatter, []byte) {
	var fm frontMatter
	if !bytes.HasPrefix(raw, fmFence) {
		return fm, raw
	}
	rest := raw[len(fmFence):]
	// An empty header: the closing fence is the first line after the
	// opening one, so the "\n---" search below cannot see it.
	if bytes.HasPrefix(rest, fmFence) {
		return fm, rest[len(fmFence):]
	}
	if bytes.Equal(rest, []byte("---")) {
		return fm, nil
	}
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return fm, raw
	}
	header := rest[:end+1]
	body := rest[end+1:]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return frontMatter{}, raw
	}
	return fm, body
}

// revealRe matches a reveal marker alone on its own line.
var revealRe = regexp.MustCompile(`(?m)^[ \t]*<!--\s*reveal\s*-->[ \t]*$`)

// splitFragments splits a body at reveal markers. The lead is the text
// before the first marker; each subsequent section is one fragment, in
// document order.
func splitFragments(body string) (lead string, fragments []string) {
	parts := revealRe.Split(body, -1)
	lead = strings.TrimSpace(parts[0])
	for _, p := range parts[1:] {
		// An empty section between two adjacent markers is still a
		// navigation step in the source; keep it.
		fragments = append(fragments, strings.TrimSpace(p))
	}
	return lead, fragments
}

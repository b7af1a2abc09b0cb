package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeout(t *testing.T) <-chan time.Time {
	t.Helper()
	return time.After(2 * time.Second)
}

// writeDeck lays out a deck directory from a map of file name to contents.
func writeDeck(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestOpen_CountsNumberedSlides(t *testing.T) {
	dir := writeDeck(t, map[string]string{
		"index.md":    "# Index",
		"slide-01.md": "# One",
		"slide-02.md": "# Two",
		"slide-10.md": "# Ten",
		"notes.md":    "not a slide",
		"slide-3.md":  "wrong padding, not a slide",
	})
	d, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Total())
}

func TestOpen_EmptyDirIsOneSlideDeck(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Total())
}

func TestOpen_MissingDir(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSlideFile_ZeroPadded(t *testing.T) {
	assert.Equal(t, "slide-01.md", SlideFile(1))
	assert.Equal(t, "slide-03.md", SlideFile(3))
	assert.Equal(t, "slide-12.md", SlideFile(12))
}

func TestSlideNumber(t *testing.T) {
	assert.Equal(t, 0, SlideNumber("index.md"))
	assert.Equal(t, 5, SlideNumber("slide-05.md"))
	assert.Equal(t, -1, SlideNumber("appendix.md"))
	assert.Equal(t, -1, SlideNumber("slide-5.md"))
}

func TestLoad_FrontMatter(t *testing.T) {
	dir := writeDeck(t, map[string]string{
		"slide-02.md": `---
title: Parallel Trends
next: appendix.md
prev: index.md
notes:
  - id: did
    title: Difference in differences
    body: "The **DiD** estimand."
---
# Parallel Trends

Body text.
`,
		"slide-01.md": "# One",
	})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Number)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, "Parallel Trends", s.Title)
	assert.Equal(t, "appendix.md", s.Next)
	assert.Equal(t, "index.md", s.Prev)
	require.Len(t, s.Notes, 1)
	assert.Equal(t, "did", s.Notes[0].ID)
	assert.Equal(t, "Difference in differences", s.Notes[0].Title)
	assert.Contains(t, s.Lead, "# Parallel Trends")
}

func TestLoad_FrontMatterOverridesPosition(t *testing.T) {
	dir := writeDeck(t, map[string]string{
		"slide-01.md": "---\nslide: 4\ntotal: 10\n---\nbody\n",
	})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(1)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Number)
	assert.Equal(t, 10, s.Total)
}

func TestLoad_DefaultsWithoutMetadata(t *testing.T) {
	dir := writeDeck(t, map[string]string{"slide-01.md": "just text"})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Number)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, "", s.Title)
	assert.Equal(t, "just text", s.Lead)
	assert.Empty(t, s.Fragments)
}

func TestLoad_MalformedFrontMatterKeptAsBody(t *testing.T) {
	raw := "---\n: not yaml: [\n---\nbody\n"
	dir := writeDeck(t, map[string]string{"slide-01.md": raw})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(1)
	require.NoError(t, err)
	// The broken header is left in the visible body rather than erroring.
	assert.Equal(t, 1, s.Number)
	assert.Contains(t, s.Lead, "not yaml")
}

func TestLoad_EmptyFrontMatter(t *testing.T) {
	dir := writeDeck(t, map[string]string{"slide-01.md": "---\n---\nbody\n"})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(1)
	require.NoError(t, err)
	// Neither fence line leaks into the visible body.
	assert.Equal(t, "", s.Title)
	assert.Equal(t, "body", s.Lead)
	assert.NotContains(t, s.Lead, "---")
}

func TestLoad_UnterminatedFrontMatter(t *testing.T) {
	dir := writeDeck(t, map[string]string{"slide-01.md": "---\ntitle: x\nno closing fence\n"})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadSlide(1)
	require.NoError(t, err)
	assert.Equal(t, "", s.Title)
	assert.Contains(t, s.Lead, "no closing fence")
}

func TestLoad_MissingFile(t *testing.T) {
	d, err := Open(t.TempDir())
	require.NoError(t, err)
	_, err = d.LoadSlide(7)
	assert.Error(t, err)
}

func TestLoad_Index(t *testing.T) {
	dir := writeDeck(t, map[string]string{
		"index.md":    "# ECON 450\n",
		"slide-01.md": "# One",
	})
	d, err := Open(dir)
	require.NoError(t, err)

	s, err := d.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Number)
	assert.Equal(t, 1, s.Total)
}

func TestSplitFragments(t *testing.T) {
	lead, frags := splitFragments("intro\n\n<!-- reveal -->\nfirst\n<!-- reveal -->\nsecond\n")
	assert.Equal(t, "intro", lead)
	require.Len(t, frags, 2)
	assert.Equal(t, "first", frags[0])
	assert.Equal(t, "second", frags[1])
}

func TestSplitFragments_MarkerSpacingAndIndent(t *testing.T) {
	lead, frags := splitFragments("a\n  <!--reveal-->  \nb\n<!--  reveal  -->\nc")
	assert.Equal(t, "a", lead)
	require.Len(t, frags, 2)
	assert.Equal(t, "b", frags[0])
	assert.Equal(t, "c", frags[1])
}

func TestSplitFragments_InlineMarkerIgnored(t *testing.T) {
	lead, frags := splitFragments("text <!-- reveal --> same line")
	assert.Contains(t, lead, "same line")
	assert.Empty(t, frags)
}

func TestSplitFragments_AdjacentMarkersKeepEmptyStep(t *testing.T) {
	_, frags := splitFragments("a\n<!-- reveal -->\n<!-- reveal -->\nb")
	require.Len(t, frags, 2)
	assert.Equal(t, "", frags[0])
	assert.Equal(t, "b", frags[1])
}

func TestWatch_ReportsMarkdownWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slide-01.md")
	require.NoError(t, os.WriteFile(path, []byte("# v1"), 0o644))

	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("# v2"), 0o644))

	select {
	case name := <-w.Changes():
		assert.Equal(t, "slide-01.md", name)
	case <-timeout(t):
		t.Fatal("no change event")
	}
}

func TestWatch_IgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.swp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "slide-01.md"), []byte("# s"), 0o644))

	select {
	case name := <-w.Changes():
		assert.Equal(t, "slide-01.md", name)
	case <-timeout(t):
		t.Fatal("no change event")
	}
}

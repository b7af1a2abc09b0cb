package ui

// Region identifies what a mouse click landed on. Anything outside a
// named hotspot is the slide surface, which advances the presentation.
type Region int

const (
	RegionSurface Region = iota
	RegionHome           // footer home/index button
	RegionNote           // footer note trigger button
)

// Hotspot is a clickable cell range on one row of the chrome.
type Hotspot struct {
	Region Region
	X0, X1 int // inclusive start, exclusive end
	Y      int
	Note   int // note index for RegionNote
}

// hitTest returns the hotspot containing (x, y), if any.
func hitTest(spots []Hotspot, x, y int) (Hotspot, bool) {
	for _, h := range spots {
		if y == h.Y && x >= h.X0 && x < h.X1 {
			return h, true
		}
	}
	return Hotspot{}, false
}

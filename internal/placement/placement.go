// Package placement computes where to render a popup relative to its
// anchor so it stays inside the viewport.
package placement

import "github.com/jmylchreest/popkit/internal/geom"

// Alignment is the horizontal placement of a popup.
type Alignment string

// Side is the vertical placement of a popup.
type Side string

const (
	AlignLeft  Alignment = "left"
	AlignRight Alignment = "right"

	SideTop    Side = "top"
	SideBottom Side = "bottom"
)

// Placement pairs a horizontal alignment with a vertical side.
type Placement struct {
	Alignment Alignment
	Side      Side
}

// Default is the placement used before any measurement has happened.
func Default() Placement {
	return Placement{Alignment: AlignRight, Side: SideBottom}
}

// Compute picks a placement for an element with the given bounding box in
// the given viewport. The lean is right/bottom; each axis flips
// independently when the remaining space on that side cannot hold the
// element's own extent.
func Compute(box geom.Rect, vp geom.Viewport) Placement {
	p := Default()

	spaceRight := vp.Width - box.Right()
	if spaceRight <= box.Width {
		p.Alignment = AlignLeft
	}

	spaceBottom := vp.Height - box.Bottom()
	if spaceBottom <= box.Height {
		p.Side = SideTop
	}

	return p
}

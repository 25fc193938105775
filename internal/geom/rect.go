// Package geom provides the rectangle and viewport types used for
// popup placement measurement.
package geom

// Rect is a bounding box in viewport-relative cell coordinates.
// Negative extents are tolerated: edges are always reported in
// increasing order regardless of sign.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge of the rectangle.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Top returns the top edge of the rectangle.
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Viewport is the visible area popups must stay within.
type Viewport struct {
	Width  float64
	Height float64
}

package layout

import (
	"fmt"
	"math"
)

// maxArea is the largest cell count a Rect built by NewRect may cover.
const maxArea = math.MaxUint16

// Rect represents a rectangular area in terminal cells.
//
// Rects built with NewRect always satisfy Width*Height <= 65535. Values
// built with a struct literal bypass that check; calling Area on such a
// value panics if the product overflows.
type Rect struct {
	X, Y, Width, Height uint16
}

// NewRect creates a Rect. If width*height exceeds the maximum area both
// dimensions are scaled down, keeping the aspect ratio, until it fits.
// The height is truncated first and the width derived from it, so the
// clipped ratio is within 1/height of the requested one.
func NewRect(x, y, width, height uint16) Rect {
	if uint32(width)*uint32(height) <= maxArea {
		return Rect{X: x, Y: y, Width: width, Height: height}
	}
	aspect := float64(width) / float64(height)
	h := max(uint16(math.Sqrt(float64(maxArea)/aspect)), 1)
	w := min(math.Floor(float64(h)*aspect), float64(maxArea/uint32(h)))
	return Rect{X: x, Y: y, Width: uint16(w), Height: h}
}

// Area returns the number of cells in this rectangle.
// It panics if Width*Height does not fit in a uint16.
func (r Rect) Area() uint16 {
	a, ok := r.CheckedArea()
	if !ok {
		panic(fmt.Sprintf("layout: area of %s overflows uint16; build rects with NewRect", r))
	}
	return a
}

// CheckedArea is Area for rectangles that did not come from NewRect. ok is
// false when Width*Height does not fit in a uint16.
func (r Rect) CheckedArea() (area uint16, ok bool) {
	a := uint32(r.Width) * uint32(r.Height)
	if a > maxArea {
		return 0, false
	}
	return uint16(a), true
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left returns the X coordinate of the left edge.
func (r Rect) Left() uint16 { return r.X }

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() uint16 { return r.Y }

// Right returns the X coordinate of the right edge (exclusive), saturating
// at the edge of the coordinate space.
func (r Rect) Right() uint16 {
	return saturatingAdd(r.X, r.Width)
}

// Bottom returns the Y coordinate of the bottom edge (exclusive), saturating
// at the edge of the coordinate space.
func (r Rect) Bottom() uint16 {
	return saturatingAdd(r.Y, r.Height)
}

// Inner returns r shrunk by m on every side. If r is narrower than twice
// the horizontal margin, or shorter than twice the vertical margin, the
// zero Rect is returned.
func (r Rect) Inner(m Margin) Rect {
	if uint32(r.Width) < 2*uint32(m.Horizontal) || uint32(r.Height) < 2*uint32(m.Vertical) {
		return Rect{}
	}
	return Rect{
		X:      saturatingAdd(r.X, m.Horizontal),
		Y:      saturatingAdd(r.Y, m.Vertical),
		Width:  r.Width - 2*m.Horizontal,
		Height: r.Height - 2*m.Vertical,
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersection returns the overlapping region of r and other.
//
// When the rectangles do not overlap the width or height wraps around
// instead of reporting an empty rect. Check Intersects first when an
// empty result has to be told apart.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether r and other share at least one cell. An
// empty rect never intersects anything.
func (r Rect) Intersects(other Rect) bool {
	return !r.IsEmpty() && !other.IsEmpty() &&
		r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains returns true if the point (px, py) lies within this rectangle.
func (r Rect) Contains(px, py uint16) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Margin is the space removed from each side of an area before it is split.
type Margin struct {
	Vertical   uint16
	Horizontal uint16
}

func (m Margin) String() string {
	return fmt.Sprintf("%d,%d", m.Vertical, m.Horizontal)
}

func saturatingAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= math.MaxUint16 {
		return uint16(s)
	}
	return math.MaxUint16
}

// Package layout partitions a terminal area into non-overlapping
// rectangles according to a list of sizing constraints, in the manner of
// ratatui's layout system.
//
// Constraint types:
//   - Length(n): exactly n cells
//   - Percentage(p): p percent of the available space
//   - Ratio(n, d): n/d of the available space
//   - Min(n): at least n cells, stays close to n when others want the space
//   - Max(n): at most n cells, grows toward n when there is room
//
// Each constraint is a soft goal with a weight; the edges of the area and
// the contiguity of neighbouring rects are hard. The solver satisfies the
// hard rules exactly and distributes any mismatch to whichever element is
// cheapest to bend (see solve.go). Results are memoized per (area, layout)
// pair by a Solver; Layout.Split uses a process-wide default Solver.
package layout

import "strings"

// Direction controls the axis along which a Layout splits space.
type Direction uint8

const (
	// Vertical splits top-to-bottom (constraints control height).
	Vertical Direction = iota
	// Horizontal splits left-to-right (constraints control width).
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Layout describes how to split a Rect. It is an immutable value: every
// builder method returns an updated copy and leaves the receiver alone.
//
// The zero Layout is the default one: vertical, no margin, no constraints,
// last rect stretched to the far edge of the area.
type Layout struct {
	direction   Direction
	margin      Margin
	constraints []Constraint
	// packed disables expand-to-fill. Stored inverted so the zero value
	// keeps the default behaviour.
	packed bool
}

// DefaultLayout returns the zero Layout.
func DefaultLayout() Layout {
	return Layout{}
}

// NewLayout creates a Layout with the given direction and constraints.
func NewLayout(dir Direction, constraints ...Constraint) Layout {
	return Layout{}.Direction(dir).Constraints(constraints...)
}

// Direction sets the split direction.
func (l Layout) Direction(d Direction) Layout {
	l.direction = d
	return l
}

// Margin sets the same margin on all four sides.
func (l Layout) Margin(m uint16) Layout {
	l.margin = Margin{Vertical: m, Horizontal: m}
	return l
}

// HorizontalMargin sets the margin on the left and right sides.
func (l Layout) HorizontalMargin(m uint16) Layout {
	l.margin.Horizontal = m
	return l
}

// VerticalMargin sets the margin on the top and bottom sides.
func (l Layout) VerticalMargin(m uint16) Layout {
	l.margin.Vertical = m
	return l
}

// Constraints sets the constraint list. The slice is copied.
func (l Layout) Constraints(cs ...Constraint) Layout {
	l.constraints = append([]Constraint(nil), cs...)
	return l
}

// Split divides area into one Rect per constraint using the default
// Solver. The returned slice is shared with the cache and must not be
// modified.
func (l Layout) Split(area Rect) []Rect {
	return DefaultSolver().Split(area, l)
}

// expandToFill reports whether the last rect is forced to the far edge.
func (l Layout) expandToFill() bool {
	return !l.packed
}

// withExpandToFill is the switch for collaborators that lay out content
// which must not be stretched to the container edge, such as packed Nodes.
func (l Layout) withExpandToFill(v bool) Layout {
	l.packed = !v
	return l
}

// String renders the layout in a stable form, also used as cache key.
func (l Layout) String() string {
	var b strings.Builder
	b.WriteString(l.direction.String())
	b.WriteString(" margin=")
	b.WriteString(l.margin.String())
	if l.packed {
		b.WriteString(" packed")
	}
	b.WriteString(" [")
	for i, c := range l.constraints {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

package layout

import (
	"errors"
	"fmt"
)

// ErrChildCount is returned by Node.Validate when a node has children but
// not exactly one per constraint.
var ErrChildCount = errors.New("layout: child count does not match constraint count")

// Node is one level of a nested layout tree. Each constraint of Layout
// yields one slot; the slot is split further by the matching child, or is
// a leaf when there is no child (or the child has no constraints).
type Node struct {
	Name     string
	Layout   Layout
	Children []*Node

	// Packed keeps every slot at its preferred size instead of stretching
	// the last one to the far edge; unclaimed space stays empty.
	Packed bool
}

// Region is a named leaf of a resolved Node tree.
type Region struct {
	Name string
	Rect Rect
}

// Validate checks the tree for mismatched child counts.
func (n *Node) Validate() error {
	if len(n.Children) != 0 && len(n.Children) != len(n.Layout.constraints) {
		return fmt.Errorf("%w: node %q has %d constraints and %d children",
			ErrChildCount, n.Name, len(n.Layout.constraints), len(n.Children))
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Resolve splits area through the tree with the default Solver.
func (n *Node) Resolve(area Rect) []Region {
	return DefaultSolver().Resolve(area, n)
}

// Resolve splits area through the tree rooted at n and returns its leaves
// in depth-first order.
func (s *Solver) Resolve(area Rect, n *Node) []Region {
	var out []Region
	s.resolve(area, n, &out)
	return out
}

func (s *Solver) resolve(area Rect, n *Node, out *[]Region) {
	if len(n.Layout.constraints) == 0 {
		*out = append(*out, Region{Name: n.Name, Rect: area})
		return
	}
	l := n.Layout
	if n.Packed {
		l = l.withExpandToFill(false)
	}
	for i, r := range s.Split(area, l) {
		var child *Node
		if i < len(n.Children) {
			child = n.Children[i]
		}
		if child == nil {
			*out = append(*out, Region{Name: fmt.Sprintf("%s[%d]", n.Name, i), Rect: r})
			continue
		}
		s.resolve(r, child, out)
	}
}

package preset

import "gitlab.com/tinyland/lab/tessellate/pkg/layout"

// Resolve compiles p and splits area through it with the default solver,
// returning the named leaf regions in depth-first order.
func Resolve(p Preset, area layout.Rect) ([]layout.Region, error) {
	return ResolveWith(layout.DefaultSolver(), p, area)
}

// ResolveWith is Resolve with an explicit solver.
func ResolveWith(s *layout.Solver, p Preset, area layout.Rect) ([]layout.Region, error) {
	n, err := p.Node()
	if err != nil {
		return nil, err
	}
	return s.Resolve(area, n), nil
}

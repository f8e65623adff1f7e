package layout

// SplitVertical splits area top-to-bottom through the process-wide
// DefaultSolver. The returned slice is shared with other callers of the
// same (area, constraints) pair and must not be modified.
func SplitVertical(area Rect, constraints ...Constraint) []Rect {
	return DefaultSolver().Split(area, NewLayout(Vertical, constraints...))
}

// SplitHorizontal is SplitVertical for a left-to-right split.
func SplitHorizontal(area Rect, constraints ...Constraint) []Rect {
	return DefaultSolver().Split(area, NewLayout(Horizontal, constraints...))
}

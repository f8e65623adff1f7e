package layout

import (
	"fmt"
	"testing"
)

// area is a test helper that creates a Rect at origin with the given size.
func area(w, h uint16) Rect {
	return Rect{X: 0, Y: 0, Width: w, Height: h}
}

// assertRectsEqual fails the test if got and want differ.
func assertRectsEqual(t *testing.T, label string, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len(got)=%d, want %d\ngot:  %v\nwant: %v", label, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d]: got %v, want %v", label, i, got[i], want[i])
		}
	}
}

// assertTiling checks the contiguity, cross-axis and fill invariants of a
// split of area by l.
func assertTiling(t *testing.T, label string, area Rect, l Layout, rects []Rect) {
	t.Helper()
	if len(rects) != len(l.constraints) {
		t.Fatalf("%s: %d rects for %d constraints", label, len(rects), len(l.constraints))
	}
	if len(rects) == 0 {
		return
	}
	dest := area.Inner(l.margin)
	start, total := mainAxis(dest, l.direction)
	sum := 0
	for i, r := range rects {
		s, size := mainAxis(r, l.direction)
		sum += int(size)
		if i == 0 && s != start {
			t.Errorf("%s: first rect starts at %d, want %d", label, s, start)
		}
		if i > 0 {
			ps, psize := mainAxis(rects[i-1], l.direction)
			if ps+psize != s {
				t.Errorf("%s[%d]: starts at %d, previous ends at %d", label, i, s, ps+psize)
			}
		}
		if l.direction == Vertical && (r.X != dest.X || r.Width != dest.Width) {
			t.Errorf("%s[%d]: cross axis %v differs from %v", label, i, r, dest)
		}
		if l.direction == Horizontal && (r.Y != dest.Y || r.Height != dest.Height) {
			t.Errorf("%s[%d]: cross axis %v differs from %v", label, i, r, dest)
		}
	}
	if l.expandToFill() && sum != int(total) {
		t.Errorf("%s: sizes sum to %d, want %d", label, sum, total)
	}
	if sum > int(total) {
		t.Errorf("%s: sizes sum to %d, more than available %d", label, sum, total)
	}
}

// --- Reference scenarios ---

func TestLengthThenMinVertical(t *testing.T) {
	rects := DefaultLayout().
		Direction(Vertical).
		Constraints(Length{5}, Min{0}).
		Split(Rect{X: 2, Y: 2, Width: 10, Height: 10})
	assertRectsEqual(t, "length+min", rects, []Rect{
		{X: 2, Y: 2, Width: 10, Height: 5},
		{X: 2, Y: 7, Width: 10, Height: 5},
	})
}

func TestRatioOneThirdTwoThirds(t *testing.T) {
	rects := DefaultLayout().
		Direction(Horizontal).
		Constraints(Ratio{1, 3}, Ratio{2, 3}).
		Split(Rect{X: 0, Y: 0, Width: 9, Height: 2})
	assertRectsEqual(t, "ratio thirds", rects, []Rect{
		{X: 0, Y: 0, Width: 3, Height: 2},
		{X: 3, Y: 0, Width: 6, Height: 2},
	})
}

func TestPercentageMaxMinVertical(t *testing.T) {
	l := NewLayout(Vertical, Percentage{10}, Max{5}, Min{1})
	rects := l.Split(area(10, 10))
	assertTiling(t, "pct+max+min", area(10, 10), l, rects)
	for i := 1; i < len(rects); i++ {
		if rects[i].Y < rects[i-1].Y {
			t.Errorf("y decreased at %d: %v", i, rects)
		}
	}
	// Min is the cheapest to grow, so it takes the surplus.
	assertRectsEqual(t, "pct+max+min", rects, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 1},
		{X: 0, Y: 1, Width: 10, Height: 5},
		{X: 0, Y: 6, Width: 10, Height: 4},
	})
}

// --- Golden tie-break cases ---

func TestSolveGolden(t *testing.T) {
	type span struct{ start, size uint16 }
	tests := []struct {
		name string
		cs   []Constraint
		main uint16
		want []span
	}{
		{"percent thirds round", []Constraint{Percentage{33}, Percentage{33}, Percentage{33}}, 10,
			[]span{{0, 3}, {3, 4}, {7, 3}}},
		{"percent halves odd", []Constraint{Percentage{50}, Percentage{50}}, 11,
			[]span{{0, 6}, {6, 5}}},
		{"ratio thirds of 7", []Constraint{Ratio{1, 3}, Ratio{1, 3}, Ratio{1, 3}}, 7,
			[]span{{0, 2}, {2, 3}, {5, 2}}},
		{"overflowing lengths keep the first", []Constraint{Length{8}, Length{8}}, 10,
			[]span{{0, 8}, {8, 2}}},
		{"min resists shrinking more than length", []Constraint{Min{5}, Length{8}}, 10,
			[]span{{0, 5}, {5, 5}}},
		{"max gives way first", []Constraint{Max{5}, Length{8}}, 10,
			[]span{{0, 2}, {2, 8}}},
		{"length grows before max overshoots", []Constraint{Length{3}, Max{5}}, 10,
			[]span{{0, 5}, {5, 5}}},
		{"equal mins: last takes surplus", []Constraint{Min{0}, Min{0}}, 10,
			[]span{{0, 0}, {0, 10}}},
		{"equal maxes: last takes surplus", []Constraint{Max{2}, Max{2}}, 10,
			[]span{{0, 2}, {2, 8}}},
		{"max capped, min fills", []Constraint{Max{30}, Min{10}}, 100,
			[]span{{0, 30}, {30, 70}}},
		{"percentage above 100", []Constraint{Percentage{150}}, 100,
			[]span{{0, 100}}},
		{"header body footer", []Constraint{Length{3}, Min{0}, Length{1}}, 80,
			[]span{{0, 3}, {3, 76}, {79, 1}}},
		{"over-committed mix", []Constraint{Length{20}, Min{2}, Max{4}}, 10,
			[]span{{0, 8}, {8, 2}, {10, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLayout(Horizontal, tc.cs...)
			got := solve(area(tc.main, 3), l)
			want := make([]Rect, len(tc.want))
			for i, s := range tc.want {
				want[i] = Rect{X: s.start, Y: 0, Width: s.size, Height: 3}
			}
			assertRectsEqual(t, tc.name, got, want)
			assertTiling(t, tc.name, area(tc.main, 3), l, got)
		})
	}
}

// --- Edge cases ---

func TestEmptyConstraintsProduceEmptyResult(t *testing.T) {
	rects := DefaultLayout().Split(area(10, 10))
	if len(rects) != 0 {
		t.Errorf("expected no rects, got %v", rects)
	}
}

func TestOversizedMarginCollapsesToZeroRects(t *testing.T) {
	l := NewLayout(Horizontal, Length{5}, Min{1}, Percentage{50}).Margin(20)
	rects := l.Split(Rect{X: 4, Y: 4, Width: 30, Height: 30})
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	for i, r := range rects {
		if !r.IsEmpty() {
			t.Errorf("rect %d not empty: %v", i, r)
		}
		if r.X != 0 || r.Y != 0 {
			t.Errorf("rect %d not at collapsed dest origin: %v", i, r)
		}
	}
}

func TestMarginShrinksBothDirections(t *testing.T) {
	rects := NewLayout(Vertical, Percentage{50}, Percentage{50}).
		Margin(2).Split(area(20, 14))
	assertRectsEqual(t, "margin", rects, []Rect{
		{X: 2, Y: 2, Width: 16, Height: 5},
		{X: 2, Y: 7, Width: 16, Height: 5},
	})
}

func TestHorizontalAndVerticalMargins(t *testing.T) {
	rects := NewLayout(Horizontal, Length{4}, Min{0}).
		HorizontalMargin(3).
		VerticalMargin(1).
		Split(area(20, 10))
	assertRectsEqual(t, "axis margins", rects, []Rect{
		{X: 3, Y: 1, Width: 4, Height: 8},
		{X: 7, Y: 1, Width: 10, Height: 8},
	})
}

func TestPackedLayoutLeavesTrailingSpace(t *testing.T) {
	l := NewLayout(Vertical, Length{3}, Length{3}).withExpandToFill(false)
	rects := solve(area(10, 10), l)
	assertRectsEqual(t, "packed", rects, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 3},
		{X: 0, Y: 3, Width: 10, Height: 3},
	})
	assertTiling(t, "packed", area(10, 10), l, rects)
}

func TestPackedLayoutStillShrinksToFit(t *testing.T) {
	l := NewLayout(Vertical, Length{8}, Length{8}).withExpandToFill(false)
	rects := solve(area(4, 10), l)
	assertRectsEqual(t, "packed overflow", rects, []Rect{
		{X: 0, Y: 0, Width: 4, Height: 8},
		{X: 0, Y: 8, Width: 4, Height: 2},
	})
}

func TestSplitNearCoordinateLimit(t *testing.T) {
	r := Rect{X: 65530, Y: 0, Width: 20, Height: 1}
	l := NewLayout(Horizontal, Min{0}, Min{0})
	rects := solve(r, l)
	if got := rects[1].Right(); got != 65535 {
		t.Errorf("last right edge = %d, want 65535", got)
	}
}

// --- Invariants over many generated layouts ---

func TestSplitInvariants(t *testing.T) {
	palette := []Constraint{
		Length{0}, Length{3}, Length{17}, Percentage{0}, Percentage{25}, Percentage{33},
		Percentage{120}, Ratio{1, 4}, Ratio{2, 3}, Ratio{5, 2}, Min{0}, Min{4}, Min{30},
		Max{0}, Max{2}, Max{12},
	}
	areas := []Rect{area(0, 0), area(1, 1), area(7, 3), area(80, 24), {X: 5, Y: 9, Width: 33, Height: 41}}
	for _, dir := range []Direction{Horizontal, Vertical} {
		for _, a := range areas {
			for m := uint16(0); m < 3; m++ {
				for i := range palette {
					for j := range palette {
						for k := 0; k < 3; k++ {
							cs := []Constraint{palette[i], palette[j], palette[(i+j+k)%len(palette)]}[:k+1]
							l := NewLayout(dir, cs...).Margin(m)
							label := fmt.Sprintf("%s on %s", l, a)
							assertTiling(t, label, a, l, solve(a, l))
							packed := l.withExpandToFill(false)
							assertTiling(t, label+" packed", a, packed, solve(a, packed))
						}
					}
				}
			}
		}
	}
}

// --- Builder ---

func TestBuilderDoesNotMutateReceiver(t *testing.T) {
	base := NewLayout(Horizontal, Length{1})
	_ = base.Direction(Vertical)
	_ = base.Margin(4)
	_ = base.Constraints(Min{2}, Min{3})
	if base.direction != Horizontal {
		t.Error("Direction mutated receiver")
	}
	if base.margin != (Margin{}) {
		t.Error("Margin mutated receiver")
	}
	if len(base.constraints) != 1 {
		t.Error("Constraints mutated receiver")
	}
}

func TestConstraintsCopiesInput(t *testing.T) {
	cs := []Constraint{Length{1}, Length{2}}
	l := DefaultLayout().Constraints(cs...)
	cs[0] = Length{9}
	if l.constraints[0] != (Length{1}) {
		t.Errorf("layout shares caller slice: %v", l.constraints)
	}
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.direction != Vertical {
		t.Errorf("default direction = %s", l.direction)
	}
	if !l.expandToFill() {
		t.Error("default layout does not expand to fill")
	}
	if l.String() != "vertical margin=0,0 []" {
		t.Errorf("String() = %q", l.String())
	}
}

func TestLayoutStringDistinguishesFields(t *testing.T) {
	base := NewLayout(Vertical, Length{1})
	variants := []Layout{
		base,
		base.Direction(Horizontal),
		base.Margin(1),
		base.HorizontalMargin(1),
		base.VerticalMargin(1),
		base.Constraints(Length{2}),
		base.withExpandToFill(false),
	}
	seen := map[string]bool{}
	for _, v := range variants {
		if seen[v.String()] {
			t.Errorf("duplicate key %q", v.String())
		}
		seen[v.String()] = true
	}
}

func TestSplitHelpers(t *testing.T) {
	v := SplitVertical(area(10, 10), Length{4}, Min{0})
	assertRectsEqual(t, "SplitVertical", v, []Rect{
		{X: 0, Y: 0, Width: 10, Height: 4},
		{X: 0, Y: 4, Width: 10, Height: 6},
	})
	h := SplitHorizontal(area(10, 10), Length{4}, Min{0})
	assertRectsEqual(t, "SplitHorizontal", h, []Rect{
		{X: 0, Y: 0, Width: 4, Height: 10},
		{X: 4, Y: 0, Width: 6, Height: 10},
	})
}

func TestSplitHelpersShareDefaultCache(t *testing.T) {
	a := SplitVertical(area(13, 7), Length{2}, Min{0})
	b := SplitVertical(area(13, 7), Length{2}, Min{0})
	if &a[0] != &b[0] {
		t.Error("repeated SplitVertical should return the cached slice")
	}
	c := DefaultSolver().Split(area(13, 7), NewLayout(Vertical, Length{2}, Min{0}))
	if &a[0] != &c[0] {
		t.Error("SplitVertical should go through DefaultSolver")
	}
}

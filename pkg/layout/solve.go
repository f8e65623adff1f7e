package layout

import (
	"fmt"
	"math"
	"sort"
)

// Constraint strengths, on the same scale as a cassowary solver: a cell of
// error on a medium goal costs as much as a thousand cells on a weak one.
// Required rules (area bounds, contiguity, first/last edge) are never
// traded against these and are enforced structurally.
const (
	strengthWeak   = 1.0
	strengthMedium = 1_000.0
)

// goal is the soft part of one constraint: a preferred main-axis size and
// the cost per cell of ending up above or below it.
type goal struct {
	target float64
	grow   float64
	shrink float64
}

// goalFor translates a constraint into its weighted goal against the
// main-axis length of the destination area.
//
//	Length/Percentage/Ratio: size == target            (medium)
//	Min(v): size >= v (medium), size == v (weak)
//	Max(v): size <= v (medium), size == v (weak)
func goalFor(c Constraint, total uint16) goal {
	switch v := c.(type) {
	case Length:
		return goal{target: float64(v.Value), grow: strengthMedium, shrink: strengthMedium}
	case Percentage:
		t := float64(v.Value) * float64(total) / 100
		return goal{target: t, grow: strengthMedium, shrink: strengthMedium}
	case Ratio:
		v.mustBeValid()
		t := float64(total) * float64(v.Num) / float64(v.Den)
		return goal{target: t, grow: strengthMedium, shrink: strengthMedium}
	case Min:
		return goal{target: float64(v.Value), grow: strengthWeak, shrink: strengthMedium + strengthWeak}
	case Max:
		return goal{target: float64(v.Value), grow: strengthMedium + strengthWeak, shrink: strengthWeak}
	default:
		panic(fmt.Sprintf("layout: unknown constraint %T", c))
	}
}

// solve splits area according to l without consulting any cache.
//
// Every element starts at its goal size. If the sizes overshoot the
// destination area, cells are taken from the elements that are cheapest
// to shrink (never below zero); if they fall short and the layout expands
// to fill, the whole surplus goes to the element that is cheapest to grow.
// Both costs are linear past the goal, so this greedy walk reaches the
// minimum total weighted error. Equal costs are broken in favour of the
// earlier element: later elements absorb the adjustment first.
//
// Edges are accumulated in floating point, rounded to the nearest cell
// and clamped to the destination area, so neighbouring rects always touch.
func solve(area Rect, l Layout) []Rect {
	n := len(l.constraints)
	results := make([]Rect, n)
	if n == 0 {
		return results
	}

	dest := area.Inner(l.margin)
	start, total := mainAxis(dest, l.direction)

	goals := make([]goal, n)
	sizes := make([]float64, n)
	sum := 0.0
	for i, c := range l.constraints {
		goals[i] = goalFor(c, total)
		sizes[i] = goals[i].target
		sum += sizes[i]
	}

	avail := float64(total)
	switch {
	case sum > avail:
		shrinkSizes(sizes, goals, sum-avail)
	case sum < avail && l.expandToFill():
		growSizes(sizes, goals, avail-sum)
	}

	end := min(uint32(start)+uint32(total), math.MaxUint16)
	edge := float64(start)
	prev := uint32(start)
	for i := range sizes {
		edge += sizes[i]
		next := roundEdge(edge, prev, end)
		if i == n-1 && l.expandToFill() {
			// Absorb any rounding drift in the last element.
			next = end
		}
		results[i] = place(dest, l.direction, prev, next-prev)
		prev = next
	}
	return results
}

// shrinkSizes removes excess cells, cheapest shrink cost first.
func shrinkSizes(sizes []float64, goals []goal, excess float64) {
	order := costOrder(goals, func(g goal) float64 { return g.shrink })
	for _, i := range order {
		if excess <= 0 {
			return
		}
		take := math.Min(sizes[i], excess)
		sizes[i] -= take
		excess -= take
	}
}

// growSizes hands all surplus cells to the single cheapest element to grow.
func growSizes(sizes []float64, goals []goal, surplus float64) {
	order := costOrder(goals, func(g goal) float64 { return g.grow })
	sizes[order[0]] += surplus
}

// costOrder returns element indices sorted by ascending cost, later
// indices first among equal costs.
func costOrder(goals []goal, cost func(goal) float64) []int {
	order := make([]int, len(goals))
	for i := range order {
		order[i] = len(goals) - 1 - i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return cost(goals[order[a]]) < cost(goals[order[b]])
	})
	return order
}

// roundEdge rounds a solved edge to the nearest cell, keeping it between
// the previous edge and the far edge of the area.
func roundEdge(v float64, lo, hi uint32) uint32 {
	r := math.Round(v)
	if r < float64(lo) {
		return lo
	}
	if r > float64(hi) {
		return hi
	}
	return uint32(r)
}

// mainAxis returns the start coordinate and length of r along dir.
func mainAxis(r Rect, dir Direction) (start, length uint16) {
	if dir == Horizontal {
		return r.X, r.Width
	}
	return r.Y, r.Height
}

// place builds the rect for one element: the cross axis is copied from
// dest, the main axis comes from the solved start and size.
func place(dest Rect, dir Direction, start, size uint32) Rect {
	if dir == Horizontal {
		return Rect{X: uint16(start), Y: dest.Y, Width: uint16(size), Height: dest.Height}
	}
	return Rect{X: dest.X, Y: uint16(start), Width: dest.Width, Height: uint16(size)}
}

// Package perf provides benchmarks, a concurrent size sweep and regression
// detection for the layout solver's hot paths. All private helpers are
// prefixed with "pf" to avoid naming conflicts.
package perf

import (
	"fmt"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/preset"
)

// SweepResult is the outcome of resolving one preset at one area.
type SweepResult struct {
	Area     layout.Rect
	Regions  []layout.Region
	Duration time.Duration
	Err      error
}

// Sweep resolves p at every area using up to maxWorkers goroutines that
// share solver s. Results are returned in the same order as areas. A
// panicking solve is reported as that slot's Err instead of crashing the
// whole sweep.
//
// If maxWorkers <= 0, it defaults to 1 (serial execution).
// If areas is empty, an empty slice is returned.
func Sweep(s *layout.Solver, p preset.Preset, areas []layout.Rect, maxWorkers int) []SweepResult {
	if len(areas) == 0 {
		return []SweepResult{}
	}
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	if s == nil {
		s = layout.DefaultSolver()
	}

	results := make([]SweepResult, len(areas))

	if maxWorkers == 1 {
		// Fast path: no goroutine overhead for serial execution.
		for i, a := range areas {
			results[i] = pfSafeResolve(s, p, a)
		}
		return results
	}

	// Parallel path with bounded worker pool.
	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for i, a := range areas {
		wg.Add(1)
		sem <- struct{}{} // acquire semaphore slot
		go func(idx int, area layout.Rect) {
			defer wg.Done()
			defer func() { <-sem }() // release semaphore slot
			results[idx] = pfSafeResolve(s, p, area)
		}(i, a)
	}

	wg.Wait()
	return results
}

// pfSafeResolve resolves a single area through the preset.
func pfSafeResolve(s *layout.Solver, p preset.Preset, area layout.Rect) SweepResult {
	return pfTimed(area, func() ([]layout.Region, error) {
		return preset.ResolveWith(s, p, area)
	})
}

// pfTimed runs resolve, timing it and converting a panic into an error.
func pfTimed(area layout.Rect, resolve func() ([]layout.Region, error)) (result SweepResult) {
	result.Area = area
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			result.Regions = nil
			result.Err = fmt.Errorf("perf: resolve at %s panicked: %v", area, r)
		}
	}()

	result.Regions, result.Err = resolve()
	return result
}

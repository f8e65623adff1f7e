package perf

import "testing"

// Threshold defines a performance budget for a named operation. Benchmarks
// that exceed these thresholds indicate a performance regression that should
// be investigated before merging.
type Threshold struct {
	// Name identifies the operation (must match a benchmark suffix).
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation.
	MaxAlloc int64
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	// Threshold is the budget that was exceeded.
	Threshold Threshold

	// Actual is the measured value that exceeded the threshold.
	Actual int64

	// Field indicates which metric was violated: "ns" for time or "alloc"
	// for memory allocation.
	Field string
}

// DefaultThresholds returns the performance budgets for the solver's
// critical paths on a typical development machine.
//
// Budget rationale:
//   - layout_6 < 1ms: one uncached solve, runs on every resize
//   - layout_20 < 2ms: stress case, still well under a frame
//   - layout_cache_hit < 50us: map lookup plus key formatting
//   - preset_dashboard < 2ms: five solves for a nested tree
//   - preview_render < 5ms: rune grid compose for a 160x40 screen
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "layout_6", MaxNs: 1_000_000, MaxAlloc: 16384},
		{Name: "layout_20", MaxNs: 2_000_000, MaxAlloc: 65536},
		{Name: "layout_cache_hit", MaxNs: 50_000, MaxAlloc: 4096},
		{Name: "preset_dashboard", MaxNs: 2_000_000, MaxAlloc: 65536},
		{Name: "preview_render", MaxNs: 5_000_000, MaxAlloc: 1_048_576},
	}
}

// CheckRegression compares benchmark results against thresholds and returns
// all violations found. A violation occurs when either the nanoseconds per
// operation exceed MaxNs or the bytes allocated per operation exceed MaxAlloc.
//
// testing.BenchmarkResult carries no name, so results are matched to
// thresholds by position; entries past the shorter slice are ignored.
func CheckRegression(results []testing.BenchmarkResult, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}

	var violations []Violation

	limit := min(len(results), len(thresholds))
	for i := 0; i < limit; i++ {
		r := results[i]
		t := thresholds[i]

		nsPerOp := pfNsPerOp(r)
		if t.MaxNs > 0 && nsPerOp > t.MaxNs {
			violations = append(violations, Violation{
				Threshold: t,
				Actual:    nsPerOp,
				Field:     "ns",
			})
		}

		allocPerOp := pfAllocPerOp(r)
		if t.MaxAlloc > 0 && allocPerOp > t.MaxAlloc {
			violations = append(violations, Violation{
				Threshold: t,
				Actual:    allocPerOp,
				Field:     "alloc",
			})
		}
	}

	return violations
}

// pfNsPerOp extracts nanoseconds per operation from a BenchmarkResult.
// Delegates to the standard library NsPerOp method which handles N=0.
func pfNsPerOp(r testing.BenchmarkResult) int64 {
	return r.NsPerOp()
}

// pfAllocPerOp extracts bytes allocated per operation from a BenchmarkResult.
// Returns 0 if N is 0.
func pfAllocPerOp(r testing.BenchmarkResult) int64 {
	return r.AllocedBytesPerOp()
}

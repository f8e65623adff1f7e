package perf

import (
	"strings"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/preset"
)

// --- Sweep tests ------------------------------------------------------------

func TestSweepEmpty(t *testing.T) {
	p, _ := preset.Get("minimal")
	results := Sweep(layout.NewSolver(), p, nil, 4)
	if results == nil || len(results) != 0 {
		t.Errorf("Sweep(nil areas) = %v, want empty non-nil slice", results)
	}
}

func TestSweepSerialMatchesParallel(t *testing.T) {
	p, _ := preset.Get("dashboard")
	areas := pfMakeAreas(24)

	serial := Sweep(layout.NewSolver(), p, areas, 1)
	parallel := Sweep(layout.NewSolver(), p, areas, 8)

	if len(serial) != len(areas) || len(parallel) != len(areas) {
		t.Fatalf("got %d/%d results, want %d", len(serial), len(parallel), len(areas))
	}
	for i := range areas {
		if serial[i].Err != nil || parallel[i].Err != nil {
			t.Fatalf("[%d] errors: %v / %v", i, serial[i].Err, parallel[i].Err)
		}
		if serial[i].Area != areas[i] || parallel[i].Area != areas[i] {
			t.Errorf("[%d] results out of order", i)
		}
		if len(serial[i].Regions) != len(parallel[i].Regions) {
			t.Fatalf("[%d] region count differs", i)
		}
		for j := range serial[i].Regions {
			if serial[i].Regions[j] != parallel[i].Regions[j] {
				t.Errorf("[%d][%d] %v != %v", i, j, serial[i].Regions[j], parallel[i].Regions[j])
			}
		}
	}
}

func TestSweepZeroWorkersRunsSerially(t *testing.T) {
	p, _ := preset.Get("sidebar")
	results := Sweep(nil, p, []layout.Rect{{Width: 100, Height: 10}}, 0)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("unexpected results: %+v", results)
	}
	if got := results[0].Regions[0].Rect.Width; got != 32 {
		t.Errorf("sidebar width = %d, want 32", got)
	}
}

func TestSweepReportsCompileErrors(t *testing.T) {
	bad := preset.Preset{Name: "bad", Root: preset.Section{Constraints: []string{"bogus:1"}}}
	results := Sweep(layout.NewSolver(), bad, pfMakeAreas(3), 2)
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("[%d] expected error", i)
		}
	}
}

func TestPfTimedRecoversPanics(t *testing.T) {
	area := layout.Rect{Width: 10, Height: 2}
	r := pfTimed(area, func() ([]layout.Region, error) {
		// A zero denominator panics inside the solver.
		layout.SplitVertical(area, layout.Ratio{Num: 1, Den: 0})
		return nil, nil
	})
	if r.Err == nil || !strings.Contains(r.Err.Error(), "panicked") {
		t.Errorf("panic not reported: %v", r.Err)
	}
	if r.Area != area || r.Regions != nil {
		t.Errorf("unexpected result: %+v", r)
	}
}

// --- DefaultThresholds tests ------------------------------------------------

func TestDefaultThresholdsNonEmpty(t *testing.T) {
	if len(DefaultThresholds()) == 0 {
		t.Error("DefaultThresholds() returned empty slice")
	}
}

func TestDefaultThresholdsAllPositiveMaxNs(t *testing.T) {
	for _, th := range DefaultThresholds() {
		if th.MaxNs <= 0 {
			t.Errorf("threshold %q has non-positive MaxNs: %d", th.Name, th.MaxNs)
		}
	}
}

func TestDefaultThresholdNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, th := range DefaultThresholds() {
		if seen[th.Name] {
			t.Errorf("duplicate threshold name: %q", th.Name)
		}
		seen[th.Name] = true
	}
}

// --- CheckRegression tests --------------------------------------------------

func TestCheckRegressionPassing(t *testing.T) {
	thresholds := []Threshold{
		{Name: "fast_op", MaxNs: 1_000_000, MaxAlloc: 1024},
	}

	// Result well within budget: 100ns/op, 64 bytes/op.
	results := []testing.BenchmarkResult{
		{N: 1000, T: 100 * time.Microsecond, MemBytes: 64000},
	}

	violations := CheckRegression(results, thresholds)
	if len(violations) != 0 {
		t.Errorf("expected no violations, got %d: %+v", len(violations), violations)
	}
}

func TestCheckRegressionNsViolation(t *testing.T) {
	thresholds := []Threshold{
		{Name: "slow_op", MaxNs: 1_000, MaxAlloc: 0}, // 1us budget
	}

	// 10ms total / 1 iteration = 10ms/op > 1us.
	results := []testing.BenchmarkResult{
		{N: 1, T: 10 * time.Millisecond},
	}

	violations := CheckRegression(results, thresholds)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Field != "ns" {
		t.Errorf("violation field = %q, want 'ns'", violations[0].Field)
	}
	if violations[0].Threshold.Name != "slow_op" {
		t.Errorf("violation name = %q, want 'slow_op'", violations[0].Threshold.Name)
	}
	if violations[0].Actual != 10_000_000 {
		t.Errorf("violation actual = %d, want 10000000", violations[0].Actual)
	}
}

func TestCheckRegressionAllocViolation(t *testing.T) {
	thresholds := []Threshold{
		{Name: "alloc_op", MaxNs: 0, MaxAlloc: 100}, // 100 bytes budget
	}

	// 1000 bytes / 1 iteration = 1000 bytes/op > 100.
	results := []testing.BenchmarkResult{
		{N: 1, T: time.Nanosecond, MemBytes: 1000},
	}

	violations := CheckRegression(results, thresholds)
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Field != "alloc" {
		t.Errorf("violation field = %q, want 'alloc'", violations[0].Field)
	}
}

func TestCheckRegressionEmptyInputs(t *testing.T) {
	if v := CheckRegression(nil, DefaultThresholds()); v != nil {
		t.Errorf("expected nil for nil results, got %v", v)
	}
	if v := CheckRegression([]testing.BenchmarkResult{{N: 1, T: time.Second}}, nil); v != nil {
		t.Errorf("expected nil for nil thresholds, got %v", v)
	}
}

// --- Benchmark smoke tests (verify they run without panic) ------------------

func TestBenchmarkSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("benchmarks skipped in short mode")
	}
	benches := map[string]func(*testing.B){
		"layout_6":         BenchmarkLayoutSolve6,
		"layout_20":        BenchmarkLayoutSolve20,
		"layout_cache_hit": BenchmarkLayoutCacheHit,
		"preset_dashboard": BenchmarkPresetDashboard,
		"preview_render":   BenchmarkPreviewRender,
	}
	for name, fn := range benches {
		if result := testing.Benchmark(fn); result.N == 0 {
			t.Errorf("%s did not run", name)
		}
	}
}

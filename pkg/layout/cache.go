package layout

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// cacheKey uniquely identifies a layout computation. Layout itself holds a
// slice and is not comparable, so it is keyed by its stable string form.
type cacheKey struct {
	area   Rect
	layout string
}

// Stats reports cache activity of a Solver.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Solver splits areas and memoizes the results per (area, layout) pair.
// It is safe for concurrent use.
//
// Entries are never evicted. That is fine for a UI that draws from a small
// set of layouts, but a caller feeding an unbounded stream of distinct
// areas should call Reset periodically or disable caching.
type Solver struct {
	mu      sync.RWMutex
	entries map[cacheKey][]Rect
	noCache bool
	logger  *slog.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger makes the solver log cache misses at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithoutCache disables memoization; every Split runs the solver.
func WithoutCache() Option {
	return func(s *Solver) { s.noCache = true }
}

// NewSolver creates a Solver with an empty cache.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		entries: make(map[cacheKey][]Rect),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

var defaultSolver = sync.OnceValue(func() *Solver { return NewSolver() })

// DefaultSolver returns the process-wide Solver used by Layout.Split.
func DefaultSolver() *Solver {
	return defaultSolver()
}

// Split divides area according to l, returning one Rect per constraint in
// constraint order. Results are shared between callers asking for the same
// (area, layout) pair and must not be modified.
func (s *Solver) Split(area Rect, l Layout) []Rect {
	if s.noCache {
		s.misses.Add(1)
		return solve(area, l)
	}

	key := cacheKey{area: area, layout: l.String()}
	s.mu.RLock()
	rects, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		s.hits.Add(1)
		return rects
	}

	s.misses.Add(1)
	s.logger.Debug("layout cache miss", "area", area.String(), "layout", key.layout)
	result := solve(area, l)

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another goroutine may have solved the same key meanwhile; keep the
	// first result so every caller sees the same slice.
	if rects, ok := s.entries[key]; ok {
		return rects
	}
	s.entries[key] = result
	return result
}

// Len returns the number of cached entries.
func (s *Solver) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Stats returns hit/miss counters and the current entry count.
func (s *Solver) Stats() Stats {
	return Stats{
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
		Entries: s.Len(),
	}
}

// Reset drops all cached entries. Counters are kept.
func (s *Solver) Reset() {
	s.mu.Lock()
	s.entries = make(map[cacheKey][]Rect)
	s.mu.Unlock()
}

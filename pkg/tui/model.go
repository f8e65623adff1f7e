// Package tui is an interactive layout browser. It re-solves the selected
// preset whenever the terminal is resized and draws the resulting regions
// with the preview renderer.
package tui

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/preset"
	"gitlab.com/tinyland/lab/tessellate/pkg/preview"
	"gitlab.com/tinyland/lab/tessellate/pkg/terminal"
)

// Options configures a Model.
type Options struct {
	Registry *preset.Registry // nil means the built-in presets
	Solver   *layout.Solver   // nil means layout.DefaultSolver()
	Preset   string           // preset name, or "auto"/"" to follow the terminal size
	Margin   uint16           // margin around the whole body
	Preview  preview.Options
	Logger   *slog.Logger
}

// Model is the bubbletea model for the layout browser.
type Model struct {
	registry *preset.Registry
	solver   *layout.Solver
	names    []string
	current  string
	auto     bool
	margin   uint16
	opts     preview.Options
	logger   *slog.Logger

	width, height int
	ready         bool

	canvas  layout.Rect
	status  layout.Rect
	regions []layout.Region
	focused int
	err     error
}

// New creates a browser. Nothing is solved until the first
// tea.WindowSizeMsg arrives.
func New(o Options) Model {
	reg := o.Registry
	if reg == nil {
		reg = preset.NewRegistry()
	}
	solver := o.Solver
	if solver == nil {
		solver = layout.DefaultSolver()
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	auto := o.Preset == "" || o.Preset == "auto"
	return Model{
		registry: reg,
		solver:   solver,
		names:    reg.Names(),
		current:  o.Preset,
		auto:     auto,
		margin:   o.Margin,
		opts:     o.Preview,
		logger:   logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		m.resolve()
		return m, nil

	case PresetChangeEvent:
		m.current = msg.Preset
		m.auto = false
		m.focused = 0
		m.resolve()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.NextPreset):
		return m, m.stepPreset(1)
	case key.Matches(msg, keys.PrevPreset):
		return m, m.stepPreset(-1)
	case key.Matches(msg, keys.NextRegion):
		m.cycleFocus(1)
	case key.Matches(msg, keys.PrevRegion):
		m.cycleFocus(-1)
	case key.Matches(msg, keys.Auto):
		m.auto = true
		m.focused = 0
		m.resolve()
	case key.Matches(msg, keys.Labels):
		m.opts.Labels = !m.opts.Labels
	}
	return m, nil
}

// stepPreset returns a command that switches to the preset delta places
// away from the active one in sorted order.
func (m Model) stepPreset(delta int) tea.Cmd {
	if len(m.names) == 0 {
		return nil
	}
	idx := slices.Index(m.names, m.Preset())
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(m.names)) % len(m.names)
	}
	name := m.names[idx]
	return func() tea.Msg { return PresetChangeEvent{Preset: name} }
}

// cycleFocus moves focus through the resolved regions, wrapping at both
// ends.
func (m *Model) cycleFocus(delta int) {
	n := len(m.regions)
	if n == 0 {
		return
	}
	m.focused = (m.focused + delta + n) % n
}

// resolve re-solves the active preset against the current window size. The
// bottom row is reserved for the status bar.
func (m *Model) resolve() {
	if !m.ready {
		return
	}
	full := terminal.Size{Cols: m.width, Rows: m.height}.Rect()
	rows := m.solver.Split(full, layout.NewLayout(layout.Vertical, layout.Min{Value: 0}, layout.Length{Value: 1}))
	m.canvas, m.status = rows[0], rows[1]

	name := m.Preset()
	p, err := m.registry.Get(name)
	if err != nil {
		m.err = err
		m.regions = nil
		return
	}
	body := m.canvas.Inner(layout.Margin{Vertical: m.margin, Horizontal: m.margin})
	regions, err := preset.ResolveWith(m.solver, p, body)
	if err != nil {
		m.err = err
		m.regions = nil
		return
	}
	m.err = nil
	m.regions = regions
	if m.focused >= len(regions) {
		m.focused = 0
	}
	m.logger.Debug("resolved preset", "preset", name, "area", body.String(), "regions", len(regions))
}

// Preset returns the name of the preset currently shown.
func (m Model) Preset() string {
	if m.auto {
		return preset.SelectForSize(m.width, m.height)
	}
	return m.current
}

// Auto reports whether the preset follows the terminal size.
func (m Model) Auto() bool { return m.auto }

// Regions returns the regions of the last successful solve.
func (m Model) Regions() []layout.Region { return m.regions }

// Focused returns the index of the highlighted region.
func (m Model) Focused() int { return m.focused }

// FocusedRegion returns the highlighted region, if any.
func (m Model) FocusedRegion() (layout.Region, bool) {
	if m.focused < 0 || m.focused >= len(m.regions) {
		return layout.Region{}, false
	}
	return m.regions[m.focused], true
}

// Err returns the error from the last solve, if any.
func (m Model) Err() error { return m.err }

// Width returns the terminal width.
func (m Model) Width() int { return m.width }

// Height returns the terminal height.
func (m Model) Height() int { return m.height }

// Ready reports whether a window size has been received.
func (m Model) Ready() bool { return m.ready }

// Labels reports whether region labels are drawn.
func (m Model) Labels() bool { return m.opts.Labels }

func (m Model) presetTitle() string {
	if m.auto {
		return fmt.Sprintf("%s (auto)", m.Preset())
	}
	return m.Preset()
}

// Package preset defines named layout trees that can be shipped as
// built-ins or loaded from TOML/YAML files, and resolves them against a
// terminal area into named regions.
package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("preset: unknown preset")

// Preset is a named, declarative layout tree.
type Preset struct {
	Name        string  `toml:"name" yaml:"name"`
	Description string  `toml:"description,omitempty" yaml:"description,omitempty"`
	Root        Section `toml:"root" yaml:"root"`
}

// Section is one node of a preset tree. A section without constraints is
// a leaf region; otherwise it splits its area and may carry one child per
// constraint.
type Section struct {
	Name             string    `toml:"name,omitempty" yaml:"name,omitempty"`
	Direction        string    `toml:"direction,omitempty" yaml:"direction,omitempty"` // "vertical" (default) or "horizontal"
	Margin           uint16    `toml:"margin,omitempty" yaml:"margin,omitempty"`
	HorizontalMargin uint16    `toml:"horizontal_margin,omitempty" yaml:"horizontal_margin,omitempty"` // overrides Margin when set
	VerticalMargin   uint16    `toml:"vertical_margin,omitempty" yaml:"vertical_margin,omitempty"`     // overrides Margin when set
	Packed           bool      `toml:"packed,omitempty" yaml:"packed,omitempty"`
	Constraints      []string  `toml:"constraints,omitempty" yaml:"constraints,omitempty"`
	Children         []Section `toml:"children,omitempty" yaml:"children,omitempty"`
}

// Node compiles the preset into a layout tree.
func (p Preset) Node() (*layout.Node, error) {
	n, err := prBuildNode(p.Root, "root")
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	return n, nil
}

// Leaves returns the leaf region names of the preset in resolve order.
func (p Preset) Leaves() []string {
	var names []string
	prCollectLeaves(p.Root, "root", &names)
	return names
}

func prBuildNode(s Section, path string) (*layout.Node, error) {
	name := s.Name
	if name == "" {
		name = path
	}
	if len(s.Constraints) == 0 {
		if len(s.Children) != 0 {
			return nil, fmt.Errorf("%w: section %q has children but no constraints", layout.ErrChildCount, name)
		}
		return &layout.Node{Name: name}, nil
	}

	dir, err := ParseDirection(s.Direction)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", name, err)
	}
	cs, err := ParseConstraints(s.Constraints)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", name, err)
	}

	l := layout.NewLayout(dir, cs...).Margin(s.Margin)
	if s.HorizontalMargin != 0 {
		l = l.HorizontalMargin(s.HorizontalMargin)
	}
	if s.VerticalMargin != 0 {
		l = l.VerticalMargin(s.VerticalMargin)
	}

	n := &layout.Node{Name: name, Layout: l, Packed: s.Packed}
	if len(s.Children) == 0 {
		return n, nil
	}
	if len(s.Children) != len(cs) {
		return nil, fmt.Errorf("%w: section %q has %d constraints and %d children",
			layout.ErrChildCount, name, len(cs), len(s.Children))
	}
	n.Children = make([]*layout.Node, len(s.Children))
	for i, c := range s.Children {
		child, err := prBuildNode(c, fmt.Sprintf("%s[%d]", name, i))
		if err != nil {
			return nil, err
		}
		n.Children[i] = child
	}
	return n, nil
}

func prCollectLeaves(s Section, path string, out *[]string) {
	name := s.Name
	if name == "" {
		name = path
	}
	if len(s.Constraints) == 0 {
		*out = append(*out, name)
		return
	}
	for i := range s.Constraints {
		slot := fmt.Sprintf("%s[%d]", name, i)
		if i < len(s.Children) {
			prCollectLeaves(s.Children[i], slot, out)
			continue
		}
		*out = append(*out, slot)
	}
}

// ParseDirection parses "vertical"/"horizontal" (or "v"/"h"). The empty
// string means vertical.
func ParseDirection(s string) (layout.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vertical", "v", "column", "rows":
		return layout.Vertical, nil
	case "horizontal", "h", "row", "columns":
		return layout.Horizontal, nil
	default:
		return 0, fmt.Errorf("preset: unknown direction %q", s)
	}
}

// Registry holds presets by name.
type Registry struct {
	presets map[string]Preset
}

// NewRegistry creates a registry seeded with the built-in presets.
func NewRegistry() *Registry {
	r := &Registry{presets: make(map[string]Preset, len(builtins))}
	for k, v := range builtins {
		r.presets[k] = v
	}
	return r
}

// Add registers p, replacing any preset with the same name.
func (r *Registry) Add(p Preset) {
	r.presets[p.Name] = p
}

// Get returns the preset registered under name.
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// Names returns all registered preset names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))
	for k := range r.presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/perf"
	"gitlab.com/tinyland/lab/tessellate/pkg/preset"
	"gitlab.com/tinyland/lab/tessellate/pkg/terminal"
)

// result is one solved layout as printed by the CLI.
type result struct {
	Area    layout.Rect
	Preset  string
	Regions []layout.Region
}

// jsonRect mirrors layout.Rect with lower-case keys.
type jsonRect struct {
	X      uint16 `json:"x"`
	Y      uint16 `json:"y"`
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

type jsonRegion struct {
	Name string `json:"name"`
	jsonRect
}

type jsonResult struct {
	Area    jsonRect     `json:"area"`
	Preset  string       `json:"preset,omitempty"`
	Regions []jsonRegion `json:"regions"`
}

type jsonSweep struct {
	Area     jsonRect `json:"area"`
	Regions  int      `json:"regions"`
	Duration int64    `json:"duration_ns"`
	Error    string   `json:"error,omitempty"`
}

func toJSONRect(r layout.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// splitOnce splits area by a comma-separated constraint list. Regions are
// named by their index.
func splitOnce(s *layout.Solver, area layout.Rect, constraints, direction string, margin uint16) (result, error) {
	cs, err := preset.ParseConstraintList(constraints)
	if err != nil {
		return result{}, err
	}
	dir, err := preset.ParseDirection(direction)
	if err != nil {
		return result{}, err
	}
	rects := s.Split(area, layout.NewLayout(dir, cs...).Margin(margin))
	regions := make([]layout.Region, len(rects))
	for i, r := range rects {
		regions[i] = layout.Region{Name: strconv.Itoa(i), Rect: r}
	}
	return result{Area: area, Regions: regions}, nil
}

// resolvePreset resolves the named preset (or the size-selected one for
// "auto") inside area shrunk by margin.
func resolvePreset(s *layout.Solver, reg *preset.Registry, area layout.Rect, name string, margin uint16) (result, error) {
	name = preset.Select(name, int(area.Width), int(area.Height))
	p, err := reg.Get(name)
	if err != nil {
		return result{}, err
	}
	body := area.Inner(layout.Margin{Vertical: margin, Horizontal: margin})
	regions, err := preset.ResolveWith(s, p, body)
	if err != nil {
		return result{}, err
	}
	return result{Area: area, Preset: name, Regions: regions}, nil
}

// parseAreas parses a comma-separated list of COLSxROWS sizes.
func parseAreas(s string) ([]layout.Rect, error) {
	var areas []layout.Rect
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		size, err := terminal.ParseSize(part)
		if err != nil {
			return nil, err
		}
		areas = append(areas, size.Rect())
	}
	if len(areas) == 0 {
		return nil, fmt.Errorf("sweep: no sizes in %q", s)
	}
	return areas, nil
}

func writeJSON(w io.Writer, res result) error {
	out := jsonResult{
		Area:    toJSONRect(res.Area),
		Preset:  res.Preset,
		Regions: make([]jsonRegion, len(res.Regions)),
	}
	for i, r := range res.Regions {
		out.Regions[i] = jsonRegion{Name: r.Name, jsonRect: toJSONRect(r.Rect)}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeText prints one region per line with the name column padded to
// the longest name. Styling follows the color support of w.
func writeText(w io.Writer, res result) error {
	r := lipgloss.NewRenderer(w)
	header := r.NewStyle().Bold(true)

	title := "area " + res.Area.String()
	if res.Preset != "" {
		title = "preset " + res.Preset + "  " + title
	}
	if _, err := fmt.Fprintln(w, header.Render(title)); err != nil {
		return err
	}

	nameWidth := 0
	for _, reg := range res.Regions {
		nameWidth = max(nameWidth, lipgloss.Width(reg.Name))
	}
	name := r.NewStyle().Width(nameWidth + 2)
	for _, reg := range res.Regions {
		if _, err := fmt.Fprintln(w, name.Render(reg.Name)+reg.Rect.String()); err != nil {
			return err
		}
	}
	return nil
}

// writePresetList prints each registered preset with its description and
// leaf regions.
func writePresetList(w io.Writer, reg *preset.Registry) error {
	r := lipgloss.NewRenderer(w)
	nameStyle := r.NewStyle().Bold(true)
	dim := r.NewStyle().Faint(true)
	for _, n := range reg.Names() {
		p, err := reg.Get(n)
		if err != nil {
			return err
		}
		line := nameStyle.Render(n)
		if p.Description != "" {
			line += "  " + p.Description
		}
		line += "  " + dim.Render("["+strings.Join(p.Leaves(), " ")+"]")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeSweep(w io.Writer, name string, results []perf.SweepResult, asJSON bool) error {
	if asJSON {
		out := make([]jsonSweep, len(results))
		for i, res := range results {
			out[i] = jsonSweep{Area: toJSONRect(res.Area), Regions: len(res.Regions), Duration: res.Duration.Nanoseconds()}
			if res.Err != nil {
				out[i].Error = res.Err.Error()
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	r := lipgloss.NewRenderer(w)
	if _, err := fmt.Fprintln(w, r.NewStyle().Bold(true).Render("sweep "+name)); err != nil {
		return err
	}
	col := r.NewStyle().Width(16)
	for _, res := range results {
		status := fmt.Sprintf("%d regions", len(res.Regions))
		if res.Err != nil {
			status = "error: " + res.Err.Error()
		}
		size := fmt.Sprintf("%dx%d", res.Area.Width, res.Area.Height)
		if _, err := fmt.Fprintln(w, col.Render(size)+col.Render(res.Duration.String())+status); err != nil {
			return err
		}
	}
	return nil
}

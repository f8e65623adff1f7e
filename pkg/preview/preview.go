// Package preview draws solved layout regions as labelled boxes so a
// layout can be inspected in a terminal or compared in golden tests.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/terminal"
)

// palette cycles region border colors. Entries are ANSI 256 indices so they
// degrade cleanly on 16-color terminals.
var palette = []string{"39", "170", "214", "78", "203", "141", "45", "221"}

// Options controls how regions are drawn.
type Options struct {
	Border BorderStyle
	// Labels writes "name WxH" on the top edge of each region.
	Labels bool
	// Profile selects the color depth. termenv.Ascii disables color; the
	// zero value is termenv.TrueColor.
	Profile termenv.Profile
	// Highlight names a region drawn with a heavier border.
	Highlight string
}

// DefaultOptions returns rounded, labelled, uncolored output.
func DefaultOptions() Options {
	return Options{Border: BorderRounded, Labels: true, Profile: termenv.Ascii}
}

// OptionsFor picks options suited to the detected terminal.
func OptionsFor(caps *terminal.Capabilities) Options {
	opts := DefaultOptions()
	if caps == nil {
		return opts
	}
	if !caps.Unicode {
		opts.Border = BorderASCII
	}
	opts.Profile = caps.Profile
	return opts
}

// Render draws regions onto a canvas. Region coordinates are absolute;
// anything outside canvas is clipped. The result has exactly
// canvas.Height lines of canvas.Width cells each.
func Render(canvas layout.Rect, regions []layout.Region, opts Options) string {
	w, h := int(canvas.Width), int(canvas.Height)
	if w == 0 || h == 0 {
		return ""
	}

	buf := pvNewBuffer(w, h)
	bc, hc := opts.Border.chars(), opts.Border.highlight()
	for i, r := range regions {
		if !r.Rect.Intersects(canvas) {
			continue
		}
		rect := r.Rect.Intersection(canvas)
		x := int(rect.X) - int(canvas.X)
		y := int(rect.Y) - int(canvas.Y)
		chars := bc
		if opts.Highlight != "" && r.Name == opts.Highlight {
			chars = hc
		}
		buf.drawBox(x, y, int(rect.Width), int(rect.Height), chars, i)
		if opts.Labels {
			buf.drawLabel(x, y, int(rect.Width), int(rect.Height), label(r), i)
		}
	}
	return buf.String(newPainter(opts.Profile))
}

// Fprint writes the rendered preview followed by a newline.
func Fprint(w io.Writer, canvas layout.Rect, regions []layout.Region, opts Options) error {
	out := Render(canvas, regions, opts)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func label(r layout.Region) string {
	return fmt.Sprintf("%s %dx%d", r.Name, r.Rect.Width, r.Rect.Height)
}

// pvBuffer is a 2D grid of cells, each remembering which region drew it so
// rows can be colored per region.
type pvBuffer struct {
	w, h  int
	runes [][]rune
	owner [][]int
}

// pvNewBuffer creates a grid of spaces with the given dimensions.
func pvNewBuffer(w, h int) *pvBuffer {
	b := &pvBuffer{w: w, h: h, runes: make([][]rune, h), owner: make([][]int, h)}
	for y := range h {
		row := make([]rune, w)
		own := make([]int, w)
		for x := range w {
			row[x] = ' '
			own[x] = -1
		}
		b.runes[y] = row
		b.owner[y] = own
	}
	return b
}

func (b *pvBuffer) set(x, y int, r rune, owner int) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.runes[y][x] = r
	b.owner[y][x] = owner
}

// drawBox outlines a w x h box at (x, y). Degenerate one-cell-thick boxes
// become a single line.
func (b *pvBuffer) drawBox(x, y, w, h int, bc borderChars, owner int) {
	switch {
	case h == 1:
		for dx := range w {
			b.set(x+dx, y, bc.Horizontal, owner)
		}
	case w == 1:
		for dy := range h {
			b.set(x, y+dy, bc.Vertical, owner)
		}
	default:
		right, bottom := x+w-1, y+h-1
		for dx := 1; dx < w-1; dx++ {
			b.set(x+dx, y, bc.Horizontal, owner)
			b.set(x+dx, bottom, bc.Horizontal, owner)
		}
		for dy := 1; dy < h-1; dy++ {
			b.set(x, y+dy, bc.Vertical, owner)
			b.set(right, y+dy, bc.Vertical, owner)
		}
		b.set(x, y, bc.TopLeft, owner)
		b.set(right, y, bc.TopRight, owner)
		b.set(x, bottom, bc.BottomLeft, owner)
		b.set(right, bottom, bc.BottomRight, owner)
	}
}

// drawLabel writes text on the top edge, inside the corners when the box
// has them.
func (b *pvBuffer) drawLabel(x, y, w, h int, text string, owner int) {
	if w == 1 || (w == 2 && h >= 2) {
		return
	}
	start, room := x, w
	if w >= 3 && h >= 2 {
		start, room = x+1, w-2
	}
	text = ansi.Truncate(text, room, "…")
	dx := 0
	for _, r := range text {
		// Wide or zero-width runes would shift the grid.
		if ansi.StringWidth(string(r)) != 1 {
			r = '?'
		}
		b.set(start+dx, y, r, owner)
		dx++
	}
}

// String joins the rows, coloring each run of cells drawn by the same
// region.
func (b *pvBuffer) String(p *painter) string {
	lines := make([]string, b.h)
	for y := range b.h {
		if p == nil {
			lines[y] = string(b.runes[y])
			continue
		}
		var sb strings.Builder
		row, own := b.runes[y], b.owner[y]
		for x := 0; x < b.w; {
			end := x + 1
			for end < b.w && own[end] == own[x] {
				end++
			}
			sb.WriteString(p.paint(own[x], string(row[x:end])))
			x = end
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// painter colors region runs through a lipgloss renderer pinned to a
// color profile.
type painter struct {
	styles []lipgloss.Style
}

// newPainter returns nil for termenv.Ascii so plain output carries no
// escape sequences at all.
func newPainter(profile termenv.Profile) *painter {
	if profile == termenv.Ascii {
		return nil
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	p := &painter{styles: make([]lipgloss.Style, len(palette))}
	for i, c := range palette {
		p.styles[i] = r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return p
}

func (p *painter) paint(owner int, s string) string {
	if owner < 0 {
		return s
	}
	return p.styles[owner%len(p.styles)].Render(s)
}

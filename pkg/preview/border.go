package preview

import (
	"fmt"
	"strings"
)

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	// BorderASCII uses plain +, - and | for terminals without box drawing.
	BorderASCII BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded
	// BorderHeavy uses heavy (thick) box-drawing characters.
	BorderHeavy
	// BorderDouble uses double-line box-drawing characters.
	BorderDouble
)

// borderChars holds the 6 runes that define a border.
type borderChars struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// borderSets maps each BorderStyle to its character set.
var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		TopLeft: '+', TopRight: '+',
		BottomLeft: '+', BottomRight: '+',
		Horizontal: '-', Vertical: '|',
	},
	BorderSingle: {
		TopLeft: '┌', TopRight: '┐',
		BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮',
		BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	},
	BorderHeavy: {
		TopLeft: '┏', TopRight: '┓',
		BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗',
		BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
	},
}

// asciiHighlight marks the highlighted region when box drawing is off.
var asciiHighlight = borderChars{
	TopLeft: '#', TopRight: '#',
	BottomLeft: '#', BottomRight: '#',
	Horizontal: '=', Vertical: '#',
}

var borderNames = [...]string{
	BorderASCII:   "ascii",
	BorderSingle:  "single",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderDouble:  "double",
}

// String returns the name accepted by ParseBorder.
func (b BorderStyle) String() string {
	if b >= 0 && int(b) < len(borderNames) {
		return borderNames[b]
	}
	return fmt.Sprintf("BorderStyle(%d)", int(b))
}

// ParseBorder parses a border style name.
func ParseBorder(s string) (BorderStyle, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range borderNames {
		if n == name {
			return BorderStyle(i), nil
		}
	}
	return BorderASCII, fmt.Errorf("preview: unknown border style %q", s)
}

func (b BorderStyle) chars() borderChars {
	if c, ok := borderSets[b]; ok {
		return c
	}
	return borderSets[BorderASCII]
}

// highlight returns a set that stands out against b.
func (b BorderStyle) highlight() borderChars {
	switch b {
	case BorderASCII:
		return asciiHighlight
	case BorderHeavy:
		return borderSets[BorderDouble]
	default:
		return borderSets[BorderHeavy]
	}
}

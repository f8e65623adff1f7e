package termtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ValidateGrid checks that content is exactly height lines, each exactly
// width cells wide once escape sequences are stripped.
func ValidateGrid(content string, width, height int) error {
	lines := ttSplitLines(content)
	if height == 0 {
		if content != "" {
			return fmt.Errorf("expected empty output, got %d lines", len(lines))
		}
		return nil
	}
	if len(lines) != height {
		return fmt.Errorf("got %d lines, want %d", len(lines), height)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != width {
			return fmt.Errorf("line %d is %d cells wide, want %d: %q", i+1, w, width, ansi.Strip(line))
		}
	}
	return nil
}

// ValidatePlain returns an error if content carries any escape sequence.
func ValidatePlain(content string) error {
	if i := strings.IndexByte(content, '\x1b'); i >= 0 {
		return fmt.Errorf("escape sequence at byte %d", i)
	}
	return nil
}

// ValidateBoxDrawing returns an error if content uses box-drawing runes
// that the profile cannot display.
func ValidateBoxDrawing(content string, profile TerminalProfile) error {
	if profile.Unicode {
		return nil
	}
	for i, r := range ansi.Strip(content) {
		if r >= 0x2500 && r <= 0x257f {
			return fmt.Errorf("terminal %q cannot display %q at byte %d", profile.Name, r, i)
		}
	}
	return nil
}

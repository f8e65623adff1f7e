// Package terminal queries the size and capabilities of the controlling
// terminal so layouts can be solved against the real screen.
package terminal

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
)

// Size represents terminal dimensions in both character cells and pixels.
type Size struct {
	Cols   int // Character columns
	Rows   int // Character rows
	PixelW int // Total pixel width (0 if unknown)
	PixelH int // Total pixel height (0 if unknown)
	CellW  int // Pixel width per cell (0 if unknown)
	CellH  int // Pixel height per cell (0 if unknown)
}

// Rect returns the terminal area as a layout rectangle anchored at the
// origin. Very large terminals are clipped by layout.NewRect so the area
// stays representable.
func (s Size) Rect() layout.Rect {
	return layout.NewRect(0, 0, clampDim(s.Cols), clampDim(s.Rows))
}

func clampDim(n int) uint16 {
	switch {
	case n <= 0:
		return 0
	case n > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(n)
	}
}

// GetSize returns the current terminal dimensions. It tries multiple
// strategies in order:
//  1. TIOCGWINSZ ioctl on stdout (returns both cell and pixel dimensions)
//  2. TIOCGWINSZ ioctl on stderr (in case stdout is redirected)
//  3. COLUMNS/LINES environment variables
//  4. Fallback to 80x24
func GetSize() Size {
	// Try stdout first, then stderr.
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := getSizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns terminal size from a specific file descriptor.
// Falls back to environment variables and then 80x24 defaults if the
// ioctl fails.
func GetSizeFromFd(fd uintptr) Size {
	if s := getSizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
		return s
	}
	return getSizeFromEnv()
}

// getSizeFromIoctl queries the terminal size via TIOCGWINSZ ioctl.
// Returns a zero-value Size on failure.
func getSizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}

	s := Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}

	// Calculate per-cell pixel dimensions when pixel info is available.
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}

	return s
}

// getSizeFromEnv reads terminal dimensions from COLUMNS/LINES environment
// variables, falling back to 80x24 defaults.
func getSizeFromEnv() Size {
	cols := envInt("COLUMNS", 80)
	rows := envInt("LINES", 24)
	return Size{Cols: cols, Rows: rows}
}

// envInt reads an integer from the named environment variable. Returns
// the fallback value if the variable is unset, empty, or not a valid
// positive integer.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// ParseSize parses "COLSxROWS" (for example "120x40").
func ParseSize(s string) (Size, error) {
	c, r, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Size{}, fmt.Errorf("terminal: size %q is not COLSxROWS", s)
	}
	cols, err := strconv.Atoi(c)
	if err != nil || cols < 0 {
		return Size{}, fmt.Errorf("terminal: bad column count in %q", s)
	}
	rows, err := strconv.Atoi(r)
	if err != nil || rows < 0 {
		return Size{}, fmt.Errorf("terminal: bad row count in %q", s)
	}
	return Size{Cols: cols, Rows: rows}, nil
}

package terminal

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities is the cached terminal capability summary for the current
// session. It decides how the layout preview is drawn.
type Capabilities struct {
	Size        Size            // Terminal dimensions
	Interactive bool            // stdout is a terminal
	Profile     termenv.Profile // Color profile reported by the environment
	Unicode     bool            // Box-drawing runes render correctly
	SSH         bool            // Running over SSH
	Mux         bool            // Inside a multiplexer (tmux, screen, zellij)
}

var (
	cached     *Capabilities
	detectOnce sync.Once
	mu         sync.Mutex // guards ForceRefresh reset
)

// DetectCapabilities performs full terminal detection and caches the result.
// Safe to call from multiple goroutines; detection runs exactly once via
// sync.Once. Subsequent calls return the cached value.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = detect(os.Stdout)
	})
	return cached
}

// ForceRefresh re-detects terminal capabilities, replacing the cached
// value. Use this after a terminal change (e.g., attaching/detaching
// from tmux).
func ForceRefresh() *Capabilities {
	mu.Lock()
	defer mu.Unlock()

	detectOnce = sync.Once{}
	cached = detect(os.Stdout)
	return cached
}

// Cached returns the previously cached capabilities without re-detection.
// Returns nil if DetectCapabilities has not been called yet.
func Cached() *Capabilities {
	return cached
}

// IsTerminal reports whether fd refers to a terminal, including Cygwin and
// MSYS pseudo terminals.
func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func detect(out *os.File) *Capabilities {
	interactive := IsTerminal(out.Fd())

	// Redirected output gets no escape sequences regardless of env.
	profile := termenv.Ascii
	if interactive {
		profile = colorProfile(out)
	}

	return &Capabilities{
		Size:        GetSizeFromFd(out.Fd()),
		Interactive: interactive,
		Profile:     profile,
		Unicode:     unicodeLocale(),
		SSH:         isSSH(),
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "" || os.Getenv("ZELLIJ") != "",
	}
}

func colorProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// unicodeLocale reports whether box-drawing characters are safe to emit.
// The Linux console and dumb terminals are excluded outright; otherwise the
// first set locale variable decides, and an unset locale is assumed modern.
func unicodeLocale() bool {
	switch os.Getenv("TERM") {
	case "dumb", "linux":
		return false
	}
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return true
}

// isSSH reports whether the current session is running over SSH.
func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}

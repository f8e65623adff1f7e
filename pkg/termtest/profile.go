// Package termtest provides terminal profiles, snapshot comparison and grid
// validation for checking that layout previews render correctly across
// terminals. It is used in tests and diagnostics.
package termtest

import (
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/tessellate/pkg/terminal"
)

// TerminalProfile describes a terminal's rendering capabilities for testing.
type TerminalProfile struct {
	Name    string            // Human-readable terminal name
	EnvVars map[string]string // Environment vars this terminal sets
	Color   termenv.Profile   // Color depth the terminal advertises
	Unicode bool              // Renders box-drawing characters
	Mux     bool              // Runs inside a multiplexer
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttTilixProfile(),
		ttAlacrittyProfile(),
		ttAppleTerminalProfile(),
		ttTmuxProfile(),
		ttLinuxConsoleProfile(),
		ttPipeProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// Capabilities returns what terminal detection would report for this
// profile at the given size.
func (p TerminalProfile) Capabilities(size terminal.Size) *terminal.Capabilities {
	return &terminal.Capabilities{
		Size:        size,
		Interactive: p.Color != termenv.Ascii,
		Profile:     p.Color,
		Unicode:     p.Unicode,
		Mux:         p.Mux,
	}
}

package termtest

import "github.com/muesli/termenv"

// ttGhosttyProfile returns the Ghostty terminal profile.
func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
			"LANG":         "en_US.UTF-8",
		},
		Color:   termenv.TrueColor,
		Unicode: true,
	}
}

// ttKittyProfile returns the Kitty terminal profile.
func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM":            "xterm-kitty",
			"KITTY_WINDOW_ID": "1",
			"COLORTERM":       "truecolor",
			"LANG":            "en_US.UTF-8",
		},
		Color:   termenv.TrueColor,
		Unicode: true,
	}
}

// ttTilixProfile returns the Tilix profile. VTE reports 256 colors unless
// COLORTERM is exported.
func ttTilixProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Tilix",
		EnvVars: map[string]string{
			"TERM":        "xterm-256color",
			"VTE_VERSION": "7200",
			"TILIX_ID":    "1",
			"LANG":        "en_US.UTF-8",
		},
		Color:   termenv.ANSI256,
		Unicode: true,
	}
}

// ttAlacrittyProfile returns the Alacritty terminal profile.
func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM":      "alacritty",
			"COLORTERM": "truecolor",
			"LANG":      "en_US.UTF-8",
		},
		Color:   termenv.TrueColor,
		Unicode: true,
	}
}

// ttAppleTerminalProfile returns the macOS Terminal.app profile.
func ttAppleTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Apple Terminal",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "Apple_Terminal",
			"TERM":         "xterm-256color",
			"LANG":         "en_US.UTF-8",
		},
		Color:   termenv.ANSI256,
		Unicode: true,
	}
}

// ttTmuxProfile returns a tmux session with default settings.
func ttTmuxProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux",
		EnvVars: map[string]string{
			"TERM": "screen-256color",
			"TMUX": "/tmp/tmux-1000/default,1234,0",
			"LANG": "en_US.UTF-8",
		},
		Color:   termenv.ANSI256,
		Unicode: true,
		Mux:     true,
	}
}

// ttLinuxConsoleProfile returns the Linux virtual console, which lacks
// most box-drawing glyphs.
func ttLinuxConsoleProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Linux console",
		EnvVars: map[string]string{
			"TERM": "linux",
		},
		Color:   termenv.ANSI,
		Unicode: false,
	}
}

// ttPipeProfile models output redirected to a file or pipe.
func ttPipeProfile() TerminalProfile {
	return TerminalProfile{
		Name: "pipe",
		EnvVars: map[string]string{
			"TERM": "dumb",
		},
		Color:   termenv.Ascii,
		Unicode: false,
	}
}

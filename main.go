// tessellate solves terminal layouts: it splits a rectangle into regions
// from a list of size constraints or a named preset.
//
// Usage:
//
//	tessellate [flags]
//
// Flags:
//
//	-constraints string  Comma-separated constraints for a one-shot split (e.g. "length:3,min:0")
//	-direction string    Split direction for -constraints (vertical|horizontal)
//	-margin int          Margin around the area (-1 = use config)
//	-width int           Area width override (0 = terminal width)
//	-height int          Area height override (0 = terminal height)
//	-preset string       Preset name or "auto" (default from config)
//	-list                List available presets and exit
//	-json                Print regions as JSON
//	-preview             Draw regions as boxes
//	-border string       Preview border (ascii|normal|rounded|thick|double)
//	-sweep string        Resolve the preset at each size, e.g. "80x24,120x40,200x60"
//	-watch               Launch the interactive layout browser
//	-config string       Path to configuration file (default: ~/.config/tessellate/config.toml)
//	-verbose             Enable verbose logging
//	-version             Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/tessellate/pkg/config"
	"gitlab.com/tinyland/lab/tessellate/pkg/layout"
	"gitlab.com/tinyland/lab/tessellate/pkg/perf"
	"gitlab.com/tinyland/lab/tessellate/pkg/preset"
	"gitlab.com/tinyland/lab/tessellate/pkg/preview"
	"gitlab.com/tinyland/lab/tessellate/pkg/terminal"
	"gitlab.com/tinyland/lab/tessellate/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		constraints = flag.String("constraints", "", "Comma-separated constraints for a one-shot split (e.g. \"length:3,min:0\")")
		direction   = flag.String("direction", "vertical", "Split direction for -constraints (vertical|horizontal)")
		margin      = flag.Int("margin", -1, "Margin around the area (-1 = use config)")
		width       = flag.Int("width", 0, "Area width override (0 = terminal width)")
		height      = flag.Int("height", 0, "Area height override (0 = terminal height)")
		presetName  = flag.String("preset", "", "Preset name or \"auto\" (default from config)")
		listPresets = flag.Bool("list", false, "List available presets and exit")
		asJSON      = flag.Bool("json", false, "Print regions as JSON")
		showPreview = flag.Bool("preview", false, "Draw regions as boxes")
		border      = flag.String("border", "", "Preview border (ascii|normal|rounded|thick|double)")
		sweep       = flag.String("sweep", "", "Resolve the preset at each size, e.g. \"80x24,120x40\"")
		watch       = flag.Bool("watch", false, "Launch the interactive layout browser")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("tessellate %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *margin >= 0 {
		cfg.Layout.Margin = *margin
	}
	if *presetName != "" {
		cfg.Layout.Preset = *presetName
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging
	logLevel := cfg.SlogLevel()
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	solverOpts := []layout.Option{layout.WithLogger(logger)}
	if !cfg.Layout.Cache {
		solverOpts = append(solverOpts, layout.WithoutCache())
	}
	solver := layout.NewSolver(solverOpts...)

	registry := preset.NewRegistry()
	if dir := cfg.Layout.PresetDir; dir != "" {
		if err := registry.LoadDir(dir); err != nil {
			logger.Error("failed to load presets", "dir", dir, "error", err)
			os.Exit(1)
		}
		logger.Debug("loaded presets", "dir", dir, "count", len(registry.Names()))
	}

	if *listPresets {
		if err := writePresetList(os.Stdout, registry); err != nil {
			logger.Error("list failed", "error", err)
			os.Exit(1)
		}
		return
	}

	caps := terminal.DetectCapabilities()
	previewOpts := preview.OptionsFor(caps)
	if *border != "" {
		b, err := preview.ParseBorder(*border)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		previewOpts.Border = b
	}
	m := uint16(cfg.Layout.Margin)

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	switch {
	case *watch:
		model := tui.New(tui.Options{
			Registry: registry,
			Solver:   solver,
			Preset:   cfg.Layout.Preset,
			Margin:   m,
			Preview:  previewOpts,
			Logger:   logger,
		})
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			logger.Error("TUI error", "error", err)
			os.Exit(1)
		}

	case *sweep != "":
		areas, err := parseAreas(*sweep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		name := cfg.Layout.Preset
		if name == "" || name == "auto" {
			name = "dashboard"
		}
		p, err := registry.Get(name)
		if err != nil {
			logger.Error("sweep failed", "error", err)
			os.Exit(1)
		}
		results := perf.Sweep(solver, p, areas, runtime.NumCPU())
		if err := writeSweep(os.Stdout, name, results, *asJSON); err != nil {
			logger.Error("sweep output failed", "error", err)
			os.Exit(1)
		}
		stats := solver.Stats()
		logger.Debug("sweep done", "sizes", len(areas), "hits", stats.Hits, "misses", stats.Misses)

	default:
		area := resolveArea(*width, *height, caps.Size)
		var res result
		if *constraints != "" {
			res, err = splitOnce(solver, area, *constraints, *direction, m)
		} else {
			res, err = resolvePreset(solver, registry, area, cfg.Layout.Preset, m)
		}
		if err != nil {
			logger.Error("layout failed", "error", err)
			os.Exit(1)
		}
		logger.Debug("layout solved", "area", area.String(), "preset", res.Preset, "regions", len(res.Regions))

		switch {
		case *asJSON:
			err = writeJSON(os.Stdout, res)
		case *showPreview:
			err = preview.Fprint(os.Stdout, res.Area, res.Regions, previewOpts)
		default:
			err = writeText(os.Stdout, res)
		}
		if err != nil {
			logger.Error("output failed", "error", err)
			os.Exit(1)
		}
	}
}

// resolveArea builds the layout area from the flag overrides, falling back
// to the detected terminal size per dimension.
func resolveArea(width, height int, detected terminal.Size) layout.Rect {
	size := detected
	if width > 0 {
		size.Cols = width
	}
	if height > 0 {
		size.Rows = height
	}
	return size.Rect()
}

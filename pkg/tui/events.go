package tui

// PresetChangeEvent switches the browser to a named preset and turns off
// automatic selection.
type PresetChangeEvent struct {
	Preset string
}

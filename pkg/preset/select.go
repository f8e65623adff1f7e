package preset

// Terminal size thresholds for auto-selection.
const (
	prSmallMaxCols = 100
	prLargeMinCols = 160
	prShortMaxRows = 16
)

// SelectForSize auto-selects a built-in preset name based on terminal
// dimensions.
//   - Small (<100 cols or <16 rows): "minimal"
//   - Medium (100-159 cols): "sidebar"
//   - Large (>=160 cols): "dashboard"
func SelectForSize(width, height int) string {
	switch {
	case width < prSmallMaxCols || height < prShortMaxRows:
		return "minimal"
	case width < prLargeMinCols:
		return "sidebar"
	default:
		return "dashboard"
	}
}

// Select resolves a configured preset name. "auto" and the empty string
// defer to SelectForSize.
func Select(name string, width, height int) string {
	if name == "" || name == "auto" {
		return SelectForSize(width, height)
	}
	return name
}

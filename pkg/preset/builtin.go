package preset

// builtins maps preset names to their definitions.
var builtins map[string]Preset

func init() {
	builtins = map[string]Preset{
		"dashboard": prDashboardPreset(),
		"editor":    prEditorPreset(),
		"sidebar":   prSidebarPreset(),
		"minimal":   prMinimalPreset(),
	}
}

// prDashboardPreset is a title bar, a two-column body and a status line.
//
//	title
//	[cpu    ] [logs  ]
//	[memory ] [alerts]
//	status
func prDashboardPreset() Preset {
	return Preset{
		Name:        "dashboard",
		Description: "Title, metrics column, log and alert panes, status line",
		Root: Section{
			Constraints: []string{"length:1", "min:0", "length:1"},
			Children: []Section{
				{Name: "title"},
				{
					Name:        "body",
					Direction:   "horizontal",
					Constraints: []string{"percentage:30", "min:0"},
					Children: []Section{
						{
							Name:        "metrics",
							Constraints: []string{"ratio:1/2", "ratio:1/2"},
							Children:    []Section{{Name: "cpu"}, {Name: "memory"}},
						},
						{
							Name:        "events",
							Constraints: []string{"min:5", "max:10"},
							Children:    []Section{{Name: "logs"}, {Name: "alerts"}},
						},
					},
				},
				{Name: "status"},
			},
		},
	}
}

// prEditorPreset is a file tree beside an editor, with a packed tab strip.
func prEditorPreset() Preset {
	return Preset{
		Name:        "editor",
		Description: "File tree, tabbed editor and status line",
		Root: Section{
			Constraints: []string{"min:0", "length:1"},
			Children: []Section{
				{
					Name:        "workspace",
					Direction:   "horizontal",
					Constraints: []string{"length:24", "min:0"},
					Children: []Section{
						{Name: "files"},
						{
							Name:        "editor",
							Constraints: []string{"length:1", "min:0"},
							Children:    []Section{{Name: "tabs"}, {Name: "buffer"}},
						},
					},
				},
				{Name: "status"},
			},
		},
	}
}

// prSidebarPreset is a capped sidebar next to the main content.
func prSidebarPreset() Preset {
	return Preset{
		Name:        "sidebar",
		Description: "Sidebar of at most 32 columns beside the content",
		Root: Section{
			Direction:   "horizontal",
			Constraints: []string{"max:32", "min:0"},
			Children:    []Section{{Name: "sidebar"}, {Name: "content"}},
		},
	}
}

// prMinimalPreset is a single content pane with a status line.
func prMinimalPreset() Preset {
	return Preset{
		Name:        "minimal",
		Description: "Content pane and status line",
		Root: Section{
			Constraints: []string{"min:0", "length:1"},
			Children:    []Section{{Name: "content"}, {Name: "status"}},
		},
	}
}

// Get returns a built-in preset by name.
func Get(name string) (Preset, bool) {
	p, ok := builtins[name]
	return p, ok
}

// Names returns the built-in preset names in sorted order.
func Names() []string {
	return NewRegistry().Names()
}

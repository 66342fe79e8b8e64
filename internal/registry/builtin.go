package registry

// Categories used by the built-in widgets.
const (
	CategoryNavigation = "navigation"
	CategoryInput      = "input"
	CategoryData       = "data"
	CategoryOverlay    = "overlay"
)

// Builtin returns a registry holding every widget the kit ships.
func Builtin() *ComponentRegistry {
	r := NewComponentRegistry()
	for _, c := range builtinComponents() {
		r.Register(c)
	}
	return r
}

func builtinComponents() []*ComponentInfo {
	variant := func(def string) PropInfo {
		return PropInfo{Name: "variant", Type: "string", Default: def, Description: "Visual style"}
	}

	return []*ComponentInfo{
		{
			Name:        "pagination",
			Category:    CategoryNavigation,
			Description: "Page navigation with a bounded window of page numbers and ellipses.",
			Props: []PropInfo{
				{Name: "current_page", Type: "int", Description: "1-based page shown"},
				{Name: "total_pages", Type: "int", Description: "Number of pages"},
				{Name: "max_page_numbers", Type: "int", Default: "5", Description: "Numbers shown around the current page"},
				{Name: "show_first_last", Type: "bool", Default: "true"},
				{Name: "show_page_numbers", Type: "bool", Default: "true"},
				{Name: "size", Type: "string", Default: "md"},
				variant("default"),
			},
			Examples: []string{
				"20 pages, page 10: 1 … 8 9 10 11 12 … 20",
				"Items info: Showing 11 to 20 of 95 results",
			},
		},
		{
			Name:        "select",
			Category:    CategoryInput,
			Description: "Single or multiple choice from a popup list with optional search.",
			Props: []PropInfo{
				{Name: "options", Type: "[]Option", Description: "Label, value, disabled and icon"},
				{Name: "value", Type: "[]string", Description: "Selected values"},
				{Name: "placeholder", Type: "string", Default: "Select an option"},
				{Name: "multiple", Type: "bool", Default: "false"},
				{Name: "searchable", Type: "bool", Default: "false"},
				{Name: "disabled", Type: "bool", Default: "false"},
				variant("default"),
			},
			Examples: []string{
				"Searchable single select of fruits",
				"Multi select rendering chips with remove buttons",
			},
		},
		{
			Name:        "dropdown",
			Category:    CategoryNavigation,
			Description: "Action menu with dividers, danger items and hover submenus.",
			Props: []PropInfo{
				{Name: "items", Type: "[]MenuItem", Description: "Nested menu entries"},
				{Name: "position", Type: "string", Default: "bottom-left"},
				{Name: "close_on_select", Type: "bool", Default: "true"},
				variant("default"),
			},
			Examples: []string{
				"Account menu with a Share submenu and a danger Delete item",
			},
		},
		{
			Name:        "table",
			Category:    CategoryData,
			Description: "Data grid with tri-state column sorting and row selection.",
			Props: []PropInfo{
				{Name: "columns", Type: "[]Column", Description: "Key, label, sortable, width"},
				{Name: "data", Type: "[]Row"},
				{Name: "selectable", Type: "bool", Default: "false"},
				{Name: "hoverable", Type: "bool", Default: "true"},
				{Name: "compact", Type: "bool", Default: "false"},
				{Name: "sticky_header", Type: "bool", Default: "false"},
				variant("default"),
			},
			Examples: []string{
				"Team roster sorted by age, paginated below",
			},
		},
		{
			Name:        "tabs",
			Category:    CategoryNavigation,
			Description: "Switches between panels; disabled tabs are skipped.",
			Props: []PropInfo{
				{Name: "items", Type: "[]Item"},
				{Name: "default_value", Type: "string", Description: "Initially active tab"},
				{Name: "full_width", Type: "bool", Default: "false"},
				variant("line"),
			},
			Examples: []string{"Overview, Usage and API tabs"},
		},
		{
			Name:        "modal",
			Category:    CategoryOverlay,
			Description: "Dialog that locks page scroll and closes on Escape or backdrop click.",
			Props: []PropInfo{
				{Name: "title", Type: "string"},
				{Name: "size", Type: "string", Default: "md"},
				{Name: "show_close_button", Type: "bool", Default: "true"},
				{Name: "close_on_backdrop_click", Type: "bool", Default: "true"},
				variant("default"),
			},
			Examples: []string{"Confirmation dialog opened from a button"},
		},
		{
			Name:        "tooltip",
			Category:    CategoryOverlay,
			Description: "Hover hint shown after a short delay.",
			Props: []PropInfo{
				{Name: "content", Type: "templ.Component"},
				{Name: "position", Type: "string", Default: "top"},
				{Name: "delay", Type: "duration", Default: "200ms"},
				{Name: "show_arrow", Type: "bool", Default: "true"},
				variant("default"),
			},
			Examples: []string{"Hint on an icon button"},
		},
	}
}

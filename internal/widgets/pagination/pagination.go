package pagination

import "github.com/mayura-ui/mayura/internal/widgets"

// Visual variants.
const (
	VariantDefault widgets.Variant = "default"
	VariantRounded widgets.Variant = "rounded"
	VariantMinimal widgets.Variant = "minimal"
)

// Props is the caller-owned pagination state.
type Props struct {
	CurrentPage     int
	TotalPages      int
	MaxPageNumbers  int
	ShowFirstLast   bool
	ShowPageNumbers bool
	Variant         widgets.Variant
	Size            widgets.Size
}

// DefaultProps returns props with the defaults of the control.
func DefaultProps() Props {
	return Props{
		CurrentPage:     1,
		MaxPageNumbers:  DefaultMaxPageNumbers,
		ShowFirstLast:   true,
		ShowPageNumbers: true,
		Variant:         VariantDefault,
		Size:            widgets.SizeMedium,
	}
}

// ActionKind identifies a navigation affordance.
type ActionKind int

const (
	ActionFirst ActionKind = iota
	ActionPrevious
	ActionNext
	ActionLast
	ActionGoTo
)

// String returns the wire name of the action.
func (k ActionKind) String() string {
	switch k {
	case ActionFirst:
		return "first"
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionLast:
		return "last"
	case ActionGoTo:
		return "goto"
	default:
		return "unknown"
	}
}

// ParseAction maps a wire name back to an ActionKind.
func ParseAction(name string) (ActionKind, bool) {
	for k := ActionFirst; k <= ActionGoTo; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// Action is a click on a navigation affordance. Page is only read for
// ActionGoTo.
type Action struct {
	Kind ActionKind
	Page int
}

// GoTo is a click on page p.
func GoTo(p int) Action { return Action{Kind: ActionGoTo, Page: p} }

func target(p Props, a Action) int {
	switch a.Kind {
	case ActionFirst:
		return 1
	case ActionPrevious:
		return p.CurrentPage - 1
	case ActionNext:
		return p.CurrentPage + 1
	case ActionLast:
		return p.TotalPages
	default:
		return a.Page
	}
}

// Navigate resolves an action against props. It returns the page to report
// and whether a page change should be emitted. Pages outside 1..TotalPages
// and the current page itself are no-ops.
func Navigate(p Props, a Action) (int, bool) {
	page := target(p, a)
	if page < 1 || page > p.TotalPages || page == p.CurrentPage {
		return p.CurrentPage, false
	}
	return page, true
}

// Disabled reports whether the button for kind is inert: first and previous
// on page 1, next and last on the final page.
func Disabled(p Props, kind ActionKind) bool {
	switch kind {
	case ActionFirst, ActionPrevious:
		return p.CurrentPage == 1
	case ActionNext, ActionLast:
		return p.CurrentPage == p.TotalPages
	default:
		return false
	}
}

// Items returns the page window for props.
func Items(p Props) []Item {
	return Window(p.CurrentPage, p.TotalPages, p.MaxPageNumbers)
}

// Package selectbox implements the selection control: a single or multiple
// value picker over a static option list with optional text filtering.
//
// The control is controlled. The caller owns Props.Value and learns about
// changes from the Effects returned by Update; the control only owns whether
// its popup is open and the current filter query.
package selectbox

import (
	"slices"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"

	"github.com/mayura-ui/mayura/internal/widgets"
)

// Visual variants.
const (
	VariantDefault  widgets.Variant = "default"
	VariantFilled   widgets.Variant = "filled"
	VariantOutlined widgets.Variant = "outlined"
)

// Option is one choice. Values must be unique within a list; lookups take
// the first match.
type Option struct {
	Label    string
	Value    string
	Disabled bool
	Icon     templ.Component
}

// Props is the caller-owned configuration of the control.
type Props struct {
	Options []Option
	// Value holds the selection. In single mode it has at most one entry;
	// in multiple mode it is ordered by selection time.
	Value       []string
	Placeholder string
	Disabled    bool
	Multiple    bool
	Searchable  bool
	Variant     widgets.Variant
	Size        widgets.Size
}

// State is the state the control owns.
type State struct {
	Open  bool
	Query string
}

// Event is an input to Update.
type Event interface {
	selectEvent()
}

// TriggerClicked toggles the popup.
type TriggerClicked struct{}

// OutsidePointerDown reports a press outside the control.
type OutsidePointerDown struct{}

// QueryChanged reports a new filter query.
type QueryChanged struct{ Query string }

// OptionPicked reports a click on the option with the given value.
type OptionPicked struct{ Value string }

// ChipRemoved reports a click on the remove affordance of a chip.
type ChipRemoved struct{ Value string }

func (TriggerClicked) selectEvent()     {}
func (OutsidePointerDown) selectEvent() {}
func (QueryChanged) selectEvent()       {}
func (OptionPicked) selectEvent()       {}
func (ChipRemoved) selectEvent()        {}

// Effects is what the caller must act on after an update.
type Effects struct {
	// Changed is set when Value should be reported through onChange.
	Changed bool
	Value   []string
}

// Update applies ev to the control. It never mutates props.
func Update(p Props, s State, ev Event) (State, Effects) {
	switch ev := ev.(type) {
	case TriggerClicked:
		if p.Disabled {
			return s, Effects{}
		}
		if s.Open {
			return State{}, Effects{}
		}
		return State{Open: true}, Effects{}

	case OutsidePointerDown:
		if !s.Open {
			return s, Effects{}
		}
		return State{}, Effects{}

	case QueryChanged:
		if !s.Open || !p.Searchable {
			return s, Effects{}
		}
		s.Query = ev.Query
		return s, Effects{}

	case OptionPicked:
		if !s.Open || p.Disabled {
			return s, Effects{}
		}
		opt, ok := find(p.Options, ev.Value)
		if !ok || opt.Disabled {
			return s, Effects{}
		}
		if p.Multiple {
			return s, Effects{Changed: true, Value: Toggle(p.Value, opt.Value)}
		}
		return State{}, Effects{Changed: true, Value: []string{opt.Value}}

	case ChipRemoved:
		if !p.Multiple || p.Disabled || !slices.Contains(p.Value, ev.Value) {
			return s, Effects{}
		}
		return s, Effects{Changed: true, Value: remove(p.Value, ev.Value)}
	}
	return s, Effects{}
}

// Toggle returns values with v removed if present, or appended otherwise.
// The input slice is not modified.
func Toggle(values []string, v string) []string {
	if slices.Contains(values, v) {
		return remove(values, v)
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, v)
}

func remove(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// Filter returns the options whose label contains query, ignoring case. An
// empty query keeps every option.
func Filter(options []Option, query string) []Option {
	if query == "" {
		return options
	}
	fold := cases.Fold()
	needle := fold.String(query)
	var out []Option
	for _, o := range options {
		if strings.Contains(fold.String(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}

// Visible returns the options shown in the open popup.
func Visible(p Props, s State) []Option {
	if !p.Searchable {
		return p.Options
	}
	return Filter(p.Options, s.Query)
}

// IsSelected reports whether v is part of the selection.
func IsSelected(p Props, v string) bool {
	if p.Multiple {
		return slices.Contains(p.Value, v)
	}
	return len(p.Value) > 0 && p.Value[0] == v
}

// Selected returns the selected options in selection order. Values with no
// matching option are skipped.
func Selected(p Props) []Option {
	values := p.Value
	if !p.Multiple && len(values) > 1 {
		values = values[:1]
	}
	out := make([]Option, 0, len(values))
	for _, v := range values {
		if opt, ok := find(p.Options, v); ok {
			out = append(out, opt)
		}
	}
	return out
}

// Display returns the trigger text for single mode: the selected label, or
// "" when nothing resolvable is selected.
func Display(p Props) string {
	sel := Selected(p)
	if len(sel) == 0 {
		return ""
	}
	return sel[0].Label
}

func find(options []Option, v string) (Option, bool) {
	for _, o := range options {
		if o.Value == v {
			return o, true
		}
	}
	return Option{}, false
}

// Package tabs implements a tab strip with one visible panel.
package tabs

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/widgets"
)

// Visual variants.
const (
	VariantLine     widgets.Variant = "line"
	VariantPills    widgets.Variant = "pills"
	VariantGradient widgets.Variant = "gradient"
)

// EventSelect is the data-event name of a tab button.
const EventSelect = "select"

// Keys understood by KeyPressed.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
	KeyHome  = "Home"
	KeyEnd   = "End"
)

type Item struct {
	Label    string
	Value    string
	Icon     templ.Component
	Disabled bool
	Content  templ.Component
}

type Props struct {
	Items        []Item
	DefaultValue string
	Variant      widgets.Variant
	FullWidth    bool
}

type State struct {
	Active string
}

// Init returns the initial state: DefaultValue, or the first item.
func Init(p Props) State {
	if p.DefaultValue != "" {
		return State{Active: p.DefaultValue}
	}
	if len(p.Items) > 0 {
		return State{Active: p.Items[0].Value}
	}
	return State{}
}

type Event interface {
	tabsEvent()
}

// Selected reports a click on the tab with Value.
type Selected struct{ Value string }

// KeyPressed reports a key press while the tab strip has focus.
type KeyPressed struct{ Key string }

func (Selected) tabsEvent()   {}
func (KeyPressed) tabsEvent() {}

type Effects struct {
	Changed bool
	Value   string
}

// Update applies ev. Disabled tabs and the active tab are inert.
func Update(p Props, s State, ev Event) (State, Effects) {
	switch ev := ev.(type) {
	case Selected:
		return activate(p, s, ev.Value)
	case KeyPressed:
		enabled := make([]string, 0, len(p.Items))
		cur := -1
		for _, it := range p.Items {
			if it.Disabled {
				continue
			}
			if it.Value == s.Active {
				cur = len(enabled)
			}
			enabled = append(enabled, it.Value)
		}
		if len(enabled) == 0 {
			return s, Effects{}
		}
		switch ev.Key {
		case KeyLeft:
			if cur <= 0 {
				cur = len(enabled)
			}
			return activate(p, s, enabled[cur-1])
		case KeyRight:
			return activate(p, s, enabled[(cur+1)%len(enabled)])
		case KeyHome:
			return activate(p, s, enabled[0])
		case KeyEnd:
			return activate(p, s, enabled[len(enabled)-1])
		}
	}
	return s, Effects{}
}

func activate(p Props, s State, v string) (State, Effects) {
	if v == s.Active {
		return s, Effects{}
	}
	for _, it := range p.Items {
		if it.Value == v {
			if it.Disabled {
				return s, Effects{}
			}
			return State{Active: v}, Effects{Changed: true, Value: v}
		}
	}
	return s, Effects{}
}

type variantStyle struct {
	tab, active, container string
}

var variantStyles = map[widgets.Variant]variantStyle{
	VariantLine: {
		tab:       "px-4 py-2.5 font-medium transition-all duration-200 text-gray-600 hover:text-gray-900",
		active:    "text-[#00aeaf] border-b-2 border-[#00aeaf]",
		container: "border-b border-gray-200",
	},
	VariantPills: {
		tab:       "px-4 py-2.5 font-medium rounded-lg transition-all duration-200 text-gray-600 hover:bg-gray-100",
		active:    "bg-[#00aeaf] text-white hover:bg-[#008c9d]",
		container: "bg-gray-50 rounded-xl p-1",
	},
	VariantGradient: {
		tab:       "px-4 py-2.5 font-medium rounded-lg transition-all duration-200 text-gray-600 hover:bg-gray-100",
		active:    "bg-gradient-to-r from-[#00aeaf] via-[#0c4bb2] to-[#008c9d] text-white shadow-lg",
		container: "bg-gray-50 rounded-xl p-1",
	},
}

// Render returns the tab strip and the active panel.
func Render(p Props, s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		style, ok := variantStyles[p.Variant]
		if !ok {
			style = variantStyles[VariantLine]
		}
		w := widgets.NewWriter(out)
		w.Raw(`<div class="w-full"><div role="tablist"`)
		w.Attr("class", widgets.Classes("relative flex gap-1", style.container, templ.KV("justify-stretch", p.FullWidth)))
		w.Raw(">")

		var content templ.Component
		for _, it := range p.Items {
			active := it.Value == s.Active
			if active {
				content = it.Content
			}
			w.Raw(`<button type="button" role="tab"`)
			w.Attr("class", widgets.Classes(
				"flex items-center gap-2 text-sm focus:outline-none",
				style.tab,
				templ.KV(style.active, active),
				templ.KV("opacity-50 cursor-not-allowed", it.Disabled),
				templ.KV("flex-1 justify-center", p.FullWidth),
			))
			w.Attr("data-event", EventSelect)
			w.Attr("data-value", it.Value)
			w.Attr("aria-selected", strconv.FormatBool(active))
			if it.Disabled {
				w.Attr("aria-disabled", "true")
			}
			w.AttrIf(it.Disabled, "disabled")
			w.Raw(">")
			if it.Icon != nil {
				w.Raw(`<span class="w-4 h-4">`)
				w.Component(ctx, it.Icon)
				w.Raw("</span>")
			}
			w.Text(it.Label)
			w.Raw("</button>")
		}
		w.Raw(`</div><div class="mt-6" role="tabpanel">`)
		w.Component(ctx, content)
		w.Raw("</div></div>")
		return w.Err()
	})
}

// Controller holds the active tab between events.
type Controller struct {
	props    Props
	state    State
	onChange func(string)
}

func NewController(props Props, onChange func(string)) *Controller {
	return &Controller{props: props, state: Init(props), onChange: onChange}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Dispatch(ev Event) Effects {
	next, eff := Update(c.props, c.state, ev)
	c.state = next
	if eff.Changed && c.onChange != nil {
		c.onChange(eff.Value)
	}
	return eff
}

func (c *Controller) Component() templ.Component {
	return Render(c.props, c.state)
}

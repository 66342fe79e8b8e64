package dropdown

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/widgets"
)

// Event names carried in data-event attributes.
const (
	EventToggle   = "toggle"
	EventActivate = "activate"
	EventEnter    = "enter"
	EventLeave    = "leave"
)

var positionClasses = map[Position]string{
	BottomLeft:  "top-full left-0 mt-2",
	BottomRight: "top-full right-0 mt-2",
	TopLeft:     "bottom-full left-0 mb-2",
	TopRight:    "bottom-full right-0 mb-2",
}

var variantClasses = map[widgets.Variant]string{
	VariantDefault:  "bg-white border border-gray-200 shadow-lg",
	VariantGradient: "bg-white border-2 border-transparent bg-clip-padding relative",
	VariantBordered: "bg-white border-2 border-[#00aeaf] shadow-lg shadow-[#00aeaf]/20",
}

// Render returns the menu for props and state.
func Render(p Props, s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Raw(`<div class="relative inline-block">`)
		w.Raw(`<div class="cursor-pointer"`)
		w.Attr("data-event", EventToggle)
		w.Attr("aria-haspopup", "menu")
		if s.Open {
			w.Attr("aria-expanded", "true")
		} else {
			w.Attr("aria-expanded", "false")
		}
		w.Raw(">")
		w.Component(ctx, p.Trigger)
		w.Raw("</div>")

		if s.Open {
			w.Raw(`<div role="menu"`)
			w.Attr("class", widgets.Classes(
				"absolute z-50 min-w-[200px] rounded-xl py-2",
				widgets.Pick(positionClasses, p.Position, BottomLeft),
				widgets.Pick(variantClasses, p.Variant, VariantDefault),
			))
			w.Raw(">")
			renderItems(ctx, w, s, p.Items, nil)
			w.Raw("</div>")
		}
		w.Raw("</div>")
		return w.Err()
	})
}

func renderItems(ctx context.Context, w *widgets.Writer, s State, items []MenuItem, parent Path) {
	for _, it := range items {
		if it.Divider {
			w.Raw(`<div class="my-2 h-px bg-gray-200" role="separator"></div>`)
			continue
		}
		path := append(append(Path{}, parent...), it.Value)

		w.Raw(`<div class="relative"`)
		if it.HasChildren() {
			w.Attr("data-hover", path.String())
		}
		w.Raw(`><button type="button" role="menuitem"`)
		w.Attr("class", widgets.Classes(
			"w-full flex items-center gap-3 px-4 py-2.5 text-sm text-left transition-all duration-200 hover:bg-gray-100",
			templ.KV("opacity-50 cursor-not-allowed", it.Disabled),
			templ.KV("text-red-600 hover:bg-red-50", it.Danger),
		))
		w.Attr("data-event", EventActivate)
		w.Attr("data-path", path.String())
		if it.HasChildren() {
			w.Attr("aria-haspopup", "menu")
		}
		w.AttrIf(it.Disabled, "disabled")
		w.Raw(">")
		if it.Icon != nil {
			w.Raw(`<span class="w-4 h-4 shrink-0">`)
			w.Component(ctx, it.Icon)
			w.Raw("</span>")
		}
		w.Raw(`<span class="flex-1">`)
		w.Text(it.Label)
		w.Raw("</span>")
		if it.HasChildren() {
			w.Raw(`<span class="w-4 h-4 shrink-0" aria-hidden="true">›</span>`)
		}
		w.Raw("</button>")

		if it.HasChildren() && s.SubmenuOpen(path) {
			w.Raw(`<div class="absolute left-full top-0 ml-1 min-w-[200px] rounded-xl py-2 bg-white border border-gray-200 shadow-lg" role="menu">`)
			renderItems(ctx, w, s, it.Children, path)
			w.Raw("</div>")
		}
		w.Raw("</div>")
	}
}

package selectbox

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets"
)

// Event names carried in data-event attributes.
const (
	EventToggle = "toggle"
	EventQuery  = "query"
	EventPick   = "pick"
	EventRemove = "remove"
)

var sizeClasses = map[widgets.Size]string{
	widgets.SizeSmall:  "h-9 text-sm px-3",
	widgets.SizeMedium: "h-11 text-base px-4",
	widgets.SizeLarge:  "h-13 text-lg px-5",
}

var variantClasses = map[widgets.Variant]string{
	VariantDefault:  "bg-white border-2 border-gray-200 focus-within:border-[#00aeaf]",
	VariantFilled:   "bg-gray-100 border-2 border-transparent focus-within:border-[#00aeaf] focus-within:bg-white",
	VariantOutlined: "bg-transparent border-2 border-[#00aeaf] focus-within:border-[#0c4bb2]",
}

// Render returns the control for props and state.
func Render(p Props, s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		cat := i18n.FromContext(ctx)
		w := widgets.NewWriter(out)

		w.Raw(`<div class="relative w-full">`)

		// The trigger is not a <button> so that chip remove buttons can nest.
		w.Raw(`<div role="button"`)
		w.Attr("class", widgets.Classes(
			"w-full flex items-center justify-between gap-2 rounded-xl transition-all duration-200",
			widgets.Pick(sizeClasses, p.Size, widgets.SizeMedium),
			widgets.Pick(variantClasses, p.Variant, VariantDefault),
			templ.KV("opacity-50 cursor-not-allowed", p.Disabled),
		))
		w.Attr("tabindex", "0")
		w.Attr("data-event", EventToggle)
		w.Attr("aria-haspopup", "listbox")
		w.Attr("aria-expanded", strconv.FormatBool(s.Open))
		if p.Disabled {
			w.Attr("aria-disabled", "true")
		}
		w.Raw(`><div class="flex flex-wrap gap-1.5 flex-1">`)

		if p.Multiple && len(p.Value) > 0 {
			for _, opt := range Selected(p) {
				w.Raw(`<span class="inline-flex items-center gap-1 px-2 py-0.5 bg-[#00aeaf] text-white text-sm rounded-md">`)
				w.Text(opt.Label)
				w.Raw(`<button type="button" class="w-3 h-3 cursor-pointer hover:text-red-300"`)
				w.Attr("data-event", EventRemove)
				w.Attr("data-value", opt.Value)
				w.Attr("aria-label", cat.TData(i18n.SelectRemove, map[string]any{"Label": opt.Label}))
				w.Raw(">×</button></span>")
			}
		} else {
			label := Display(p)
			w.Raw("<span")
			w.Attr("class", widgets.Classes("truncate", templ.KV("text-gray-400", label == "")))
			w.Raw(">")
			if label == "" {
				label = p.Placeholder
				if label == "" {
					label = cat.T(i18n.SelectPlaceholder)
				}
			}
			w.Text(label)
			w.Raw("</span>")
		}
		w.Raw("</div>")
		w.Raw("<span")
		w.Attr("class", widgets.Classes("w-5 h-5 transition-transform duration-200 shrink-0", templ.KV("rotate-180", s.Open)))
		w.Raw(` aria-hidden="true">▾</span></div>`)

		if s.Open {
			w.Raw(`<div class="absolute z-50 w-full mt-2 bg-white border-2 border-gray-200 rounded-xl shadow-2xl max-h-60 overflow-hidden">`)
			if p.Searchable {
				w.Raw(`<div class="p-2 border-b border-gray-200"><input type="text" class="w-full pl-10 pr-3 py-2 bg-gray-50 rounded-lg text-sm"`)
				w.Attr("data-event", EventQuery)
				w.Attr("value", s.Query)
				w.Attr("placeholder", cat.T(i18n.SelectSearch))
				w.Raw("></div>")
			}
			renderOptions(ctx, w, p, Visible(p, s), cat)
			w.Raw("</div>")
		}

		w.Raw("</div>")
		return w.Err()
	})
}

func renderOptions(ctx context.Context, w *widgets.Writer, p Props, options []Option, cat *i18n.Catalog) {
	w.Raw(`<ul class="overflow-y-auto max-h-48 p-1" role="listbox"`)
	if p.Multiple {
		w.Attr("aria-multiselectable", "true")
	}
	w.Raw(">")
	if len(options) == 0 {
		w.Raw(`<li class="px-4 py-8 text-center text-gray-400 text-sm" role="presentation">`)
		w.Text(cat.T(i18n.SelectNoOptions))
		w.Raw("</li>")
	}
	for _, opt := range options {
		selected := IsSelected(p, opt.Value)
		w.Raw(`<li role="option"`)
		w.Attr("class", widgets.Classes(
			"w-full flex items-center gap-3 px-3 py-2.5 text-left rounded-lg transition-all duration-200 hover:bg-gray-100",
			templ.KV("bg-[#00aeaf]/10 text-[#00aeaf]", selected),
			templ.KV("opacity-50 cursor-not-allowed", opt.Disabled),
		))
		if !opt.Disabled {
			w.Attr("data-event", EventPick)
		}
		w.Attr("data-value", opt.Value)
		w.Attr("aria-selected", strconv.FormatBool(selected))
		if opt.Disabled {
			w.Attr("aria-disabled", "true")
		}
		w.Raw(">")
		if opt.Icon != nil {
			w.Raw(`<span class="w-5 h-5 shrink-0">`)
			w.Component(ctx, opt.Icon)
			w.Raw("</span>")
		}
		w.Raw(`<span class="flex-1">`)
		w.Text(opt.Label)
		w.Raw("</span>")
		if selected {
			w.Raw(`<span class="w-5 h-5 shrink-0 text-[#00aeaf]" aria-hidden="true">✓</span>`)
		}
		w.Raw("</li>")
	}
	w.Raw("</ul>")
}

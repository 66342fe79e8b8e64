package pagination

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets"
)

var sizeClasses = map[widgets.Size]string{
	widgets.SizeSmall:  "h-8 min-w-8 text-sm",
	widgets.SizeMedium: "h-10 min-w-10 text-base",
	widgets.SizeLarge:  "h-12 min-w-12 text-lg",
}

type variantStyle struct {
	button string
	active string
}

var variantStyles = map[widgets.Variant]variantStyle{
	VariantDefault: {
		button: "border border-gray-200 hover:bg-gray-100",
		active: "bg-[#00aeaf] text-white border-[#00aeaf] hover:bg-[#008c9d]",
	},
	VariantRounded: {
		button: "rounded-full border border-gray-200 hover:bg-gray-100",
		active: "bg-gradient-to-r from-[#00aeaf] via-[#0c4bb2] to-[#008c9d] text-white border-transparent",
	},
	VariantMinimal: {
		button: "hover:bg-gray-100",
		active: "text-[#00aeaf] font-semibold underline underline-offset-4",
	},
}

var arrows = map[ActionKind]string{
	ActionFirst:    "«",
	ActionPrevious: "‹",
	ActionNext:     "›",
	ActionLast:     "»",
}

// Render returns the navigation control for props. Every button carries
// data-event and data-value attributes naming the action it triggers.
func Render(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		cat := i18n.FromContext(ctx)
		style, ok := variantStyles[p.Variant]
		if !ok {
			style = variantStyles[VariantDefault]
		}
		size := widgets.Pick(sizeClasses, p.Size, widgets.SizeMedium)
		shape := "rounded-lg"
		if p.Variant == VariantRounded {
			shape = "rounded-full"
		}

		w := widgets.NewWriter(out)
		w.Raw(`<nav class="flex items-center gap-2" role="navigation"`)
		w.Attr("aria-label", cat.T(i18n.PaginationLabel))
		w.Raw(">")

		nav := func(kind ActionKind, label *i18n.Message) {
			disabled := Disabled(p, kind)
			w.Raw(`<button type="button"`)
			w.Attr("class", widgets.Classes(
				"flex items-center justify-center transition-all duration-200",
				size, shape, style.button,
				templ.KV("opacity-50 cursor-not-allowed", disabled),
			))
			w.Attr("data-event", "paginate")
			w.Attr("data-value", kind.String())
			w.Attr("aria-label", cat.T(label))
			w.AttrIf(disabled, "disabled")
			w.Raw(">")
			w.Text(arrows[kind])
			w.Raw("</button>")
		}

		if p.ShowFirstLast {
			nav(ActionFirst, i18n.PaginationFirst)
		}
		nav(ActionPrevious, i18n.PaginationPrevious)

		if p.ShowPageNumbers {
			for _, item := range Items(p) {
				if item.Ellipsis {
					w.Raw(`<span`)
					w.Attr("class", widgets.Classes("flex items-center justify-center text-gray-400", size))
					w.Raw(">...</span>")
					continue
				}
				current := item.Page == p.CurrentPage
				w.Raw(`<button type="button"`)
				classes := style.button
				if current {
					classes = style.active
				}
				w.Attr("class", widgets.Classes(
					"flex items-center justify-center transition-all duration-200 font-medium",
					size, shape, classes,
				))
				w.Attr("data-event", "paginate")
				w.Attr("data-value", ActionGoTo.String())
				w.Attr("data-index", strconv.Itoa(item.Page))
				w.Attr("aria-label", cat.TData(i18n.PaginationPage, map[string]any{"Page": item.Page}))
				if current {
					w.Attr("aria-current", "page")
				}
				w.Raw(">")
				w.Text(item.String())
				w.Raw("</button>")
			}
		}

		nav(ActionNext, i18n.PaginationNext)
		if p.ShowFirstLast {
			nav(ActionLast, i18n.PaginationLast)
		}
		w.Raw("</nav>")
		return w.Err()
	})
}

// RenderInfo returns the "Showing a to b of n results" summary.
func RenderInfo(currentPage, pageSize, totalItems int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		start, end := Info(currentPage, pageSize, totalItems)
		w := widgets.NewWriter(out)
		w.Raw(`<div class="text-sm text-gray-600">`)
		w.Text(i18n.FromContext(ctx).TData(i18n.PaginationInfo, map[string]any{
			"Start": start,
			"End":   end,
			"Total": totalItems,
		}))
		w.Raw("</div>")
		return w.Err()
	})
}

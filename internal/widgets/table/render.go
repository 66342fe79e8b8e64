package table

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets"
)

// Event names carried in data-event attributes.
const (
	EventSort = "sort"
	EventRow  = "row"
	EventAll  = "all"
)

type variantStyle struct {
	table, th, td string
}

var variantStyles = map[widgets.Variant]variantStyle{
	VariantDefault: {
		table: "border border-gray-200",
		th:    "bg-gray-50 border-b-2 border-gray-200",
		td:    "border-b border-gray-200",
	},
	VariantStriped: {
		table: "border border-gray-200",
		th:    "bg-gradient-to-r from-[#00aeaf]/10 via-[#0c4bb2]/10 to-[#008c9d]/10 border-b-2 border-[#00aeaf]",
		td:    "border-b border-gray-200",
	},
	VariantBordered: {
		table: "border-2 border-[#00aeaf]",
		th:    "bg-[#00aeaf]/5 border-b-2 border-[#00aeaf] border-r border-gray-200 last:border-r-0",
		td:    "border-b border-r border-gray-200 last:border-r-0",
	},
	VariantMinimal: {
		th: "border-b border-gray-300",
		td: "border-b border-gray-200",
	},
}

const checkboxClass = "w-4 h-4 rounded border-gray-300 text-[#00aeaf] focus:ring-[#00aeaf] cursor-pointer"

func ariaSort(s SortState, key string) string {
	if s.Key != key {
		return "none"
	}
	switch s.Order {
	case Asc:
		return "ascending"
	case Desc:
		return "descending"
	default:
		return "none"
	}
}

// Render returns the grid for props and state.
func Render(p Props, s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		cat := i18n.FromContext(ctx)
		style, ok := variantStyles[p.Variant]
		if !ok {
			style = variantStyles[VariantDefault]
		}
		padding := "px-6 py-4"
		if p.Compact {
			padding = "px-3 py-2"
		}

		w := widgets.NewWriter(out)
		w.Raw(`<div class="w-full overflow-x-auto rounded-xl"><table`)
		w.Attr("class", widgets.Classes("w-full", style.table))
		w.Raw("><thead")
		if p.StickyHeader {
			w.Attr("class", "sticky top-0 z-10")
		}
		w.Raw("><tr>")

		thClass := widgets.Classes("text-left font-semibold text-gray-700", padding, style.th)
		if p.Selectable {
			w.Raw("<th")
			w.Attr("class", thClass)
			w.Raw(`><input type="checkbox"`)
			w.Attr("class", checkboxClass)
			w.Attr("data-event", EventAll)
			w.Attr("aria-label", cat.T(i18n.TableSelectAll))
			w.AttrIf(len(p.Data) > 0 && AllSelected(p, s), "checked")
			w.Raw("></th>")
		}
		for _, col := range p.Columns {
			w.Raw("<th")
			w.Attr("class", thClass)
			if col.Width != "" {
				w.Attr("style", "width: "+col.Width)
			}
			if col.Sortable {
				w.Attr("aria-sort", ariaSort(s.Sort, col.Key))
			}
			w.Raw(">")
			if !col.Sortable {
				w.Text(col.Heading())
				w.Raw("</th>")
				continue
			}
			w.Raw(`<button type="button" class="flex items-center gap-2 hover:text-[#00aeaf] transition-colors group"`)
			w.Attr("data-event", EventSort)
			w.Attr("data-value", col.Key)
			w.Raw(">")
			w.Text(col.Heading())
			switch {
			case s.Sort.Key == col.Key && s.Sort.Order == Asc:
				w.Raw(`<span class="w-4 h-4 text-[#00aeaf]" aria-hidden="true">↑</span>`)
			case s.Sort.Key == col.Key && s.Sort.Order == Desc:
				w.Raw(`<span class="w-4 h-4 text-[#00aeaf]" aria-hidden="true">↓</span>`)
			default:
				w.Raw(`<span class="w-4 h-4 opacity-0 group-hover:opacity-100 transition-opacity" aria-hidden="true">↕</span>`)
			}
			w.Raw("</button></th>")
		}
		w.Raw("</tr></thead><tbody>")

		rows := View(p, s)
		if len(rows) == 0 {
			span := len(p.Columns)
			if p.Selectable {
				span++
			}
			w.Raw(`<tr><td class="text-center py-12 text-gray-400"`)
			w.Attr("colspan", strconv.Itoa(span))
			w.Raw(">")
			w.Text(cat.T(i18n.TableNoData))
			w.Raw("</td></tr>")
		}

		tdClass := widgets.Classes(padding, style.td)
		for _, r := range rows {
			w.Raw("<tr")
			w.Attr("class", widgets.Classes(
				"transition-colors",
				templ.KV("hover:bg-gray-50", p.Hoverable),
				templ.KV("bg-gray-50/50", p.Variant == VariantStriped && r.Index%2 == 0),
				templ.KV("bg-[#00aeaf]/5", r.Selected),
			))
			w.Attr("data-key", r.Key)
			w.Raw(">")
			if p.Selectable {
				w.Raw("<td")
				w.Attr("class", tdClass)
				w.Raw(`><input type="checkbox"`)
				w.Attr("class", checkboxClass)
				w.Attr("data-event", EventRow)
				w.Attr("data-index", strconv.Itoa(r.Index))
				w.Attr("aria-label", cat.TData(i18n.TableSelectRow, map[string]any{"Row": r.Index + 1}))
				w.AttrIf(r.Selected, "checked")
				w.Raw("></td>")
			}
			for _, col := range p.Columns {
				w.Raw("<td")
				w.Attr("class", widgets.Classes(tdClass, "text-gray-900"))
				w.Raw(">")
				value := r.Row[col.Key]
				switch {
				case col.Render != nil:
					w.Component(ctx, col.Render(value, r.Row, r.Index))
				case value != nil:
					w.Text(fmt.Sprint(value))
				}
				w.Raw("</td>")
			}
			w.Raw("</tr>")
		}
		w.Raw("</tbody></table></div>")
		return w.Err()
	})
}

package showcase

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets"
	"github.com/mayura-ui/mayura/internal/widgets/pagination"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

const statusClass = "text-sm text-gray-600"

// component returns a widget together with the demo chrome around it:
// status lines, the dialog opener and the grid's pager.
func (s *Session) component(widget string) templ.Component {
	switch widget {
	case WidgetPagination:
		return s.paginationDemo()
	case WidgetSelect:
		return s.selectDemo()
	case WidgetDropdown:
		return s.dropdownDemo()
	case WidgetTable:
		return s.tableDemo()
	case WidgetTabs:
		return s.tabs.Component()
	case WidgetModal:
		return s.modalDemo()
	case WidgetTooltip:
		return s.tip.Component()
	}
	return templ.NopComponent
}

func status(w *widgets.Writer, text string) {
	w.Raw(`<p class="` + statusClass + `" data-status>`)
	w.Text(text)
	w.Raw("</p>")
}

func (s *Session) paginationDemo() templ.Component {
	p := s.pager
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Component(ctx, pagination.Render(p))
		status(w, i18n.FromContext(ctx).TData(i18n.PaginationPage, map[string]any{"Page": p.CurrentPage}))
		return w.Err()
	})
}

func (s *Session) selectDemo() templ.Component {
	c := s.sel
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		cat := i18n.FromContext(ctx)
		w := widgets.NewWriter(out)
		w.Component(ctx, c.Component())

		chosen := selectbox.Selected(c.Props())
		if len(chosen) == 0 {
			status(w, cat.T(i18n.ShowcaseNothing))
			return w.Err()
		}
		labels := make([]string, len(chosen))
		for i, o := range chosen {
			labels[i] = o.Label
		}
		status(w, cat.TData(i18n.ShowcaseSelected, map[string]any{"Value": joinValues(labels)}))
		return w.Err()
	})
}

func (s *Session) dropdownDemo() templ.Component {
	c, action := s.menu, s.lastAction
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Component(ctx, c.Component())
		if action != "" {
			status(w, i18n.FromContext(ctx).TData(i18n.ShowcaseLastAction, map[string]any{"Action": action}))
		}
		return w.Err()
	})
}

func (s *Session) tableDemo() templ.Component {
	grid, pager := s.grid, s.gridPager()
	page, size, total := s.gridPage, s.pageSize, len(s.gridAll.Data)
	selected := len(table.SelectedRows(s.gridAll, s.grid.State()))
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Component(ctx, grid.Component())
		w.Raw(`<div class="flex items-center justify-between gap-4">`)
		w.Component(ctx, pagination.RenderInfo(page, size, total))
		if pager.TotalPages > 1 {
			w.Component(ctx, pagination.Render(pager))
		}
		w.Raw("</div>")
		if grid.Props().Selectable {
			status(w, i18n.FromContext(ctx).TData(i18n.ShowcaseRowsSelected, map[string]any{"Count": selected}))
		}
		return w.Err()
	})
}

func (s *Session) modalDemo() templ.Component {
	dialog, closes := s.dialog, s.closeCount
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		cat := i18n.FromContext(ctx)
		w := widgets.NewWriter(out)
		w.Raw(`<button type="button" class="self-start px-4 py-2 rounded-lg bg-[#00aeaf] text-white hover:bg-[#008c9d]"`)
		w.Attr("data-event", EventOpen)
		w.Raw(">")
		w.Text(cat.T(i18n.ShowcaseOpenDialog))
		w.Raw("</button>")
		if closes > 0 {
			status(w, cat.TData(i18n.ShowcaseDialogClosed, map[string]any{"Count": closes}))
		}
		w.Component(ctx, dialog.Component())
		return w.Err()
	})
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets/pagination"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

var sortArrows = map[table.Order]string{
	table.Asc:  " ▲",
	table.Desc: " ▼",
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render("mayura • playground")}

	sections = append(sections, m.heading("Table", focusTable), m.viewTable(), m.viewPager())
	sections = append(sections, m.heading("Select", focusSelect), m.viewSelect())

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) heading(title string, f focus) string {
	if m.focus == f {
		return focusedStyle.Render("› " + title)
	}
	return sectionStyle.Render("  " + title)
}

func (m Model) viewTable() string {
	rows := m.pageRows()
	if len(rows) == 0 {
		return mutedStyle.Render(m.catalog.T(i18n.TableNoData))
	}

	offset := 0
	var headers []string
	if m.grid.Selectable {
		offset = 1
		mark := "[ ]"
		if table.AllSelected(m.grid, m.gridState) {
			mark = "[x]"
		}
		headers = append(headers, mark)
	}
	for _, c := range m.grid.Columns {
		h := c.Heading()
		if m.gridState.Sort.Key == c.Key {
			h += sortArrows[m.gridState.Sort.Order]
		}
		headers = append(headers, h)
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		var cells []string
		if m.grid.Selectable {
			mark := "[ ]"
			if r.Selected {
				mark = "[x]"
			}
			cells = append(cells, mark)
		}
		for _, c := range m.grid.Columns {
			cells = append(cells, cellText(r.Row[c.Key]))
		}
		data[i] = cells
	}

	tableFocused := m.focus == focusTable
	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				if tableFocused && col == m.col+offset {
					return activeColStyle
				}
				return headerStyle
			case tableFocused && row == m.row:
				return cursorRowStyle
			case row < len(rows) && rows[row].Selected:
				return selectedRowStyle
			}
			return cellStyle
		})
	return t.String()
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// viewPager renders the page window and the results summary.
func (m Model) viewPager() string {
	p := m.pager()
	if p.TotalPages == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(disabledOr("‹", pagination.Disabled(p, pagination.ActionPrevious)))
	for _, item := range pagination.Items(p) {
		b.WriteString(" ")
		switch {
		case item.Ellipsis:
			b.WriteString(mutedStyle.Render("…"))
		case item.Page == p.CurrentPage:
			b.WriteString(currentPageStyle.Render("[" + strconv.Itoa(item.Page) + "]"))
		default:
			b.WriteString(strconv.Itoa(item.Page))
		}
	}
	b.WriteString(" ")
	b.WriteString(disabledOr("›", pagination.Disabled(p, pagination.ActionNext)))

	start, end := pagination.Info(m.page, m.pageSize, len(m.grid.Data))
	info := m.catalog.TData(i18n.PaginationInfo, map[string]any{
		"Start": start,
		"End":   end,
		"Total": len(m.grid.Data),
	})
	return b.String() + "  " + mutedStyle.Render(info)
}

func disabledOr(s string, disabled bool) string {
	if disabled {
		return mutedStyle.Render(s)
	}
	return s
}

func (m Model) viewSelect() string {
	lines := []string{m.trigger()}
	if !m.selState.Open {
		return strings.Join(lines, "\n")
	}

	if m.sel.Searchable {
		lines = append(lines, optionStyle.Render(m.search.View()))
	}
	visible := selectbox.Visible(m.sel, m.selState)
	if len(visible) == 0 {
		lines = append(lines, optionStyle.Render(mutedStyle.Render(m.catalog.T(i18n.SelectNoOptions))))
	}
	for i, o := range visible {
		cursor := "  "
		if i == m.option {
			cursor = cursorStyle.Render("> ")
		}
		label := o.Label
		switch {
		case o.Disabled:
			label = disabledStyle.Render(label)
		case selectbox.IsSelected(m.sel, o.Value):
			label = cursorStyle.Render("✓ ") + label
		}
		lines = append(lines, optionStyle.Render(cursor+label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) trigger() string {
	arrow := "▾"
	if m.selState.Open {
		arrow = "▴"
	}
	label := selectbox.Display(m.sel)
	if m.sel.Multiple {
		selected := selectbox.Selected(m.sel)
		labels := make([]string, len(selected))
		for i, o := range selected {
			labels[i] = o.Label
		}
		label = strings.Join(labels, ", ")
	}
	if label == "" {
		label = m.sel.Placeholder
		if label == "" {
			label = m.catalog.T(i18n.SelectPlaceholder)
		}
		label = mutedStyle.Render(label)
	}
	return "[ " + label + " " + arrow + " ]"
}

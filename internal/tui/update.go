package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets/pagination"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			m.switchFocus()
			return m, nil
		}
		if m.focus == focusSelect {
			return m.updateSelect(msg)
		}
		return m.updateTable(msg), nil
	}
	return m, nil
}

func (m *Model) switchFocus() {
	if m.focus == focusTable {
		m.focus = focusSelect
		return
	}
	m.dispatchSelect(selectbox.OutsidePointerDown{})
	m.focus = focusTable
}

func (m Model) updateTable(msg tea.KeyMsg) Model {
	rows := len(m.pageRows())
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < rows-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		}
	case key.Matches(msg, m.keys.Right):
		if m.col < len(m.grid.Columns)-1 {
			m.col++
		}
	case key.Matches(msg, m.keys.Sort):
		if len(m.grid.Columns) == 0 {
			break
		}
		col := m.grid.Columns[m.col]
		if !col.Sortable {
			m.status = col.Heading() + " is not sortable"
			break
		}
		m.gridState, _ = table.Update(m.grid, m.gridState, table.HeaderClicked{Key: col.Key})
		m.page, m.row = 1, 0
		if s := m.gridState.Sort; s.Order != table.None {
			m.status = "Sorted by " + col.Heading() + " " + s.Order.String()
		} else {
			m.status = "Unsorted"
		}
	case key.Matches(msg, m.keys.Toggle):
		if rows == 0 {
			break
		}
		lo, _ := pagination.Bounds(m.page, m.pageSize, len(m.grid.Data))
		m.applyTable(table.RowToggled{Index: lo + m.row})
	case key.Matches(msg, m.keys.ToggleAll):
		m.applyTable(table.AllToggled{})
	case key.Matches(msg, m.keys.PrevPage):
		m.turnPage(pagination.ActionPrevious)
	case key.Matches(msg, m.keys.NextPage):
		m.turnPage(pagination.ActionNext)
	}
	return m
}

func (m *Model) applyTable(ev table.Event) {
	var fx table.Effects
	m.gridState, fx = table.Update(m.grid, m.gridState, ev)
	if fx.Changed {
		m.status = m.catalog.TData(i18n.ShowcaseRowsSelected, map[string]any{"Count": len(fx.RowSelect)})
	}
}

func (m *Model) turnPage(kind pagination.ActionKind) {
	page, ok := pagination.Navigate(m.pager(), pagination.Action{Kind: kind})
	if !ok {
		return
	}
	m.page = page
	m.row = min(m.row, max(len(m.pageRows())-1, 0))
	m.status = m.catalog.TData(i18n.PaginationPage, map[string]any{"Page": page})
}

func (m Model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := selectbox.Visible(m.sel, m.selState)
	switch {
	case key.Matches(msg, m.keys.Search):
		if !m.sel.Searchable || m.sel.Disabled {
			break
		}
		if !m.selState.Open {
			m.dispatchSelect(selectbox.TriggerClicked{})
		}
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Close):
		m.dispatchSelect(selectbox.OutsidePointerDown{})
	case key.Matches(msg, m.keys.Up):
		if m.selState.Open && m.option > 0 {
			m.option--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selState.Open && m.option < len(visible)-1 {
			m.option++
		}
	case key.Matches(msg, m.keys.Pick), key.Matches(msg, m.keys.Toggle):
		if m.selState.Open && m.option < len(visible) {
			m.dispatchSelect(selectbox.OptionPicked{Value: visible[m.option].Value})
			break
		}
		m.dispatchSelect(selectbox.TriggerClicked{})
	}
	return m, nil
}

// updateSearch routes keys to the search input while it has focus.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopSearch()
		return m, nil
	case tea.KeyEnter:
		visible := selectbox.Visible(m.sel, m.selState)
		if m.option < len(visible) {
			m.dispatchSelect(selectbox.OptionPicked{Value: visible[m.option].Value})
		}
		m.stopSearch()
		return m, nil
	case tea.KeyUp:
		if m.option > 0 {
			m.option--
		}
		return m, nil
	case tea.KeyDown:
		if m.option < len(selectbox.Visible(m.sel, m.selState))-1 {
			m.option++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.dispatchSelect(selectbox.QueryChanged{Query: m.search.Value()})
	m.option = 0
	return m, cmd
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
}

// dispatchSelect runs ev through the select reducer and applies the value
// change, the way a parent owning the value would.
func (m *Model) dispatchSelect(ev selectbox.Event) {
	wasOpen := m.selState.Open
	var fx selectbox.Effects
	m.selState, fx = selectbox.Update(m.sel, m.selState, ev)
	if fx.Changed {
		m.sel.Value = fx.Value
		m.status = m.selectionStatus()
	}
	if wasOpen && !m.selState.Open {
		m.option = 0
		m.search.Reset()
		m.stopSearch()
	}
}

func (m Model) selectionStatus() string {
	selected := selectbox.Selected(m.sel)
	if len(selected) == 0 {
		return m.catalog.T(i18n.ShowcaseNothing)
	}
	labels := make([]string, len(selected))
	for i, o := range selected {
		labels[i] = o.Label
	}
	return m.catalog.TData(i18n.ShowcaseSelected, map[string]any{"Value": strings.Join(labels, ", ")})
}

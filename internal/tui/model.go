// Package tui is a terminal playground for the table, pagination and select
// reducers. It drives the same Update functions the web showcase uses, from
// the keyboard.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mayura-ui/mayura/internal/fixtures"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets/pagination"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

type focus int

const (
	focusTable focus = iota
	focusSelect
)

func (f focus) String() string {
	if f == focusSelect {
		return "select"
	}
	return "table"
}

// Options tunes the playground.
type Options struct {
	Catalog *i18n.Catalog
	// PageSize is used when the fixtures do not set one.
	PageSize       int
	MaxPageNumbers int
}

// Model is the Bubbletea model of the playground.
type Model struct {
	catalog *i18n.Catalog
	keys    keyMap
	help    help.Model
	focus   focus

	grid      table.Props
	gridState table.State
	page      int
	pageSize  int
	maxPages  int
	row       int // cursor within the current page
	col       int // column the sort key acts on

	sel       selectbox.Props
	selState  selectbox.State
	option    int // cursor within the visible options
	search    textinput.Model
	searching bool

	status   string
	quitting bool
}

// New builds a playground over fx. A nil fx uses the built-in demo data.
func New(fx *fixtures.Fixtures, opts Options) Model {
	if fx == nil {
		fx = fixtures.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = i18n.Default()
	}
	if opts.MaxPageNumbers <= 0 {
		opts.MaxPageNumbers = pagination.DefaultMaxPageNumbers
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = opts.Catalog.T(i18n.SelectSearch)

	return Model{
		catalog:  opts.Catalog,
		keys:     newKeyMap(),
		help:     help.New(),
		grid:     fx.TableProps(),
		page:     1,
		pageSize: fx.RowsPerPage(opts.PageSize),
		maxPages: opts.MaxPageNumbers,
		sel:      fx.SelectProps(),
		search:   search,
	}
}

// Init starts the program. The playground needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the current table page.
func (m Model) Page() int {
	return m.page
}

// TotalPages returns the number of table pages.
func (m Model) TotalPages() int {
	return pagination.TotalPages(len(m.grid.Data), m.pageSize)
}

// Sort returns the table's sort state.
func (m Model) Sort() table.SortState {
	return m.gridState.Sort
}

// SelectedRows returns the selected table rows in selection order.
func (m Model) SelectedRows() []table.Row {
	return table.SelectedRows(m.grid, m.gridState)
}

// SelectValue returns the select's value.
func (m Model) SelectValue() []string {
	return m.sel.Value
}

// SelectOpen reports whether the select popup is open.
func (m Model) SelectOpen() bool {
	return m.selState.Open
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) pager() pagination.Props {
	p := pagination.DefaultProps()
	p.CurrentPage = m.page
	p.TotalPages = m.TotalPages()
	p.MaxPageNumbers = m.maxPages
	return p
}

// pageRows returns the rows shown on the current page in display order.
func (m Model) pageRows() []table.ViewRow {
	view := table.View(m.grid, m.gridState)
	lo, hi := pagination.Bounds(m.page, m.pageSize, len(view))
	return view[lo:hi]
}

// Package table implements a sortable, optionally row-selectable data grid.
//
// Sorting is single-column and tri-state. Selection is tracked by row key,
// not by display position, so a selected row stays selected when the grid
// is re-sorted. Pagination is the caller's job: slice Data before passing
// it in.
package table

import (
	"slices"
	"strconv"

	"github.com/a-h/templ"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mayura-ui/mayura/internal/widgets"
)

// Visual variants.
const (
	VariantDefault  widgets.Variant = "default"
	VariantStriped  widgets.Variant = "striped"
	VariantBordered widgets.Variant = "bordered"
	VariantMinimal  widgets.Variant = "minimal"
)

// Row is one record, keyed by column key.
type Row map[string]any

// Column describes one column. Render, when set, replaces the raw cell value.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	Render   func(value any, row Row, index int) templ.Component
	Width    string
}

// Heading returns the column label, or the key in title case when the label
// is empty.
func (c Column) Heading() string {
	if c.Label != "" {
		return c.Label
	}
	return cases.Title(language.English).String(c.Key)
}

// Props configures the grid.
type Props struct {
	Columns    []Column
	Data       []Row
	Selectable bool
	// RowKey identifies a row across re-sorts. pos is the row's position in
	// Data. When nil the position itself is the key.
	RowKey       func(row Row, pos int) string
	Variant      widgets.Variant
	Hoverable    bool
	Compact      bool
	StickyHeader bool
}

// DefaultProps returns hoverable props with the default variant.
func DefaultProps() Props {
	return Props{Variant: VariantDefault, Hoverable: true}
}

func (p Props) key(pos int) string {
	if p.RowKey != nil {
		return p.RowKey(p.Data[pos], pos)
	}
	return strconv.Itoa(pos)
}

func (p Props) column(key string) (Column, bool) {
	for _, c := range p.Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// State is the local state of the grid. Selected holds row keys in the
// order they were selected.
type State struct {
	Sort     SortState
	Selected []string
}

// ViewRow is a row as displayed.
type ViewRow struct {
	Row      Row
	Key      string
	Index    int // display position
	Pos      int // position in Props.Data
	Selected bool
}

// View returns the rows in display order.
func View(p Props, s State) []ViewRow {
	out := make([]ViewRow, 0, len(p.Data))
	for i, pos := range order(p.Data, s.Sort) {
		k := p.key(pos)
		out = append(out, ViewRow{
			Row:      p.Data[pos],
			Key:      k,
			Index:    i,
			Pos:      pos,
			Selected: slices.Contains(s.Selected, k),
		})
	}
	return out
}

// SelectedRows returns the selected rows in selection order. Keys that no
// longer match a row are skipped.
func SelectedRows(p Props, s State) []Row {
	byKey := make(map[string]Row, len(p.Data))
	for pos, r := range p.Data {
		k := p.key(pos)
		if _, dup := byKey[k]; !dup {
			byKey[k] = r
		}
	}
	out := make([]Row, 0, len(s.Selected))
	for _, k := range s.Selected {
		if r, ok := byKey[k]; ok {
			out = append(out, r)
		}
	}
	return out
}

// AllSelected reports whether every row in Data is selected. An empty grid
// counts as fully selected.
func AllSelected(p Props, s State) bool {
	return len(SelectedRows(p, s)) == len(p.Data)
}

// Event is an input to Update.
type Event interface {
	tableEvent()
}

type (
	// HeaderClicked reports a click on the header of column Key.
	HeaderClicked struct{ Key string }
	// RowToggled reports a click on the checkbox of the row at display
	// position Index.
	RowToggled struct{ Index int }
	// AllToggled reports a click on the select-all checkbox. It selects or
	// clears the rows in Data only; keys of rows outside Data are kept.
	AllToggled struct{}
)

func (HeaderClicked) tableEvent() {}
func (RowToggled) tableEvent()    {}
func (AllToggled) tableEvent()    {}

// Effects reports a selection change.
type Effects struct {
	Changed   bool
	RowSelect []Row
}

// Update applies ev to the grid.
func Update(p Props, s State, ev Event) (State, Effects) {
	switch ev := ev.(type) {
	case HeaderClicked:
		col, ok := p.column(ev.Key)
		if !ok || !col.Sortable {
			return s, Effects{}
		}
		s.Sort = CycleSort(s.Sort, ev.Key)
		return s, Effects{}

	case RowToggled:
		if !p.Selectable || ev.Index < 0 || ev.Index >= len(p.Data) {
			return s, Effects{}
		}
		k := p.key(order(p.Data, s.Sort)[ev.Index])
		if slices.Contains(s.Selected, k) {
			s.Selected = slices.DeleteFunc(slices.Clone(s.Selected), func(x string) bool { return x == k })
		} else {
			s.Selected = append(slices.Clone(s.Selected), k)
		}
		return s, Effects{Changed: true, RowSelect: SelectedRows(p, s)}

	case AllToggled:
		if !p.Selectable {
			return s, Effects{}
		}
		view := View(p, s)
		keys := make([]string, len(view))
		for i, v := range view {
			keys[i] = v.Key
		}
		if AllSelected(p, s) {
			s.Selected = slices.DeleteFunc(slices.Clone(s.Selected), func(k string) bool {
				return slices.Contains(keys, k)
			})
		} else {
			sel := slices.Clone(s.Selected)
			for _, k := range keys {
				if !slices.Contains(sel, k) {
					sel = append(sel, k)
				}
			}
			s.Selected = sel
		}
		return s, Effects{Changed: true, RowSelect: SelectedRows(p, s)}
	}
	return s, Effects{}
}

package fixtures

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/mayura-ui/mayura/internal/widgets"
	"github.com/mayura-ui/mayura/internal/widgets/dropdown"
	"github.com/mayura-ui/mayura/internal/widgets/modal"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
	"github.com/mayura-ui/mayura/internal/widgets/tabs"
	"github.com/mayura-ui/mayura/internal/widgets/tooltip"
)

// SelectProps builds select props from the fixture.
func (f *Fixtures) SelectProps() selectbox.Props {
	opts := make([]selectbox.Option, len(f.Select.Options))
	for i, o := range f.Select.Options {
		opts[i] = selectbox.Option{Label: o.Label, Value: o.Value, Disabled: o.Disabled}
	}
	return selectbox.Props{
		Options:     opts,
		Value:       append([]string(nil), f.Select.Value...),
		Placeholder: f.Select.Placeholder,
		Multiple:    f.Select.Multiple,
		Searchable:  f.Select.Searchable,
		Variant:     selectbox.VariantDefault,
		Size:        widgets.SizeMedium,
	}
}

// DropdownProps builds menu props. OnSelect callbacks are left to the
// caller.
func (f *Fixtures) DropdownProps() dropdown.Props {
	p := dropdown.DefaultProps()
	p.Trigger = widgets.Text(f.Dropdown.Trigger)
	p.Items = menuItems(f.Dropdown.Items)
	if f.Dropdown.Position != "" {
		p.Position = dropdown.Position(f.Dropdown.Position)
	}
	if f.Dropdown.CloseOnSelect != nil {
		p.CloseOnSelect = *f.Dropdown.CloseOnSelect
	}
	return p
}

func menuItems(in []MenuFixture) []dropdown.MenuItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]dropdown.MenuItem, len(in))
	for i, m := range in {
		out[i] = dropdown.MenuItem{
			Label:    m.Label,
			Value:    m.Value,
			Disabled: m.Disabled,
			Divider:  m.Divider,
			Danger:   m.Danger,
			Children: menuItems(m.Children),
		}
	}
	return out
}

// TableProps builds grid props over all rows.
func (f *Fixtures) TableProps() table.Props {
	p := table.DefaultProps()
	p.Selectable = f.Table.Selectable
	p.Columns = make([]table.Column, len(f.Table.Columns))
	for i, c := range f.Table.Columns {
		p.Columns[i] = table.Column{Key: c.Key, Label: c.Label, Sortable: c.Sortable, Width: c.Width}
	}
	p.Data = make([]table.Row, len(f.Table.Rows))
	for i, r := range f.Table.Rows {
		p.Data[i] = table.Row(r)
	}
	if key := f.Table.RowKey; key != "" {
		p.RowKey = func(row table.Row, _ int) string { return fmt.Sprint(row[key]) }
	} else {
		p.RowKey = positionKey(p.Data)
	}
	return p
}

// positionKey keys each row by its index in data, so the key does not change
// when the grid is handed a sorted or paged slice of the same rows.
func positionKey(data []table.Row) func(table.Row, int) string {
	at := make(map[uintptr]int, len(data))
	for i, r := range data {
		if r != nil {
			at[reflect.ValueOf(r).Pointer()] = i
		}
	}
	return func(row table.Row, pos int) string {
		if i, ok := at[reflect.ValueOf(row).Pointer()]; ok && row != nil {
			return strconv.Itoa(i)
		}
		return strconv.Itoa(pos)
	}
}

// TabsProps builds tab props with text panels.
func (f *Fixtures) TabsProps() tabs.Props {
	items := make([]tabs.Item, len(f.Tabs))
	for i, t := range f.Tabs {
		items[i] = tabs.Item{Label: t.Label, Value: t.Value, Disabled: t.Disabled, Content: widgets.Text(t.Content)}
	}
	return tabs.Props{Items: items, Variant: tabs.VariantLine}
}

// ModalProps builds dialog props.
func (f *Fixtures) ModalProps() modal.Props {
	p := modal.DefaultProps()
	p.Title = f.Modal.Title
	p.Content = widgets.Text(f.Modal.Body)
	if f.Modal.Size != "" {
		p.Size = widgets.Size(f.Modal.Size)
	}
	return p
}

// TooltipProps builds tooltip props. A zero delay takes the default.
func (f *Fixtures) TooltipProps() tooltip.Props {
	p := tooltip.DefaultProps()
	p.Trigger = widgets.Text(f.Tooltip.Trigger)
	p.Content = widgets.Text(f.Tooltip.Content)
	if f.Tooltip.Position != "" {
		p.Position = tooltip.Position(f.Tooltip.Position)
	}
	if f.Tooltip.DelayMS > 0 {
		p.Delay = time.Duration(f.Tooltip.DelayMS) * time.Millisecond
	}
	return p
}

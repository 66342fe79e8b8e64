// Package dropdown implements a trigger-activated popup menu with one level
// of hover-revealed submenus.
//
// The menu is closed by a press outside its root, by Escape, or by
// activating a leaf item when Props.CloseOnSelect is set. Items are addressed
// by Path, the chain of item values from the top level down.
package dropdown

import (
	"maps"
	"strings"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/dom"
	"github.com/mayura-ui/mayura/internal/widgets"
)

// Visual variants.
const (
	VariantDefault  widgets.Variant = "default"
	VariantGradient widgets.Variant = "gradient"
	VariantBordered widgets.Variant = "bordered"
)

// Position anchors the popup to a corner of the trigger.
type Position string

const (
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
)

// MenuItem is a node of the menu tree. Dividers carry no value and are never
// activatable.
type MenuItem struct {
	Label    string
	Value    string
	Icon     templ.Component
	Disabled bool
	Divider  bool
	Danger   bool
	OnSelect func()
	Children []MenuItem
}

// HasChildren reports whether the item opens a submenu.
func (m MenuItem) HasChildren() bool { return len(m.Children) > 0 }

// Props configures the menu.
type Props struct {
	Trigger       templ.Component
	Items         []MenuItem
	Position      Position
	CloseOnSelect bool
	Variant       widgets.Variant
}

// DefaultProps returns props that anchor bottom-left and close on select.
func DefaultProps() Props {
	return Props{
		Position:      BottomLeft,
		CloseOnSelect: true,
		Variant:       VariantDefault,
	}
}

// Path addresses an item by the values leading to it.
type Path []string

const pathSep = "/"

// String joins the path for use in markup.
func (p Path) String() string { return strings.Join(p, pathSep) }

// ParsePath splits a path produced by Path.String.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, pathSep)
}

// Lookup resolves a path in items. Dividers never match.
func Lookup(items []MenuItem, path Path) (MenuItem, bool) {
	if len(path) == 0 {
		return MenuItem{}, false
	}
	for _, it := range items {
		if it.Divider || it.Value != path[0] {
			continue
		}
		if len(path) == 1 {
			return it, true
		}
		return Lookup(it.Children, path[1:])
	}
	return MenuItem{}, false
}

// State is the local state of the menu. Hovered holds the paths of items
// under the pointer; it is replaced, never mutated, by Update.
type State struct {
	Open    bool
	Hovered map[string]bool
}

// SubmenuOpen reports whether the submenu under path is revealed.
func (s State) SubmenuOpen(path Path) bool {
	return s.Open && s.Hovered[path.String()]
}

// Event is an input to Update.
type Event interface {
	dropdownEvent()
}

type (
	// TriggerClicked toggles the menu.
	TriggerClicked struct{}
	// OutsidePointerDown reports a press outside the menu root.
	OutsidePointerDown struct{}
	// KeyPressed reports a key press anywhere in the document.
	KeyPressed struct{ Key string }
	// ItemActivated reports a click on the item at Path.
	ItemActivated struct{ Path Path }
	// PointerEntered reports the pointer entering the item at Path.
	PointerEntered struct{ Path Path }
	// PointerLeft reports the pointer leaving the item at Path.
	PointerLeft struct{ Path Path }
)

func (TriggerClicked) dropdownEvent()     {}
func (OutsidePointerDown) dropdownEvent() {}
func (KeyPressed) dropdownEvent()         {}
func (ItemActivated) dropdownEvent()      {}
func (PointerEntered) dropdownEvent()     {}
func (PointerLeft) dropdownEvent()        {}

// Effects reports the item whose callback must run, if any.
type Effects struct {
	Selected *MenuItem
}

// Update applies ev to the menu.
func Update(p Props, s State, ev Event) (State, Effects) {
	switch ev := ev.(type) {
	case TriggerClicked:
		if s.Open {
			return State{}, Effects{}
		}
		return State{Open: true}, Effects{}

	case OutsidePointerDown:
		return State{}, Effects{}

	case KeyPressed:
		if s.Open && ev.Key == dom.EscapeKey {
			return State{}, Effects{}
		}
		return s, Effects{}

	case ItemActivated:
		if !s.Open {
			return s, Effects{}
		}
		item, ok := Lookup(p.Items, ev.Path)
		if !ok || item.Disabled {
			return s, Effects{}
		}
		if p.CloseOnSelect && !item.HasChildren() {
			s = State{}
		}
		return s, Effects{Selected: &item}

	case PointerEntered:
		item, ok := Lookup(p.Items, ev.Path)
		if !s.Open || !ok || !item.HasChildren() || item.Disabled {
			return s, Effects{}
		}
		hovered := maps.Clone(s.Hovered)
		if hovered == nil {
			hovered = make(map[string]bool)
		}
		hovered[ev.Path.String()] = true
		return State{Open: true, Hovered: hovered}, Effects{}

	case PointerLeft:
		key := ev.Path.String()
		if !s.Hovered[key] {
			return s, Effects{}
		}
		hovered := maps.Clone(s.Hovered)
		delete(hovered, key)
		return State{Open: s.Open, Hovered: hovered}, Effects{}
	}
	return s, Effects{}
}

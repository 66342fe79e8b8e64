package dropdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/dom"
	"github.com/mayura-ui/mayura/internal/testutils"
	"github.com/mayura-ui/mayura/internal/widgets"
)

func menu(calls *[]string) []MenuItem {
	record := func(v string) func() {
		return func() { *calls = append(*calls, v) }
	}
	return []MenuItem{
		{Label: "Profile", Value: "profile", OnSelect: record("profile")},
		{Label: "Share", Value: "share", OnSelect: record("share"), Children: []MenuItem{
			{Label: "Email", Value: "email", OnSelect: record("email")},
			{Label: "Fax", Value: "fax", Disabled: true, OnSelect: record("fax")},
		}},
		{Divider: true},
		{Label: "Archive", Value: "archive", Disabled: true, OnSelect: record("archive")},
		{Label: "Delete", Value: "delete", Danger: true, OnSelect: record("delete")},
	}
}

func props(calls *[]string) Props {
	p := DefaultProps()
	p.Trigger = widgets.Text("Options")
	p.Items = menu(calls)
	return p
}

func TestPath(t *testing.T) {
	assert.Equal(t, "share/email", Path{"share", "email"}.String())
	assert.Equal(t, Path{"share", "email"}, ParsePath("share/email"))
	assert.Nil(t, ParsePath(""))

	var calls []string
	items := menu(&calls)
	it, ok := Lookup(items, Path{"share", "email"})
	require.True(t, ok)
	assert.Equal(t, "Email", it.Label)

	_, ok = Lookup(items, Path{""})
	assert.False(t, ok, "dividers are never addressable")
	_, ok = Lookup(items, Path{"share", "nope"})
	assert.False(t, ok)
}

func TestStateMachine(t *testing.T) {
	var calls []string
	p := props(&calls)
	open := State{Open: true}

	tests := []struct {
		name     string
		props    Props
		state    State
		event    Event
		wantOpen bool
		selected string
	}{
		{"trigger opens", p, State{}, TriggerClicked{}, true, ""},
		{"trigger closes", p, open, TriggerClicked{}, false, ""},
		{"outside closes", p, open, OutsidePointerDown{}, false, ""},
		{"escape closes", p, open, KeyPressed{Key: dom.EscapeKey}, false, ""},
		{"other key ignored", p, open, KeyPressed{Key: "Enter"}, true, ""},
		{"leaf closes", p, open, ItemActivated{Path: Path{"profile"}}, false, "profile"},
		{"parent stays open", p, open, ItemActivated{Path: Path{"share"}}, true, "share"},
		{"nested leaf closes", p, open, ItemActivated{Path: Path{"share", "email"}}, false, "email"},
		{"disabled inert", p, open, ItemActivated{Path: Path{"archive"}}, true, ""},
		{"disabled child inert", p, open, ItemActivated{Path: Path{"share", "fax"}}, true, ""},
		{"unknown inert", p, open, ItemActivated{Path: Path{"ghost"}}, true, ""},
		{"closed menu ignores items", p, State{}, ItemActivated{Path: Path{"profile"}}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Update(tt.props, tt.state, tt.event)
			assert.Equal(t, tt.wantOpen, s.Open)
			if tt.selected == "" {
				assert.Nil(t, eff.Selected)
				return
			}
			require.NotNil(t, eff.Selected)
			assert.Equal(t, tt.selected, eff.Selected.Value)
		})
	}
}

func TestCloseOnSelectDisabled(t *testing.T) {
	var calls []string
	p := props(&calls)
	p.CloseOnSelect = false

	s, eff := Update(p, State{Open: true}, ItemActivated{Path: Path{"profile"}})
	assert.True(t, s.Open)
	require.NotNil(t, eff.Selected)
}

func TestHover(t *testing.T) {
	var calls []string
	p := props(&calls)
	share := Path{"share"}

	s, _ := Update(p, State{Open: true}, PointerEntered{Path: share})
	assert.True(t, s.SubmenuOpen(share))

	before := s
	s, _ = Update(p, s, PointerEntered{Path: Path{"profile"}})
	assert.False(t, s.SubmenuOpen(Path{"profile"}), "leaves have no submenu")
	assert.Equal(t, before, s)

	left, _ := Update(p, s, PointerLeft{Path: share})
	assert.False(t, left.SubmenuOpen(share))
	assert.True(t, s.SubmenuOpen(share), "update does not mutate the previous state")

	closed, _ := Update(p, s, KeyPressed{Key: dom.EscapeKey})
	reopened, _ := Update(p, closed, TriggerClicked{})
	assert.False(t, reopened.SubmenuOpen(share), "hover does not persist across close")
}

func TestControllerOutsideDismissal(t *testing.T) {
	var calls []string
	doc := dom.NewDocument()
	c := NewController(doc, nil, props(&calls))
	inside := c.Root().Child()
	outside := doc.Body.Child()

	assert.Zero(t, doc.ListenerCount())
	c.Dispatch(TriggerClicked{})
	require.True(t, c.State().Open)
	assert.Equal(t, 2, doc.ListenerCount())

	doc.PointerDown(inside)
	assert.True(t, c.State().Open)

	doc.PointerDown(outside)
	assert.False(t, c.State().Open)
	assert.Zero(t, doc.ListenerCount())
}

func TestControllerEscapeAndSelect(t *testing.T) {
	var calls []string
	doc := dom.NewDocument()
	c := NewController(doc, nil, props(&calls))

	c.Dispatch(TriggerClicked{})
	doc.KeyDown(dom.EscapeKey)
	assert.False(t, c.State().Open)
	assert.Zero(t, doc.ListenerCount())

	c.Dispatch(TriggerClicked{})
	c.Dispatch(ItemActivated{Path: Path{"archive"}})
	c.Dispatch(ItemActivated{Path: Path{"share"}})
	c.Dispatch(ItemActivated{Path: Path{"delete"}})
	assert.Equal(t, []string{"share", "delete"}, calls)
	assert.Zero(t, doc.ListenerCount())

	c.Dispatch(TriggerClicked{})
	c.Close()
	assert.Zero(t, doc.ListenerCount())
}

func TestManyMenusDoNotLeak(t *testing.T) {
	var calls []string
	doc := dom.NewDocument()
	var menus []*Controller
	for range 10 {
		c := NewController(doc, nil, props(&calls))
		c.Dispatch(TriggerClicked{})
		menus = append(menus, c)
	}
	assert.Equal(t, 20, doc.ListenerCount())

	doc.PointerDown(doc.Body)
	for _, c := range menus {
		assert.False(t, c.State().Open)
	}
	assert.Zero(t, doc.ListenerCount())
}

func TestRender(t *testing.T) {
	var calls []string
	p := props(&calls)

	closed := testutils.Render(t, Render(p, State{}))
	assert.Empty(t, testutils.Query(t, closed, testutils.HasAttr("role", "menu")))
	assert.Contains(t, closed, "Options")

	s, _ := Update(p, State{Open: true}, PointerEntered{Path: Path{"share"}})
	markup := testutils.Render(t, Render(p, s))

	menus := testutils.Query(t, markup, testutils.HasAttr("role", "menu"))
	assert.Len(t, menus, 2)

	items := testutils.Query(t, markup, testutils.HasAttr("role", "menuitem"))
	assert.Equal(t, []string{"Profile", "Share›", "Email", "Fax", "Archive", "Delete"}, testutils.Texts(items))
	assert.Len(t, testutils.Query(t, markup, testutils.HasAttr("role", "separator")), 1)

	disabled := testutils.Query(t, markup, testutils.HasAttr("role", "menuitem"), testutils.HasAttr("disabled", ""))
	assert.Equal(t, []string{"Fax", "Archive"}, testutils.Texts(disabled))

	email := testutils.Query(t, markup, testutils.HasAttr("data-path", "share/email"))
	assert.Len(t, email, 1)
}

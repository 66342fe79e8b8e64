package selectbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/dom"
	"github.com/mayura-ui/mayura/internal/testutils"
)

func fruit() []Option {
	return []Option{
		{Label: "Apple", Value: "apple"},
		{Label: "Banana", Value: "banana"},
		{Label: "Cherry", Value: "cherry"},
		{Label: "Durian", Value: "durian", Disabled: true},
	}
}

func labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestFilter(t *testing.T) {
	opts := fruit()[:3]

	assert.Equal(t, []string{"Banana"}, labels(Filter(opts, "an")))
	assert.Equal(t, []string{"Banana"}, labels(Filter(opts, "AN")))
	assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, labels(Filter(opts, "")))
	assert.Empty(t, Filter(opts, "zz"))
}

func TestSearchResetsOnClose(t *testing.T) {
	p := Props{Options: fruit()[:3], Searchable: true}

	s, _ := Update(p, State{}, TriggerClicked{})
	s, _ = Update(p, s, QueryChanged{Query: "an"})
	assert.Equal(t, []string{"Banana"}, labels(Visible(p, s)))

	t.Run("outside press", func(t *testing.T) {
		closed, _ := Update(p, s, OutsidePointerDown{})
		reopened, _ := Update(p, closed, TriggerClicked{})
		assert.True(t, reopened.Open)
		assert.Empty(t, reopened.Query)
		assert.Equal(t, []string{"Apple", "Banana", "Cherry"}, labels(Visible(p, reopened)))
	})

	t.Run("trigger", func(t *testing.T) {
		closed, _ := Update(p, s, TriggerClicked{})
		assert.False(t, closed.Open)
		assert.Empty(t, closed.Query)
	})

	t.Run("single pick", func(t *testing.T) {
		closed, eff := Update(p, s, OptionPicked{Value: "banana"})
		assert.Equal(t, State{}, closed)
		assert.Equal(t, Effects{Changed: true, Value: []string{"banana"}}, eff)
	})
}

func TestQueryIgnoredWhenNotSearchable(t *testing.T) {
	p := Props{Options: fruit()}
	s, _ := Update(p, State{}, TriggerClicked{})
	s, _ = Update(p, s, QueryChanged{Query: "an"})
	assert.Empty(t, s.Query)
	assert.Len(t, Visible(p, s), 4)
}

func TestMultiToggleOrdering(t *testing.T) {
	p := Props{Options: fruit(), Multiple: true, Value: []string{"apple", "banana", "cherry"}}
	s := State{Open: true}

	s, eff := Update(p, s, OptionPicked{Value: "apple"})
	require.True(t, eff.Changed)
	assert.Equal(t, []string{"banana", "cherry"}, eff.Value)
	assert.True(t, s.Open)

	p.Value = eff.Value
	s, eff = Update(p, s, OptionPicked{Value: "apple"})
	require.True(t, eff.Changed)
	assert.ElementsMatch(t, []string{"apple", "banana", "cherry"}, eff.Value)
	assert.Equal(t, []string{"banana", "cherry", "apple"}, eff.Value, "re-added value moves to the end")
	assert.True(t, s.Open)
}

func TestToggleDoesNotMutate(t *testing.T) {
	in := []string{"a", "b"}
	assert.Equal(t, []string{"b"}, Toggle(in, "a"))
	assert.Equal(t, []string{"a", "b", "c"}, Toggle(in, "c"))
	assert.Equal(t, []string{"a", "b"}, in)
}

func TestInertPicks(t *testing.T) {
	p := Props{Options: fruit(), Multiple: true}

	tests := []struct {
		name  string
		props Props
		state State
		event Event
	}{
		{"disabled option", p, State{Open: true}, OptionPicked{Value: "durian"}},
		{"unknown option", p, State{Open: true}, OptionPicked{Value: "kiwi"}},
		{"closed popup", p, State{}, OptionPicked{Value: "apple"}},
		{"chip not selected", p, State{}, ChipRemoved{Value: "apple"}},
		{"chip in single mode", Props{Options: fruit(), Value: []string{"apple"}}, State{}, ChipRemoved{Value: "apple"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, eff := Update(tt.props, tt.state, tt.event)
			assert.Equal(t, tt.state, s)
			assert.False(t, eff.Changed)
		})
	}
}

func TestDisabledControl(t *testing.T) {
	p := Props{Options: fruit(), Disabled: true, Multiple: true, Value: []string{"apple"}}

	s, _ := Update(p, State{}, TriggerClicked{})
	assert.False(t, s.Open)

	_, eff := Update(p, State{}, ChipRemoved{Value: "apple"})
	assert.False(t, eff.Changed)
}

func TestChipRemoveKeepsPopupState(t *testing.T) {
	p := Props{Options: fruit(), Multiple: true, Value: []string{"apple", "cherry"}}

	s, eff := Update(p, State{}, ChipRemoved{Value: "apple"})
	assert.False(t, s.Open)
	assert.Equal(t, Effects{Changed: true, Value: []string{"cherry"}}, eff)
}

func TestSelectedSkipsMissing(t *testing.T) {
	p := Props{Options: fruit(), Multiple: true, Value: []string{"cherry", "ghost", "apple"}}
	assert.Equal(t, []string{"Cherry", "Apple"}, labels(Selected(p)))

	single := Props{Options: fruit(), Value: []string{"ghost"}}
	assert.Empty(t, Display(single))
}

func TestControllerSubscriptions(t *testing.T) {
	doc := dom.NewDocument()
	var got [][]string
	c := NewController(doc, nil, Props{Options: fruit()}, func(v []string) { got = append(got, v) })

	c.Dispatch(TriggerClicked{})
	assert.True(t, c.State().Open)
	assert.Equal(t, 1, doc.ListenerCount())

	doc.PointerDown(c.Root().Child())
	assert.True(t, c.State().Open, "press inside keeps it open")

	doc.PointerDown(doc.Body)
	assert.False(t, c.State().Open)
	assert.Zero(t, doc.ListenerCount())

	c.Dispatch(TriggerClicked{})
	c.Dispatch(OptionPicked{Value: "cherry"})
	assert.Equal(t, [][]string{{"cherry"}}, got)
	assert.Zero(t, doc.ListenerCount())

	c.Dispatch(TriggerClicked{})
	c.Close()
	assert.Zero(t, doc.ListenerCount())
	assert.False(t, c.State().Open)
}

func TestRenderClosed(t *testing.T) {
	markup := testutils.Render(t, Render(Props{Options: fruit(), Placeholder: "Pick fruit"}, State{}))

	trigger := testutils.Query(t, markup, testutils.HasAttr("data-event", EventToggle))
	require.Len(t, trigger, 1)
	expanded, _ := testutils.Attr(trigger[0], "aria-expanded")
	assert.Equal(t, "false", expanded)
	assert.Equal(t, "Pick fruit▾", testutils.Text(trigger[0]))
	assert.Empty(t, testutils.Query(t, markup, testutils.HasAttr("role", "listbox")))
}

func TestRenderOpenMultiple(t *testing.T) {
	p := Props{Options: fruit(), Multiple: true, Searchable: true, Value: []string{"banana", "ghost"}}
	markup := testutils.Render(t, Render(p, State{Open: true, Query: "a"}))

	chips := testutils.Query(t, markup, testutils.HasAttr("data-event", EventRemove))
	require.Len(t, chips, 1)
	v, _ := testutils.Attr(chips[0], "data-value")
	assert.Equal(t, "banana", v)
	label, _ := testutils.Attr(chips[0], "aria-label")
	assert.Equal(t, "Remove Banana", label)

	input := testutils.Query(t, markup, testutils.Tag("input"))
	require.Len(t, input, 1)
	q, _ := testutils.Attr(input[0], "value")
	assert.Equal(t, "a", q)

	options := testutils.Query(t, markup, testutils.HasAttr("role", "option"))
	assert.Equal(t, []string{"Apple", "Banana✓", "Durian"}, testutils.Texts(options))

	picks := testutils.Query(t, markup, testutils.HasAttr("data-event", EventPick))
	assert.Len(t, picks, 2, "disabled options carry no event")
}

func TestRenderNoOptions(t *testing.T) {
	p := Props{Options: fruit(), Searchable: true}
	markup := testutils.Render(t, Render(p, State{Open: true, Query: "zzz"}))

	assert.Empty(t, testutils.Query(t, markup, testutils.HasAttr("role", "option")))
	empty := testutils.Query(t, markup, testutils.Tag("li"))
	require.Len(t, empty, 1)
	assert.Equal(t, "No options found", testutils.Text(empty[0]))
}

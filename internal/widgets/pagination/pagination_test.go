package pagination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/testutils"
)

func render(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		max     int
		want    []string
	}{
		{"start of twenty", 1, 20, 5, []string{"1", "2", "3", "4", "...", "20"}},
		{"middle of twenty", 10, 20, 5, []string{"1", "...", "9", "10", "11", "...", "20"}},
		{"end of twenty", 20, 20, 5, []string{"1", "...", "17", "18", "19", "20"}},
		{"last start page", 3, 20, 5, []string{"1", "2", "3", "4", "...", "20"}},
		{"first middle page", 4, 20, 5, []string{"1", "...", "3", "4", "5", "...", "20"}},
		{"first end page", 18, 20, 5, []string{"1", "...", "17", "18", "19", "20"}},
		{"fits exactly", 2, 5, 5, []string{"1", "2", "3", "4", "5"}},
		{"fewer than slots", 1, 3, 5, []string{"1", "2", "3"}},
		{"no pages", 1, 0, 5, []string{}},
		{"default slots", 1, 20, 0, []string{"1", "2", "3", "4", "...", "20"}},
		{"seven slots middle", 50, 100, 7, []string{"1", "...", "48", "49", "50", "51", "52", "...", "100"}},
		{"even slots middle", 10, 20, 4, []string{"1", "...", "9", "10", "...", "20"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.total, tt.max)))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 0, TotalPages(11, 0))
}

func TestBoundsAndInfo(t *testing.T) {
	lo, hi := Bounds(2, 10, 95)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 20, hi)

	lo, hi = Bounds(10, 10, 95)
	assert.Equal(t, 90, lo)
	assert.Equal(t, 95, hi)

	lo, hi = Bounds(11, 10, 95)
	assert.Equal(t, lo, hi)

	start, end := Info(10, 10, 95)
	assert.Equal(t, 91, start)
	assert.Equal(t, 95, end)

	start, end = Info(1, 10, 0)
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestNavigate(t *testing.T) {
	p := DefaultProps()
	p.TotalPages = 10
	p.CurrentPage = 1

	tests := []struct {
		name    string
		current int
		action  Action
		page    int
		changed bool
	}{
		{"next from first", 1, Action{Kind: ActionNext}, 2, true},
		{"previous on first is a no-op", 1, Action{Kind: ActionPrevious}, 1, false},
		{"first on first is a no-op", 1, Action{Kind: ActionFirst}, 1, false},
		{"last from middle", 5, Action{Kind: ActionLast}, 10, true},
		{"next on last is a no-op", 10, Action{Kind: ActionNext}, 10, false},
		{"goto current is a no-op", 4, GoTo(4), 4, false},
		{"goto other page", 4, GoTo(7), 7, true},
		{"goto out of range", 4, GoTo(11), 4, false},
		{"goto zero", 4, GoTo(0), 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p.CurrentPage = tt.current
			page, changed := Navigate(p, tt.action)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestDisabled(t *testing.T) {
	p := DefaultProps()
	p.TotalPages = 3

	p.CurrentPage = 1
	assert.True(t, Disabled(p, ActionFirst))
	assert.True(t, Disabled(p, ActionPrevious))
	assert.False(t, Disabled(p, ActionNext))
	assert.False(t, Disabled(p, ActionLast))

	p.CurrentPage = 3
	assert.False(t, Disabled(p, ActionFirst))
	assert.True(t, Disabled(p, ActionNext))
	assert.True(t, Disabled(p, ActionLast))
	assert.False(t, Disabled(p, ActionGoTo))
}

func TestParseAction(t *testing.T) {
	for k := ActionFirst; k <= ActionGoTo; k++ {
		got, ok := ParseAction(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseAction("sideways")
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	p := DefaultProps()
	p.CurrentPage = 10
	p.TotalPages = 20

	markup := testutils.Render(t, Render(p))

	nav := testutils.Query(t, markup, testutils.Tag("nav"))
	require.Len(t, nav, 1)
	label, _ := testutils.Attr(nav[0], "aria-label")
	assert.Equal(t, "Pagination", label)

	pages := testutils.Query(t, markup, testutils.HasAttr("data-value", "goto"))
	assert.Equal(t, []string{"1", "9", "10", "11", "20"}, testutils.Texts(pages))

	current := testutils.Query(t, markup, testutils.HasAttr("aria-current", "page"))
	require.Len(t, current, 1)
	assert.Equal(t, "10", testutils.Text(current[0]))

	assert.Len(t, testutils.Query(t, markup, testutils.Tag("span")), 2)
	assert.Empty(t, testutils.Query(t, markup, testutils.HasAttr("disabled", "")))
}

func TestRenderBoundaries(t *testing.T) {
	p := DefaultProps()
	p.CurrentPage = 1
	p.TotalPages = 3
	p.ShowFirstLast = false

	markup := testutils.Render(t, Render(p))
	disabled := testutils.Query(t, markup, testutils.Tag("button"), testutils.HasAttr("disabled", ""))
	require.Len(t, disabled, 1)
	v, _ := testutils.Attr(disabled[0], "data-value")
	assert.Equal(t, "previous", v)

	assert.Empty(t, testutils.Query(t, markup, testutils.HasAttr("data-value", "first")))
}

func TestRenderLocalized(t *testing.T) {
	es, err := i18n.New("es")
	require.NoError(t, err)

	p := DefaultProps()
	p.TotalPages = 2
	markup := testutils.RenderContext(t, i18n.WithCatalog(context.Background(), es), Render(p))
	assert.Contains(t, markup, `aria-label="Página 2"`)

	info := testutils.Render(t, RenderInfo(2, 10, 15))
	assert.Contains(t, info, "Showing 11 to 15 of 15 results")
}

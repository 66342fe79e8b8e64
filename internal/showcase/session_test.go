package showcase

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/errors"
	"github.com/mayura-ui/mayura/internal/fixtures"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/testutils"
	"github.com/mayura-ui/mayura/internal/widgets/table"
)

func newSession(t *testing.T, opts Options) *Session {
	t.Helper()
	s := NewSession(nil, opts)
	t.Cleanup(s.Close)
	return s
}

func apply(t *testing.T, s *Session, ev Event) []Fragment {
	t.Helper()
	frags, err := s.Apply(context.Background(), ev)
	require.NoError(t, err)
	require.NotEmpty(t, frags)
	assert.Equal(t, ev.Widget, frags[0].Widget, "addressed widget comes first")
	return frags
}

func statusOf(t *testing.T, f Fragment) string {
	t.Helper()
	nodes := testutils.Query(t, f.HTML, testutils.HasAttr("data-status", ""))
	if len(nodes) == 0 {
		return ""
	}
	return testutils.Text(nodes[0])
}

func fragment(frags []Fragment, widget string) (Fragment, bool) {
	for _, f := range frags {
		if f.Widget == widget {
			return f, true
		}
	}
	return Fragment{}, false
}

func TestRenderAll(t *testing.T) {
	s := newSession(t, Options{})

	frags, err := s.RenderAll(context.Background())
	require.NoError(t, err)
	require.Len(t, frags, len(Widgets()))

	for i, f := range frags {
		assert.Equal(t, Widgets()[i], f.Widget)
		nodes := testutils.Query(t, f.HTML, testutils.HasAttr("data-widget", f.Widget))
		assert.Len(t, nodes, 1, f.Widget)
	}
	assert.Zero(t, s.ListenerCount(), "closed widgets hold no listeners")
	assert.NotEmpty(t, s.ID())
}

func TestRenderUnknownWidget(t *testing.T) {
	s := newSession(t, Options{})
	_, err := s.Render(context.Background(), "carousel")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSelectFlow(t *testing.T) {
	s := newSession(t, Options{})

	apply(t, s, Event{Widget: WidgetSelect, Type: "toggle"})
	assert.Equal(t, 1, s.ListenerCount())

	frags := apply(t, s, Event{Widget: WidgetSelect, Type: "query", Value: "an"})
	options := testutils.Query(t, frags[0].HTML, testutils.HasAttr("role", "option"))
	assert.Equal(t, []string{"Banana"}, testutils.Texts(options))

	frags = apply(t, s, Event{Widget: WidgetSelect, Type: "pick", Value: "banana"})
	assert.Equal(t, "Selected: Banana", statusOf(t, frags[0]))
	assert.Zero(t, s.ListenerCount(), "single select closes on pick")

	frags = apply(t, s, Event{Widget: WidgetSelect, Type: "pick", Value: "cherry"})
	assert.Equal(t, "Selected: Banana", statusOf(t, frags[0]), "pick needs an open popup")
}

func TestOutsidePressClosesOpenWidgets(t *testing.T) {
	s := newSession(t, Options{})

	apply(t, s, Event{Widget: WidgetSelect, Type: "toggle"})
	apply(t, s, Event{Widget: WidgetDropdown, Type: "toggle"})
	require.Equal(t, 3, s.ListenerCount())

	// a press inside the select only closes the menu
	frags, err := s.Apply(context.Background(), Event{Widget: WidgetDocument, Type: EventPointerDown, Target: WidgetSelect})
	require.NoError(t, err)
	_, menuChanged := fragment(frags, WidgetDropdown)
	assert.True(t, menuChanged)
	_, selectChanged := fragment(frags, WidgetSelect)
	assert.False(t, selectChanged)
	assert.Equal(t, 1, s.ListenerCount())

	_, err = s.Apply(context.Background(), Event{Widget: WidgetDocument, Type: EventPointerDown})
	require.NoError(t, err)
	assert.Zero(t, s.ListenerCount())
}

func TestDropdownFlow(t *testing.T) {
	s := newSession(t, Options{})

	apply(t, s, Event{Widget: WidgetDropdown, Type: "toggle"})

	frags := apply(t, s, Event{Widget: WidgetDropdown, Type: "activate", Path: "share"})
	assert.Equal(t, "Last action: share", statusOf(t, frags[0]))
	assert.Equal(t, 2, s.ListenerCount(), "parents keep the menu open")

	frags = apply(t, s, Event{Widget: WidgetDropdown, Type: "enter", Path: "share"})
	items := testutils.Query(t, frags[0].HTML, testutils.HasAttr("data-path", "share/email"))
	require.Len(t, items, 1, "hovering a parent shows its submenu")

	frags = apply(t, s, Event{Widget: WidgetDropdown, Type: "activate", Path: "share/email"})
	assert.Equal(t, "Last action: share/email", statusOf(t, frags[0]))
	assert.Zero(t, s.ListenerCount())

	apply(t, s, Event{Widget: WidgetDropdown, Type: "toggle"})
	frags = apply(t, s, Event{Widget: WidgetDropdown, Type: "activate", Path: "archive"})
	assert.Equal(t, "Last action: share/email", statusOf(t, frags[0]), "disabled items are inert")

	_, err := s.Apply(context.Background(), Event{Widget: WidgetDocument, Type: EventKeyDown, Key: "Escape"})
	require.NoError(t, err)
	assert.Zero(t, s.ListenerCount())
}

func rowNames(t *testing.T, f Fragment) []string {
	t.Helper()
	var names []string
	for _, row := range testutils.Query(t, f.HTML, testutils.Tag("tr"), testutils.HasAttr("data-key", "")) {
		cells := testutils.Find(row, testutils.Tag("td"))
		// selection checkbox, then name
		names = append(names, testutils.Text(cells[1]))
	}
	return names
}

func TestTableSortsAndPages(t *testing.T) {
	s := newSession(t, Options{})

	f, err := s.Render(context.Background(), WidgetTable)
	require.NoError(t, err)
	assert.Len(t, rowNames(t, f), 5)
	assert.Equal(t, "Asha Rao", rowNames(t, f)[0])

	frags := apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "next"})
	assert.Equal(t, "Farah Khan", rowNames(t, frags[0])[0])

	frags = apply(t, s, Event{Widget: WidgetTable, Type: "sort", Value: "age"})
	names := rowNames(t, frags[0])
	assert.Equal(t, "Kofi Mensah", names[0], "sorting returns to the first page")
	assert.Equal(t, "Dana Cohen", names[1])

	frags = apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "last"})
	assert.Len(t, rowNames(t, frags[0]), 2)
	assert.Equal(t, "Showing 11 to 12 of 12 results",
		testutils.Text(testutils.Query(t, frags[0].HTML, testutils.HasAttr("class", "text-sm text-gray-600"))[0]))

	frags = apply(t, s, Event{Widget: WidgetTable, Type: "sort", Value: "role"})
	assert.Len(t, rowNames(t, frags[0]), 2, "unsortable columns are ignored")
}

func TestTableSelectionSurvivesPaging(t *testing.T) {
	s := newSession(t, Options{})

	frags := apply(t, s, Event{Widget: WidgetTable, Type: "row", Index: 1})
	assert.Equal(t, "1 rows selected", statusOf(t, frags[0]))

	apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "goto", Index: 2})
	frags = apply(t, s, Event{Widget: WidgetTable, Type: "row", Index: 0})
	assert.Equal(t, "2 rows selected", statusOf(t, frags[0]))

	frags = apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "first"})
	checked := testutils.Query(t, frags[0].HTML, testutils.HasAttr("data-event", "row"), testutils.HasAttr("checked", ""))
	require.Len(t, checked, 1)
	index, _ := testutils.Attr(checked[0], "data-index")
	assert.Equal(t, "1", index)
}

func TestTableSelectAllKeepsOtherPages(t *testing.T) {
	s := newSession(t, Options{})

	apply(t, s, Event{Widget: WidgetTable, Type: "row", Index: 1})
	apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "next"})

	frags := apply(t, s, Event{Widget: WidgetTable, Type: "all"})
	assert.Equal(t, "6 rows selected", statusOf(t, frags[0]))

	frags = apply(t, s, Event{Widget: WidgetTable, Type: "all"})
	assert.Equal(t, "1 rows selected", statusOf(t, frags[0]), "clearing a page leaves the others")

	frags = apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "first"})
	checked := testutils.Query(t, frags[0].HTML, testutils.HasAttr("data-event", "row"), testutils.HasAttr("checked", ""))
	require.Len(t, checked, 1)
	index, _ := testutils.Attr(checked[0], "data-index")
	assert.Equal(t, "1", index)
}

func TestTableSelectionWithoutRowKey(t *testing.T) {
	fx := fixtures.Default()
	fx.Table.RowKey = ""
	first := fx.Table.Rows[0]["name"]

	s := NewSession(fx, Options{})
	t.Cleanup(s.Close)

	apply(t, s, Event{Widget: WidgetTable, Type: "row", Index: 0})
	frags := apply(t, s, Event{Widget: WidgetTable, Type: EventPaginate, Value: "next"})
	checked := testutils.Query(t, frags[0].HTML, testutils.HasAttr("data-event", "row"), testutils.HasAttr("checked", ""))
	assert.Empty(t, checked, "selection stays with its row, not the screen position")

	apply(t, s, Event{Widget: WidgetTable, Type: "sort", Value: "name"})
	apply(t, s, Event{Widget: WidgetTable, Type: "sort", Value: "name"})
	rows := table.SelectedRows(s.gridAll, s.grid.State())
	require.Len(t, rows, 1)
	assert.Equal(t, first, rows[0]["name"])
}

func TestPaginationDemo(t *testing.T) {
	s := newSession(t, Options{DemoPages: 4})

	frags := apply(t, s, Event{Widget: WidgetPagination, Type: EventPaginate, Value: "next"})
	assert.Equal(t, "Page 2", statusOf(t, frags[0]))

	frags = apply(t, s, Event{Widget: WidgetPagination, Type: EventPaginate, Value: "goto", Index: 4})
	assert.Equal(t, "Page 4", statusOf(t, frags[0]))

	frags = apply(t, s, Event{Widget: WidgetPagination, Type: EventPaginate, Value: "next"})
	assert.Equal(t, "Page 4", statusOf(t, frags[0]), "next on the last page is a no-op")

	frags = apply(t, s, Event{Widget: WidgetPagination, Type: EventPaginate, Value: "goto", Index: 9})
	assert.Equal(t, "Page 4", statusOf(t, frags[0]))
}

func TestTabs(t *testing.T) {
	s := newSession(t, Options{})

	frags := apply(t, s, Event{Widget: WidgetTabs, Type: "select", Value: "api"})
	active := testutils.Query(t, frags[0].HTML, testutils.HasAttr("aria-selected", "true"))
	require.Len(t, active, 1)
	assert.Equal(t, "API", testutils.Text(active[0]))

	frags = apply(t, s, Event{Widget: WidgetTabs, Type: EventKey, Key: "ArrowRight"})
	active = testutils.Query(t, frags[0].HTML, testutils.HasAttr("aria-selected", "true"))
	assert.Equal(t, "Overview", testutils.Text(active[0]), "disabled tabs are skipped")
}

func TestModalLifecycle(t *testing.T) {
	s := newSession(t, Options{})

	apply(t, s, Event{Widget: WidgetModal, Type: EventOpen})
	assert.True(t, s.ScrollLocked())
	assert.Equal(t, 1, s.ListenerCount())

	apply(t, s, Event{Widget: WidgetModal, Type: "panel"})
	assert.True(t, s.ScrollLocked(), "clicks inside the panel keep it open")

	frags, err := s.Apply(context.Background(), Event{Widget: WidgetDocument, Type: EventKeyDown, Key: "Escape"})
	require.NoError(t, err)
	assert.False(t, s.ScrollLocked())
	assert.Zero(t, s.ListenerCount())

	f, ok := fragment(frags, WidgetModal)
	require.True(t, ok)
	assert.Equal(t, "Dialog closed 1 times", statusOf(t, f))

	apply(t, s, Event{Widget: WidgetModal, Type: EventOpen})
	frags = apply(t, s, Event{Widget: WidgetModal, Type: "backdrop"})
	assert.Equal(t, "Dialog closed 2 times", statusOf(t, frags[0]))
	assert.Empty(t, testutils.Query(t, frags[0].HTML, testutils.HasAttr("role", "dialog")))
}

type pushes struct {
	mu    sync.Mutex
	frags []Fragment
}

func (p *pushes) push(f Fragment) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frags = append(p.frags, f)
}

func (p *pushes) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frags)
}

func TestTooltipPushesAfterDelay(t *testing.T) {
	var got pushes
	s := newSession(t, Options{Push: got.push})

	frags := apply(t, s, Event{Widget: WidgetTooltip, Type: "enter"})
	assert.Empty(t, testutils.Query(t, frags[0].HTML, testutils.HasAttr("role", "tooltip")))

	require.True(t, testutils.Eventually(t, 2*time.Second, func() bool { return got.len() == 1 }))
	got.mu.Lock()
	shown := got.frags[0]
	got.mu.Unlock()
	assert.Equal(t, WidgetTooltip, shown.Widget)
	assert.Len(t, testutils.Query(t, shown.HTML, testutils.HasAttr("role", "tooltip")), 1)

	frags = apply(t, s, Event{Widget: WidgetTooltip, Type: "leave"})
	assert.Empty(t, testutils.Query(t, frags[0].HTML, testutils.HasAttr("role", "tooltip")))
	assert.Equal(t, 1, got.len(), "hiding is returned from Apply, not pushed")
}

func TestTooltipLeaveBeforeDelay(t *testing.T) {
	var got pushes
	s := newSession(t, Options{Push: got.push})

	apply(t, s, Event{Widget: WidgetTooltip, Type: "enter"})
	apply(t, s, Event{Widget: WidgetTooltip, Type: "leave"})
	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, got.len())
}

func TestApplyErrors(t *testing.T) {
	s := newSession(t, Options{})
	ctx := context.Background()

	cases := []struct {
		name  string
		event Event
		code  string
	}{
		{"unknown widget", Event{Widget: "carousel", Type: "spin"}, errors.ErrCodeWidgetNotFound},
		{"unknown event", Event{Widget: WidgetSelect, Type: "explode"}, errors.ErrCodeUnknownEvent},
		{"bad page action", Event{Widget: WidgetTable, Type: EventPaginate, Value: "sideways"}, errors.ErrCodeBadEvent},
		{"keydown without key", Event{Widget: WidgetDocument, Type: EventKeyDown}, errors.ErrCodeBadEvent},
		{"press in unknown widget", Event{Widget: WidgetDocument, Type: EventPointerDown, Target: "nowhere"}, errors.ErrCodeWidgetNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Apply(ctx, tc.event)
			require.Error(t, err)
			var ue *errors.UIError
			require.True(t, stderrors.As(err, &ue))
			assert.Equal(t, tc.code, ue.Code)
		})
	}

	assert.Equal(t, Stats{Events: 0, Errors: uint64(len(cases))}, s.Stats())
}

func TestCloseReleasesListeners(t *testing.T) {
	s := NewSession(nil, Options{})

	apply(t, s, Event{Widget: WidgetSelect, Type: "toggle"})
	apply(t, s, Event{Widget: WidgetDropdown, Type: "toggle"})
	apply(t, s, Event{Widget: WidgetModal, Type: EventOpen})
	require.Equal(t, 4, s.ListenerCount())

	s.Close()
	assert.Zero(t, s.ListenerCount())
	assert.False(t, s.ScrollLocked())

	_, err := s.Apply(context.Background(), Event{Widget: WidgetSelect, Type: "toggle"})
	assert.Error(t, err)
	s.Close()
}

func TestSetFixturesResetsState(t *testing.T) {
	s := newSession(t, Options{})
	apply(t, s, Event{Widget: WidgetSelect, Type: "toggle"})

	fx := fixtures.Default()
	fx.Modal.Title = "Reloaded"
	s.SetFixtures(fx)

	assert.Zero(t, s.ListenerCount())
	f, err := s.Render(context.Background(), WidgetModal)
	require.NoError(t, err)
	assert.NotContains(t, f.HTML, "Reloaded", "dialog is closed")

	apply(t, s, Event{Widget: WidgetModal, Type: EventOpen})
	f, err = s.Render(context.Background(), WidgetModal)
	require.NoError(t, err)
	assert.Contains(t, f.HTML, "Reloaded")
}

func TestLocalizedChrome(t *testing.T) {
	cat, err := i18n.New("es")
	require.NoError(t, err)
	s := newSession(t, Options{Catalog: cat})

	f, err := s.Render(context.Background(), WidgetSelect)
	require.NoError(t, err)
	assert.Equal(t, "Nada seleccionado", statusOf(t, f))
}

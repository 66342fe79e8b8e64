// Package showcase hosts a live set of widgets for one browser tab.
//
// A Session owns a dom.Document and one controller per showcased widget.
// Browser events come in through Apply; every widget whose markup changed is
// returned as a Fragment for the client to swap in.
package showcase

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/mayura-ui/mayura/internal/dom"
	"github.com/mayura-ui/mayura/internal/errors"
	"github.com/mayura-ui/mayura/internal/fixtures"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/logging"
	"github.com/mayura-ui/mayura/internal/widgets"
	"github.com/mayura-ui/mayura/internal/widgets/dropdown"
	"github.com/mayura-ui/mayura/internal/widgets/modal"
	"github.com/mayura-ui/mayura/internal/widgets/pagination"
	"github.com/mayura-ui/mayura/internal/widgets/selectbox"
	"github.com/mayura-ui/mayura/internal/widgets/table"
	"github.com/mayura-ui/mayura/internal/widgets/tabs"
	"github.com/mayura-ui/mayura/internal/widgets/tooltip"
)

// Widget names as they appear in data-widget attributes and events.
const (
	WidgetPagination = "pagination"
	WidgetSelect     = "select"
	WidgetDropdown   = "dropdown"
	WidgetTable      = "table"
	WidgetTabs       = "tabs"
	WidgetModal      = "modal"
	WidgetTooltip    = "tooltip"

	// WidgetDocument addresses document-level input: presses that land
	// outside every widget and key presses.
	WidgetDocument = "document"
)

// Event types that are not owned by a widget package.
const (
	EventPaginate    = "paginate"
	EventOpen        = "open"
	EventKey         = "key"
	EventPointerDown = "pointerdown"
	EventKeyDown     = "keydown"
)

// DefaultDemoPages is the page count of the standalone pagination demo.
const DefaultDemoPages = 20

var widgetOrder = []string{
	WidgetPagination,
	WidgetSelect,
	WidgetDropdown,
	WidgetTable,
	WidgetTabs,
	WidgetModal,
	WidgetTooltip,
}

// Widgets returns the names of the showcased widgets in page order.
func Widgets() []string {
	return slices.Clone(widgetOrder)
}

// Event is a browser event as sent by the client script. Widget and Type
// come from data-widget and data-event; the rest carry the data-* payload
// of the element that fired.
type Event struct {
	Widget string `json:"widget"`
	Type   string `json:"type"`
	Value  string `json:"value,omitempty"`
	Key    string `json:"key,omitempty"`
	Index  int    `json:"index,omitempty"`
	Path   string `json:"path,omitempty"`
	// Target names the widget a document pointer-down landed in. Empty
	// means the page body.
	Target string `json:"target,omitempty"`
}

// Fragment is the rendered markup of one widget, wrapped in its
// data-widget container.
type Fragment struct {
	Widget string `json:"widget"`
	HTML   string `json:"html"`
}

// Options configure a Session.
type Options struct {
	Catalog        *i18n.Catalog
	Logger         logging.Logger
	MaxPageNumbers int
	DemoPages      int
	// PageSize is the table page size used when the fixtures set none.
	PageSize int
	// Push receives fragments produced outside Apply, such as a tooltip
	// appearing after its delay. It is called without the session lock.
	Push func(Fragment)
}

// Stats are the session counters.
type Stats struct {
	Events uint64 `json:"events"`
	Errors uint64 `json:"errors"`
}

// Session is the live state of one showcase page.
type Session struct {
	id     string
	opts   Options
	logger logging.Logger

	events *atomic.Uint64
	errors *atomic.Uint64

	mu       sync.Mutex
	closed   bool
	doc      *dom.Document
	fx       *fixtures.Fixtures
	nodes    map[string]*dom.Node
	rendered map[string]string

	pager pagination.Props

	sel *selectbox.Controller

	menu       *dropdown.Controller
	lastAction string

	grid     *table.Controller
	gridAll  table.Props
	gridPage int
	pageSize int

	tabs *tabs.Controller

	dialog      *modal.Controller
	closeCount  int
	closeSignal bool

	tip *tooltip.Controller
}

// NewSession builds a session over fx. A nil fx uses the built-in demo data.
func NewSession(fx *fixtures.Fixtures, opts Options) *Session {
	if fx == nil {
		fx = fixtures.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = i18n.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.MaxPageNumbers <= 0 {
		opts.MaxPageNumbers = pagination.DefaultMaxPageNumbers
	}
	if opts.DemoPages <= 0 {
		opts.DemoPages = DefaultDemoPages
	}

	id := uuid.NewString()
	s := &Session{
		id:       id,
		opts:     opts,
		logger:   opts.Logger.WithComponent("showcase").With("session", id),
		events:   atomic.NewUint64(0),
		errors:   atomic.NewUint64(0),
		doc:      dom.NewDocument(),
		rendered: make(map[string]string, len(widgetOrder)),
	}

	s.pager = pagination.DefaultProps()
	s.pager.TotalPages = opts.DemoPages
	s.pager.MaxPageNumbers = opts.MaxPageNumbers

	s.mount(fx)
	return s
}

// mount builds every controller from fx. Callers hold mu or own s.
func (s *Session) mount(fx *fixtures.Fixtures) {
	s.fx = fx
	s.nodes = make(map[string]*dom.Node, len(widgetOrder))
	for _, name := range widgetOrder {
		s.nodes[name] = s.doc.Body.Child()
	}

	s.sel = selectbox.NewController(s.doc, s.nodes[WidgetSelect], fx.SelectProps(), func(v []string) {
		s.sel.SetValue(v)
	})

	menu := fx.DropdownProps()
	menu.Items = s.bindMenu(menu.Items, nil)
	s.menu = dropdown.NewController(s.doc, s.nodes[WidgetDropdown], menu)
	s.lastAction = ""

	s.gridAll = fx.TableProps()
	s.pageSize = fx.RowsPerPage(s.opts.PageSize)
	s.gridPage = 1
	s.grid = table.NewController(s.gridAll, nil)
	s.refreshGrid()

	s.tabs = tabs.NewController(fx.TabsProps(), nil)

	s.closeCount = 0
	s.dialog = modal.NewController(s.doc, fx.ModalProps(), func() {
		s.closeSignal = true
	})

	// hiding only happens inside Apply, which diffs the tooltip itself
	s.tip = tooltip.NewController(fx.TooltipProps(), func(visible bool) {
		if visible {
			s.pushTooltip()
		}
	})
}

func (s *Session) bindMenu(items []dropdown.MenuItem, parent dropdown.Path) []dropdown.MenuItem {
	out := make([]dropdown.MenuItem, len(items))
	for i, item := range items {
		path := append(slices.Clone(parent), item.Value)
		if !item.Divider {
			item.OnSelect = func() { s.lastAction = path.String() }
		}
		item.Children = s.bindMenu(item.Children, path)
		out[i] = item
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// unmount releases everything the controllers hold on the document.
func (s *Session) unmount() {
	s.sel.Close()
	s.menu.Close()
	s.dialog.Close()
	s.tip.Close()
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Stats returns the event counters.
func (s *Session) Stats() Stats {
	return Stats{Events: s.events.Load(), Errors: s.errors.Load()}
}

// ListenerCount reports the document subscriptions currently held.
func (s *Session) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.ListenerCount()
}

// ScrollLocked reports whether an open dialog holds the body scroll lock.
func (s *Session) ScrollLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.ScrollLocked()
}

// Apply routes ev to its widget. It returns the fragment of the addressed
// widget first, followed by every other widget whose markup changed.
func (s *Session) Apply(ctx context.Context, ev Event) ([]Fragment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, errors.NewInternalError(errors.ErrCodeInternalError, "session is closed", nil)
	}

	if err := s.dispatch(ev); err != nil {
		s.errors.Inc()
		s.logger.Debug(ctx, "Event rejected", "widget", ev.Widget, "type", ev.Type, "error", err.Error())
		return nil, err
	}
	s.events.Inc()

	if s.closeSignal {
		s.closeSignal = false
		s.closeCount++
		s.dialog.SetOpen(false)
	}

	return s.diff(ctx, ev.Widget)
}

func (s *Session) dispatch(ev Event) error {
	switch ev.Widget {
	case WidgetDocument:
		return s.applyDocument(ev)
	case WidgetPagination:
		return s.applyPagination(ev)
	case WidgetSelect:
		return s.applySelect(ev)
	case WidgetDropdown:
		return s.applyDropdown(ev)
	case WidgetTable:
		return s.applyTable(ev)
	case WidgetTabs:
		return s.applyTabs(ev)
	case WidgetModal:
		return s.applyModal(ev)
	case WidgetTooltip:
		return s.applyTooltip(ev)
	default:
		return errors.ErrWidgetNotFound(ev.Widget, widgetOrder)
	}
}

func (s *Session) applyDocument(ev Event) error {
	switch ev.Type {
	case EventPointerDown:
		target := s.doc.Body
		switch ev.Target {
		case "":
		case WidgetSelect:
			target = s.sel.Root()
		case WidgetDropdown:
			target = s.menu.Root()
		default:
			node, ok := s.nodes[ev.Target]
			if !ok {
				return errors.ErrWidgetNotFound(ev.Target, widgetOrder)
			}
			target = node
		}
		s.doc.PointerDown(target)
	case EventKeyDown:
		if ev.Key == "" {
			return badEvent(ev, "key is required")
		}
		s.doc.KeyDown(ev.Key)
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func (s *Session) applyPagination(ev Event) error {
	if ev.Type != EventPaginate {
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	action, err := parseAction(ev)
	if err != nil {
		return err
	}
	if page, changed := pagination.Navigate(s.pager, action); changed {
		s.pager.CurrentPage = page
	}
	return nil
}

func (s *Session) applySelect(ev Event) error {
	switch ev.Type {
	case selectbox.EventToggle:
		s.sel.Dispatch(selectbox.TriggerClicked{})
	case selectbox.EventQuery:
		s.sel.Dispatch(selectbox.QueryChanged{Query: ev.Value})
	case selectbox.EventPick:
		s.sel.Dispatch(selectbox.OptionPicked{Value: ev.Value})
	case selectbox.EventRemove:
		s.sel.Dispatch(selectbox.ChipRemoved{Value: ev.Value})
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func (s *Session) applyDropdown(ev Event) error {
	switch ev.Type {
	case dropdown.EventToggle:
		s.menu.Dispatch(dropdown.TriggerClicked{})
	case dropdown.EventActivate:
		s.menu.Dispatch(dropdown.ItemActivated{Path: dropdown.ParsePath(ev.Path)})
	case dropdown.EventEnter:
		s.menu.Dispatch(dropdown.PointerEntered{Path: dropdown.ParsePath(ev.Path)})
	case dropdown.EventLeave:
		s.menu.Dispatch(dropdown.PointerLeft{Path: dropdown.ParsePath(ev.Path)})
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func (s *Session) applyTable(ev Event) error {
	switch ev.Type {
	case table.EventSort:
		before := s.grid.State().Sort
		s.grid.Dispatch(table.HeaderClicked{Key: ev.Value})
		if s.grid.State().Sort != before {
			s.gridPage = 1
		}
	case table.EventRow:
		s.grid.Dispatch(table.RowToggled{Index: ev.Index})
	case table.EventAll:
		s.grid.Dispatch(table.AllToggled{})
	case EventPaginate:
		action, err := parseAction(ev)
		if err != nil {
			return err
		}
		if page, changed := pagination.Navigate(s.gridPager(), action); changed {
			s.gridPage = page
		}
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	s.refreshGrid()
	return nil
}

func (s *Session) applyTabs(ev Event) error {
	switch ev.Type {
	case tabs.EventSelect:
		s.tabs.Dispatch(tabs.Selected{Value: ev.Value})
	case EventKey:
		s.tabs.Dispatch(tabs.KeyPressed{Key: ev.Key})
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func (s *Session) applyModal(ev Event) error {
	switch ev.Type {
	case EventOpen:
		s.dialog.SetOpen(true)
	case modal.EventBackdrop:
		s.dialog.Dispatch(modal.BackdropClicked{})
	case modal.EventPanel:
		s.dialog.Dispatch(modal.PanelClicked{})
	case modal.EventClose:
		s.dialog.Dispatch(modal.CloseClicked{})
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func (s *Session) applyTooltip(ev Event) error {
	switch ev.Type {
	case tooltip.EventEnter:
		s.tip.Enter()
	case tooltip.EventLeave:
		s.tip.Leave()
	default:
		return errors.ErrUnknownEvent(ev.Widget, ev.Type)
	}
	return nil
}

func parseAction(ev Event) (pagination.Action, error) {
	kind, ok := pagination.ParseAction(ev.Value)
	if !ok {
		return pagination.Action{}, badEvent(ev, "unknown page action "+ev.Value)
	}
	return pagination.Action{Kind: kind, Page: ev.Index}, nil
}

func badEvent(ev Event, msg string) error {
	return errors.NewValidationError(errors.ErrCodeBadEvent, msg).
		WithWidget(ev.Widget).
		WithContext("type", ev.Type)
}

func (s *Session) gridPager() pagination.Props {
	p := pagination.DefaultProps()
	p.CurrentPage = s.gridPage
	p.TotalPages = pagination.TotalPages(len(s.gridAll.Data), s.pageSize)
	p.MaxPageNumbers = s.opts.MaxPageNumbers
	p.Size = widgets.SizeSmall
	return p
}

// refreshGrid shows the current page of the sorted rows. Row keys come from
// the full data set and select-all only touches the visible page, so the
// selection survives paging and sorting.
func (s *Session) refreshGrid() {
	sorted := table.Sorted(s.gridAll.Data, s.grid.State().Sort)
	if total := pagination.TotalPages(len(sorted), s.pageSize); s.gridPage > total {
		s.gridPage = max(total, 1)
	}
	lo, hi := pagination.Bounds(s.gridPage, s.pageSize, len(sorted))
	p := s.gridAll
	p.Data = sorted[lo:hi]
	s.grid.SetProps(p)
}

// Render returns the current fragment of one widget.
func (s *Session) Render(ctx context.Context, widget string) (Fragment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(widgetOrder, widget) {
		return Fragment{}, errors.ErrWidgetNotFound(widget, widgetOrder)
	}
	html, err := s.render(ctx, widget)
	if err != nil {
		return Fragment{}, err
	}
	s.rendered[widget] = html
	return Fragment{Widget: widget, HTML: html}, nil
}

// RenderAll returns every fragment in page order.
func (s *Session) RenderAll(ctx context.Context) ([]Fragment, error) {
	out := make([]Fragment, 0, len(widgetOrder))
	for _, name := range widgetOrder {
		f, err := s.Render(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// diff renders every widget and returns those whose markup changed since it
// was last sent. first is always included, at the front.
func (s *Session) diff(ctx context.Context, first string) ([]Fragment, error) {
	var out []Fragment
	for _, name := range widgetOrder {
		html, err := s.render(ctx, name)
		if err != nil {
			return nil, err
		}
		if html == s.rendered[name] && name != first {
			continue
		}
		s.rendered[name] = html
		f := Fragment{Widget: name, HTML: html}
		if name == first {
			out = append([]Fragment{f}, out...)
		} else {
			out = append(out, f)
		}
	}
	return out, nil
}

func (s *Session) pushTooltip() {
	if s.opts.Push == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	html, err := s.render(context.Background(), WidgetTooltip)
	if err != nil {
		s.mu.Unlock()
		s.logger.Error(context.Background(), err, "Tooltip render failed")
		return
	}
	if html == s.rendered[WidgetTooltip] {
		s.mu.Unlock()
		return
	}
	s.rendered[WidgetTooltip] = html
	s.mu.Unlock()

	s.opts.Push(Fragment{Widget: WidgetTooltip, HTML: html})
}

// SetFixtures rebuilds every widget from fx. Local state is reset.
func (s *Session) SetFixtures(fx *fixtures.Fixtures) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.unmount()
	s.doc = dom.NewDocument()
	clear(s.rendered)
	s.mount(fx)
}

// Close releases every document subscription and stops pending timers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.unmount()
	s.logger.Debug(context.Background(), "Session closed", "events", s.events.Load())
}

func (s *Session) render(ctx context.Context, widget string) (string, error) {
	ctx = i18n.WithCatalog(ctx, s.opts.Catalog)
	var buf bytes.Buffer
	buf.WriteString(`<div data-widget="`)
	buf.WriteString(widget)
	buf.WriteString(`" class="flex flex-col gap-3">`)
	if err := s.component(widget).Render(ctx, &buf); err != nil {
		return "", fmt.Errorf("render %s: %w", widget, err)
	}
	buf.WriteString("</div>")
	return buf.String(), nil
}

func joinValues(values []string) string {
	return strings.Join(values, ", ")
}

// Package tooltip implements a hover surface shown after a delay.
//
// Entering the trigger arms a timer; leaving cancels it and hides the
// surface. Placement is a pure function of the trigger and tooltip boxes.
package tooltip

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/widgets"
)

// DefaultDelay is the hover time before the tooltip shows.
const DefaultDelay = 200 * time.Millisecond

// Gap is the distance between trigger and tooltip, in pixels.
const Gap = 8

// Position is the side of the trigger the tooltip appears on.
type Position string

const (
	Top    Position = "top"
	Bottom Position = "bottom"
	Left   Position = "left"
	Right  Position = "right"
)

// Visual variants.
const (
	VariantDefault  widgets.Variant = "default"
	VariantGradient widgets.Variant = "gradient"
	VariantDark     widgets.Variant = "dark"
)

// Hover event types reported for elements carrying data-hover.
const (
	EventEnter = "enter"
	EventLeave = "leave"
)

// Rect is a box in viewport coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Point is the top-left corner of the placed tooltip.
type Point struct {
	Left, Top float64
}

// Place returns where a tooltip of size tip goes next to trigger. Unknown
// positions place on top.
func Place(pos Position, trigger, tip Rect) Point {
	centerX := trigger.Left + trigger.Width/2 - tip.Width/2
	centerY := trigger.Top + trigger.Height/2 - tip.Height/2
	switch pos {
	case Bottom:
		return Point{Left: centerX, Top: trigger.Bottom() + Gap}
	case Left:
		return Point{Left: trigger.Left - tip.Width - Gap, Top: centerY}
	case Right:
		return Point{Left: trigger.Right() + Gap, Top: centerY}
	default:
		return Point{Left: centerX, Top: trigger.Top - tip.Height - Gap}
	}
}

type Props struct {
	Trigger   templ.Component
	Content   templ.Component
	Position  Position
	Delay     time.Duration
	ShowArrow bool
	Variant   widgets.Variant
}

func DefaultProps() Props {
	return Props{Position: Top, Delay: DefaultDelay, ShowArrow: true, Variant: VariantDefault}
}

// Controller tracks hover and visibility. Timer callbacks run on their own
// goroutine, so a Controller is safe for concurrent use; onChange is called
// without the controller lock held.
type Controller struct {
	props    Props
	onChange func(visible bool)

	mu      sync.Mutex
	visible bool
	timer   *time.Timer
	gen     uint64
}

// NewController returns a hidden tooltip. onChange may be nil.
func NewController(props Props, onChange func(visible bool)) *Controller {
	if props.Delay <= 0 {
		props.Delay = DefaultDelay
	}
	return &Controller{props: props, onChange: onChange}
}

// Enter arms the show timer. A pending timer is restarted.
func (c *Controller) Enter() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.timer = time.AfterFunc(c.props.Delay, func() { c.fire(gen) })
}

func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.visible {
		c.mu.Unlock()
		return
	}
	c.visible = true
	c.timer = nil
	c.mu.Unlock()
	c.notify(true)
}

// Leave cancels a pending timer and hides the tooltip.
func (c *Controller) Leave() {
	c.mu.Lock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	was := c.visible
	c.visible = false
	c.mu.Unlock()
	if was {
		c.notify(false)
	}
}

func (c *Controller) notify(v bool) {
	if c.onChange != nil {
		c.onChange(v)
	}
}

// Visible reports whether the tooltip is showing.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Pending reports whether a show timer is armed.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Close cancels any timer without notifying.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.visible = false
}

// Component renders the tooltip in its current visibility.
func (c *Controller) Component() templ.Component {
	return Render(c.props, c.Visible())
}

var variantClasses = map[widgets.Variant]string{
	VariantDefault:  "bg-white text-gray-900 border border-gray-200 shadow-lg",
	VariantGradient: "bg-gradient-to-br from-[#00aeaf] via-[#0c4bb2] to-[#008c9d] text-white shadow-xl",
	VariantDark:     "bg-gray-900 text-white shadow-xl",
}

var placementClasses = map[Position]string{
	Top:    "bottom-full left-1/2 -translate-x-1/2 mb-2",
	Bottom: "top-full left-1/2 -translate-x-1/2 mt-2",
	Left:   "right-full top-1/2 -translate-y-1/2 mr-2",
	Right:  "left-full top-1/2 -translate-y-1/2 ml-2",
}

var arrowClasses = map[Position]string{
	Top:    "bottom-[-4px] left-1/2 -translate-x-1/2 rotate-45",
	Bottom: "top-[-4px] left-1/2 -translate-x-1/2 rotate-45",
	Left:   "right-[-4px] top-1/2 -translate-y-1/2 rotate-45",
	Right:  "left-[-4px] top-1/2 -translate-y-1/2 rotate-45",
}

// Render returns the trigger wrapper and, when visible, the tooltip. The
// browser positions the surface relative to the wrapper; Place computes the
// same box for hosts that position absolutely.
func Render(p Props, visible bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := widgets.NewWriter(out)
		w.Raw(`<div class="relative inline-block"`)
		w.Attr("data-hover", "trigger")
		w.Attr("data-delay", fmt.Sprint(p.Delay.Milliseconds()))
		w.Raw(">")
		w.Component(ctx, p.Trigger)
		if visible {
			w.Raw(`<div role="tooltip"`)
			w.Attr("class", widgets.Classes(
				"absolute z-50 px-3 py-2 text-sm rounded-lg pointer-events-none whitespace-nowrap",
				widgets.Pick(placementClasses, p.Position, Top),
				widgets.Pick(variantClasses, p.Variant, VariantDefault),
			))
			w.Raw(">")
			w.Component(ctx, p.Content)
			if p.ShowArrow {
				w.Raw("<div")
				w.Attr("class", widgets.Classes("absolute w-2 h-2", widgets.Pick(arrowClasses, p.Position, Top)))
				w.Raw("></div>")
			}
			w.Raw("</div>")
		}
		w.Raw("</div>")
		return w.Err()
	})
}

// Package modal implements a dialog shown over a backdrop.
//
// Visibility is controlled by the caller. While open, the dialog holds a
// scroll lock on the document body and an Escape subscription; the close
// button, Escape and (optionally) a backdrop click ask the caller to close
// through onClose.
package modal

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/dom"
	"github.com/mayura-ui/mayura/internal/i18n"
	"github.com/mayura-ui/mayura/internal/widgets"
)

// Visual variants.
const (
	VariantDefault  widgets.Variant = "default"
	VariantGradient widgets.Variant = "gradient"
	VariantBlur     widgets.Variant = "blur"
)

// SizeXL and SizeFull extend the shared sizes.
const (
	SizeXL   widgets.Size = "xl"
	SizeFull widgets.Size = "full"
)

// Event names carried in data-event attributes.
const (
	EventBackdrop = "backdrop"
	EventPanel    = "panel"
	EventClose    = "close"
)

type Props struct {
	Title                string
	Content              templ.Component
	Size                 widgets.Size
	ShowCloseButton      bool
	CloseOnBackdropClick bool
	Variant              widgets.Variant
}

func DefaultProps() Props {
	return Props{
		Size:                 widgets.SizeMedium,
		ShowCloseButton:      true,
		CloseOnBackdropClick: true,
		Variant:              VariantDefault,
	}
}

type State struct {
	Open bool
}

type Event interface {
	modalEvent()
}

type (
	BackdropClicked struct{}
	// PanelClicked is a click inside the dialog panel. It never closes.
	PanelClicked struct{}
	CloseClicked struct{}
	KeyPressed   struct{ Key string }
)

func (BackdropClicked) modalEvent() {}
func (PanelClicked) modalEvent()    {}
func (CloseClicked) modalEvent()    {}
func (KeyPressed) modalEvent()      {}

// Effects asks the caller to close the dialog.
type Effects struct {
	RequestClose bool
}

// Update maps an event to a close request. The dialog never closes itself.
func Update(p Props, s State, ev Event) Effects {
	if !s.Open {
		return Effects{}
	}
	switch ev := ev.(type) {
	case BackdropClicked:
		return Effects{RequestClose: p.CloseOnBackdropClick}
	case CloseClicked:
		return Effects{RequestClose: p.ShowCloseButton}
	case KeyPressed:
		return Effects{RequestClose: ev.Key == dom.EscapeKey}
	}
	return Effects{}
}

// Controller mounts a dialog on a document.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	doc     *dom.Document
	props   Props
	state   State
	onClose func()

	lock      *dom.ScrollLock
	escape    *dom.Subscription
	requested bool
}

// NewController returns a closed dialog. onClose is called at most once per
// opening, when the user asks to close.
func NewController(doc *dom.Document, props Props, onClose func()) *Controller {
	return &Controller{doc: doc, props: props, onClose: onClose}
}

func (c *Controller) Props() Props     { return c.props }
func (c *Controller) State() State     { return c.state }
func (c *Controller) SetProps(p Props) { c.props = p }

// SetOpen shows or hides the dialog, acquiring or releasing the scroll lock
// and Escape subscription.
func (c *Controller) SetOpen(open bool) {
	if open == c.state.Open {
		return
	}
	c.state.Open = open
	if open {
		c.requested = false
		c.lock = c.doc.LockScroll()
		c.escape = c.doc.OnEscape(func() { c.Dispatch(KeyPressed{Key: dom.EscapeKey}) })
		return
	}
	c.lock.Release()
	c.escape.Close()
	c.lock, c.escape = nil, nil
}

// Dispatch runs ev through Update and forwards a close request.
func (c *Controller) Dispatch(ev Event) Effects {
	eff := Update(c.props, c.state, ev)
	if eff.RequestClose && !c.requested {
		c.requested = true
		if c.onClose != nil {
			c.onClose()
		}
	}
	return eff
}

// Component renders the dialog.
func (c *Controller) Component() templ.Component {
	return Render(c.props, c.state)
}

// Close unmounts the dialog, releasing anything it holds.
func (c *Controller) Close() {
	c.SetOpen(false)
}

var sizeClasses = map[widgets.Size]string{
	widgets.SizeSmall:  "max-w-sm",
	widgets.SizeMedium: "max-w-md",
	widgets.SizeLarge:  "max-w-lg",
	SizeXL:             "max-w-xl",
	SizeFull:           "max-w-full m-4",
}

var panelClasses = map[widgets.Variant]string{
	VariantDefault:  "bg-white border border-gray-200",
	VariantGradient: "bg-gradient-to-br from-white via-gray-50 to-white border-2 border-transparent bg-clip-padding",
	VariantBlur:     "bg-white/80 backdrop-blur-xl border border-gray-200/50",
}

var backdropClasses = map[widgets.Variant]string{
	VariantDefault:  "bg-black/50",
	VariantGradient: "bg-gradient-to-br from-black/60 via-[#0c4bb2]/20 to-black/60",
	VariantBlur:     "bg-black/30 backdrop-blur-sm",
}

// Render returns the dialog, or nothing while closed.
func Render(p Props, s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		if !s.Open {
			return nil
		}
		w := widgets.NewWriter(out)
		w.Raw(`<div role="dialog" aria-modal="true"`)
		w.Attr("class", widgets.Classes(
			"fixed inset-0 z-50 flex items-center justify-center p-4",
			widgets.Pick(backdropClasses, p.Variant, VariantDefault),
		))
		w.Attr("data-event", EventBackdrop)
		if p.Title != "" {
			w.Attr("aria-labelledby", "modal-title")
		}
		w.Raw("><div")
		w.Attr("class", widgets.Classes(
			"relative w-full rounded-2xl shadow-2xl",
			widgets.Pick(sizeClasses, p.Size, widgets.SizeMedium),
			widgets.Pick(panelClasses, p.Variant, VariantDefault),
		))
		w.Attr("data-event", EventPanel)
		w.Raw(">")

		if p.Title != "" || p.ShowCloseButton {
			w.Raw(`<div class="flex items-center justify-between p-6 border-b border-gray-200">`)
			if p.Title != "" {
				w.Raw(`<h2 id="modal-title" class="text-xl font-semibold text-gray-900">`)
				w.Text(p.Title)
				w.Raw("</h2>")
			}
			if p.ShowCloseButton {
				w.Raw(`<button type="button" class="p-2 rounded-lg text-gray-500 hover:text-gray-700 hover:bg-gray-100"`)
				w.Attr("data-event", EventClose)
				w.Attr("aria-label", i18n.FromContext(ctx).T(i18n.ModalClose))
				w.Raw(">×</button>")
			}
			w.Raw("</div>")
		}
		w.Raw(`<div class="p-6">`)
		w.Component(ctx, p.Content)
		w.Raw("</div></div></div>")
		return w.Err()
	})
}

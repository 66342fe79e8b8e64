package dropdown

import (
	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/dom"
)

// Controller mounts a menu on a document. While the menu is open it holds
// one outside pointer-down and one Escape subscription; both are released
// when it closes.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	doc   *dom.Document
	root  *dom.Node
	props Props
	state State
	subs  []*dom.Subscription
}

// NewController mounts a menu under parent.
func NewController(doc *dom.Document, parent *dom.Node, props Props) *Controller {
	if parent == nil {
		parent = doc.Body
	}
	return &Controller{doc: doc, root: parent.Child(), props: props}
}

func (c *Controller) Root() *dom.Node  { return c.root }
func (c *Controller) Props() Props     { return c.props }
func (c *Controller) State() State     { return c.state }
func (c *Controller) SetProps(p Props) { c.props = p }

// Dispatch runs ev through Update and invokes the selected item's callback.
func (c *Controller) Dispatch(ev Event) Effects {
	next, eff := Update(c.props, c.state, ev)
	c.state = next
	c.sync()
	if eff.Selected != nil && eff.Selected.OnSelect != nil {
		eff.Selected.OnSelect()
	}
	return eff
}

func (c *Controller) sync() {
	switch {
	case c.state.Open && c.subs == nil:
		c.subs = []*dom.Subscription{
			c.doc.OnOutsidePointerDown(c.root, func() { c.Dispatch(OutsidePointerDown{}) }),
			c.doc.OnEscape(func() { c.Dispatch(KeyPressed{Key: dom.EscapeKey}) }),
		}
	case !c.state.Open && c.subs != nil:
		for _, s := range c.subs {
			s.Close()
		}
		c.subs = nil
	}
}

// Component renders the current props and state.
func (c *Controller) Component() templ.Component {
	return Render(c.props, c.state)
}

// Close unmounts the menu.
func (c *Controller) Close() {
	c.state = State{}
	c.sync()
}

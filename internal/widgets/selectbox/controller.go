package selectbox

import (
	"github.com/a-h/templ"

	"github.com/mayura-ui/mayura/internal/dom"
)

// Controller mounts the control on a document. It holds an outside
// pointer-down subscription exactly while the popup is open.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	doc      *dom.Document
	root     *dom.Node
	props    Props
	state    State
	onChange func([]string)
	outside  *dom.Subscription
}

// NewController mounts a control under parent. onChange may be nil.
func NewController(doc *dom.Document, parent *dom.Node, props Props, onChange func([]string)) *Controller {
	if parent == nil {
		parent = doc.Body
	}
	return &Controller{
		doc:      doc,
		root:     parent.Child(),
		props:    props,
		onChange: onChange,
	}
}

// Root is the node that scopes outside presses.
func (c *Controller) Root() *dom.Node { return c.root }

// Props returns the current props.
func (c *Controller) Props() Props { return c.props }

// State returns the current local state.
func (c *Controller) State() State { return c.state }

// SetProps replaces the props, typically after onChange.
func (c *Controller) SetProps(p Props) { c.props = p }

// SetValue replaces the selection.
func (c *Controller) SetValue(v []string) { c.props.Value = v }

// Dispatch runs ev through Update, maintains the document subscription and
// reports a changed value.
func (c *Controller) Dispatch(ev Event) Effects {
	next, eff := Update(c.props, c.state, ev)
	c.state = next
	c.sync()
	if eff.Changed && c.onChange != nil {
		c.onChange(eff.Value)
	}
	return eff
}

func (c *Controller) sync() {
	switch {
	case c.state.Open && c.outside == nil:
		c.outside = c.doc.OnOutsidePointerDown(c.root, func() {
			c.Dispatch(OutsidePointerDown{})
		})
	case !c.state.Open && c.outside != nil:
		c.outside.Close()
		c.outside = nil
	}
}

// Component renders the current props and state.
func (c *Controller) Component() templ.Component {
	return Render(c.props, c.state)
}

// Close unmounts the control, releasing its subscription.
func (c *Controller) Close() {
	c.state = State{}
	c.sync()
}

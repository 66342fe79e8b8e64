package table

import "github.com/a-h/templ"

// Controller holds a grid's state between events and reports selection
// changes to onRowSelect. The grid subscribes to nothing on the document.
type Controller struct {
	props       Props
	state       State
	onRowSelect func([]Row)
}

// NewController returns a controller for props. onRowSelect may be nil.
func NewController(props Props, onRowSelect func([]Row)) *Controller {
	return &Controller{props: props, onRowSelect: onRowSelect}
}

func (c *Controller) Props() Props { return c.props }
func (c *Controller) State() State { return c.state }

// SetProps replaces the props. Selection is kept by key.
func (c *Controller) SetProps(p Props) { c.props = p }

// SetState replaces the local state.
func (c *Controller) SetState(s State) { c.state = s }

// Dispatch runs ev through Update.
func (c *Controller) Dispatch(ev Event) Effects {
	next, eff := Update(c.props, c.state, ev)
	c.state = next
	if eff.Changed && c.onRowSelect != nil {
		c.onRowSelect(eff.RowSelect)
	}
	return eff
}

// Component renders the current props and state.
func (c *Controller) Component() templ.Component {
	return Render(c.props, c.state)
}

package sheet

import "math"

// ControllerConfig wires host options into a Controller.
type ControllerConfig struct {
	// Draggable gates all gesture input. A non-draggable sheet only follows
	// writes the host makes to the binding.
	Draggable bool
	// Overshoot multiplies the released offset before bucketing. Zero selects
	// DefaultOvershoot.
	Overshoot float64
}

// Controller turns a drag gesture into a live render offset and, on release,
// into a committed detent.
type Controller struct {
	binding   ModeBinding
	draggable bool
	overshoot float64

	live        bool
	dropped     bool
	anchored    bool
	anchor      Mode
	translation float64

	last    Snap
	hasLast bool
}

// NewController returns a controller writing to binding.
func NewController(binding ModeBinding, cfg ControllerConfig) *Controller {
	overshoot := cfg.Overshoot
	if overshoot == 0 {
		overshoot = DefaultOvershoot
	}
	return &Controller{
		binding:   binding,
		draggable: cfg.Draggable,
		overshoot: overshoot,
	}
}

// Draggable reports whether gesture input is accepted.
func (c *Controller) Draggable() bool {
	return c.draggable
}

// SetDraggable toggles gesture input. Disabling while a drag is live drops
// the session; input is ignored until the next OnDragStart.
func (c *Controller) SetDraggable(draggable bool) {
	c.draggable = draggable
	if !draggable && c.live {
		c.live = false
		c.dropped = true
		c.translation = 0
	}
}

// Dragging reports whether a session is live.
func (c *Controller) Dragging() bool {
	return c.live
}

// Translation is the live session delta, zero outside a session.
func (c *Controller) Translation() float64 {
	return c.translation
}

// Overshoot returns the release amplification factor.
func (c *Controller) Overshoot() float64 {
	return c.overshoot
}

// LastSnap returns the most recent release decision.
func (c *Controller) LastSnap() (Snap, bool) {
	return c.last, c.hasLast
}

// OnDragStart begins a session anchored at the binding's current mode. Later
// writes to the binding do not affect the session.
func (c *Controller) OnDragStart() {
	if !c.draggable {
		return
	}
	c.live = true
	c.dropped = false
	c.anchored = true
	c.anchor = c.binding.Mode()
	c.translation = 0
}

// OnDragChange records the delta from the drag start, positive downward.
func (c *Controller) OnDragChange(translationY float64) {
	if !c.live {
		return
	}
	c.translation = translationY
}

// OnDragEnd resolves the release, commits the resulting mode and clears the
// session delta. The anchor is kept, so repeating the call without a new
// OnDragStart yields the same mode. After a dropped session it commits
// nothing until the next OnDragStart.
func (c *Controller) OnDragEnd(translationY float64, metrics Metrics) Mode {
	if !c.draggable || c.dropped {
		return c.binding.Mode()
	}
	if !c.anchored {
		c.anchored = true
		c.anchor = c.binding.Mode()
	}
	snap := Resolve(c.anchor, translationY, metrics, c.overshoot)
	c.binding.SetMode(snap.To)
	c.live = false
	c.translation = 0
	c.last = snap
	c.hasLast = true
	return snap.To
}

// RenderOffset is the offset the rendering layer should apply now. It is
// never negative.
func (c *Controller) RenderOffset(metrics Metrics) float64 {
	mode := c.binding.Mode()
	if c.live {
		mode = c.anchor
	}
	return math.Max(0, TargetOffset(mode, metrics)+c.translation)
}

package loupe

// beginDrag opens a session at (x, y) with the current translation as the
// snapshot. Any earlier session is replaced.
func (c *Controller) beginDrag(src dragSource, x, y float64) {
	c.drag = dragSession{
		active:   true,
		source:   src,
		originX:  x,
		originY:  y,
		originTX: c.state.TranslateX,
		originTY: c.state.TranslateY,
	}
	c.debugf("drag begin at (%.1f, %.1f)", x, y)
}

// endDrag closes the session, if any.
func (c *Controller) endDrag() {
	if !c.drag.active {
		return
	}
	c.drag = dragSession{}
	c.debugf("drag end")
}

// dragTo applies pure delta tracking: snapshot + (pointer - origin).
func (c *Controller) dragTo(x, y float64) {
	d := &c.drag
	next := Pan(c.state, d.originTX, d.originTY, x-d.originX, y-d.originY)
	c.commit(next, GesturePan, x, y)
}

func (c *Controller) handlePointerDown(evt *Event) {
	if !c.mounted || evt.Button != MouseButtonLeft {
		return
	}
	// A press while a session is open means the release was lost.
	c.endDrag()
	if c.pinch.active || !c.canPan() {
		return
	}
	evt.PreventDefault()
	c.beginDrag(dragMouse, evt.X, evt.Y)
}

func (c *Controller) handlePointerMove(evt *Event) {
	if !c.mounted || !c.drag.active || c.drag.source != dragMouse {
		return
	}
	if !evt.Pressed {
		c.endDrag()
		return
	}
	c.dragTo(evt.X, evt.Y)
}

func (c *Controller) handlePointerUp(evt *Event) {
	if !c.mounted || c.drag.source != dragMouse {
		return
	}
	c.endDrag()
}

func (c *Controller) handlePointerLeave(evt *Event) {
	if !c.mounted || c.drag.source != dragMouse {
		return
	}
	c.endDrag()
}

package loupe

// touchSpan returns the distance between two touches and their midpoint.
func touchSpan(a, b Touch) (dist, mx, my float64) {
	return distance(a.X, a.Y, b.X, b.Y), (a.X + b.X) / 2, (a.Y + b.Y) / 2
}

// beginPinch starts a pinch from two touches. A one-finger pan in progress
// is ended first; the two sessions never overlap.
func (c *Controller) beginPinch(a, b Touch) {
	c.endDrag()
	dist, _, _ := touchSpan(a, b)
	c.pinch = pinchSession{active: true, lastDistance: dist}
	c.debugf("pinch begin (%.1fpx)", dist)
}

func (c *Controller) endPinch() {
	if !c.pinch.active {
		return
	}
	c.pinch = pinchSession{}
	c.debugf("pinch end")
}

// beginTouchPan starts a one-finger pan when panning is allowed, and
// reports whether it did.
func (c *Controller) beginTouchPan(t Touch) bool {
	if !c.canPan() {
		c.endDrag()
		return false
	}
	c.beginDrag(dragTouch, t.X, t.Y)
	return true
}

func (c *Controller) handleTouchStart(evt *Event) {
	if !c.mounted {
		return
	}
	if c.drag.active && c.drag.source == dragMouse {
		c.endDrag()
	}
	switch len(evt.Touches) {
	case 2:
		c.beginPinch(evt.Touches[0], evt.Touches[1])
		evt.PreventDefault()
	case 1:
		c.endPinch()
		if c.beginTouchPan(evt.Touches[0]) {
			evt.PreventDefault()
		}
	default:
		c.endPinch()
		c.endDrag()
	}
}

func (c *Controller) handleTouchMove(evt *Event) {
	if !c.mounted {
		return
	}
	switch len(evt.Touches) {
	case 2:
		if !c.pinch.active {
			c.beginPinch(evt.Touches[0], evt.Touches[1])
			evt.PreventDefault()
			return
		}
		evt.PreventDefault()
		c.pinchTo(evt.Touches[0], evt.Touches[1])
	case 1:
		t := evt.Touches[0]
		if c.pinch.active {
			// Two fingers became one without a touchend in between.
			c.endPinch()
			if c.beginTouchPan(t) {
				evt.PreventDefault()
			}
			return
		}
		if c.drag.active && c.drag.source == dragTouch {
			evt.PreventDefault()
			c.dragTo(t.X, t.Y)
			return
		}
		if c.beginTouchPan(t) {
			evt.PreventDefault()
		}
	default:
		c.endPinch()
		c.endDrag()
	}
}

// pinchTo applies one incremental pinch step anchored at the midpoint.
func (c *Controller) pinchTo(a, b Touch) {
	dist, mx, my := touchSpan(a, b)
	cfg := c.cfg
	change := (dist - c.pinch.lastDistance) * cfg.PinchSensitivity
	// The baseline rolls even on frames that cannot zoom.
	c.pinch.lastDistance = dist

	ox, oy, ok := c.containerOrigin()
	if !ok {
		return
	}

	prev := c.state
	scale := clampScale(prev.Scale+change, cfg.MinScale, cfg.MaxScale)
	if scale == prev.Scale {
		return
	}
	fx, fy := mx-ox, my-oy
	c.commit(ZoomAt(prev, scale, fx, fy), GesturePinchZoom, fx, fy)
	c.notifyZoom(scale)
}

func (c *Controller) handleTouchEnd(evt *Event) {
	if !c.mounted {
		return
	}
	switch len(evt.Touches) {
	case 0:
		c.endPinch()
		c.endDrag()
	case 1:
		c.endPinch()
		c.beginTouchPan(evt.Touches[0])
	case 2:
		c.beginPinch(evt.Touches[0], evt.Touches[1])
	default:
		c.endPinch()
		c.endDrag()
	}
}

package loupe

// handleWheel zooms one step toward or away from the cursor. It only acts
// when a configured modifier is held, so plain scrolling passes through.
func (c *Controller) handleWheel(evt *Event) {
	if !c.mounted {
		return
	}
	cfg := c.cfg
	if evt.Modifiers&cfg.ZoomModifiers == 0 {
		return
	}
	evt.PreventDefault()
	evt.StopPropagation()

	dir := sign(evt.WheelDelta)
	if dir == 0 {
		return
	}
	ox, oy, ok := c.containerOrigin()
	if !ok {
		return
	}
	fx, fy := evt.X-ox, evt.Y-oy

	prev := c.state
	scale := clampScale(roundScale(prev.Scale+dir*cfg.ScaleStep), cfg.MinScale, cfg.MaxScale)
	if scale == prev.Scale {
		return
	}
	c.commit(ZoomAt(prev, scale, fx, fy), GestureWheelZoom, fx, fy)
	c.debugf("wheel zoom %.2f -> %.2f at (%.1f, %.1f)", prev.Scale, scale, fx, fy)
	c.notifyZoom(scale)
}

package loupe

// Injected input is queued as whole frames in window coordinates and
// consumed one per tick, taking the place of the live Ebitengine state for
// that tick.

// queueFrame appends a frame derived from the last queued one. Wheel and
// modifiers never carry over.
func (h *Host) queueFrame(edit func(f *inputFrame)) {
	f := h.injectTail
	f.wheel = 0
	f.mods = 0
	f.cursorIn = true
	f.touches = nil
	edit(&f)
	h.injectQueue = append(h.injectQueue, f)
	h.injectTail = f
}

// nextInjected pops the oldest queued frame.
func (h *Host) nextInjected() (inputFrame, bool) {
	if len(h.injectQueue) == 0 {
		return inputFrame{}, false
	}
	f := h.injectQueue[0]
	copy(h.injectQueue, h.injectQueue[1:])
	h.injectQueue[len(h.injectQueue)-1] = inputFrame{}
	h.injectQueue = h.injectQueue[:len(h.injectQueue)-1]
	return f, true
}

// InjectWheel queues a wheel event at (x, y) with the given modifiers held.
// Positive delta zooms in when a zoom modifier is held.
func (h *Host) InjectWheel(x, y, delta float64, mods KeyModifiers) {
	h.queueFrame(func(f *inputFrame) {
		f.cursorX, f.cursorY = x, y
		f.wheel = delta
		f.mods = mods
	})
}

// InjectPress queues a left-button press at (x, y).
func (h *Host) InjectPress(x, y float64) {
	h.queueFrame(func(f *inputFrame) {
		f.cursorX, f.cursorY = x, y
		f.mouseDown = true
	})
}

// InjectMove queues a pointer move to (x, y) with the button state left as
// it was. Use this between InjectPress and InjectRelease to drag.
func (h *Host) InjectMove(x, y float64) {
	h.queueFrame(func(f *inputFrame) {
		f.cursorX, f.cursorY = x, y
	})
}

// InjectRelease queues a left-button release at (x, y).
func (h *Host) InjectRelease(x, y float64) {
	h.queueFrame(func(f *inputFrame) {
		f.cursorX, f.cursorY = x, y
		f.mouseDown = false
	})
}

// InjectLeave queues the pointer leaving the window.
func (h *Host) InjectLeave() {
	h.queueFrame(func(f *inputFrame) {
		f.cursorIn = false
	})
}

// InjectClick queues a press followed by a release. Consumes two frames.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at (x, y). Consumes four frames.
func (h *Host) InjectDoubleClick(x, y float64) {
	h.InjectClick(x, y)
	h.InjectClick(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	h.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		h.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	h.InjectRelease(toX, toY)
}

// InjectTouches queues a frame with exactly the given contacts active.
// Pass no touches to lift every finger.
func (h *Host) InjectTouches(touches ...Touch) {
	ts := append([]Touch(nil), touches...)
	h.queueFrame(func(f *inputFrame) {
		f.touches = ts
	})
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy)
// whose finger spacing goes from fromDist to toDist over frames frames,
// followed by a frame lifting both fingers.
func (h *Host) InjectPinch(cx, cy, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		h.InjectTouches(
			Touch{ID: 1, X: cx - half, Y: cy},
			Touch{ID: 2, X: cx + half, Y: cy},
		)
	}
	h.InjectTouches()
}

// InjectTap queues a one-finger tap at (x, y). Consumes two frames.
func (h *Host) InjectTap(x, y float64) {
	h.InjectTouches(Touch{ID: 1, X: x, Y: y})
	h.InjectTouches()
}

package loupe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputFrame is a snapshot of every input the host tracks for one tick.
// Events are produced by diffing consecutive frames.
type inputFrame struct {
	cursorX, cursorY float64
	cursorIn         bool
	mouseDown        bool
	wheel            float64
	mods             KeyModifiers
	touches          []Touch
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// pollFrame reads mouse, wheel, keyboard and touch state from Ebitengine.
func (h *Host) pollFrame() inputFrame {
	mx, my := ebiten.CursorPosition()
	f := inputFrame{
		cursorX:   float64(mx),
		cursorY:   float64(my),
		mouseDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		mods:      readModifiers(),
	}
	f.cursorIn = h.screenW == 0 || Rect{Width: h.screenW, Height: h.screenH}.Contains(f.cursorX, f.cursorY)
	_, wy := ebiten.Wheel()
	f.wheel = wy

	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		f.touches = make([]Touch, 0, len(ids))
		for _, id := range ids {
			tx, ty := ebiten.TouchPosition(id)
			f.touches = append(f.touches, Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
		}
	}
	return f
}

// processInput handles one tick: an injected frame if one is queued,
// otherwise the live Ebitengine state.
func (h *Host) processInput() {
	if f, ok := h.nextInjected(); ok {
		h.processFrame(f)
		return
	}
	h.processFrame(h.pollFrame())
}

// processFrame dispatches the events implied by the change from the
// previous frame to f.
func (h *Host) processFrame(f inputFrame) {
	h.processMouse(f)
	h.processTouches(f)
	h.prev = f
}

func (h *Host) dispatch(target *Surface, evt *Event) {
	h.debugf("%s -> %s at (%.0f, %.0f)", evt.Type, target.Name, evt.X, evt.Y)
	target.Dispatch(evt)
}

// processMouse handles pointer 0: move, leave, press, release, double
// click and wheel.
func (h *Host) processMouse(f inputFrame) {
	p := h.prev
	x, y := f.cursorX, f.cursorY

	// The move happens before this frame's button change.
	if f.cursorIn && (x != p.cursorX || y != p.cursorY || !p.cursorIn) {
		h.dispatch(h.window, &Event{Type: EventPointerMove, X: x, Y: y, Pressed: p.mouseDown, Modifiers: f.mods})
	}

	if f.mouseDown && !p.mouseDown {
		target := h.surfaceAt(x, y)
		h.dispatch(target, &Event{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft, Pressed: true, Modifiers: f.mods})
		if h.isDoubleActivation(&h.lastClick, x, y) {
			h.dispatch(target, &Event{Type: EventDoubleClick, X: x, Y: y, Button: MouseButtonLeft, Modifiers: f.mods})
		}
	} else if !f.mouseDown && p.mouseDown {
		h.dispatch(h.window, &Event{Type: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft, Modifiers: f.mods})
	}

	if !f.cursorIn && p.cursorIn {
		h.dispatch(h.window, &Event{Type: EventPointerLeave, X: x, Y: y, Modifiers: f.mods})
	}

	if f.wheel != 0 && f.cursorIn {
		h.dispatch(h.surfaceAt(x, y), &Event{Type: EventWheel, X: x, Y: y, WheelDelta: f.wheel, Modifiers: f.mods})
	}
}

// processTouches diffs the active contacts. Lifted contacts produce a
// touchend, new ones a touchstart and moved ones a touchmove, all sent to
// the surface the first contact of the gesture landed on.
func (h *Host) processTouches(f inputFrame) {
	prev := h.prev.touches
	if len(prev) == 0 && len(f.touches) == 0 {
		return
	}

	var ended, began, moved bool
	kept := make([]Touch, 0, len(f.touches))
	for _, pt := range prev {
		if t, ok := findTouch(f.touches, pt.ID); ok {
			kept = append(kept, t)
			if t.X != pt.X || t.Y != pt.Y {
				moved = true
			}
		} else {
			ended = true
		}
	}
	for _, t := range f.touches {
		if _, ok := findTouch(prev, t.ID); !ok {
			began = true
		}
	}

	if len(prev) == 0 && len(f.touches) > 0 {
		first := f.touches[0]
		h.touchTarget = h.surfaceAt(first.X, first.Y)
	}
	target := h.touchTarget
	if target == nil {
		target = h.window
	}

	if ended {
		h.dispatch(target, &Event{Type: EventTouchEnd, Touches: kept, Modifiers: f.mods})
	}
	if began {
		first := f.touches[0]
		h.dispatch(target, &Event{Type: EventTouchStart, X: first.X, Y: first.Y, Touches: f.touches, Modifiers: f.mods})
		if len(prev) == 0 && len(f.touches) == 1 && h.isDoubleActivation(&h.lastTap, first.X, first.Y) {
			h.dispatch(target, &Event{Type: EventDoubleClick, X: first.X, Y: first.Y, Modifiers: f.mods})
		}
	} else if moved {
		first := f.touches[0]
		h.dispatch(target, &Event{Type: EventTouchMove, X: first.X, Y: first.Y, Touches: f.touches, Modifiers: f.mods})
	}

	if len(f.touches) == 0 {
		h.touchTarget = nil
	}
}

func findTouch(ts []Touch, id int) (Touch, bool) {
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}

// isDoubleActivation records a press at (x, y) and reports whether it
// completes a double click (or tap) with the previous one.
func (h *Host) isDoubleActivation(rec *clickRecord, x, y float64) bool {
	now := h.now()
	if rec.valid && now.Sub(rec.at) <= h.DoubleClickInterval &&
		distance(rec.x, rec.y, x, y) <= h.DoubleClickSlop {
		*rec = clickRecord{}
		return true
	}
	*rec = clickRecord{at: now, x: x, y: y, valid: true}
	return false
}

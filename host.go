package loupe

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default double-activation thresholds.
const (
	defaultDoubleClickInterval = 400 * time.Millisecond
	defaultDoubleClickSlop     = 8.0 // pixels
)

// clickRecord remembers the last press for double click and double tap
// detection.
type clickRecord struct {
	at    time.Time
	x, y  float64
	valid bool
}

// Host turns Ebitengine's polled input into events and dispatches them to
// the viewports it owns. The window surface receives pointer move, up and
// leave; each viewport surface receives events that start inside it.
type Host struct {
	window    *Surface
	viewports []*Viewport
	tasks     *TaskQueue

	// DoubleClickInterval and DoubleClickSlop bound the time and distance
	// between two presses that count as a double click or double tap.
	DoubleClickInterval time.Duration
	DoubleClickSlop     float64

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	prev        inputFrame
	touchTarget *Surface
	lastClick   clickRecord
	lastTap     clickRecord
	screenW     float64
	screenH     float64
	now         func() time.Time

	injectQueue     []inputFrame
	injectTail      inputFrame
	testRunner      *TestRunner
	screenshotQueue []string

	debug bool
}

// NewHost creates a host with an empty window surface.
func NewHost() *Host {
	return &Host{
		window:              NewSurface("window"),
		tasks:               NewTaskQueue(),
		DoubleClickInterval: defaultDoubleClickInterval,
		DoubleClickSlop:     defaultDoubleClickSlop,
		ScreenshotDir:       "screenshots",
		now:                 time.Now,
	}
}

// Window returns the root surface.
func (h *Host) Window() *Surface {
	return h.window
}

// Tasks returns the queue deferred notifications are scheduled on. Update
// drains it at the start of every tick.
func (h *Host) Tasks() *TaskQueue {
	return h.tasks
}

// Viewports returns the viewports in stacking order, bottom first.
func (h *Host) Viewports() []*Viewport {
	return h.viewports
}

// SetScreenSize records the window size; the pointer is considered to have
// left the window when it moves outside it.
func (h *Host) SetScreenSize(w, hgt int) {
	h.screenW = float64(w)
	h.screenH = float64(hgt)
	h.window.SetBounds(Rect{Width: h.screenW, Height: h.screenH})
}

// NewViewport creates a viewport at bounds, mounts a controller on it and
// stacks it above existing viewports.
func (h *Host) NewViewport(name string, bounds Rect, cfg Config) (*Viewport, error) {
	surface := h.window.NewChild(name)
	surface.SetBounds(bounds)

	ctrl := New(cfg, h.tasks)
	ctrl.SetName(name)
	ctrl.SetDebugMode(h.debug)
	if err := ctrl.Mount(surface, h.window); err != nil {
		return nil, err
	}

	v := &Viewport{Name: name, host: h, surface: surface, ctrl: ctrl}
	v.settle.snap(ctrl.Transform())
	v.sub = ctrl.Subscribe(v.onChange)
	h.viewports = append(h.viewports, v)
	return v, nil
}

// RemoveViewport unmounts v and drops it from the host.
func (h *Host) RemoveViewport(v *Viewport) {
	for i, vp := range h.viewports {
		if vp == v {
			copy(h.viewports[i:], h.viewports[i+1:])
			h.viewports[len(h.viewports)-1] = nil
			h.viewports = h.viewports[:len(h.viewports)-1]
			break
		}
	}
	v.sub.Remove()
	v.ctrl.Unmount()
	if h.touchTarget == v.surface {
		h.touchTarget = nil
	}
}

// Close removes every viewport.
func (h *Host) Close() {
	for len(h.viewports) > 0 {
		h.RemoveViewport(h.viewports[len(h.viewports)-1])
	}
}

// Update runs deferred notifications from the previous tick, advances the
// settle transitions, then processes this tick's input.
func (h *Host) Update() error {
	h.tasks.RunPending()

	dt := float32(1.0 / float64(ebiten.TPS()))
	for _, v := range h.viewports {
		v.settle.update(dt)
	}

	if h.testRunner != nil {
		h.testRunner.step(h)
	}
	h.processInput()
	h.applyCursor()
	return nil
}

// surfaceAt returns the topmost viewport surface containing (x, y), or the
// window.
func (h *Host) surfaceAt(x, y float64) *Surface {
	for i := len(h.viewports) - 1; i >= 0; i-- {
		s := h.viewports[i].surface
		if r, ok := s.Bounds(); ok && r.Contains(x, y) {
			return s
		}
	}
	return h.window
}

// viewportAt returns the topmost viewport containing (x, y), or nil.
func (h *Host) viewportAt(x, y float64) *Viewport {
	for i := len(h.viewports) - 1; i >= 0; i-- {
		v := h.viewports[i]
		if r, ok := v.surface.Bounds(); ok && r.Contains(x, y) {
			return v
		}
	}
	return nil
}

// applyCursor shows the cursor hint of the viewport under the pointer, or
// of the viewport being dragged.
func (h *Host) applyCursor() {
	hint := CursorDefault
	for _, v := range h.viewports {
		if v.ctrl.Dragging() {
			hint = CursorGrabbing
			break
		}
	}
	if hint == CursorDefault {
		if v := h.viewportAt(h.prev.cursorX, h.prev.cursorY); v != nil {
			hint = v.ctrl.Cursor()
		}
	}
	ebiten.SetCursorShape(cursorShape(hint))
}

// cursorShape maps a cursor hint to the closest Ebitengine shape.
func cursorShape(hint string) ebiten.CursorShapeType {
	switch hint {
	case CursorGrab, CursorGrabbing:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

// Viewport is a rectangular window onto content, driven by a Controller.
type Viewport struct {
	Name string

	host    *Host
	surface *Surface
	ctrl    *Controller
	settle  settler
	sub     CallbackHandle
}

// Controller returns the viewport's zoom/pan engine.
func (v *Viewport) Controller() *Controller {
	return v.ctrl
}

// Surface returns the viewport's event target.
func (v *Viewport) Surface() *Surface {
	return v.surface
}

// Bounds returns the viewport rectangle in window coordinates.
func (v *Viewport) Bounds() Rect {
	r, _ := v.surface.Bounds()
	return r
}

// SetBounds moves or resizes the viewport. The transform is not re-anchored.
func (v *Viewport) SetBounds(r Rect) {
	v.surface.SetBounds(r)
}

// Displayed returns the transform currently on screen, which trails the
// controller's transform while a transition is settling.
func (v *Viewport) Displayed() Transform {
	return v.settle.shown
}

// onChange follows the controller: snap while dragging or with transitions
// off, otherwise settle toward the new transform.
func (v *Viewport) onChange(t Transform) {
	sec := v.ctrl.Config().transitionSeconds()
	if v.ctrl.Dragging() || sec == 0 {
		v.settle.snap(t)
		return
	}
	v.settle.retarget(t, sec)
}

package loupe

import (
	"math"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func assertTransform(t *testing.T, got Transform, scale, tx, ty float64) {
	t.Helper()
	if !approxEqual(got.Scale, scale, 1e-9) || !approxEqual(got.TranslateX, tx, 1e-9) || !approxEqual(got.TranslateY, ty, 1e-9) {
		t.Errorf("transform = (%v, %v, %v), want (%v, %v, %v)",
			got.Scale, got.TranslateX, got.TranslateY, scale, tx, ty)
	}
}

// testRig is a window surface with one laid-out container and a mounted
// controller using its own task queue.
type testRig struct {
	window    *Surface
	container *Surface
	ctrl      *Controller
}

func newTestRig(t *testing.T, cfg Config, bounds Rect) *testRig {
	t.Helper()
	window := NewSurface("window")
	window.SetBounds(Rect{Width: 1000, Height: 800})
	container := window.NewChild("container")
	container.SetBounds(bounds)
	ctrl := New(cfg, nil)
	if err := ctrl.Mount(container, window); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return &testRig{window: window, container: container, ctrl: ctrl}
}

func (r *testRig) wheel(x, y, delta float64, mods KeyModifiers) *Event {
	evt := &Event{Type: EventWheel, X: x, Y: y, WheelDelta: delta, Modifiers: mods}
	r.container.Dispatch(evt)
	return evt
}

func (r *testRig) press(x, y float64) *Event {
	evt := &Event{Type: EventPointerDown, X: x, Y: y, Button: MouseButtonLeft, Pressed: true}
	r.container.Dispatch(evt)
	return evt
}

func (r *testRig) move(x, y float64, pressed bool) *Event {
	evt := &Event{Type: EventPointerMove, X: x, Y: y, Pressed: pressed}
	r.window.Dispatch(evt)
	return evt
}

func (r *testRig) release(x, y float64) {
	r.window.Dispatch(&Event{Type: EventPointerUp, X: x, Y: y, Button: MouseButtonLeft})
}

func (r *testRig) touch(typ EventType, touches ...Touch) *Event {
	evt := &Event{Type: typ, Touches: touches}
	if len(touches) > 0 {
		evt.X, evt.Y = touches[0].X, touches[0].Y
	}
	r.container.Dispatch(evt)
	return evt
}

func (r *testRig) doubleClick(x, y float64) *Event {
	evt := &Event{Type: EventDoubleClick, X: x, Y: y}
	r.container.Dispatch(evt)
	return evt
}

// pinchPair returns two touches spread horizontally around (cx, cy).
func pinchPair(cx, cy, dist float64) (Touch, Touch) {
	return Touch{ID: 1, X: cx - dist/2, Y: cy}, Touch{ID: 2, X: cx + dist/2, Y: cy}
}

type recordingStore struct {
	events []GestureEvent
}

func (s *recordingStore) EmitEvent(e GestureEvent) {
	s.events = append(s.events, e)
}

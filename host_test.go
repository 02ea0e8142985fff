package loupe

import (
	"testing"
	"time"
)

// newTestHost returns an 800x600 host with one 400x300 viewport in the
// top-left corner and a frozen clock.
func newTestHost(t *testing.T, cfg Config) (*Host, *Viewport, *time.Time) {
	t.Helper()
	h := NewHost()
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return clock }
	h.SetScreenSize(800, 600)
	v, err := h.NewViewport("main", Rect{Width: 400, Height: 300}, cfg)
	if err != nil {
		t.Fatalf("NewViewport: %v", err)
	}
	return h, v, &clock
}

// drain consumes every queued injected frame.
func drain(h *Host) {
	for len(h.injectQueue) > 0 {
		h.processInput()
	}
}

func TestHostWheelZoom(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())

	h.InjectWheel(100, 50, 1, ModCtrl)
	drain(h)

	assertTransform(t, v.Controller().Transform(), 1.1, -10, -5)
	if !v.Settling() {
		t.Error("wheel zoom should settle over the transition")
	}
	if v.Displayed() != IdentityTransform {
		t.Errorf("displayed moved before any settle update: %+v", v.Displayed())
	}
	v.settle.update(1)
	if v.Settling() || v.Displayed() != v.Controller().Transform() {
		t.Errorf("displayed = %+v after settling, want %+v", v.Displayed(), v.Controller().Transform())
	}
}

func TestHostWheelOutsideViewport(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())

	h.InjectWheel(600, 500, 1, ModCtrl)
	drain(h)
	if !v.Controller().Transform().IsIdentity() {
		t.Errorf("wheel outside the viewport zoomed it: %+v", v.Controller().Transform())
	}
}

func TestHostDrag(t *testing.T) {
	cfg := DefaultConfig()
	h, v, _ := newTestHost(t, cfg)
	v.Controller().Update(Transform{Scale: 1.5})

	h.InjectDrag(100, 100, 150, 120, 5)
	if len(h.injectQueue) != 5 {
		t.Fatalf("queued frames = %d, want 5", len(h.injectQueue))
	}
	h.processInput()
	if !v.Controller().Dragging() {
		t.Fatal("press inside the viewport should start a drag")
	}
	drain(h)

	assertTransform(t, v.Controller().Transform(), 1.5, 50, 20)
	if v.Controller().Dragging() {
		t.Error("release should end the drag")
	}
	if v.Displayed() != v.Controller().Transform() {
		t.Errorf("drag should snap the display, got %+v", v.Displayed())
	}
}

func TestHostDragAtNativeScale(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	h.InjectDrag(100, 100, 150, 120, 4)
	drain(h)
	if !v.Controller().Transform().IsIdentity() {
		t.Errorf("drag at native scale moved content: %+v", v.Controller().Transform())
	}
}

func TestHostPointerLeaveEndsDrag(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	v.Controller().Update(Transform{Scale: 1.5})

	h.InjectPress(50, 50)
	h.InjectLeave()
	drain(h)
	if v.Controller().Dragging() {
		t.Error("leaving the window should end the drag")
	}
}

func TestHostDoubleClick(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	v.Controller().Update(Transform{Scale: 1.8, TranslateX: 120, TranslateY: 80})

	h.InjectDoubleClick(50, 50)
	drain(h)
	if !v.Controller().Transform().IsIdentity() {
		t.Errorf("transform = %+v, want identity", v.Controller().Transform())
	}
}

func TestHostDoubleClickThresholds(t *testing.T) {
	tests := []struct {
		name    string
		gap     time.Duration
		dx      float64
		wantDbl bool
	}{
		{"fast and close", 200 * time.Millisecond, 3, true},
		{"too slow", 500 * time.Millisecond, 0, false},
		{"too far", 100 * time.Millisecond, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v, clock := newTestHost(t, DefaultConfig())
			v.Controller().Update(Transform{Scale: 1.5, TranslateX: 9})

			h.InjectClick(50, 50)
			drain(h)
			*clock = clock.Add(tt.gap)
			h.InjectClick(50+tt.dx, 50)
			drain(h)

			if got := v.Controller().Transform().IsIdentity(); got != tt.wantDbl {
				t.Errorf("reset = %v, want %v", got, tt.wantDbl)
			}
		})
	}
}

func TestHostTripleClickResetsOnce(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	store := &recordingStore{}
	v.Controller().SetEventStore(store)

	h.InjectClick(10, 10)
	h.InjectClick(10, 10)
	h.InjectClick(10, 10)
	drain(h)

	resets := 0
	for _, e := range store.events {
		if e.Kind == GestureReset {
			resets++
		}
	}
	if resets != 1 {
		t.Errorf("resets = %d, want 1", resets)
	}
}

func TestHostDoubleTap(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	v.Controller().Update(Transform{Scale: 0.6, TranslateX: 30, TranslateY: 30})

	h.InjectTap(120, 90)
	h.InjectTap(122, 91)
	drain(h)
	if !v.Controller().Transform().IsIdentity() {
		t.Errorf("transform = %+v, want identity", v.Controller().Transform())
	}
}

func TestHostPinch(t *testing.T) {
	var zoomed []float64
	cfg := DefaultConfig()
	cfg.OnUserZoom = func(s float64) { zoomed = append(zoomed, s) }
	h, v, _ := newTestHost(t, cfg)

	h.InjectPinch(200, 150, 50, 80, 2)
	if len(h.injectQueue) != 3 {
		t.Fatalf("queued frames = %d, want 3", len(h.injectQueue))
	}
	h.processInput()
	if !v.Controller().Pinching() {
		t.Fatal("two contacts should start a pinch")
	}
	drain(h)

	assertTransform(t, v.Controller().Transform(), 1.15, -30, -22.5)
	if v.Controller().Pinching() {
		t.Error("lifting both fingers should end the pinch")
	}
	if len(zoomed) != 0 {
		t.Fatal("OnUserZoom ran before the next tick")
	}
	h.Tasks().RunPending()
	if len(zoomed) != 1 {
		t.Errorf("OnUserZoom calls = %d, want 1", len(zoomed))
	}
}

func TestHostTouchTargetFollowsFirstContact(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	v.Controller().Update(Transform{Scale: 1.5})

	h.InjectTouches(Touch{ID: 7, X: 100, Y: 100})
	h.InjectTouches(Touch{ID: 7, X: 500, Y: 400})
	drain(h)
	assertTransform(t, v.Controller().Transform(), 1.5, 400, 300)

	h.InjectTouches()
	drain(h)
	if v.Controller().Dragging() {
		t.Error("lifting the finger should end the pan")
	}
	if h.touchTarget != nil {
		t.Error("touch target should clear when no contacts remain")
	}
}

func TestHostTouchOutsideViewport(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())
	v.Controller().Update(Transform{Scale: 1.5})

	h.InjectTouches(Touch{ID: 1, X: 600, Y: 500})
	h.InjectTouches(Touch{ID: 1, X: 100, Y: 100})
	drain(h)
	assertTransform(t, v.Controller().Transform(), 1.5, 0, 0)
}

func TestHostTopmostViewportWins(t *testing.T) {
	h, bottom, _ := newTestHost(t, DefaultConfig())
	top, err := h.NewViewport("top", Rect{X: 200, Width: 400, Height: 300}, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	h.InjectWheel(300, 100, 1, ModCtrl)
	drain(h)
	if top.Controller().Scale() != 1.1 {
		t.Errorf("top scale = %v, want 1.1", top.Controller().Scale())
	}
	if bottom.Controller().Scale() != 1 {
		t.Errorf("bottom scale = %v, want 1", bottom.Controller().Scale())
	}
	if h.viewportAt(100, 100) != bottom || h.viewportAt(700, 500) != nil {
		t.Error("viewportAt returned the wrong viewport")
	}
}

func TestHostRemoveViewport(t *testing.T) {
	h, v, _ := newTestHost(t, DefaultConfig())

	h.RemoveViewport(v)
	if len(h.Viewports()) != 0 {
		t.Errorf("viewports = %d, want 0", len(h.Viewports()))
	}
	if v.Surface().ListenerCount() != 0 || h.Window().ListenerCount() != 0 {
		t.Error("listeners remain after RemoveViewport")
	}
	if v.Controller().Mounted() {
		t.Error("controller still mounted")
	}

	h.InjectWheel(10, 10, 1, ModCtrl)
	drain(h)
	if !v.Controller().Transform().IsIdentity() {
		t.Error("removed viewport still handles input")
	}
}

func TestHostCloseDropsPendingNotifications(t *testing.T) {
	called := false
	cfg := DefaultConfig()
	cfg.OnUserZoom = func(float64) { called = true }
	h, _, _ := newTestHost(t, cfg)

	h.InjectWheel(10, 10, 1, ModCtrl)
	drain(h)
	h.Close()
	h.Tasks().RunPending()
	if called {
		t.Error("OnUserZoom ran after Close")
	}
}

func TestViewportNoTransition(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transition = -1
	h, v, _ := newTestHost(t, cfg)

	h.InjectWheel(0, 0, 1, ModCtrl)
	drain(h)
	if v.Settling() || v.Displayed() != v.Controller().Transform() {
		t.Errorf("displayed = %+v, want %+v with transitions off", v.Displayed(), v.Controller().Transform())
	}
}

func TestViewportGeoM(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Transition = -1
	h := NewHost()
	v, err := h.NewViewport("v", Rect{X: 10, Y: 20, Width: 100, Height: 100}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	v.Controller().Update(Transform{Scale: 2, TranslateX: 5, TranslateY: 6})

	m := v.GeoM()
	x, y := m.Apply(1, 1)
	if !approxEqual(x, 17, 1e-9) || !approxEqual(y, 28, 1e-9) {
		t.Errorf("GeoM.Apply(1, 1) = (%v, %v), want (17, 28)", x, y)
	}
}

func TestCursorShape(t *testing.T) {
	if cursorShape(CursorGrab) != cursorShape(CursorGrabbing) {
		t.Error("grab and grabbing should share a shape")
	}
	if cursorShape(CursorDefault) == cursorShape(CursorGrab) {
		t.Error("default should differ from grab")
	}
}

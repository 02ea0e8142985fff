package loupe

import "errors"

var (
	// ErrAlreadyMounted is returned by Mount on a controller that is
	// already attached.
	ErrAlreadyMounted = errors.New("loupe: controller already mounted")
	// ErrNilTarget is returned by Mount when a target is missing.
	ErrNilTarget = errors.New("loupe: nil event target")
)

// GestureKind identifies what produced a state change.
type GestureKind uint8

const (
	GestureProgrammatic GestureKind = iota // SetScale, Reset or Update
	GestureWheelZoom                       // modifier + wheel
	GesturePinchZoom                       // two-finger pinch
	GesturePan                             // mouse or one-finger drag
	GestureReset                           // double click / double tap
)

var gestureKindNames = [...]string{"programmatic", "wheel", "pinch", "pan", "reset"}

func (k GestureKind) String() string {
	if int(k) < len(gestureKindNames) {
		return gestureKindNames[k]
	}
	return "unknown"
}

// GestureEvent describes a committed state change.
type GestureEvent struct {
	Kind      GestureKind
	Transform Transform
	// FocusX and FocusY are the container-local anchor for zoom gestures.
	FocusX, FocusY float64
}

// EventStore is the interface for optional ECS integration. When set on a
// Controller, every committed state change is forwarded to it.
type EventStore interface {
	EmitEvent(event GestureEvent)
}

type dragSource uint8

const (
	dragMouse dragSource = iota
	dragTouch
)

// dragSession exists only while a button or touch is held and panning is
// permitted.
type dragSession struct {
	active             bool
	source             dragSource
	originX, originY   float64
	originTX, originTY float64
}

// pinchSession exists only while exactly two touches are active.
type pinchSession struct {
	active       bool
	lastDistance float64
}

type subscriber struct {
	fn      func(Transform)
	removed bool
}

// Controller is the zoom/pan engine for one viewport. It owns the transform
// and the drag and pinch sessions; views read its projected output.
//
// Listeners are attached once by Mount and read the controller's config and
// state cells directly, so replacing the config or changing the transform
// never re-registers anything.
type Controller struct {
	cfg   Config
	state Transform

	drag  dragSession
	pinch pinchSession

	sched     Scheduler
	ownQueue  *TaskQueue
	container Element
	handles   []CallbackHandle
	mounted   bool
	mountGen  uint64

	subscribers []*subscriber
	store       EventStore
	debug       bool
	name        string
}

// New creates a controller at (1, 0, 0). Zoom notifications are deferred
// through sched; when sched is nil the controller uses its own TaskQueue,
// available from Tasks.
func New(cfg Config, sched Scheduler) *Controller {
	c := &Controller{
		cfg:   cfg.withDefaults(),
		state: IdentityTransform,
		sched: sched,
		name:  "viewport",
	}
	if c.sched == nil {
		c.ownQueue = NewTaskQueue()
		c.sched = c.ownQueue
	}
	return c
}

// Tasks returns the controller's own queue, or nil when an external
// Scheduler was supplied.
func (c *Controller) Tasks() *TaskQueue {
	return c.ownQueue
}

// SetName sets the label used in debug output.
func (c *Controller) SetName(name string) {
	c.name = name
}

// Config returns the current configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// SetConfig replaces the configuration. Listeners see the new values on the
// next event. The current scale is re-clamped into the new bounds.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg.withDefaults()
	clamped := clampScale(c.state.Scale, c.cfg.MinScale, c.cfg.MaxScale)
	if clamped != c.state.Scale {
		c.commit(ZoomAt(c.state, clamped, 0, 0), GestureProgrammatic, 0, 0)
	}
	if !c.cfg.DragEnabled() {
		c.endDrag()
	}
}

// SetEventStore forwards committed changes to store. Pass nil to detach.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// Transform returns the current transform.
func (c *Controller) Transform() Transform { return c.state }

// Scale returns the current zoom level.
func (c *Controller) Scale() float64 { return c.state.Scale }

// TranslateX returns the horizontal pan offset in container pixels.
func (c *Controller) TranslateX() float64 { return c.state.TranslateX }

// TranslateY returns the vertical pan offset in container pixels.
func (c *Controller) TranslateY() float64 { return c.state.TranslateY }

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool { return c.drag.active }

// Pinching reports whether a pinch session is active.
func (c *Controller) Pinching() bool { return c.pinch.active }

// Mounted reports whether listeners are attached.
func (c *Controller) Mounted() bool { return c.mounted }

// SetScale clamps and rounds value and recenters the view. A programmatic
// scale change has no anchor point, so the translation returns to the
// origin.
func (c *Controller) SetScale(value float64) {
	s := clampScale(roundScale(value), c.cfg.MinScale, c.cfg.MaxScale)
	c.commit(Transform{Scale: s}, GestureProgrammatic, 0, 0)
}

// Reset returns to (1, 0, 0) and ends any gesture session.
func (c *Controller) Reset() {
	c.endDrag()
	c.pinch = pinchSession{}
	c.commit(IdentityTransform, GestureProgrammatic, 0, 0)
}

// Update replaces the whole transform at once. The scale is clamped.
func (c *Controller) Update(t Transform) {
	t.Scale = clampScale(t.Scale, c.cfg.MinScale, c.cfg.MaxScale)
	c.commit(t, GestureProgrammatic, 0, 0)
}

// Subscribe registers fn to run synchronously after every state change.
func (c *Controller) Subscribe(fn func(Transform)) CallbackHandle {
	if fn == nil {
		return CallbackHandle{}
	}
	sub := &subscriber{fn: fn}
	c.subscribers = append(c.subscribers, sub)
	return CallbackHandle{remove: func() { c.unsubscribe(sub) }}
}

func (c *Controller) unsubscribe(sub *subscriber) {
	sub.removed = true
	for i, s := range c.subscribers {
		if s == sub {
			copy(c.subscribers[i:], c.subscribers[i+1:])
			c.subscribers[len(c.subscribers)-1] = nil
			c.subscribers = c.subscribers[:len(c.subscribers)-1]
			return
		}
	}
}

// commit writes the state cell and notifies observers.
func (c *Controller) commit(t Transform, kind GestureKind, fx, fy float64) {
	c.state = t
	if len(c.subscribers) > 0 {
		subs := make([]*subscriber, len(c.subscribers))
		copy(subs, c.subscribers)
		for _, s := range subs {
			if !s.removed {
				s.fn(t)
			}
		}
	}
	if c.store != nil {
		c.store.EmitEvent(GestureEvent{Kind: kind, Transform: t, FocusX: fx, FocusY: fy})
	}
}

// notifyZoom schedules OnUserZoom(scale) on the next tick. The callback
// is read from the config cell now; it is dropped if the controller is
// unmounted before the tick runs.
func (c *Controller) notifyZoom(scale float64) {
	fn := c.cfg.OnUserZoom
	if fn == nil {
		return
	}
	gen := c.mountGen
	c.sched.Defer(func() {
		if !c.mounted || c.mountGen != gen {
			return
		}
		fn(scale)
	})
}

// Mount attaches the controller's listeners: wheel, double click, touch and
// pointer-down on the container; pointer move, up and leave on window so a
// drag that leaves the container is still tracked. Mount attaches exactly
// once until Unmount.
func (c *Controller) Mount(container Element, window EventTarget) error {
	if c.mounted {
		return ErrAlreadyMounted
	}
	if container == nil || window == nil {
		return ErrNilTarget
	}
	c.container = container
	c.handles = append(c.handles[:0],
		container.AddListener(EventWheel, c.handleWheel),
		container.AddListener(EventDoubleClick, c.handleDoubleClick),
		container.AddListener(EventTouchStart, c.handleTouchStart),
		container.AddListener(EventTouchMove, c.handleTouchMove),
		container.AddListener(EventTouchEnd, c.handleTouchEnd),
		container.AddListener(EventPointerDown, c.handlePointerDown),
		window.AddListener(EventPointerMove, c.handlePointerMove),
		window.AddListener(EventPointerUp, c.handlePointerUp),
		window.AddListener(EventPointerLeave, c.handlePointerLeave),
	)
	c.mounted = true
	c.mountGen++
	c.debugf("mounted (%d listeners)", len(c.handles))
	return nil
}

// Unmount removes every listener exactly once and ends any session. No
// listener or pending zoom notification runs after Unmount returns.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	for i := range c.handles {
		c.handles[i].Remove()
		c.handles[i] = CallbackHandle{}
	}
	c.handles = c.handles[:0]
	c.container = nil
	c.drag = dragSession{}
	c.pinch = pinchSession{}
	c.debugf("unmounted")
}

// containerOrigin returns the container's top-left corner, or false if it
// has not been laid out.
func (c *Controller) containerOrigin() (float64, float64, bool) {
	if c.container == nil {
		return 0, 0, false
	}
	r, ok := c.container.Bounds()
	if !ok {
		return 0, 0, false
	}
	return r.X, r.Y, true
}

// canPan reports whether a drag may start: panning enabled and the view is
// not at exactly native scale.
func (c *Controller) canPan() bool {
	return c.cfg.DragEnabled() && c.state.Scale != 1
}

// handleDoubleClick resets to native size regardless of prior state.
func (c *Controller) handleDoubleClick(evt *Event) {
	if !c.mounted {
		return
	}
	evt.PreventDefault()
	c.endDrag()
	c.pinch = pinchSession{}
	c.commit(IdentityTransform, GestureReset, 0, 0)
	c.debugf("reset")
	c.notifyZoom(1)
}

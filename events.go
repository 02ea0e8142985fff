package loupe

// Touch is one active contact point in surface coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// Event is a platform-neutral input event. Coordinates are in surface
// (window) space; handlers convert to container-local space themselves.
type Event struct {
	Type EventType
	X, Y float64

	// WheelDelta is the scroll amount for EventWheel. Positive means the
	// wheel was scrolled away from the user.
	WheelDelta float64

	Button    MouseButton
	Modifiers KeyModifiers
	// Pressed reports whether the primary button is held during a pointer
	// move.
	Pressed bool

	// Touches lists every contact still active after this event.
	Touches []Touch

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault tells the host not to apply its own behavior (page scroll,
// native zoom, text selection) for this event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation keeps the event from bubbling to ancestor surfaces.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool { return e.propagationStopped }

// Listener handles a dispatched event.
type Listener func(evt *Event)

// EventTarget is anything listeners can be attached to.
type EventTarget interface {
	AddListener(typ EventType, fn Listener) CallbackHandle
}

// Element is an EventTarget with on-screen geometry. Bounds reports false
// while the element has not been laid out.
type Element interface {
	EventTarget
	Bounds() (Rect, bool)
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the listener so it no longer fires. Calling Remove
// more than once is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

type listenerEntry struct {
	fn      Listener
	removed bool
}

// Surface is a node in a tree of event targets. Events dispatched to a
// surface run its listeners, then bubble to the parent unless stopped.
// A root surface plays the role of the window.
type Surface struct {
	Name string

	parent    *Surface
	bounds    Rect
	laidOut   bool
	listeners [eventTypeCount][]*listenerEntry

	attached int
	detached int
}

// NewSurface creates a root surface.
func NewSurface(name string) *Surface {
	return &Surface{Name: name}
}

// NewChild creates a surface whose events bubble to s.
func (s *Surface) NewChild(name string) *Surface {
	return &Surface{Name: name, parent: s}
}

// Parent returns the surface events bubble to, or nil for a root.
func (s *Surface) Parent() *Surface {
	return s.parent
}

// SetBounds lays out the surface at r.
func (s *Surface) SetBounds(r Rect) {
	s.bounds = r
	s.laidOut = true
}

// ClearBounds marks the surface as not laid out.
func (s *Surface) ClearBounds() {
	s.laidOut = false
}

// Bounds returns the surface rectangle and whether it has been laid out.
func (s *Surface) Bounds() (Rect, bool) {
	return s.bounds, s.laidOut && !s.bounds.Empty()
}

// AddListener registers fn for events of type typ.
func (s *Surface) AddListener(typ EventType, fn Listener) CallbackHandle {
	if typ >= eventTypeCount || fn == nil {
		return CallbackHandle{}
	}
	e := &listenerEntry{fn: fn}
	s.listeners[typ] = append(s.listeners[typ], e)
	s.attached++
	return CallbackHandle{remove: func() { s.removeListener(typ, e) }}
}

func (s *Surface) removeListener(typ EventType, e *listenerEntry) {
	if e.removed {
		return
	}
	e.removed = true
	s.detached++
	list := s.listeners[typ]
	for i := range list {
		if list[i] == e {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			s.listeners[typ] = list[:len(list)-1]
			return
		}
	}
}

// ListenerCount returns the number of listeners currently registered.
func (s *Surface) ListenerCount() int {
	n := 0
	for i := range s.listeners {
		n += len(s.listeners[i])
	}
	return n
}

// AttachCount returns how many listeners were ever added to s.
func (s *Surface) AttachCount() int {
	return s.attached
}

// DetachCount returns how many listeners were ever removed from s.
func (s *Surface) DetachCount() int {
	return s.detached
}

// Dispatch delivers evt to s and its ancestors. Listeners removed while the
// event is in flight are skipped.
func (s *Surface) Dispatch(evt *Event) {
	if evt.Type >= eventTypeCount {
		return
	}
	for cur := s; cur != nil; cur = cur.parent {
		list := cur.listeners[evt.Type]
		if len(list) > 0 {
			snapshot := make([]*listenerEntry, len(list))
			copy(snapshot, list)
			for _, e := range snapshot {
				if !e.removed {
					e.fn(evt)
				}
			}
		}
		if evt.propagationStopped {
			return
		}
	}
}

package gesture

import (
	"io"
	"os"
	"sync"
	"time"
)

// Surface is a bindable input element: a platform adapter that delivers touch
// lifecycle notifications for one on-screen region.
type Surface interface {
	// Mounted reports whether the element is currently attached.
	Mounted() bool
	// TouchSupported reports whether the host can deliver touch input.
	TouchSupported() bool
	// Listen registers fn for every notification and returns a function that
	// removes it. The remove function must be safe to call more than once.
	Listen(fn func(RawEvent)) (remove func())
}

// Sink receives every snapshot a binding publishes, after change handlers.
type Sink interface {
	Emit(Snapshot)
}

// Snapshot is a read-only copy of a binding's trackers and the flags derived
// from them.
type Snapshot struct {
	Swipe    SwipeState
	Pinch    PinchState
	Rotation RotationState
	Gestures Gestures
}

// --- Handler registry ---

type changeHandler struct {
	id uint32
	fn func(Snapshot)
}

// CallbackHandle allows removing a registered change handler.
type CallbackHandle struct {
	id uint32
	b  *Binding
}

// Remove unregisters the handler so it no longer fires. Removing twice is a
// no-op.
func (h CallbackHandle) Remove() {
	if h.b == nil {
		return
	}
	h.b.mu.Lock()
	defer h.b.mu.Unlock()
	s := h.b.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = changeHandler{}
			h.b.handlers = s[:len(s)-1]
			return
		}
	}
}

// --- Options ---

// Option customizes a binding.
type Option func(*Binding)

// WithHaptics routes classification transitions to h.
func WithHaptics(h Haptics) Option {
	return func(b *Binding) {
		if h != nil {
			b.haptics = h
		}
	}
}

// WithSink forwards every published snapshot to s.
func WithSink(s Sink) Option {
	return func(b *Binding) { b.sink = s }
}

// WithDebug enables per-event trace output to w (stderr when w is nil).
func WithDebug(w io.Writer) Option {
	return func(b *Binding) {
		if w == nil {
			w = os.Stderr
		}
		b.debugOut = w
	}
}

// --- Binding ---

// Binding owns the surface subscription and the trackers for one element.
// All methods are safe for concurrent use; events are applied one at a time.
type Binding struct {
	mu       sync.Mutex
	cfg      Config
	state    State
	gestures Gestures
	bound    bool
	remove   func()

	handlers []changeHandler
	nextID   uint32

	haptics  Haptics
	sink     Sink
	debugOut io.Writer
}

// Bind attaches the engine to surface. cfg is fixed for the life of the
// binding. Bind fails with a *BindingError when surface is nil or not
// mounted or cfg is invalid, and with ErrCapabilityUnavailable when the
// surface has no touch support. No listener is attached on failure.
func Bind(surface Surface, cfg Config, opts ...Option) (*Binding, error) {
	if surface == nil {
		return nil, &BindingError{Reason: "nil surface"}
	}
	if !surface.Mounted() {
		return nil, &BindingError{Reason: "surface not mounted"}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &BindingError{Reason: "invalid config", Err: err}
	}
	if !surface.TouchSupported() {
		return nil, ErrCapabilityUnavailable
	}

	b := &Binding{
		cfg:     cfg,
		haptics: NopHaptics{},
	}
	for _, opt := range opts {
		opt(b)
	}

	b.mu.Lock()
	b.bound = true
	b.mu.Unlock()

	remove := surface.Listen(b.handle)

	b.mu.Lock()
	if b.bound {
		b.remove = remove
		remove = nil
	}
	b.mu.Unlock()
	// Unbind ran while Listen was registering.
	if remove != nil {
		remove()
	}

	b.debugf("bound (pinch=%v rotation=%v preventScroll=%v)",
		cfg.EnablePinch, cfg.EnableRotation, cfg.PreventScroll)
	return b, nil
}

// Config returns the configuration the binding was created with.
func (b *Binding) Config() Config {
	return b.cfg
}

// Bound reports whether the binding is still attached.
func (b *Binding) Bound() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bound
}

// Snapshot returns the current tracker state and gesture flags.
func (b *Binding) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Gestures returns the current gesture flags.
func (b *Binding) Gestures() Gestures {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gestures
}

func (b *Binding) snapshotLocked() Snapshot {
	return Snapshot{
		Swipe:    b.state.Swipe,
		Pinch:    b.state.Pinch,
		Rotation: b.state.Rotation,
		Gestures: b.gestures,
	}
}

// OnChange registers fn to run after every event the binding applies, and
// after a Tick that changes the gesture flags. fn runs on the goroutine that
// delivered the event, outside the binding's lock.
func (b *Binding) OnChange(fn func(Snapshot)) CallbackHandle {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, changeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, b: b}
}

// Tick re-evaluates the long-press dwell at now. Frame-driven hosts call it
// once per update.
func (b *Binding) Tick(now time.Time) {
	b.mu.Lock()
	if !b.bound {
		b.mu.Unlock()
		return
	}
	prev := b.gestures
	b.state = Tick(b.state, now)
	b.gestures = Classify(b.state, b.cfg)
	if b.gestures == prev {
		b.mu.Unlock()
		return
	}
	snap, handlers := b.snapshotLocked(), b.handlersLocked()
	b.mu.Unlock()

	feedback(b.haptics, prev, snap.Gestures, Event{})
	b.publish(snap, handlers)
}

// Unbind removes the surface listener and clears all tracker state. It is
// idempotent and safe to call after the surface has been unmounted.
func (b *Binding) Unbind() {
	if b == nil {
		return
	}
	b.mu.Lock()
	if !b.bound {
		b.mu.Unlock()
		return
	}
	b.bound = false
	remove := b.remove
	b.remove = nil
	b.state = State{}
	b.gestures = Gestures{}
	b.handlers = nil
	b.mu.Unlock()

	if remove != nil {
		func() {
			defer func() {
				if r := recover(); r != nil {
					b.debugf("unbind: surface listener removal panicked: %v", r)
				}
			}()
			remove()
		}()
	}
	b.debugf("unbound")
}

// handle is the surface listener.
func (b *Binding) handle(raw RawEvent) {
	if !b.Bound() {
		return
	}
	// cfg is fixed at Bind, so normalizing needs no lock. The surface's
	// PreventDefault hook runs here and may call back into the binding.
	ev, ok := Normalize(raw, b.cfg)
	if !ok {
		return
	}

	b.mu.Lock()
	if !b.bound {
		b.mu.Unlock()
		return
	}
	prev := b.gestures
	b.state = Step(b.state, ev, b.cfg)
	b.gestures = Classify(b.state, b.cfg)
	snap, handlers := b.snapshotLocked(), b.handlersLocked()
	b.mu.Unlock()

	b.debugEvent(ev, snap)
	feedback(b.haptics, prev, snap.Gestures, ev)
	b.publish(snap, handlers)
}

func (b *Binding) handlersLocked() []changeHandler {
	if len(b.handlers) == 0 {
		return nil
	}
	return append([]changeHandler(nil), b.handlers...)
}

// publish delivers snap to change handlers first, then to the sink.
func (b *Binding) publish(snap Snapshot, handlers []changeHandler) {
	for _, h := range handlers {
		h.fn(snap)
	}
	if b.sink != nil {
		b.sink.Emit(snap)
	}
}

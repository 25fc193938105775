// Package keybind attaches filtered keyboard handlers to event targets for
// the lifetime of a UI component.
//
// A Binder owns exactly one native subscription at a time. The wrapped
// handler it installs is cached for the binder's whole life so removal can
// present the identical reference that was added; losing that identity
// would leak the subscription. Key identity and callback are read at event
// time, so updating them never tears the subscription down. Only a change
// of phase or resolved target re-installs.
package keybind

import (
	"log/slog"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/popkit/internal/keyevent"
	"github.com/jmylchreest/popkit/internal/ref"
)

// Callback receives the matching key event, unmodified.
type Callback func(*keyevent.Event)

// Option configures a Binder at construction.
type Option func(*Binder)

// WithPhase selects the event phase to observe. Default is keydown.
func WithPhase(p keyevent.Phase) Option {
	return func(b *Binder) { b.phase = p }
}

// WithSuppressDefault controls whether a matching event has its default
// action prevented before the callback runs. Default is true.
func WithSuppressDefault(suppress bool) Option {
	return func(b *Binder) { b.handler.suppressDefault = suppress }
}

// WithTarget attaches the binding to the referenced node when it resolves.
// While the ref is empty the binding falls back to the document target.
func WithTarget(r *ref.Ref[keyevent.Target]) Option {
	return func(b *Binder) { b.target = r }
}

// WithDocument overrides the fallback target. Intended for tests and for
// hosts that run their own document-level dispatcher.
func WithDocument(t keyevent.Target) Option {
	return func(b *Binder) { b.document = t }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) { b.logger = logger }
}

// handler is the stable listener a Binder installs. Key, callback and the
// suppress flag are mutable and consulted per event.
type handler struct {
	key             string
	callback        Callback
	suppressDefault bool
}

func (h *handler) HandleKey(e *keyevent.Event) {
	if e.Key != h.key {
		return
	}
	if h.suppressDefault {
		e.PreventDefault()
	}
	if h.callback != nil {
		h.callback(e)
	}
}

// Binder maintains a live key subscription on a target.
type Binder struct {
	id       string
	handler  *handler
	phase    keyevent.Phase
	target   *ref.Ref[keyevent.Target]
	document keyevent.Target
	logger   *slog.Logger

	// attached is the target currently holding the subscription,
	// nil while inactive.
	attached keyevent.Target
}

// Bind creates an inactive binder for the given key identity. An
// unrecognized identity is not an error; the handler simply never matches.
func Bind(key string, callback Callback, opts ...Option) *Binder {
	b := &Binder{
		id:      ulid.Make().String(),
		handler: &handler{key: key, callback: callback, suppressDefault: true},
		phase:   keyevent.PhaseDown,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.document == nil {
		b.document = keyevent.Document()
	}
	return b
}

// SetKey changes the key identity the handler matches. Takes effect on the
// next event; the subscription is left alone.
func (b *Binder) SetKey(key string) {
	b.handler.key = key
}

// SetCallback swaps the callback without re-subscribing.
func (b *Binder) SetCallback(cb Callback) {
	b.handler.callback = cb
}

// SetSuppressDefault updates the suppress flag without re-subscribing.
func (b *Binder) SetSuppressDefault(suppress bool) {
	b.handler.suppressDefault = suppress
}

// SetPhase changes the observed phase. If the binder is active it is
// re-installed: teardown completes before the new subscription exists.
func (b *Binder) SetPhase(p keyevent.Phase) {
	if p == b.phase {
		return
	}
	active := b.Active()
	if active {
		b.Dispose()
	}
	b.phase = p
	if active {
		b.Activate()
	}
}

// Activate resolves the target and installs the subscription. Calling it
// on an active binder re-installs (old subscription removed first).
func (b *Binder) Activate() {
	if b.attached != nil {
		b.Dispose()
	}
	target := b.resolveTarget()
	target.AddListener(b.phase, b.handler)
	b.attached = target
	b.logger.Debug("key listener installed",
		"binder", b.id, "key", b.handler.key, "phase", b.phase)
}

// Dispose removes the subscription, if any. The removal uses the same
// handler reference that was added, so detachment cannot silently fail.
func (b *Binder) Dispose() {
	if b.attached == nil {
		return
	}
	b.attached.RemoveListener(b.phase, b.handler)
	b.attached = nil
	b.logger.Debug("key listener removed",
		"binder", b.id, "key", b.handler.key, "phase", b.phase)
}

// Refresh re-resolves the target ref and, only if the resolved target
// differs from the one currently subscribed, moves the subscription. An
// inactive binder stays inactive.
func (b *Binder) Refresh() {
	if b.attached == nil {
		return
	}
	if b.resolveTarget() == b.attached {
		return
	}
	b.Dispose()
	b.Activate()
}

// Active reports whether a subscription is currently installed.
func (b *Binder) Active() bool {
	return b.attached != nil
}

func (b *Binder) resolveTarget() keyevent.Target {
	if b.target != nil {
		if node, ok := b.target.Current(); ok && node != nil {
			return node
		}
	}
	return b.document
}

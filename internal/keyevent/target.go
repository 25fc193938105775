package keyevent

import "sync"

// Listener receives dispatched key events. Implementations must use a
// pointer receiver: subscription and removal match on interface identity,
// so the value passed to RemoveListener has to be the same one passed to
// AddListener.
type Listener interface {
	HandleKey(*Event)
}

// Target is anything key listeners can be attached to: the document-level
// dispatcher or an individual focusable node.
type Target interface {
	AddListener(Phase, Listener)
	RemoveListener(Phase, Listener)
}

// Dispatcher is the concrete event target. The zero value is ready to use.
// Multiple independent listeners per phase are supported; adding the same
// listener twice for a phase is a no-op, as is removing one never added.
type Dispatcher struct {
	mu        sync.Mutex
	listeners map[Phase][]Listener
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener subscribes l to events of the given phase.
func (d *Dispatcher) AddListener(phase Phase, l Listener) {
	if l == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[Phase][]Listener)
	}
	for _, existing := range d.listeners[phase] {
		if existing == l {
			return
		}
	}
	d.listeners[phase] = append(d.listeners[phase], l)
}

// RemoveListener unsubscribes l from the given phase. Removal matches on
// identity; an unknown listener is ignored.
func (d *Dispatcher) RemoveListener(phase Phase, l Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.listeners[phase]
	for i, existing := range current {
		if existing == l {
			d.listeners[phase] = append(current[:i:i], current[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every listener subscribed to e.Phase, in
// subscription order. The listener list is snapshotted first so handlers
// may remove themselves (or others) during delivery.
func (d *Dispatcher) Dispatch(e *Event) {
	if e == nil {
		return
	}
	d.mu.Lock()
	snapshot := make([]Listener, len(d.listeners[e.Phase]))
	copy(snapshot, d.listeners[e.Phase])
	d.mu.Unlock()

	for _, l := range snapshot {
		l.HandleKey(e)
	}
}

// Len reports the number of listeners subscribed for the given phase.
func (d *Dispatcher) Len(phase Phase) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[phase])
}

var document = NewDispatcher()

// Document returns the process-wide fallback target. Bindings without a
// resolvable node target attach here.
func Document() *Dispatcher {
	return document
}

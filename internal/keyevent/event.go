// Package keyevent provides the keyboard event model and event targets
// that key bindings subscribe to.
package keyevent

// Phase identifies which stage of the key event lifecycle is observed.
type Phase string

const (
	// PhaseDown fires when a key is pressed. This is the only phase
	// terminal input can report natively; it is the default everywhere.
	PhaseDown Phase = "keydown"
	// PhasePress fires on character input from synthetic producers.
	PhasePress Phase = "keypress"
	// PhaseUp fires on key release from synthetic producers.
	PhaseUp Phase = "keyup"
)

// Canonical key identities. Printable keys use their rune as the identity;
// these names cover the non-printable keys bindings care about.
const (
	KeyEnter      = "Enter"
	KeySpace      = "Space"
	KeyEscape     = "Escape"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Event is a single keyboard event flowing through a Target.
type Event struct {
	// Key is the key identity, e.g. "Enter" or "a".
	Key string
	// Phase is the lifecycle stage that produced the event.
	Phase Phase

	defaultPrevented bool
}

// PreventDefault marks the event so the producer's default action
// (typically propagation to the host widget) is skipped.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

package keyevent

import tea "github.com/charmbracelet/bubbletea"

// FromKeyMsg translates a Bubble Tea key message into a key event.
//
// This is the single normalization point for key identities. Terminals
// report the space bar and named keys inconsistently across emulators, so
// the identities here are canonical: "Space" (never " "), "Escape" (never
// "esc"), "ArrowUp" and friends (never "up"). Printable keys pass through
// as their runes. Terminal input only carries presses, so the produced
// event is always PhaseDown.
func FromKeyMsg(msg tea.KeyMsg) *Event {
	return &Event{Key: identityFor(msg), Phase: PhaseDown}
}

func identityFor(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return KeyEnter
	case tea.KeySpace:
		return KeySpace
	case tea.KeyEsc:
		return KeyEscape
	case tea.KeyUp:
		return KeyArrowUp
	case tea.KeyDown:
		return KeyArrowDown
	case tea.KeyLeft:
		return KeyArrowLeft
	case tea.KeyRight:
		return KeyArrowRight
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] == ' ' {
			return KeySpace
		}
		return string(msg.Runes)
	default:
		return msg.String()
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/jmylchreest/popkit/internal/config"
)

// KeyMap mirrors the configured bindings for the help bar. Actual input
// handling goes through keybind binders; this exists so bubbles/help can
// render what is currently in effect.
type KeyMap struct {
	Open  key.Binding
	Close key.Binding
	Up    key.Binding
	Down  key.Binding
	Quit  key.Binding
	Help  key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Open, k.Close},
		{k.Help, k.Quit},
	}
}

// NewKeyMap builds a KeyMap from the configured key identities.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Open:  binding(keys.Open, "open popup"),
		Close: binding(keys.Close, "close popup"),
		Up:    binding(keys.Up, "up"),
		Down:  binding(keys.Down, "down"),
		Quit:  binding(keys.Quit, "quit"),
		Help:  binding(keys.Help, "help"),
	}
}

func binding(identity, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(identity),
		key.WithHelp(helpLabel(identity), help),
	)
}

// helpLabel shortens a canonical key identity for the help bar.
func helpLabel(identity string) string {
	switch identity {
	case "Enter":
		return "enter"
	case "Space":
		return "space"
	case "Escape":
		return "esc"
	case "ArrowUp":
		return "↑"
	case "ArrowDown":
		return "↓"
	case "ArrowLeft":
		return "←"
	case "ArrowRight":
		return "→"
	default:
		return strings.ToLower(identity)
	}
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds all key bindings. Tuning keys mirror the classic layout:
// each pair raises/lowers one physics value.
type KeyMap struct {
	Flap        key.Binding
	Pause       key.Binding
	Restart     key.Binding
	Quit        key.Binding
	GravityUp   key.Binding
	GravityDown key.Binding
	ImpulseUp   key.Binding
	ImpulseDown key.Binding
	SpeedUp     key.Binding
	SpeedDown   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		GravityUp: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "gravity +"),
		),
		GravityDown: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "gravity -"),
		),
		ImpulseUp: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "impulse +"),
		),
		ImpulseDown: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "impulse -"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "speed +"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "speed -"),
		),
	}
}

// MapKey translates a key message to a game action. Returns the action
// (may be ActionNone) and whether it's a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Flap):
		return core.ActionFlap, false
	case key.Matches(msg, km.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.GravityUp):
		return core.ActionGravityUp, false
	case key.Matches(msg, km.GravityDown):
		return core.ActionGravityDown, false
	case key.Matches(msg, km.ImpulseUp):
		return core.ActionImpulseUp, false
	case key.Matches(msg, km.ImpulseDown):
		return core.ActionImpulseDown, false
	case key.Matches(msg, km.SpeedUp):
		return core.ActionSpeedUp, false
	case key.Matches(msg, km.SpeedDown):
		return core.ActionSpeedDown, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message. Returns
// true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

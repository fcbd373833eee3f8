package core

// Event is a discrete trigger emitted by the simulation for the audio
// collaborator. Events are fire-and-forget: the simulation never waits
// on their delivery or playback.
type Event int

const (
	EventFlap   Event = iota // player flapped
	EventScore               // a pipe was passed
	EventWhoosh              // a new pipe entered the screen
	EventDeath               // collision detected
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "Flap"
	case EventScore:
		return "Score"
	case EventWhoosh:
		return "Whoosh"
	case EventDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

package game

// Phase is the top-level state of a game.
type Phase int

const (
	PhaseWaiting Phase = iota // Tutorial bubble shown, clock stopped
	PhasePlaying              // Bubbles spawn, age and cost lives
	PhaseDead                 // Terminal; frame frozen, summary available
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

package pointer

import "time"

// Kind is the type of an input event.
type Kind uint8

const (
	Down Kind = iota
	Move
	Up
	Cancel
	Wheel
	Key
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	case Wheel:
		return "wheel"
	case Key:
		return "key"
	}
	return "unknown"
}

// Event is the shape in which the host hands input to a demo. Positions are
// in virtual pixels; Delta is the wheel delta in virtual pixels; Key is the
// bubbletea key string for Key events.
type Event struct {
	Kind  Kind
	X, Y  float64
	Time  time.Duration
	Delta float64
	Key   string
}

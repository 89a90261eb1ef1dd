package bowling

import "fmt"

// MaxPins is the number of pins standing at the start of a frame.
const MaxPins = 10

type role int

const (
	fresh   role = iota // not yet a base throw of any frame
	claimed             // already serves as some frame's base throw
)

// Roll is a single throw. The pin count never changes after NewRoll;
// only the role does, once, when the first frame admits it as a base throw.
// Rolls are shared by pointer: the frame earning a bonus from a throw and
// the frame whose own throw it is hold the very same *Roll.
type Roll struct {
	pins int
	role role
}

// NewRoll validates the pin count and returns a fresh roll.
func NewRoll(pins int) (*Roll, error) {
	if pins < 0 {
		return nil, fmt.Errorf("%w: negative roll (%d)", ErrInvalidRollValue, pins)
	}
	if pins > MaxPins {
		return nil, fmt.Errorf("%w: pin count exceeds pins on the lane (%d)", ErrInvalidRollValue, pins)
	}
	return &Roll{pins: pins}, nil
}

func (self *Roll) Pins() int { return self.pins }

// IsBonus reports whether some frame already took this roll as one of its
// base throws, so that any further frame may only count it as a bonus.
func (self *Roll) IsBonus() bool { return self.role == claimed }

func (self *Roll) IsStrike() bool { return self.pins == MaxPins }

// MakesSpareWith reports whether this roll clears the rack left by prior.
// A gutter ball never completes a spare.
func (self *Roll) MakesSpareWith(prior *Roll) bool {
	return self.pins != 0 && self.pins+prior.pins == MaxPins
}

func (self *Roll) claim() { self.role = claimed }

func (self *Roll) String() string { return fmt.Sprint(self.pins) }

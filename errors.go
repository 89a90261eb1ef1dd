package bowling

import "errors"

var (
	// ErrInvalidRollValue is returned for a pin count outside [0, MaxPins].
	ErrInvalidRollValue = errors.New("invalid roll value")

	// ErrInvalidRollSum is returned when two throws of the same rack
	// knock down more pins than were standing.
	ErrInvalidRollSum = errors.New("invalid roll sum")

	ErrGameOver        = errors.New("cannot roll after game is over")
	ErrGameNotComplete = errors.New("score cannot be taken until the end of the game")
)

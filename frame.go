package bowling

import "fmt"

const (
	baseRolls   = 2 // throws every frame is guaranteed
	strikeBonus = 2 // extra throws credited to a strike
	spareBonus  = 1 // extra throws credited to a spare
)

// FrameState is the position of a Frame in its life cycle.
type FrameState int

const (
	// AwaitingBase means the frame has fewer than its two base throws.
	AwaitingBase FrameState = iota

	// AwaitingBonus means both base throws are in but a strike or spare
	// still has bonus throws to collect.
	AwaitingBonus

	// Closed frames accept nothing further.
	Closed
)

func (self FrameState) String() string {
	switch self {
	case AwaitingBase:
		return "awaiting base"
	case AwaitingBonus:
		return "awaiting bonus"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("FrameState(%d)", int(self))
	}
}

// Frame collects between two and four rolls: its own two base throws
// (the second being an empty placeholder after a strike) plus any bonus
// throws earned by a strike or spare.
type Frame struct {
	rolls     []*Roll
	remaining int
	previous  *Roll
	state     FrameState
}

func NewFrame() *Frame {
	return &Frame{
		rolls:     make([]*Roll, 0, baseRolls+strikeBonus),
		remaining: baseRolls,
		state:     AwaitingBase,
	}
}

func (self *Frame) State() FrameState { return self.state }

func (self *Frame) IsClosed() bool { return self.state == Closed }

func (self *Frame) AwaitsBaseRolls() bool { return self.state == AwaitingBase }

// Score is the sum of every roll this frame holds, bonus throws included.
func (self *Frame) Score() (total int) {
	for _, roll := range self.rolls {
		total += roll.pins
	}
	return total
}

// cannotReceive reports whether the roll is none of this frame's business:
// either the frame is done, or it still needs a base throw and the roll
// has already served as another frame's base throw.
func (self *Frame) cannotReceive(roll *Roll) bool {
	return self.state == Closed || (self.state == AwaitingBase && roll.IsBonus())
}

// offer hands the roll to the frame, which keeps it or silently ignores it.
// An error means the roll was refused as illegal and the frame is unchanged.
func (self *Frame) offer(roll *Roll) error {
	if self.cannotReceive(roll) {
		return nil
	}

	switch len(self.rolls) {
	case 0:
		self.remaining--
		self.record(roll, true)
		if roll.IsStrike() {
			self.remaining += strikeBonus
			return self.offer(&Roll{}) // a strike has no real second throw
		}
	case 1:
		if err := self.validate(roll); err != nil {
			return err
		}
		self.remaining--
		if roll.MakesSpareWith(self.previous) {
			self.remaining += spareBonus
		}
		self.record(roll, true)
	case 2, 3:
		if err := self.validate(roll); err != nil {
			return err
		}
		self.remaining--
		self.record(roll, false)
	default:
		panic(fmt.Sprintf("bowling: frame already holds %d rolls", len(self.rolls)))
	}
	return nil
}

func (self *Frame) record(roll *Roll, base bool) {
	if base {
		roll.claim()
	}
	self.previous = roll
	self.rolls = append(self.rolls, roll)
	self.transition()
}

func (self *Frame) transition() {
	switch {
	case self.remaining == 0:
		self.state = Closed
	case len(self.rolls) < baseRolls:
		self.state = AwaitingBase
	default:
		self.state = AwaitingBonus
	}
}

func (self *Frame) validate(roll *Roll) error {
	if self.isInvalidAdditional(roll) {
		return fmt.Errorf("%w: %d + %d exceeds %d pins",
			ErrInvalidRollSum, self.previous.pins, roll.pins, MaxPins)
	}
	return nil
}

// isInvalidAdditional applies to the second throw of a pair (the frame's
// second roll or its fourth). A throw right after a strike faces a fresh
// rack and is never checked.
func (self *Frame) isInvalidAdditional(roll *Roll) bool {
	return len(self.rolls)%2 != 0 &&
		!self.previous.IsStrike() &&
		roll.pins+self.previous.pins > MaxPins
}

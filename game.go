package bowling

// FrameCount is the number of frames in a game.
const FrameCount = 10

// Game scores a single game of ten frames. It is not safe for
// concurrent use.
type Game struct {
	frames [FrameCount]*Frame
}

// NewGame creates a game with ten empty frames.
func NewGame() *Game {
	game := new(Game)
	for i := range game.frames {
		game.frames[i] = NewFrame()
	}
	return game
}

// Roll records a throw that knocked down the given number of pins.
// The throw is offered to each frame in order; every frame decides for
// itself whether to keep it, so a throw following a strike or spare ends
// up in two frames: as a bonus in the earlier one and as a base throw in
// its own. No frame is offered the throw while the frame before it still
// waits for a base throw.
func (self *Game) Roll(pins int) error {
	if self.IsComplete() {
		return ErrGameOver
	}

	roll, err := NewRoll(pins)
	if err != nil {
		return err
	}

	for i, frame := range self.frames {
		if self.isPreviousFrameStillInBaseRolls(i) {
			return nil
		}
		if err := frame.offer(roll); err != nil {
			return err
		}
	}
	return nil
}

// Score totals the game once every frame is closed.
func (self *Game) Score() (total int, err error) {
	if !self.IsComplete() {
		return 0, ErrGameNotComplete
	}
	for _, frame := range self.frames {
		total += frame.Score()
	}
	return total, nil
}

// IsComplete reports whether all ten frames are closed.
func (self *Game) IsComplete() bool {
	for _, frame := range self.frames {
		if !frame.IsClosed() {
			return false
		}
	}
	return true
}

// Frames exposes the ten frames in order. Callers must not feed rolls to
// them directly.
func (self *Game) Frames() []*Frame {
	return self.frames[:]
}

func (self *Game) isPreviousFrameStillInBaseRolls(i int) bool {
	return i > 0 && self.frames[i-1].AwaitsBaseRolls()
}

package input

// DefaultHoldTicks is how many frames a key stays down after its last
// press event (~133ms at 60Hz)
const DefaultHoldTicks = 8

// Frame is the input consumed by one simulation step
type Frame struct {
	// Axis is -1 while up is held, +1 while down is held, 0 otherwise
	Axis float64

	// Edges: the action went from up to down on this frame
	Confirm         bool
	Pause           bool
	CycleDifficulty bool
	Exit            bool
}

// Tracker turns terminal key presses into held state and press edges.
// Terminals send presses and auto-repeats but never releases, so an action
// is considered held until HoldTicks frames pass without a press.
type Tracker struct {
	holdTicks int
	pending   [numActions]bool
	ticksLeft [numActions]int
	down      [numActions]bool
}

func NewTracker(holdTicks int) *Tracker {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &Tracker{holdTicks: holdTicks}
}

// Press records a press or auto-repeat of the action
func (t *Tracker) Press(a Action) {
	if a <= ActionNone || a >= numActions {
		return
	}
	t.pending[a] = true
}

// Frame advances the tracker by one frame and returns its input
func (t *Tracker) Frame() Frame {
	var pressed [numActions]bool

	for a := ActionNone + 1; a < numActions; a++ {
		if t.pending[a] {
			t.ticksLeft[a] = t.holdTicks
			t.pending[a] = false
		}

		isDown := t.ticksLeft[a] > 0
		if isDown {
			t.ticksLeft[a]--
		}

		pressed[a] = isDown && !t.down[a]
		t.down[a] = isDown
	}

	var f Frame
	if t.down[ActionUp] {
		f.Axis--
	}
	if t.down[ActionDown] {
		f.Axis++
	}
	f.Confirm = pressed[ActionConfirm]
	f.Pause = pressed[ActionPause]
	f.CycleDifficulty = pressed[ActionCycleDifficulty]
	f.Exit = pressed[ActionExit]
	return f
}

// IsDown reports whether the action was held on the last frame
func (t *Tracker) IsDown(a Action) bool {
	if a <= ActionNone || a >= numActions {
		return false
	}
	return t.down[a]
}

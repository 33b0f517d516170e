package game

const ScoreToWin = 5

// Side identifies who won a point
type Side int

const (
	SidePlayer Side = iota
	SideAI
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}

// ScoreBoard tallies points for both sides
type ScoreBoard struct {
	Player int
	AI     int
}

// Award adds a point to the given side
func (sb *ScoreBoard) Award(side Side) {
	if side == SidePlayer {
		sb.Player++
	} else {
		sb.AI++
	}
}

// HasWinner returns true once either side reaches target
func (sb ScoreBoard) HasWinner(target int) bool {
	return sb.Player >= target || sb.AI >= target
}

// Leader returns the side with more points, the player on a tie
func (sb ScoreBoard) Leader() Side {
	if sb.AI > sb.Player {
		return SideAI
	}
	return SidePlayer
}

func (sb *ScoreBoard) Reset() {
	sb.Player = 0
	sb.AI = 0
}

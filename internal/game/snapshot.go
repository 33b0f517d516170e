package game

import "github.com/diegok/termpong/internal/geom"

// Snapshot is a read-only copy of what the renderer draws
type Snapshot struct {
	Tick         int
	Phase        Phase
	Ball         geom.Rect
	PlayerPaddle geom.Rect
	AIPaddle     geom.Rect
	PlayerScore  int
	AIScore      int
	ScoreToWin   int
	Difficulty   string
	CourtWidth   float64
	CourtHeight  float64
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.Tick,
		Phase:        g.Phase,
		Ball:         g.Ball.Bounds(),
		PlayerPaddle: g.PlayerPaddle.Bounds(),
		AIPaddle:     g.AIPaddle.Bounds(),
		PlayerScore:  g.Score.Player,
		AIScore:      g.Score.AI,
		ScoreToWin:   ScoreToWin,
		Difficulty:   g.Difficulty().Name,
		CourtWidth:   g.Width,
		CourtHeight:  g.Height,
	}
}

// PlayerWon returns true if the player reached the winning score
func (s Snapshot) PlayerWon() bool {
	return s.PlayerScore >= s.ScoreToWin
}

package game

import (
	"errors"
	"fmt"

	"github.com/diegok/termpong/internal/geom"
	"github.com/diegok/termpong/internal/input"
)

// Court dimensions
const (
	CourtWidth  = 800
	CourtHeight = 600
)

// ErrNegativeDelta is returned by Step when the frame clock runs backwards
var ErrNegativeDelta = errors.New("frame delta must not be negative")

// Events reports what happened during one Step
type Events struct {
	From, To          Phase
	WallHit           bool
	PaddleHit         bool
	Scored            bool
	Scorer            Side
	DifficultyChanged bool
	Quit              bool
}

// PhaseChanged returns true if the step moved to another phase
func (e Events) PhaseChanged() bool {
	return e.From != e.To
}

// Game holds the complete single-player match state
type Game struct {
	Width, Height float64
	Ball          *Ball
	PlayerPaddle  *Paddle
	AIPaddle      *Paddle
	Score         ScoreBoard
	Phase         Phase
	Tick          int
	DifficultyIdx int
	AI            AIConfig

	rng        Source
	collisions *CollisionManager
}

// NewGame creates a match in the main menu with the ball at center
func NewGame(rng Source, difficultyIdx int) (*Game, error) {
	if rng == nil {
		return nil, errors.New("game requires a random source")
	}
	if difficultyIdx < 0 || difficultyIdx >= len(Difficulties) {
		return nil, fmt.Errorf("difficulty index %d out of range", difficultyIdx)
	}

	w, h := float64(CourtWidth), float64(CourtHeight)
	paddleY := h/2 - PaddleHeight/2

	g := &Game{
		Width:         w,
		Height:        h,
		Ball:          NewBall(geom.Vec(w/2, h/2), RandomBallVelocity(rng)),
		PlayerPaddle:  NewPaddle(geom.Vec(PaddleMargin, paddleY)),
		AIPaddle:      NewPaddle(geom.Vec(w-PaddleMargin-PaddleWidth, paddleY)),
		Phase:         PhaseMainMenu,
		DifficultyIdx: difficultyIdx,
		AI:            NewAIConfig(Difficulties[difficultyIdx].Value),
		rng:           rng,
	}

	cm, err := NewCollisionManager(g.Ball, geom.NewRect(0, 0, w, h))
	if err != nil {
		return nil, fmt.Errorf("failed to create collision manager: %w", err)
	}
	g.collisions = cm

	return g, nil
}

// Difficulty returns the active AI preset
func (g *Game) Difficulty() Difficulty {
	return Difficulties[g.DifficultyIdx]
}

// Step runs one frame of dt seconds
func (g *Game) Step(in input.Frame, dt float64) (Events, error) {
	if dt < 0 {
		return Events{}, ErrNegativeDelta
	}

	ev := Events{From: g.Phase, To: g.Phase}
	if in.Exit {
		ev.Quit = true
		return ev, nil
	}

	g.Tick++

	switch g.Phase {
	case PhaseMainMenu:
		g.updateMenu(in, &ev)
	case PhasePlaying:
		g.updatePlaying(in, dt, &ev)
	case PhasePaused:
		g.Phase = Transition(g.Phase, in)
	case PhaseGameOver:
		if next := Transition(g.Phase, in); next != g.Phase {
			g.resetMatch()
			g.Phase = next
		}
	}

	ev.To = g.Phase
	return ev, nil
}

func (g *Game) updateMenu(in input.Frame, ev *Events) {
	g.Phase = Transition(g.Phase, in)

	if in.CycleDifficulty {
		g.CycleDifficulty()
		ev.DifficultyChanged = true
	}
}

// CycleDifficulty advances to the next preset and rebuilds the AI tuning
func (g *Game) CycleDifficulty() {
	g.DifficultyIdx = (g.DifficultyIdx + 1) % len(Difficulties)
	g.AI = NewAIConfig(Difficulties[g.DifficultyIdx].Value)
}

func (g *Game) updatePlaying(in input.Frame, dt float64, ev *Events) {
	lowerBound := g.Height - PaddleHeight

	if in.Axis != 0 {
		g.PlayerPaddle.Move(in.Axis, PlayerPaddleSpeed, dt, 0, lowerBound)
	}

	ComputeAIMove(g.AI, g.Ball, g.AIPaddle, g.rng, dt, 0, lowerBound)

	g.Ball.Update(dt)

	ev.WallHit = g.collisions.CheckWallCollisions()
	if g.collisions.CheckPaddleCollision(g.PlayerPaddle) {
		ev.PaddleHit = true
	}
	if g.collisions.CheckPaddleCollision(g.AIPaddle) {
		ev.PaddleHit = true
	}

	if scored, leftScore := g.collisions.CheckScoringCollision(); scored {
		ev.Scored = true
		ev.Scorer = SideAI
		if leftScore {
			ev.Scorer = SidePlayer
		}
		g.awardPoint(ev.Scorer)
	}

	// A finished match ignores the pause key
	if g.Phase == PhasePlaying {
		g.Phase = Transition(g.Phase, in)
	}
}

// awardPoint credits a side, serves a new ball and checks for a winner
func (g *Game) awardPoint(side Side) {
	g.Score.Award(side)
	g.ResetBall()

	if g.Score.HasWinner(ScoreToWin) {
		g.Phase = PhaseGameOver
	}
}

// ResetBall re-centers the ball with a fresh random velocity
func (g *Game) ResetBall() {
	g.Ball.Reset(geom.Vec(g.Width/2, g.Height/2), RandomBallVelocity(g.rng))
}

// resetMatch zeroes the score and serves a new ball
func (g *Game) resetMatch() {
	g.Score.Reset()
	g.ResetBall()
}

// Winner returns the side that reached ScoreToWin
func (g *Game) Winner() Side {
	return g.Score.Leader()
}

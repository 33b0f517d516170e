package game

import "math"

const (
	AIDeadband        = 10.0 // No correction when this close to the target
	AIMaxJitter       = 30.0 // Largest aiming error at difficulty 0
	DefaultDifficulty = 1    // Medium
)

// Difficulty is a named AI skill preset
type Difficulty struct {
	Name  string
	Value float64
}

// Difficulties lists the presets in menu cycling order
var Difficulties = []Difficulty{
	{Name: "Easy", Value: 0.3},
	{Name: "Medium", Value: 0.5},
	{Name: "Hard", Value: 0.8},
}

// AIConfig holds the AI paddle tuning for one difficulty
type AIConfig struct {
	Difficulty float64
	Speed      float64
}

func NewAIConfig(difficulty float64) AIConfig {
	return AIConfig{Difficulty: difficulty, Speed: AIPaddleSpeed}
}

// ReactionDelay is the intended response time in seconds (0.1 to 0.5).
// Movement does not consume it.
func (c AIConfig) ReactionDelay() float64 {
	return 0.5 - 0.4*c.Difficulty
}

// Accuracy scales down the aiming jitter, 1 being exact
func (c AIConfig) Accuracy() float64 {
	return c.Difficulty
}

// ComputeAIMove steps the paddle toward the ball's center plus a random
// aiming error, unless it is already inside the deadband.
// It draws exactly one value from rng and reports whether the paddle moved.
func ComputeAIMove(cfg AIConfig, ball *Ball, paddle *Paddle, rng Source, dt, minBound, maxBound float64) bool {
	imperfection := rng.Float64() * AIMaxJitter * (1 - cfg.Accuracy())
	target := ball.Center().Y + imperfection
	paddleCenter := paddle.Center().Y

	if math.Abs(paddleCenter-target) <= AIDeadband {
		return false
	}

	direction := -1.0
	if paddleCenter < target {
		direction = 1.0
	}
	paddle.Move(direction, cfg.Speed, dt, minBound, maxBound)
	return true
}

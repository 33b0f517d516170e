package game

import "github.com/diegok/termpong/internal/input"

// Phase is the active top-level game state
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Transition applies the input-driven edges of the state machine.
// Edges that mean nothing in the given phase leave it unchanged. The
// Playing to GameOver edge is driven by the score, not input, and is
// applied by Game.Step.
func Transition(p Phase, in input.Frame) Phase {
	switch p {
	case PhaseMainMenu:
		if in.Confirm {
			return PhasePlaying
		}
	case PhasePlaying:
		if in.Pause {
			return PhasePaused
		}
	case PhasePaused:
		if in.Pause {
			return PhasePlaying
		}
	case PhaseGameOver:
		if in.Confirm {
			return PhasePlaying
		}
	}
	return p
}

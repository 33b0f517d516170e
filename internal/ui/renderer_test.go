package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/geom"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	screen, err := NewScreen(sim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, err := NewRenderer(screen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r, sim
}

func screenText(sim tcell.SimulationScreen) string {
	cells, w, h := sim.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(runes[0])
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	runes := cells[y*w+x].Runes
	if len(runes) == 0 {
		return ' '
	}
	return runes[0]
}

func testSnapshot(phase game.Phase) game.Snapshot {
	return game.Snapshot{
		Phase:        phase,
		Ball:         geom.NewRect(400, 300, game.BallSize, game.BallSize),
		PlayerPaddle: geom.NewRect(40, 250, game.PaddleWidth, game.PaddleHeight),
		AIPaddle:     geom.NewRect(740, 250, game.PaddleWidth, game.PaddleHeight),
		PlayerScore:  2,
		AIScore:      3,
		ScoreToWin:   game.ScoreToWin,
		Difficulty:   "Hard",
		CourtWidth:   game.CourtWidth,
		CourtHeight:  game.CourtHeight,
	}
}

func TestNewRenderer_RequiresScreen(t *testing.T) {
	if _, err := NewRenderer(nil); err == nil {
		t.Error("expected error for nil screen")
	}
	if _, err := NewScreen(nil); err == nil {
		t.Error("expected error for nil tcell screen")
	}
}

func TestRenderer_Menu(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.Render(testSnapshot(game.PhaseMainMenu))
	text := screenText(sim)

	for _, want := range []string{"PING PONG", "Press Enter to Start", "Difficulty: Hard (Press D to change)"} {
		if !strings.Contains(text, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestRenderer_Game(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.Render(testSnapshot(game.PhasePlaying))
	text := screenText(sim)

	if !strings.Contains(text, "Player: 2") || !strings.Contains(text, "AI: 3") {
		t.Error("scoreboard missing scores")
	}
	if strings.Contains(text, "PAUSED") {
		t.Error("pause banner drawn while playing")
	}
	if !strings.ContainsRune(text, BallChar) {
		t.Error("ball not drawn")
	}

	// Player paddle spans columns 4-5 at 80 columns wide
	if got := cellRune(sim, 4, 11); got != PaddleChar {
		t.Errorf("expected player paddle at (4, 11), got %q", got)
	}
	// AI paddle spans columns 74-75
	if got := cellRune(sim, 74, 11); got != PaddleChar {
		t.Errorf("expected AI paddle at (74, 11), got %q", got)
	}
}

func TestRenderer_Paused(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.Render(testSnapshot(game.PhasePaused))

	if !strings.Contains(screenText(sim), "PAUSED - Press P to continue") {
		t.Error("pause banner missing")
	}
}

func TestRenderer_GameOver(t *testing.T) {
	tests := []struct {
		name           string
		player, ai     int
		winner, scores string
	}{
		{"player wins", 5, 3, "You Win!", "Final Score - Player: 5 | AI: 3"},
		{"ai wins", 1, 5, "AI Wins!", "Final Score - Player: 1 | AI: 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, sim := newSimRenderer(t)
			s := testSnapshot(game.PhaseGameOver)
			s.PlayerScore = tt.player
			s.AIScore = tt.ai

			r.Render(s)
			text := screenText(sim)

			for _, want := range []string{tt.winner, tt.scores, "Press Enter to play again"} {
				if !strings.Contains(text, want) {
					t.Errorf("game over screen missing %q", want)
				}
			}
		})
	}
}

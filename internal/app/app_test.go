package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/input"
	"github.com/diegok/termpong/internal/ui"
)

const frameDT = 1.0 / 60

// halfSource always draws 0.5
type halfSource struct{}

func (halfSource) Float64() float64 { return 0.5 }

func newTestApp(t *testing.T, logs *bytes.Buffer) (*App, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)

	screen, err := ui.NewScreen(sim)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := &config.Config{
		Difficulty: game.DefaultDifficulty,
		FPS:        config.DefaultFPS,
		HoldTicks:  input.DefaultHoldTicks,
		Mute:       true,
		LogLevel:   "debug",
	}
	a := NewApp(cfg, zerolog.New(logs))
	a.screen = screen
	if err := a.setup(halfSource{}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	return a, sim
}

func mustTick(t *testing.T, a *App) bool {
	t.Helper()
	done, err := a.tick(frameDT)
	if err != nil {
		t.Fatalf("unexpected tick error: %v", err)
	}
	return done
}

func screenContains(sim tcell.SimulationScreen, text string) bool {
	cells, w, h := sim.GetContents()
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if runes := cells[y*w+x].Runes; len(runes) > 0 {
				sb.WriteRune(runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		if strings.Contains(sb.String(), text) {
			return true
		}
	}
	return false
}

func TestApp_SetupRendersMenu(t *testing.T) {
	var logs bytes.Buffer
	a, sim := newTestApp(t, &logs)

	if a.game.Phase != game.PhaseMainMenu {
		t.Errorf("expected main menu, got %s", a.game.Phase)
	}
	if !screenContains(sim, "PING PONG") {
		t.Error("menu should be drawn after setup")
	}
}

func TestApp_StartPauseQuit(t *testing.T) {
	var logs bytes.Buffer
	a, sim := newTestApp(t, &logs)

	a.handleKey(tcell.KeyEnter, 0)
	if mustTick(t, a) {
		t.Fatal("should not quit on Enter")
	}
	if a.game.Phase != game.PhasePlaying {
		t.Fatalf("expected playing after Enter, got %s", a.game.Phase)
	}
	if !strings.Contains(logs.String(), "phase changed") {
		t.Error("expected phase change to be logged")
	}

	a.handleKey(tcell.KeyRune, 'p')
	mustTick(t, a)
	if a.game.Phase != game.PhasePaused {
		t.Fatalf("expected paused after P, got %s", a.game.Phase)
	}
	if !screenContains(sim, "PAUSED - Press P to continue") {
		t.Error("pause banner should be drawn")
	}

	a.handleKey(tcell.KeyEscape, 0)
	if !mustTick(t, a) {
		t.Error("expected quit after Escape")
	}
}

func TestApp_PlayerMovesPaddle(t *testing.T) {
	var logs bytes.Buffer
	a, _ := newTestApp(t, &logs)

	a.handleKey(tcell.KeyEnter, 0)
	mustTick(t, a)

	startY := a.game.PlayerPaddle.Position.Y
	a.handleKey(tcell.KeyUp, 0)
	mustTick(t, a)

	if got := a.game.PlayerPaddle.Position.Y; got >= startY {
		t.Errorf("expected paddle to move up from %f, got %f", startY, got)
	}
}

func TestApp_CycleDifficultyInMenu(t *testing.T) {
	var logs bytes.Buffer
	a, sim := newTestApp(t, &logs)

	a.handleKey(tcell.KeyRune, 'd')
	mustTick(t, a)

	if got := a.game.Difficulty().Name; got != "Hard" {
		t.Errorf("expected Hard after one cycle from Medium, got %s", got)
	}
	if !screenContains(sim, "Difficulty: Hard") {
		t.Error("menu should show the new difficulty")
	}
	if !strings.Contains(logs.String(), "difficulty changed") {
		t.Error("expected difficulty change to be logged")
	}
}

func TestApp_IgnoresUnmappedKeys(t *testing.T) {
	var logs bytes.Buffer
	a, _ := newTestApp(t, &logs)

	a.handleKey(tcell.KeyRune, 'x')
	mustTick(t, a)

	if a.game.Phase != game.PhaseMainMenu {
		t.Errorf("expected to stay in main menu, got %s", a.game.Phase)
	}
}

func TestApp_NegativeDelta(t *testing.T) {
	var logs bytes.Buffer
	a, _ := newTestApp(t, &logs)

	_, err := a.tick(-frameDT)
	if !errors.Is(err, game.ErrNegativeDelta) {
		t.Errorf("expected ErrNegativeDelta, got %v", err)
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name  string
		delta time.Duration
		want  float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"stalled terminal is capped", 2 * time.Second, maxFrameDelta},
		{"clock going backwards", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameDelta(base, base.Add(tt.delta))
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

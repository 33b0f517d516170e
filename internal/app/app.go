package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/diegok/termpong/internal/audio"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/input"
	"github.com/diegok/termpong/internal/ui"
)

// maxFrameDelta caps dt so a stalled terminal does not tunnel the ball
const maxFrameDelta = 0.1

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	game     *game.Game
	tracker  *input.Tracker

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		cfg:  cfg,
		log:  logger,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen, sets up signal handling, and plays until the user quits.
func (a *App) Run() error {
	// Game works without sound
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			a.log.Warn().Err(err).Msg("audio disabled")
		}
	}

	screen, err := ui.InitScreen()
	if err != nil {
		audio.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen

	if err := a.setup(game.NewSource()); err != nil {
		a.cleanup()
		return err
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			close(a.quit)
		case <-a.quit:
		}
	}()

	a.log.Info().
		Str("difficulty", a.game.Difficulty().Name).
		Int("fps", a.cfg.FPS).
		Bool("sound", audio.Enabled()).
		Msg("starting")

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// setup builds the renderer, the match and the input tracker on the current screen.
func (a *App) setup(rng game.Source) error {
	renderer, err := ui.NewRenderer(a.screen)
	if err != nil {
		return err
	}
	a.renderer = renderer

	g, err := game.NewGame(rng, a.cfg.Difficulty)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	a.game = g
	a.tracker = input.NewTracker(a.cfg.HoldTicks)

	a.renderer.Render(a.game.Snapshot())
	return nil
}

// mainLoop is the main event loop that handles all input and frame updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			a.handleEvent(ev)

		case now := <-ticker.C:
			dt := frameDelta(last, now)
			last = now

			done, err := a.tick(dt)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// frameDelta returns the seconds between two frames, capped at maxFrameDelta.
func frameDelta(last, now time.Time) float64 {
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// handleEvent processes keyboard and other events.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Render(a.game.Snapshot())
	}
}

// handleKey records a key press for the next frame.
func (a *App) handleKey(key tcell.Key, r rune) {
	if action := input.KeyToAction(key, r); action != input.ActionNone {
		a.tracker.Press(action)
	}
}

// tick advances the match by one frame and draws it.
// Returns true if the application should quit.
func (a *App) tick(dt float64) (bool, error) {
	ev, err := a.game.Step(a.tracker.Frame(), dt)
	if err != nil {
		return false, fmt.Errorf("frame %d: %w", a.game.Tick, err)
	}
	if ev.Quit {
		a.log.Info().Stringer("phase", a.game.Phase).Msg("quit requested")
		return true, nil
	}

	a.report(ev)
	a.renderer.Render(a.game.Snapshot())
	return false, nil
}

// report turns frame events into sounds and log entries.
func (a *App) report(ev game.Events) {
	if ev.WallHit {
		audio.PlayWallBounce()
	}
	if ev.PaddleHit {
		audio.PlayPaddleHit()
		a.log.Debug().Float64("speed", a.game.Ball.Speed()).Msg("paddle hit")
	}

	if ev.Scored {
		a.log.Info().
			Stringer("scorer", ev.Scorer).
			Int("player", a.game.Score.Player).
			Int("ai", a.game.Score.AI).
			Msg("point scored")
	}

	if ev.DifficultyChanged {
		a.log.Info().Str("difficulty", a.game.Difficulty().Name).Msg("difficulty changed")
	}

	if ev.PhaseChanged() {
		a.log.Info().Stringer("from", ev.From).Stringer("to", ev.To).Msg("phase changed")
	}

	if ev.To == game.PhaseGameOver && ev.PhaseChanged() {
		audio.PlayGameOver()
		a.log.Info().
			Stringer("winner", a.game.Winner()).
			Int("player", a.game.Score.Player).
			Int("ai", a.game.Score.AI).
			Msg("game over")
	} else if ev.Scored {
		audio.PlayScore()
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}

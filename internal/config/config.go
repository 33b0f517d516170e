package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/diegok/termpong/internal/game"
	"github.com/diegok/termpong/internal/input"
)

// Default values for configuration
const (
	DefaultDifficulty = "medium"
	DefaultFPS        = 60
	MaxFPS            = 240
	DefaultLogLevel   = "info"
)

// ErrHelp is returned when the usage text was requested and printed
var ErrHelp = errors.New("help requested")

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the application configuration
type Config struct {
	Difficulty int // Index into game.Difficulties
	FPS        int
	HoldTicks  int
	Mute       bool
	LogFile    string
	LogLevel   string
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	var cfg *Config

	cmd := &cli.Command{
		Name:  "termpong",
		Usage: "play Pong against the computer in your terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "difficulty", Value: DefaultDifficulty, Usage: "AI difficulty: easy, medium or hard"},
			&cli.IntFlag{Name: "fps", Value: DefaultFPS, Usage: "frames per second (1-240)"},
			&cli.IntFlag{Name: "hold-ticks", Value: input.DefaultHoldTicks, Usage: "frames a key stays held after its last press (>=1)"},
			&cli.BoolFlag{Name: "mute", Usage: "disable sound effects"},
			&cli.StringFlag{Name: "log-file", Usage: "append JSON logs to this file"},
			&cli.StringFlag{Name: "log-level", Value: DefaultLogLevel, Usage: "log level: debug, info, warn or error"},
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return err
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			c, err := fromCommand(cmd)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	if err := cmd.Run(context.Background(), append([]string{cmd.Name}, args...)); err != nil {
		return nil, err
	}

	// Action does not run when --help was handled
	if cfg == nil {
		return nil, ErrHelp
	}
	return cfg, nil
}

func fromCommand(cmd *cli.Command) (*Config, error) {
	if cmd.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " "))
	}

	difficulty, err := ParseDifficulty(cmd.String("difficulty"))
	if err != nil {
		return nil, err
	}

	// Validate frame rate
	fps := cmd.Int("fps")
	if fps < 1 || fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, fps)
	}

	holdTicks := cmd.Int("hold-ticks")
	if holdTicks < 1 {
		return nil, fmt.Errorf("hold-ticks must be at least 1, got %d", holdTicks)
	}

	level := strings.ToLower(cmd.String("log-level"))
	if !validLevel(level) {
		return nil, fmt.Errorf("log-level must be one of %s, got %q", strings.Join(logLevels, ", "), level)
	}

	cfg := &Config{
		Difficulty: difficulty,
		FPS:        fps,
		HoldTicks:  holdTicks,
		Mute:       cmd.Bool("mute"),
		LogFile:    cmd.String("log-file"),
		LogLevel:   level,
	}

	return cfg, nil
}

// ParseDifficulty returns the index of the named difficulty preset, ignoring case
func ParseDifficulty(name string) (int, error) {
	for i, d := range game.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	runErr := application.Run()
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  termpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --difficulty <level>   easy, medium or hard (default: medium)")
	fmt.Fprintln(os.Stderr, "  --fps <n>              Frames per second, 1-240 (default: 60)")
	fmt.Fprintln(os.Stderr, "  --hold-ticks <n>       Frames a key stays held (default: 8)")
	fmt.Fprintln(os.Stderr, "  --mute                 Disable sound")
	fmt.Fprintln(os.Stderr, "  --log-file <path>      Write JSON logs to a file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>    debug, info, warn or error (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  W/S or Up/Down to move, Enter to start, P to pause, D to change difficulty, Esc or Q to quit")
}

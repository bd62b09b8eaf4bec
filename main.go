package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"bytecrawl/internal/game"

	"github.com/gookit/color"
)

func main() {
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one from the clock)")
	logPath := flag.String("log", "", "write debug logs to this file")
	flag.Parse()

	if err := run(*seed, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, color.Style{color.FgRed, color.OpBold}.Sprintf("error: %v", err))
		os.Exit(1)
	}
}

func run(seed int64, logPath string) error {
	// The terminal belongs to tcell, so logs only go to a file.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed)

	g, err := game.New(seed, logger)
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

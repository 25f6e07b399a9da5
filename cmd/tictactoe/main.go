package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/config"
	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/logger"
	"ctchen222/tictactoe/internal/match"
	"ctchen222/tictactoe/internal/render"
	"ctchen222/tictactoe/internal/telemetry"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf, err := config.Load(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, telemetry.Options{
		ServiceName:    conf.Telemetry.ServiceName,
		ServiceVersion: version,
		Endpoint:       conf.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize telemetry: %v\n", err)
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	level, err := logger.ParseLevel(conf.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	logger.Init(level, os.Stderr)

	term := render.NewTerminal(os.Stdout, !conf.NoColor)

	deps := bot.Deps{
		Input:  os.Stdin,
		Output: os.Stdout,
		Marks:  term,
		Board:  term,
	}
	if conf.Seed != 0 {
		deps.Rand = rand.New(rand.NewPCG(conf.Seed, conf.Seed))
	}
	if conf.ShowEval {
		deps.Diagnostics = os.Stderr
	}

	playerX, playerO, err := newPlayers(conf, deps)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	first := game.PlayerX
	switch conf.First {
	case "o":
		first = game.PlayerO
	case "random":
		first = game.RandomlyChooseFirstPlayer()
	}

	m := match.NewMatch(playerX, playerO, first, term)
	slog.Debug("starting match", "match.id", m.ID, "player.x", conf.PlayerX, "player.o", conf.PlayerO)

	_, err = m.Play(ctx)
	switch {
	case err == nil, errors.Is(err, bot.ErrNoInput), errors.Is(err, context.Canceled):
		term.Bye()
		return 0
	default:
		slog.Error("match aborted", "match.id", m.ID, "error", err)
		return 1
	}
}

// newPlayers builds the strategies named in conf.
func newPlayers(conf *config.Config, deps bot.Deps) (bot.Strategy, bot.Strategy, error) {
	xKind, err := bot.Parse(conf.PlayerX)
	if err != nil {
		return nil, nil, fmt.Errorf("player X: %w", err)
	}
	oKind, err := bot.Parse(conf.PlayerO)
	if err != nil {
		return nil, nil, fmt.Errorf("player O: %w", err)
	}
	return bot.NewPlayers(xKind, oKind, deps)
}

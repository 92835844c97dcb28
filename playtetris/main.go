package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JoelOtter/termloop"
	"github.com/google/uuid"
	"github.com/jauhararifin/brickgame"
	"github.com/nsf/termbox-go"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// the terminal belongs to the game, so logs go to a file
	logFile, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.logLevel})).
		With("session", uuid.New().String())
	store := brickgame.NewFileStore(cfg.scoreFile)
	logger.Info("starting", "score_file", store.Path(), "seed", cfg.seed)

	boardEntity := newBoardPlayer(0, 0, logger,
		brickgame.WithSource(brickgame.NewRandomSource(cfg.seed)),
		brickgame.WithStore(store),
	)
	boardEntity.onExit = func() {
		termbox.Close()
		logFile.Close()
		os.Exit(0)
	}

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(boardEntity)
	game.Screen().SetLevel(level)
	game.Start()

	// reached when termloop's own quit key ends the loop
	logger.Info("interrupted")
	logFile.Close()
}

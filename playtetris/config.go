package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	scoreFile string
	logFile   string
	logLevel  slog.Level
	seed      int64
}

// loadConfig reads settings from an optional dotenv file, the environment and
// the command line, later sources winning. The dotenv file is skipped when
// APP_ENV is production.
func loadConfig(args []string) (config, error) {
	flags := flag.NewFlagSet("playtetris", flag.ContinueOnError)
	envFile := flags.String("env", ".env", "dotenv file to load")
	scoreFile := flags.String("score", "", "high score file")
	logFile := flags.String("log", "", "log file")
	debug := flags.Bool("debug", false, "enable debug logging")
	seed := flags.Int64("seed", 0, "piece seed, 0 picks one from the clock")
	if err := flags.Parse(args); err != nil {
		return config{}, err
	}

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config{}, fmt.Errorf("cannot load %s: %w", *envFile, err)
		}
	}

	cfg := config{
		scoreFile: envOr("BRICKGAME_SCORE_FILE", "score"),
		logFile:   envOr("BRICKGAME_LOG_FILE", filepath.Join(os.TempDir(), "brickgame.log")),
		logLevel:  slog.LevelInfo,
	}

	if level := os.Getenv("BRICKGAME_LOG_LEVEL"); level != "" {
		if err := cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
			return config{}, fmt.Errorf("invalid BRICKGAME_LOG_LEVEL: %w", err)
		}
	}
	if raw := os.Getenv("BRICKGAME_SEED"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("invalid BRICKGAME_SEED: %w", err)
		}
		cfg.seed = parsed
	}

	if *scoreFile != "" {
		cfg.scoreFile = *scoreFile
	}
	if *logFile != "" {
		cfg.logFile = *logFile
	}
	if *debug {
		cfg.logLevel = slog.LevelDebug
	}
	if *seed != 0 {
		cfg.seed = *seed
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

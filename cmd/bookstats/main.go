// Package main provides the bookstats command: it looks up every ISBN in the
// input list on Open Library and reports twelve statistics about the books.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"bookstats/internal/config"
	"bookstats/internal/logger"
	"bookstats/internal/pipeline"
)

const configEnv = "BOOKSTATS_CONFIG"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("bookstats", flag.ContinueOnError)
	flags.SetOutput(stderr)

	configFile := flags.String("config", "", "Path to YAML configuration file (default: $"+configEnv+" or built-in defaults)")
	verbose := flags.Bool("v", false, "Log debug records regardless of logging.level")
	initConfig := flags.String("init-config", "", "Write the effective configuration to this path and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	// A missing .env is normal.
	_ = godotenv.Load()

	if *configFile == "" {
		*configFile = os.Getenv(configEnv)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "❌ %v\n", err)

		return exitError
	}

	log := logger.NewLoggerWithWriter(cfg.Logging.Level, stderr)
	if *verbose {
		log.SetLevel("debug")
	}

	if *initConfig != "" {
		if err := cfg.SaveConfig(*initConfig); err != nil {
			log.Error("Failed to write configuration", "path", *initConfig, "error", err)

			return exitError
		}

		log.Info("Configuration written", "path", *initConfig)

		return exitOK
	}

	log.Info("Configuration loaded", "config", cfg.String())

	var sinks []io.Writer

	if cfg.Output.Console {
		sinks = append(sinks, stdout)
	}

	if cfg.Output.Path != "" {
		file, createErr := os.Create(cfg.Output.Path)
		if createErr != nil {
			log.Error("Failed to open report file", "path", cfg.Output.Path, "error", createErr)

			return exitError
		}
		defer file.Close()

		sinks = append(sinks, file)
	}

	runner, err := pipeline.NewRunner(cfg, log, sinks...)
	if err != nil {
		log.Error("Failed to set up run", "error", err)

		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		log.Error("Run failed", "run_id", runner.RunID(), "error", err)

		return exitError
	}

	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	return cfg, nil
}

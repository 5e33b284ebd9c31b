package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"pantrypick/internal/config"
	"pantrypick/internal/eventbus"
	"pantrypick/internal/logger"
	"pantrypick/internal/spoonacular"
	"pantrypick/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pantrypick: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("pantrypick", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "Path to the config file")
	apiKey := flags.String("api-key", "", "Spoonacular API key")
	debounce := flags.Duration("debounce", 0, "Quiet period before searching, e.g. 300ms")
	limit := flags.Int("limit", 0, "Maximum number of suggestions")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn or error")
	initConfig := flags.Bool("init", false, "Write a default config file and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	configSvc := config.NewConfigService()
	if *configPath != "" {
		configSvc = config.NewConfigServiceAt(*configPath)
	}

	if *initConfig {
		if err := configSvc.SaveToPath(config.DefaultConfig(), configSvc.Path()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return nil
	}

	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	config.ApplyEnv(cfg, os.LookupEnv)
	applyFlags(flags, cfg, *apiKey, *debounce, *limit, *logLevel)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	log, closer, err := logger.Open(cfg.Log.File, "pantrypick", cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	// tags every line of this run
	log = log.With("session", uuid.NewString())

	bus := eventbus.New(log)
	defer bus.Close()
	detach := logger.AttachEvents(bus, log)
	defer detach()

	client, err := spoonacular.New(cfg.API.Endpoint, cfg.API.Key, spoonacular.WithTimeout(cfg.API.Timeout.Std()))
	if err != nil {
		return err
	}

	model, err := ui.NewModel(ui.Options{
		Config: cfg,
		Client: client,
		Bus:    bus,
		Logger: log,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	log.Info("starting", "endpoint", cfg.API.Endpoint, "limit", cfg.API.Limit, "debounce", cfg.Search.Debounce.Std())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("exited", "pantry", len(model.Pantry()))
	return nil
}

// applyFlags lets explicitly set flags win over the file and the environment
func applyFlags(flags *pflag.FlagSet, cfg *config.Config, apiKey string, debounce time.Duration, limit int, logLevel string) {
	if flags.Changed("api-key") {
		cfg.API.Key = apiKey
	}
	if flags.Changed("debounce") {
		cfg.Search.Debounce = config.Duration(debounce)
	}
	if flags.Changed("limit") {
		cfg.API.Limit = limit
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

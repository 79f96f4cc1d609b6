package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/bernardocrvg/eventos-sympla-penha/internal/calendar"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/config"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/event"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/logger"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/pipeline"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/storage"
	"github.com/bernardocrvg/eventos-sympla-penha/internal/sympla"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagDataDir  string
	flagFormat   string
	flagVerbose  bool
	flagSchedule string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sympla-events",
		Short: "Process Sympla course events into publishable artifacts",
		Long: `Fetches published events from the Sympla API, keeps the upcoming
baptism-preparation courses, classifies them by venue and course type, and
writes events-data.json plus events.ics for the site to consume.`,
		RunE: runOnce,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Optional YAML config file")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Output directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(newWatchCmd())

	return cmd
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the pipeline on a cron schedule until interrupted",
		RunE:  runWatch,
	}
	cmd.Flags().StringVar(&flagSchedule, "schedule", "", "Cron schedule (overrides config)")
	return cmd
}

// loadConfig resolves the effective configuration from env, file and flags.
func loadConfig() (*config.Config, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

// runOnce is the root command logic: one full pipeline run.
func runOnce(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, store, err := execute(cfg)
	if err != nil {
		return err
	}

	if err := WriteOutput(os.Stdout, res, store, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// execute runs the pipeline once and persists the artifacts.
func execute(cfg *config.Config) (*pipeline.Result, *storage.Storage, error) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing storage: %w", err)
	}

	client := sympla.New(cfg.APIToken, cfg.BaseURL, cfg.MaxPages)

	res, err := pipeline.Run(client)
	if err != nil {
		return nil, nil, err
	}

	if previous, loadErr := store.LoadResult(); loadErr == nil && previous != nil {
		logger.Info("previous artifact found", logger.Fields{
			"previous_total": previous.TotalEvents,
			"current_total":  res.TotalEvents,
		})
	}

	if err := store.SaveResult(res); err != nil {
		return nil, nil, err
	}

	all := make([]*event.Event, 0, res.TotalEvents)
	all = append(all, res.PenhaEvents...)
	all = append(all, res.OutrasEvents...)
	all = append(all, res.CasaisEvents...)

	ics, err := calendar.BuildCalendar(all, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("building calendar: %w", err)
	}
	if err := store.SaveCalendar(ics); err != nil {
		return nil, nil, err
	}

	return res, store, nil
}

// runWatch re-runs the pipeline on a cron schedule until SIGINT/SIGTERM.
func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	schedule := cfg.WatchSchedule
	if flagSchedule != "" {
		schedule = flagSchedule
	}

	run := func() {
		if _, _, err := execute(cfg); err != nil {
			logger.Error("scheduled run failed", logger.Fields{"schedule": schedule}, err)
			return
		}
		logger.Info("scheduled run complete", nil)
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	logger.Info("watch mode started", logger.Fields{"schedule": schedule})
	run()
	c.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("signal received, stopping", logger.Fields{"signal": sig.String()})
	<-c.Stop().Done()
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

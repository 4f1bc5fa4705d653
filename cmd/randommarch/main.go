// randommarch generates random-march caves in the terminal.
//
// Usage:
//
//	randommarch generate     - Print a cave as text
//	randommarch view         - Browse caves interactively (r regenerates)
//	randommarch config       - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.randommarch, ./configs, embedded)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a rotating file instead of stderr
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/randommarch/internal/config"
	"github.com/samdwyer/randommarch/internal/logging"
	"github.com/samdwyer/randommarch/internal/telemetry"
	"github.com/samdwyer/randommarch/internal/world"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagWidth     int
	flagHeight    int
	flagWalkers   int
	flagSteps     int
	flagMaxStep   int
	flagBacktrack float64
	flagLogLevel  string
	flagLogFile   string
)

// app holds state shared by subcommands once the root pre-run has finished.
var app struct {
	cfg       config.Config
	logger    *log.Logger
	logCloser io.Closer
	shutdown  func(context.Context) error
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "randommarch",
	Short: "Random-march cave generator",
	Long: `randommarch carves cave levels with random walkers, then classifies
edge tiles and enclosed rock islands.

Examples:
  randommarch generate --seed 42
  randommarch generate --width 60 --height 20 --walkers 6 --color
  randommarch view --seed 7
  randommarch config > configs/randommarch.yaml`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config YAML")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	flags.IntVar(&flagWidth, "width", 0, "Grid width (0 = use config)")
	flags.IntVar(&flagHeight, "height", 0, "Grid height (0 = use config)")
	flags.IntVar(&flagWalkers, "walkers", -1, "Number of walkers (-1 = use config)")
	flags.IntVar(&flagSteps, "steps", -1, "Steps per walker (-1 = use config)")
	flags.IntVar(&flagMaxStep, "max-step", 0, "Maximum step length (0 = use config)")
	flags.Float64Var(&flagBacktrack, "backtrack", -1, "Backtrack probability (-1 = use config)")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Rotating log file path")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads configuration, then starts logging and telemetry.
func setup(cmd *cobra.Command, args []string) error {
	// Not fatal - env vars might be set directly
	envErr := godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logCloser = closer
	if envErr != nil {
		logger.Debug(".env file not loaded", "error", envErr)
	}

	if cfg.Telemetry.Enabled {
		telemetry.ConfigureEnv(cfg.Telemetry.Dataset)
		shutdown, err := telemetry.Setup(cmd.Context())
		if err != nil {
			// Generation works without observability
			logger.Warn("telemetry setup failed", "error", err)
		} else {
			app.shutdown = shutdown
		}
	}
	return nil
}

// teardown flushes telemetry and closes the log file.
func teardown(cmd *cobra.Command, args []string) error {
	if app.shutdown != nil {
		if err := app.shutdown(context.Background()); err != nil {
			app.logger.Error("telemetry shutdown failed", "error", err)
		}
	}
	if app.logCloser != nil {
		return app.logCloser.Close()
	}
	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("width") {
		cfg.Grid.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Grid.Height = flagHeight
	}
	if flags.Changed("walkers") {
		cfg.Walkers.Count = flagWalkers
	}
	if flags.Changed("steps") {
		cfg.Walkers.Steps = flagSteps
	}
	if flags.Changed("max-step") {
		cfg.Walkers.MaxStepLength = flagMaxStep
	}
	if flags.Changed("backtrack") {
		cfg.Walkers.BacktrackProbability = flagBacktrack
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
}

// resolveParams picks the seed and builds generator params from the loaded config.
func resolveParams() world.Params {
	seed := app.cfg.ResolveSeed(time.Now())
	if app.cfg.Seed == 0 {
		app.logger.Info("using time-based seed", "seed", seed)
	}
	return app.cfg.Params(seed)
}

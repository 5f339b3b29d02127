// Package cmd holds the quizladder command-line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizladder/internal/config"
	"github.com/abhisek/quizladder/internal/logging"
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/tier"
)

var rootCmd = &cobra.Command{
	Use:   "quizladder",
	Short: "Climb five tiers of arithmetic, one answer at a time",
	Long: `quizladder is a terminal arithmetic quiz. Each question has four options;
a run of correct answers promotes you from Elementary through Junior High,
High School and University to PhD. Wrong answers cost a life.`,
	SilenceUsage:      true,
	Annotations:       map[string]string{annotationTUI: "true"},
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runPlay,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (overrides "+config.EnvConfig+")")
	pf.Int("lives", 0, "Lives per round")
	pf.Uint64("seed", 0, "Random seed for reproducible questions (0 = random)")
	pf.String("tier", "", "Tier to start at: elementary, junior-high, high-school, university or phd")
	pf.Bool("reset-streak", false, "Reset the streak on a wrong answer")
	pf.Bool("no-journal", false, "Do not record rounds (hides the per-tier summary and history)")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Write logs to this file (the TUI discards logs otherwise)")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(riddlesCmd)
	rootCmd.AddCommand(versionCmd)
}

// env holds what setup resolved for the running command.
var env struct {
	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
}

// setup resolves the configuration (defaults, file, environment, flags)
// and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path, os.Getenv)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Supports(version) {
		return fmt.Errorf("config requires quizladder %s or newer (this is %s)", cfg.MinVersion, version)
	}
	env.cfg = cfg

	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	logFile, _ := cmd.Flags().GetString("log-file")
	switch {
	case logFile != "":
		env.logger, env.logCloser, err = logging.OpenFile(logFile, level)
		if err != nil {
			return err
		}
	case cmd.Annotations[annotationTUI] != "":
		env.logger = logging.Discard()
	default:
		env.logger = logging.New(os.Stderr, level)
	}
	slog.SetDefault(env.logger)
	return nil
}

func teardown(*cobra.Command, []string) {
	if env.logCloser != nil {
		env.logCloser.Close()
	}
}

// annotationTUI marks commands that own the terminal, so logs must not go
// to stderr.
const annotationTUI = "tui"

// applyFlags overrides cfg with the flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("lives") {
		cfg.Lives, _ = flags.GetInt("lives")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("reset-streak") {
		cfg.ResetStreakOnWrong, _ = flags.GetBool("reset-streak")
	}
	if noJournal, _ := flags.GetBool("no-journal"); noJournal {
		cfg.Journal = false
	}
	if flags.Changed("tier") {
		name, _ := flags.GetString("tier")
		t, err := tier.Parse(name)
		if err != nil {
			return fmt.Errorf("--tier: %w", err)
		}
		cfg.StartTier = t
	}
	return nil
}

// newRand returns the question random source for seed. Zero seeds from
// the runtime.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// newFactory builds the question factory from cfg.
func newFactory(cfg config.Config) (*problemgen.Factory, error) {
	opts, err := cfg.Problems()
	if err != nil {
		return nil, err
	}
	return problemgen.NewFactory(newRand(cfg.Seed), opts)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizladder/internal/app"
	"github.com/abhisek/quizladder/internal/store"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Start the interactive quiz (default)",
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-welcome", false, "Open the menu without the splash screen")
}

// runPlay launches the TUI.
func runPlay(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := env.cfg

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Session:   cfg.Session(),
		Questions: factory,
		Logger:    env.logger,
	}
	opts.SkipWelcome, _ = cmd.Flags().GetBool("skip-welcome")

	if cfg.Journal {
		st, err := store.OpenMemory(ctx)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()
		opts.Repo = st.EventRepo()
	}

	env.logger.Info("starting quiz", "seed", cfg.Seed, "lives", cfg.Lives, "start_tier", cfg.StartTier.Key())
	return app.Run(ctx, opts)
}

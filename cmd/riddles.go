package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizladder/internal/llm"
	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

var riddlesCmd = &cobra.Command{
	Use:   "riddles",
	Short: "Manage the PhD riddle pool",
}

var riddlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the riddles in the configured pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pool, source, err := loadPool()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d riddles from %s\n", len(pool), source)
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for i, r := range pool {
			fmt.Fprintf(out, "%3d. %s\n     = %d", i+1, r.Text, r.Answer)
			if r.Expression != "" {
				fmt.Fprintf(out, "  (%s)", r.Expression)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var riddlesCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check a riddle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pool, err := riddles.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d riddles OK\n", theme.Correct.Render("✓"), len(pool))
		return nil
	},
}

var riddlesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write new riddles with an LLM and save them to a pool file",
	Long: `generate asks the configured LLM provider for new riddles, validates
each one (structure, arithmetic and duplicates against the current pool),
and writes the current pool plus the accepted riddles to --out.

The provider is picked from the config file or QUIZLADDER_LLM_PROVIDER; when
no key is set the standard ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY
and OPENROUTER_API_KEY variables are tried in that order.`,
	RunE: runRiddlesGenerate,
}

func init() {
	riddlesGenerateCmd.Flags().Int("count", 10, "Number of riddles to ask for")
	riddlesGenerateCmd.Flags().String("theme", "", "Optional theme for the riddles")
	riddlesGenerateCmd.Flags().String("out", "", "File to write the pool to (required)")
	_ = riddlesGenerateCmd.MarkFlagRequired("out")

	riddlesCmd.AddCommand(riddlesListCmd)
	riddlesCmd.AddCommand(riddlesCheckCmd)
	riddlesCmd.AddCommand(riddlesGenerateCmd)
}

// loadPool returns the configured pool and where it came from.
func loadPool() ([]riddles.Riddle, string, error) {
	if len(env.cfg.Riddles) > 0 {
		return env.cfg.Riddles, "config", nil
	}
	if path := env.cfg.RiddlesFile; path != "" {
		pool, err := riddles.LoadFile(path)
		return pool, path, err
	}
	return riddles.Default(), "built-in pool", nil
}

func runRiddlesGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	count, _ := cmd.Flags().GetInt("count")
	themeName, _ := cmd.Flags().GetString("theme")
	outPath, _ := cmd.Flags().GetString("out")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	existing, _, err := loadPool()
	if err != nil {
		return err
	}

	llmCfg := env.cfg.LLM
	if !llmCfg.Discover(os.Getenv) {
		return fmt.Errorf("no LLM API key configured: %w", llmCfg.Validate())
	}
	provider, err := llm.New(ctx, llmCfg, env.logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Asking %s for %d riddles...\n", llmCfg.Provider, count)

	author := riddles.NewAuthor(provider, riddles.DefaultAuthorConfig())
	res, err := author.Write(llm.WithPurpose(ctx, "riddles"), riddles.AuthorInput{
		Count:    count,
		Theme:    themeName,
		Existing: existing,
	})
	if err != nil {
		return err
	}

	for _, r := range res.Rejected {
		fmt.Fprintf(out, "%s %s: %s\n", theme.Incorrect.Render("✗"), r.Riddle.Text, r.Err)
	}
	for _, r := range res.Accepted {
		fmt.Fprintf(out, "%s %s = %d\n", theme.Correct.Render("✓"), r.Text, r.Answer)
	}
	if len(res.Accepted) == 0 {
		return fmt.Errorf("no riddles passed validation")
	}

	pool := append(append([]riddles.Riddle(nil), existing...), res.Accepted...)
	if err := riddles.WriteFile(outPath, pool); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nWrote %d riddles (%d new) to %s\n", len(pool), len(res.Accepted), outPath)
	return nil
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizladder/internal/mathcheck"
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print generated questions for a tier",
	Long: `Generate questions for one tier and print them with their options and
answers. Every question is checked against the option rules and its answer
is recomputed from the text; use --seed to reproduce a batch.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	count, _ := cmd.Flags().GetInt("count")
	if count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	cfg := env.cfg

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Tier: %s\n\n", theme.TierBadge(cfg.StartTier))

	bad := 0
	for i := 1; i <= count; i++ {
		q := factory.Create(cfg.StartTier)
		fmt.Fprintf(out, "%d. %s\n", i, q.Text)
		for j, o := range q.Options {
			mark := " "
			if j == q.CorrectIndex() {
				mark = theme.Correct.Render("✓")
			}
			fmt.Fprintf(out, "   %c) %-8d %s\n", 'a'+j, o, mark)
		}
		switch err := problemgen.VerifyQuestion(q); {
		case err == nil:
		case errors.Is(err, mathcheck.ErrNotComputable):
			fmt.Fprintln(out, "   "+theme.Hint.Render("answer taken from the riddle pool"))
		default:
			bad++
			fmt.Fprintln(out, "   "+theme.Incorrect.Render("✗ "+err.Error()))
		}
		fmt.Fprintln(out)
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d questions failed verification", bad, count)
	}
	return nil
}

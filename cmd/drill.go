package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/layout"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play one round in plain line mode",
	Long: `drill plays a single round on stdin/stdout without the full-screen UI.
Pick an option with a, b, c or d, or type its value. Enter q to give up.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().Bool("no-wait", false, "Skip the pauses between questions")
}

func runDrill(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := env.cfg
	noWait, _ := cmd.Flags().GetBool("no-wait")

	factory, err := newFactory(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printer := &linePrinter{w: out}
	var display session.Display = printer

	var (
		repo    store.EventRepo
		journal *session.Journal
	)
	if cfg.Journal {
		st, err := store.OpenMemory(ctx)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()
		repo = st.EventRepo()
		journal = session.NewJournal(ctx, repo, env.logger)
		display = session.Displays{journal, printer}
	}

	queue := session.NewQueue()
	s := session.New(cfg.Session(), session.Deps{
		Questions: factory,
		Display:   display,
		Scheduler: queue,
	})

	d := &drill{
		session: s,
		queue:   queue,
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     out,
		wait:    !noWait,
		journal: journal,
	}
	if err := d.run(ctx); err != nil {
		return err
	}
	if journal != nil {
		printBreakdown(ctx, out, repo, journal.RoundID(), env.logger)
	}
	return nil
}

// drill drives a Session from line input.
type drill struct {
	session *session.Session
	queue   *session.Queue
	in      *bufio.Scanner
	out     io.Writer
	wait    bool

	// journal, when set, records an abandoned round.
	journal *session.Journal
}

func (d *drill) run(ctx context.Context) error {
	d.session.Start()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch d.session.Phase() {
		case session.PhaseAwaitingAnswer:
			quit, err := d.ask()
			if err != nil || quit {
				return err
			}
		case session.PhaseResolving:
			due, ok := d.queue.Next()
			if !ok {
				return errors.New("drill: resolving with nothing scheduled")
			}
			if d.wait {
				time.Sleep(due)
			}
			d.queue.Advance(due)
		default:
			return nil
		}
	}
}

// ask reads one answer. It reports quit when input ends or the player
// gives up.
func (d *drill) ask() (quit bool, err error) {
	q, _ := d.session.Current()
	fmt.Fprint(d.out, "> ")
	if !d.in.Scan() {
		d.giveUp()
		return true, d.in.Err()
	}
	line := strings.TrimSpace(d.in.Text())
	if strings.EqualFold(line, "q") {
		d.giveUp()
		return true, nil
	}
	if _, err := d.session.SubmitAnswer(parseLine(q, line)); err != nil {
		return false, err
	}
	return false, nil
}

func (d *drill) giveUp() {
	sum := d.session.Abandon()
	if d.journal != nil {
		d.journal.RecordAbandoned(sum)
	}
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, theme.Subtitle.Render("Round abandoned."))
	printSummary(d.out, sum)
}

// parseLine accepts an option letter or a typed value.
func parseLine(q problemgen.Question, line string) int {
	if len(line) == 1 {
		c := line[0] | 0x20
		if c >= 'a' && c < 'a'+problemgen.OptionCount {
			return int(c - 'a')
		}
	}
	return q.ParseInput(line)
}

// linePrinter is a session.Display that writes plain lines.
type linePrinter struct {
	w        io.Writer
	maxLives int
}

func (p *linePrinter) OnRoundStarted(info session.RoundInfo) {
	p.maxLives = info.MaxLives
	fmt.Fprintf(p.w, "%s  %s\n",
		theme.Title.Render(fmt.Sprintf("Round %d", info.Round)),
		layout.Hearts(info.MaxLives, info.MaxLives))
	fmt.Fprintln(p.w, theme.Subtitle.Render(info.Progress.Text()))
}

func (p *linePrinter) OnQuestion(q problemgen.Question) {
	fmt.Fprintln(p.w)
	fmt.Fprintf(p.w, "%s  %s\n", theme.TierBadge(q.Tier), theme.Body.Render(q.Text))
	for i, o := range q.Options {
		fmt.Fprintf(p.w, "  %c) %d\n", 'a'+i, o)
	}
}

func (p *linePrinter) OnAnswerResolved(o session.Outcome) {
	switch {
	case o.Correct:
		fmt.Fprintln(p.w, theme.Correct.Render("Correct!"))
	case !o.HasValue:
		fmt.Fprintf(p.w, "%s The answer was %d.\n", theme.Incorrect.Render("That's not one of the options."), o.Question.Answer)
	default:
		fmt.Fprintf(p.w, "%s The answer was %d.\n", theme.Incorrect.Render("Not quite."), o.Question.Answer)
	}
	fmt.Fprintf(p.w, "%s  %s\n", layout.Hearts(o.LivesLeft, p.maxLives), o.ProgressText())
	if o.LeveledUp && !o.Completed {
		fmt.Fprintln(p.w, theme.Selected.Render("Level up! On to "+o.Progress.Tier.DisplayName()))
	}
	if o.StreakReset {
		fmt.Fprintln(p.w, theme.Hint.Render("Streak reset."))
	}
}

func (p *linePrinter) OnProgressChanged(progression.Progress) {}

func (p *linePrinter) OnGameOver(s session.Summary) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, theme.Incorrect.Render("Game over at "+s.FinalTier.DisplayName()+"."))
	printSummary(p.w, s)
}

func (p *linePrinter) OnCompleted(s session.Summary) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, theme.Selected.Render("★ You reached the top of the ladder! ★"))
	printSummary(p.w, s)
}

func printSummary(w io.Writer, s session.Summary) {
	fmt.Fprintf(w, "Questions: %d  Correct: %d  Accuracy: %.0f%%\n", s.QuestionsAsked, s.Correct, s.Accuracy*100)
	fmt.Fprintf(w, "Best streak: %d  Stars: %d  Lives left: %d/%d\n", s.BestStreak, s.Stars, s.LivesLeft, s.MaxLives)
	fmt.Fprintf(w, "Time: %s  Avg answer: %s\n", s.Duration.Round(time.Second), s.AverageLatency.Round(100*time.Millisecond))
}

func printBreakdown(ctx context.Context, w io.Writer, repo store.EventRepo, roundID string, logger *slog.Logger) {
	stats, err := repo.TierBreakdown(ctx, roundID)
	if err != nil {
		logger.Warn("tier breakdown unavailable", "error", err)
		return
	}
	if len(stats) == 0 {
		return
	}
	fmt.Fprintln(w)
	for _, st := range stats {
		name := st.Tier
		if t, err := tier.Parse(st.Tier); err == nil {
			name = t.DisplayName()
		}
		fmt.Fprintf(w, "  %-12s %2d/%-2d  %3.0f%%\n", name, st.Correct, st.Answered, st.Accuracy()*100)
	}
}

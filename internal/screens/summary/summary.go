// Package summary shows the result of a finished round.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/components"
	"github.com/abhisek/quizladder/internal/ui/layout"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

// PlayAgainMsg is delivered to the quiz screen under the summary when the
// player asks for another round.
type PlayAgainMsg struct{}

// Result is everything the summary shows.
type Result struct {
	Summary session.Summary

	// Tiers is the per-tier breakdown from the journal. Empty when the
	// journal is disabled.
	Tiers []store.TierStat

	// RoundsPlayed counts rounds started in this process, 0 if unknown.
	RoundsPlayed int
}

// SummaryScreen displays a round summary.
type SummaryScreen struct {
	result Result
}

var (
	_ screen.Screen          = (*SummaryScreen)(nil)
	_ screen.KeyHintProvider = (*SummaryScreen)(nil)
	_ screen.BackHandler     = (*SummaryScreen)(nil)
)

// New creates a SummaryScreen.
func New(r Result) *SummaryScreen {
	return &SummaryScreen{result: r}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	switch s.result.Summary.Result {
	case session.ResultCompleted:
		return "Ladder Climbed"
	case session.ResultAbandoned:
		return "Round Abandoned"
	default:
		return "Round Over"
	}
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "Esc", Description: "Home"},
	}
}

// HandlesBack is true: Esc leaves both the summary and the finished round.
func (s *SummaryScreen) HandlesBack() bool { return true }

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "r":
		return s, tea.Sequence(router.Pop, func() tea.Msg { return PlayAgainMsg{} })
	case "esc", "q":
		return s, tea.Sequence(router.Pop, router.Pop)
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.result.Summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	variant := components.MascotIdle
	switch sum.Result {
	case session.ResultCompleted:
		variant = components.MascotCelebrating
	case session.ResultGameOver:
		variant = components.MascotAlert
	}
	if !layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight) {
		b.WriteString(center.Render(components.Mascot(variant)))
		b.WriteString("\n\n")
	}

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(headline(sum)))
	b.WriteString("\n")
	b.WriteString(center.Render(Stars(sum.Stars, len(tier.All()))))
	b.WriteString("\n\n")

	stats := []string{
		fmt.Sprintf("Questions: %d    Correct: %d    Accuracy: %.0f%%",
			sum.Answered, sum.Correct, sum.Accuracy*100),
		fmt.Sprintf("Best streak: %d    Reached: %s    Lives left: %d/%d",
			sum.BestStreak, sum.FinalTier.DisplayName(), sum.LivesLeft, sum.MaxLives),
		fmt.Sprintf("Time: %s    Avg answer: %s",
			clock(sum.Duration), sum.AverageLatency.Round(100*time.Millisecond)),
	}
	for _, line := range stats {
		b.WriteString(center.Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	if len(s.result.Tiers) > 0 {
		b.WriteString("\n")
		b.WriteString(s.renderTiers(width))
	}

	if s.result.RoundsPlayed > 0 {
		b.WriteString("\n\n")
		b.WriteString(center.Foreground(theme.TextDim).
			Render(fmt.Sprintf("Round %d · %d played this session", sum.Round, s.result.RoundsPlayed)))
	}

	return b.String()
}

// renderTiers renders one accuracy bar per tier reached.
func (s *SummaryScreen) renderTiers(width int) string {
	cw := components.ContentWidth(width)
	var rows []string
	for _, ts := range s.result.Tiers {
		label := ts.Tier
		if t, err := tier.Parse(ts.Tier); err == nil {
			label = t.DisplayName()
		}
		label = fmt.Sprintf("%-12s %2d/%-2d", label, ts.Correct, ts.Answered)
		rows = append(rows, components.NewProgressBar(label, ts.Accuracy(), true, cw).View())
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n"))
}

func headline(sum session.Summary) string {
	switch sum.Result {
	case session.ResultCompleted:
		return "You reached the top of the ladder!"
	case session.ResultGameOver:
		return fmt.Sprintf("Out of lives at %s", sum.FinalTier.DisplayName())
	case session.ResultAbandoned:
		return "Round abandoned"
	default:
		return "Round in progress"
	}
}

// Stars renders earned out of total as filled and hollow stars.
func Stars(earned, total int) string {
	earned = min(max(earned, 0), total)
	return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(strings.Repeat("★ ", earned)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("☆ ", total-earned))
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

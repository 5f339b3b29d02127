// Package history lists the rounds played this session.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screen"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/store"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/abhisek/quizladder/internal/ui/layout"
	"github.com/abhisek/quizladder/internal/ui/theme"
)

// roundLimit caps how many rounds are listed.
const roundLimit = 50

type historyLoadedMsg struct {
	Rounds []store.RoundRecord
	Err    error
}

type answersLoadedMsg struct {
	RoundID string
	Answers []store.AnswerEvent
	Err     error
}

// HistoryScreen displays finished rounds and, on demand, their answers.
type HistoryScreen struct {
	eventRepo store.EventRepo
	rounds    []store.RoundRecord
	answers   map[string][]store.AnswerEvent
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerEvent),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		rounds, err := repo.RecentRounds(context.Background(), store.QueryOpts{Limit: roundLimit})
		return historyLoadedMsg{Rounds: rounds, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.rounds = msg.Rounds
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.RoundID] = msg.Answers
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.rounds) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, s.loadAnswers(s.rounds[s.selected].RoundID)
		}
	}
	return s, nil
}

// loadAnswers fetches a round's answers the first time it is expanded.
func (s *HistoryScreen) loadAnswers(roundID string) tea.Cmd {
	if _, ok := s.answers[roundID]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		answers, err := repo.RoundAnswers(context.Background(), roundID, store.QueryOpts{})
		return answersLoadedMsg{RoundID: roundID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.rounds) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No rounds yet. Start climbing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.rounds {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+roundLine(r))))
		b.WriteString("\n")

		if s.expanded[i] {
			s.writeAnswers(&b, r.RoundID, width)
		}
	}

	return b.String()
}

func (s *HistoryScreen) writeAnswers(b *strings.Builder, roundID string, width int) {
	answers, ok := s.answers[roundID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	switch {
	case !ok:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading answers...")))
		b.WriteString("\n")
		return
	case len(answers) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers this round")))
		b.WriteString("\n")
		return
	}
	for _, a := range answers {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, answerLine(a)))
		b.WriteString("\n")
	}
}

// roundLine renders one round, e.g. "Jan 02 15:04  1:05  Out of lives at Junior High  12 asked  83%  ★".
func roundLine(r store.RoundRecord) string {
	secs := int(r.Duration.Seconds())
	var accuracy float64
	if r.QuestionsAsked > 0 {
		accuracy = float64(r.CorrectAnswers) / float64(r.QuestionsAsked) * 100
	}
	return fmt.Sprintf("%s  %d:%02d  %s  %d asked  %.0f%%  %s",
		r.Timestamp.Format("Jan 02 15:04"), secs/60, secs%60,
		resultText(r), r.QuestionsAsked, accuracy, strings.Repeat("★", r.Stars))
}

func resultText(r store.RoundRecord) string {
	name := r.Tier
	if t, err := tier.Parse(r.Tier); err == nil {
		name = t.DisplayName()
	}
	switch session.RoundResult(r.Result) {
	case session.ResultCompleted:
		return "Climbed the ladder"
	case session.ResultGameOver:
		return "Out of lives at " + name
	case session.ResultAbandoned:
		return "Abandoned at " + name
	default:
		return name
	}
}

func answerLine(a store.AnswerEvent) string {
	chosen := "none"
	if a.ChosenValue != nil {
		chosen = fmt.Sprint(*a.ChosenValue)
	}
	if a.Correct {
		return theme.Correct.Render("✓ ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%s = %d", a.QuestionText, a.CorrectAnswer))
	}
	return theme.Incorrect.Render("✗ ") +
		lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%s = %d (chose %s)", a.QuestionText, a.CorrectAnswer, chosen))
}

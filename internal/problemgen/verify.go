package problemgen

import (
	"fmt"

	"github.com/abhisek/quizladder/internal/mathcheck"
)

// Verify recomputes the answer from the problem text. Riddles cannot be
// recomputed from text and return mathcheck.ErrNotComputable.
func Verify(p Problem) error {
	var (
		got int
		err error
	)
	switch p.Kind {
	case KindRiddle:
		return fmt.Errorf("%w: riddle", mathcheck.ErrNotComputable)
	case KindLinear:
		got, err = mathcheck.SolveLinear(p.Text)
	default:
		got, err = mathcheck.EvaluatePrompt(p.Text)
	}
	if err != nil {
		return fmt.Errorf("verify %q: %w", p.Text, err)
	}
	if got != p.Answer {
		return fmt.Errorf("verify %q: computed %d, generated %d", p.Text, got, p.Answer)
	}
	return nil
}

// VerifyQuestion runs Verify on q's text and checks its options.
func VerifyQuestion(q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return Verify(Problem{Text: q.Text, Answer: q.Answer, Kind: q.Kind})
}

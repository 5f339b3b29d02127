package quiz

import "github.com/abhisek/quizladder/internal/screens/summary"

// roundEndedMsg carries the summary of round to the screen once the final
// answer has been on screen for the answer delay.
type roundEndedMsg struct {
	round  int
	result summary.Result
}

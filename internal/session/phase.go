package session

// Phase is the position of a Session in its question cycle.
type Phase int

const (
	PhaseIdle           Phase = iota // Not started
	PhaseAwaitingAnswer              // A question is shown and accepts one answer
	PhaseResolving                   // Answer resolved; next question pending
	PhaseRoundComplete               // Game over or completed; waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseResolving:
		return "resolving"
	case PhaseRoundComplete:
		return "round-complete"
	default:
		return "unknown"
	}
}

// RoundResult is how a round ended.
type RoundResult string

const (
	ResultInProgress RoundResult = "in-progress"
	ResultGameOver   RoundResult = "game-over"
	ResultCompleted  RoundResult = "completed"
	ResultAbandoned  RoundResult = "abandoned"
)

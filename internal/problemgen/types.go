package problemgen

import "github.com/abhisek/quizladder/internal/tier"

// OptionCount is the number of answer options on every question.
const OptionCount = 4

// NoAnswer is the option index meaning "no value chosen". Any index outside
// [0, OptionCount) is treated the same way.
const NoAnswer = -1

// Rand is the random source used by generation. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Kind identifies the shape of a generated problem.
type Kind string

const (
	KindSum        Kind = "sum"
	KindDifference Kind = "difference"
	KindProduct    Kind = "product"
	KindQuotient   Kind = "quotient"
	KindGrouped    Kind = "grouped"
	KindPower      Kind = "power"
	KindModulo     Kind = "modulo"
	KindFraction   Kind = "fraction-division"
	KindLinear     Kind = "linear-equation"
	KindRiddle     Kind = "riddle"
)

// Problem is the text and answer of a question before options are added.
type Problem struct {
	Text   string
	Answer int
	Kind   Kind

	// Operands are the generated numbers in the order they appear in Text.
	// Linear equations store p, q, r for "px + q = r". Riddles have none.
	Operands []int
}

// Question is an immutable multiple-choice question. Options holds four
// distinct values, exactly one of which equals Answer.
type Question struct {
	Text    string
	Answer  int
	Options [OptionCount]int
	Tier    tier.Tier
	Kind    Kind
}

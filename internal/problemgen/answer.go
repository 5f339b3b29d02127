package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Value returns the option at index i. Indexes outside the option range
// have no value.
func (q Question) Value(i int) (int, bool) {
	if i < 0 || i >= OptionCount {
		return 0, false
	}
	return q.Options[i], true
}

// IsCorrect reports whether choosing index i answers q correctly. An
// absent value is never correct.
func (q Question) IsCorrect(i int) bool {
	v, ok := q.Value(i)
	return ok && v == q.Answer
}

// IndexOf returns the index of value v among the options, or NoAnswer.
func (q Question) IndexOf(v int) int {
	for i, o := range q.Options {
		if o == v {
			return i
		}
	}
	return NoAnswer
}

// CorrectIndex returns the index of the correct option.
func (q Question) CorrectIndex() int {
	return q.IndexOf(q.Answer)
}

// ParseInput maps a typed answer to an option index. Whitespace is trimmed
// and a leading "+" or leading zeros are accepted. Input that is not a
// whole number, or not one of the options, yields NoAnswer.
func (q Question) ParseInput(input string) int {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return NoAnswer
	}
	return q.IndexOf(v)
}

// Validate checks the option invariants: four distinct values with the
// answer present exactly once.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	seen := make(map[int]bool, OptionCount)
	hits := 0
	for _, o := range q.Options {
		if seen[o] {
			return fmt.Errorf("option %d repeated in %v", o, q.Options)
		}
		seen[o] = true
		if o == q.Answer {
			hits++
		}
	}
	if hits != 1 {
		return fmt.Errorf("answer %d appears %d times in %v", q.Answer, hits, q.Options)
	}
	return nil
}

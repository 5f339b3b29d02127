// Package riddles holds the closed-form puzzles asked at the PhD tier: the
// draw-without-replacement pool, pool files, and LLM-assisted authoring.
package riddles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizladder/internal/mathcheck"
)

// ErrEmptyPool is returned when a pool is built from no riddles.
var ErrEmptyPool = errors.New("riddle pool is empty")

// Riddle is a prompt with a single whole-number answer.
type Riddle struct {
	Text   string `yaml:"text" json:"text"`
	Answer int    `yaml:"answer" json:"answer"`

	// Expression optionally restates the riddle as arithmetic whose value
	// is Answer, so the answer can be checked mechanically.
	Expression string `yaml:"expression,omitempty" json:"expression,omitempty"`
}

// Check recomputes Expression, when present, and compares it with Answer.
func (r Riddle) Check() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("riddle text is empty")
	}
	if r.Expression == "" {
		return nil
	}
	got, err := mathcheck.Evaluate(r.Expression)
	if err != nil {
		return fmt.Errorf("riddle %q: expression %q: %w", r.Text, r.Expression, err)
	}
	if got != r.Answer {
		return fmt.Errorf("riddle %q: expression %q is %d, answer says %d", r.Text, r.Expression, got, r.Answer)
	}
	return nil
}

// Default returns the built-in PhD riddles.
func Default() []Riddle {
	return []Riddle{
		{Text: "f(n) = n^2 - n + 1, f(5) = ?", Answer: 21, Expression: "5^2 - 5 + 1"},
		{Text: "5P3 = ?", Answer: 60, Expression: "5 × 4 × 3"},
		{Text: "F(1) = 1, F(2) = 1, F(n) = F(n-1) + F(n-2), F(6) = ?", Answer: 8, Expression: "(1 + 1) + (1 + 2) + 3"},
		{Text: "a < b < c are positive whole numbers and a + b + c = 9. How many (a, b, c)?", Answer: 3},
		{Text: "a_1 = 2, d = 3, a_10 = ?", Answer: 29, Expression: "2 + 9 × 3"},
	}
}

// Rand is the random source a Pool draws with.
type Rand interface {
	IntN(n int) int
}

// Pool draws riddles without replacement. When every riddle has been drawn
// the pool refills to its original contents before the next draw.
type Pool struct {
	all       []Riddle
	remaining []Riddle
}

// NewPool builds a pool over a copy of rs.
func NewPool(rs []Riddle) (*Pool, error) {
	if len(rs) == 0 {
		return nil, ErrEmptyPool
	}
	all := append([]Riddle(nil), rs...)
	p := &Pool{all: all}
	p.Reset()
	return p, nil
}

// Draw removes and returns a uniformly chosen riddle from the remaining set.
func (p *Pool) Draw(rng Rand) Riddle {
	if len(p.remaining) == 0 {
		p.Reset()
	}
	i := rng.IntN(len(p.remaining))
	r := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	return r
}

// Reset restores the pool to its original contents.
func (p *Pool) Reset() {
	p.remaining = append(p.remaining[:0], p.all...)
}

// Remaining is the number of riddles left before the next refill.
func (p *Pool) Remaining() int { return len(p.remaining) }

// Size is the number of riddles in a full pool.
func (p *Pool) Size() int { return len(p.all) }

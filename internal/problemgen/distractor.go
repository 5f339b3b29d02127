package problemgen

import "fmt"

// DistractorConfig controls how far wrong options stray from the answer.
// The spread for an answer c is max(MinSpread, |c|/SpreadDivisor + SpreadOffset).
type DistractorConfig struct {
	MinSpread     int `yaml:"min_spread"`
	SpreadDivisor int `yaml:"spread_divisor"`
	SpreadOffset  int `yaml:"spread_offset"`

	// MaxDraws bounds the number of candidate draws per question.
	MaxDraws int `yaml:"max_draws"`
}

// DefaultDistractorConfig returns spread = max(3, |c|/5 + 3).
func DefaultDistractorConfig() DistractorConfig {
	return DistractorConfig{
		MinSpread:     3,
		SpreadDivisor: 5,
		SpreadOffset:  3,
		MaxDraws:      1000,
	}
}

// Validate rejects configurations that cannot always yield three distinct
// wrong options.
func (c DistractorConfig) Validate() error {
	switch {
	case c.MinSpread < 3:
		return fmt.Errorf("min_spread must be at least 3, got %d", c.MinSpread)
	case c.SpreadDivisor < 1:
		return fmt.Errorf("spread_divisor must be positive, got %d", c.SpreadDivisor)
	case c.SpreadOffset < 0:
		return fmt.Errorf("spread_offset must not be negative, got %d", c.SpreadOffset)
	case c.MaxDraws < OptionCount:
		return fmt.Errorf("max_draws must be at least %d, got %d", OptionCount, c.MaxDraws)
	}
	return nil
}

// InvariantError reports that distractor generation ran out of draws. It
// only happens with a broken spread configuration.
type InvariantError struct {
	Correct int
	Spread  int
	Draws   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("generation invariant violated: %d draws with spread %d around %d did not yield %d distinct options",
		e.Draws, e.Spread, e.Correct, OptionCount)
}

// Distractors builds shuffled option sets around a correct answer.
type Distractors struct {
	rng Rand
	cfg DistractorConfig
}

// NewDistractors creates a Distractors.
func NewDistractors(rng Rand, cfg DistractorConfig) *Distractors {
	return &Distractors{rng: rng, cfg: cfg}
}

// Spread returns the maximum distance of a distractor from correct.
func (d *Distractors) Spread(correct int) int {
	abs := correct
	if abs < 0 {
		abs = -abs
	}
	return max(d.cfg.MinSpread, abs/d.cfg.SpreadDivisor+d.cfg.SpreadOffset)
}

// Generate returns four distinct values containing correct exactly once,
// in uniformly shuffled order.
func (d *Distractors) Generate(correct int) ([OptionCount]int, error) {
	var out [OptionCount]int
	spread := d.Spread(correct)

	out[0] = correct
	n := 1
	seen := map[int]bool{correct: true}
	draws := 0
	for n < OptionCount {
		if draws == d.cfg.MaxDraws {
			return out, &InvariantError{Correct: correct, Spread: spread, Draws: draws}
		}
		draws++

		delta := between(d.rng, -spread, spread)
		if delta == 0 {
			delta = between(d.rng, 1, spread)
		}
		candidate := correct + delta
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		out[n] = candidate
		n++
	}

	for i := OptionCount - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

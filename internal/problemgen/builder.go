package problemgen

import (
	"fmt"

	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/tier"
)

// Builder produces the problem text and answer for a tier.
type Builder struct {
	rng  Rand
	pool *riddles.Pool
}

// NewBuilder creates a Builder. The riddle pool serves the PhD tier.
func NewBuilder(rng Rand, pool *riddles.Pool) *Builder {
	return &Builder{rng: rng, pool: pool}
}

// Build generates a problem for t. Unknown tiers build an Elementary problem.
func (b *Builder) Build(t tier.Tier) Problem {
	switch t {
	case tier.JuniorHigh:
		return b.juniorHigh()
	case tier.HighSchool:
		return b.highSchool()
	case tier.University:
		return b.university()
	case tier.PhD:
		return b.phd()
	default:
		return b.elementary()
	}
}

// between returns a uniform value in [lo, hi].
func between(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

func (b *Builder) elementary() Problem {
	x := between(b.rng, 1, 20)
	y := between(b.rng, 1, 20)
	switch b.rng.IntN(4) {
	case 0:
		return binary(KindSum, x, "+", y, x+y)
	case 1:
		return binary(KindDifference, x, "-", y, x-y)
	case 2:
		return binary(KindProduct, x, "×", y, x*y)
	default:
		divisor := between(b.rng, 1, 20)
		quotient := between(b.rng, 1, 20)
		return binary(KindQuotient, quotient*divisor, "÷", divisor, quotient)
	}
}

func binary(kind Kind, x int, op string, y, answer int) Problem {
	return Problem{
		Text:     fmt.Sprintf("%d %s %d = ?", x, op, y),
		Answer:   answer,
		Kind:     kind,
		Operands: []int{x, y},
	}
}

func (b *Builder) juniorHigh() Problem {
	pattern := b.rng.IntN(3)
	x := between(b.rng, 1, 20)
	y := between(b.rng, 1, 20)
	z := between(b.rng, 1, 10)
	w := between(b.rng, 1, 10)

	p := Problem{Kind: KindGrouped, Operands: []int{x, y, z, w}}
	switch pattern {
	case 0:
		p.Text = fmt.Sprintf("(%d + %d) × %d - %d = ?", x, y, z, w)
		p.Answer = (x+y)*z - w
	case 1:
		p.Text = fmt.Sprintf("%d + (%d × %d) - %d = ?", x, y, z, w)
		p.Answer = x + y*z - w
	default:
		p.Text = fmt.Sprintf("(%d - %d) + (%d × %d) = ?", x, y, z, w)
		p.Answer = (x - y) + z*w
	}
	return p
}

func (b *Builder) highSchool() Problem {
	switch b.rng.IntN(3) {
	case 0:
		base := between(b.rng, 2, 7)
		exp := between(b.rng, 2, 3)
		answer := 1
		for range exp {
			answer *= base
		}
		return Problem{
			Text:     fmt.Sprintf("%d^%d = ?", base, exp),
			Answer:   answer,
			Kind:     KindPower,
			Operands: []int{base, exp},
		}
	case 1:
		m := between(b.rng, 2, 10)
		n := between(b.rng, 0, 100)
		return Problem{
			Text:     fmt.Sprintf("%d mod %d = ?", n, m),
			Answer:   n % m,
			Kind:     KindModulo,
			Operands: []int{n, m},
		}
	default:
		return b.fractionDivision()
	}
}

// fractionDivision builds (a/b) ÷ (c/d) with a whole-number quotient. Both
// fractions reduce to whole numbers and the dividend is a multiple of the
// divisor, so no draw is ever rejected.
func (b *Builder) fractionDivision() Problem {
	den1 := between(b.rng, 2, 9)
	den2 := between(b.rng, 2, 9)
	divisor := between(b.rng, 1, 9)
	quotient := between(b.rng, 1, 9)

	num1 := quotient * divisor * den1
	num2 := divisor * den2
	return Problem{
		Text:     fmt.Sprintf("(%d/%d) ÷ (%d/%d) = ?", num1, den1, num2, den2),
		Answer:   quotient,
		Kind:     KindFraction,
		Operands: []int{num1, den1, num2, den2},
	}
}

func (b *Builder) university() Problem {
	p := between(b.rng, 1, 10)
	x := between(b.rng, -10, 10)
	q := between(b.rng, -20, 20)
	r := p*x + q
	return Problem{
		Text:     linearText(p, q, r),
		Answer:   x,
		Kind:     KindLinear,
		Operands: []int{p, q, r},
	}
}

func linearText(p, q, r int) string {
	if q < 0 {
		return fmt.Sprintf("%dx - %d = %d, x = ?", p, -q, r)
	}
	return fmt.Sprintf("%dx + %d = %d, x = ?", p, q, r)
}

func (b *Builder) phd() Problem {
	r := b.pool.Draw(b.rng)
	return Problem{Text: r.Text, Answer: r.Answer, Kind: KindRiddle}
}

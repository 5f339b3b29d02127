package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("seqRand: value %d out of range [0, %d)", v, n))
	}
	return v
}

// constRand always returns zero.
type constRand struct{}

func (constRand) IntN(int) int { return 0 }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

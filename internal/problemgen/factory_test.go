package problemgen

import (
	"errors"
	"testing"

	"github.com/abhisek/quizladder/internal/mathcheck"
	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T, seed uint64) *Factory {
	t.Helper()
	f, err := NewFactory(seeded(seed), Options{Distractors: DefaultDistractorConfig()})
	require.NoError(t, err)
	return f
}

func TestCreate_InvariantsEveryTier(t *testing.T) {
	f := newTestFactory(t, 21)
	for _, tr := range tier.All() {
		t.Run(tr.String(), func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				q := f.Create(tr)
				require.Equal(t, tr, q.Tier)
				require.NoError(t, q.Validate())
				require.True(t, q.IsCorrect(q.CorrectIndex()))
			}
		})
	}
}

func TestCreate_VerifiesFromText(t *testing.T) {
	f := newTestFactory(t, 22)
	for _, tr := range tier.All() {
		for i := 0; i < 500; i++ {
			q := f.Create(tr)
			err := VerifyQuestion(q)
			if tr == tier.PhD {
				require.ErrorIs(t, err, mathcheck.ErrNotComputable)
				continue
			}
			require.NoError(t, err)
		}
	}
}

func TestCreate_UnknownTierStampsElementary(t *testing.T) {
	f := newTestFactory(t, 23)
	q := f.Create(tier.Tier(-1))
	assert.Equal(t, tier.Elementary, q.Tier)
}

func TestCreate_CustomRiddles(t *testing.T) {
	f, err := NewFactory(seeded(24), Options{
		Distractors: DefaultDistractorConfig(),
		Riddles:     []riddles.Riddle{{Text: "6! / 5! = ?", Answer: 6}},
	})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		q := f.Create(tier.PhD)
		assert.Equal(t, "6! / 5! = ?", q.Text)
		assert.Equal(t, 6, q.Answer)
	}
}

func TestNewFactory_RejectsBadSpread(t *testing.T) {
	cfg := DefaultDistractorConfig()
	cfg.MinSpread = 1
	_, err := NewFactory(seeded(25), Options{Distractors: cfg})
	assert.Error(t, err)
}

func TestCreate_PanicsOnInvariantViolation(t *testing.T) {
	cfg := DefaultDistractorConfig()
	cfg.MaxDraws = OptionCount
	f, err := NewFactory(constRand{}, Options{Distractors: cfg})
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		var inv *InvariantError
		assert.True(t, errors.As(err, &inv))
	}()
	f.Create(tier.Elementary)
}

package problemgen

import (
	"fmt"

	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/tier"
)

// Options configures a Factory.
type Options struct {
	Distractors DistractorConfig

	// Riddles is the PhD pool. Empty means riddles.Default().
	Riddles []riddles.Riddle
}

// Factory creates complete questions for a tier.
type Factory struct {
	builder     *Builder
	distractors *Distractors
}

// NewFactory validates opts and creates a Factory drawing from rng.
func NewFactory(rng Rand, opts Options) (*Factory, error) {
	if err := opts.Distractors.Validate(); err != nil {
		return nil, fmt.Errorf("distractor config: %w", err)
	}
	rs := opts.Riddles
	if len(rs) == 0 {
		rs = riddles.Default()
	}
	pool, err := riddles.NewPool(rs)
	if err != nil {
		return nil, err
	}
	return &Factory{
		builder:     NewBuilder(rng, pool),
		distractors: NewDistractors(rng, opts.Distractors),
	}, nil
}

// Create builds a question for t. Unknown tiers produce an Elementary
// question. It panics with *InvariantError if options cannot be generated,
// which a validated configuration rules out.
func (f *Factory) Create(t tier.Tier) Question {
	if !t.Valid() {
		t = tier.Elementary
	}
	p := f.builder.Build(t)
	opts, err := f.distractors.Generate(p.Answer)
	if err != nil {
		panic(err)
	}
	return Question{
		Text:    p.Text,
		Answer:  p.Answer,
		Options: opts,
		Tier:    t,
		Kind:    p.Kind,
	}
}

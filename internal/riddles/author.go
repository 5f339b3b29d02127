package riddles

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizladder/internal/llm"
)

// AuthorConfig tunes LLM riddle authoring.
type AuthorConfig struct {
	MaxTokens   int
	Temperature float64

	// MaxExisting caps how many pool riddles are listed in the prompt.
	MaxExisting int

	Validators []Validator
}

// DefaultAuthorConfig returns the authoring defaults.
func DefaultAuthorConfig() AuthorConfig {
	return AuthorConfig{
		MaxTokens:   2048,
		Temperature: 0.8,
		MaxExisting: 30,
		Validators:  DefaultValidators(),
	}
}

// AuthorInput describes one authoring request.
type AuthorInput struct {
	Count    int
	Theme    string
	Existing []Riddle
}

// Rejection is an authored riddle that failed validation.
type Rejection struct {
	Riddle Riddle
	Err    *ValidationError
}

// AuthorResult holds accepted riddles and the ones that were rejected.
type AuthorResult struct {
	Accepted []Riddle
	Rejected []Rejection
}

// Author writes new riddles with an LLM provider.
type Author struct {
	provider llm.Provider
	config   AuthorConfig
}

// NewAuthor creates an Author.
func NewAuthor(provider llm.Provider, cfg AuthorConfig) *Author {
	return &Author{provider: provider, config: cfg}
}

// Write asks the provider for a batch and keeps the riddles that pass every
// validator. Existing riddles count toward dedup.
func (a *Author) Write(ctx context.Context, in AuthorInput) (*AuthorResult, error) {
	if in.Count <= 0 {
		return nil, fmt.Errorf("riddle count must be positive, got %d", in.Count)
	}
	ctx = llm.WithPurpose(ctx, "riddle-authoring")

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(in, a.config.MaxExisting)}},
		Schema:      BatchSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM riddle authoring failed: %w", err)
	}

	var batch struct {
		Riddles []Riddle `json:"riddles"`
	}
	if err := json.Unmarshal(resp.Content, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := &AuthorResult{}
	seen := append([]Riddle(nil), in.Existing...)
	for _, r := range batch.Riddles {
		if verr := a.validate(r, seen); verr != nil {
			out.Rejected = append(out.Rejected, Rejection{Riddle: r, Err: verr})
			continue
		}
		out.Accepted = append(out.Accepted, r)
		seen = append(seen, r)
		if len(out.Accepted) == in.Count {
			break
		}
	}
	return out, nil
}

func (a *Author) validate(r Riddle, accepted []Riddle) *ValidationError {
	for _, v := range a.config.Validators {
		if verr := v.Validate(r, accepted); verr != nil {
			return verr
		}
	}
	return nil
}

// Package llm talks to hosted language models. It is used only to author
// new PhD riddles offline; question generation during play never calls it.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one request to a model and returns its reply.
type Provider interface {
	// Generate returns the model output. When req.Schema is set the
	// provider asks for structured output and the returned Content has
	// already been validated against the schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema, when set, constrains the reply to a JSON document.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "riddle-batch".
	Name        string
	Description string
	Definition  map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// finish applies the checks every provider shares: a reply cut off by the
// token limit is an error, and structured replies must match their schema.
func finish(req Request, resp *Response) (*Response, error) {
	if resp.StopReason == StopMaxTokens && req.Schema != nil {
		return nil, &Error{Kind: KindTruncated, Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveModel maps a short alias to a model ID. Unknown names pass through.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

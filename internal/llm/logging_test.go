package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`), Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: &Error{Kind: KindUnavailable, Err: errors.New("down")}},
	)
	p := WithLogging(mock, logger)
	ctx := WithPurpose(context.Background(), "riddle-authoring")

	if _, err := p.Generate(ctx, Request{Schema: &Schema{Name: "empty", Definition: map[string]any{"type": "object"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %d:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"level=DEBUG", "purpose=riddle-authoring", "schema=empty", "output_tokens=4"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line missing %q: %s", want, lines[0])
		}
	}
	for _, want := range []string{"level=WARN", "llm request failed", "down"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("second line missing %q: %s", want, lines[1])
		}
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	p, err := New(context.Background(), Config{Provider: ProviderMock, Retry: RetryConfig{MaxAttempts: 1}}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q", p.ModelID())
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderOpenRouter
	cfg.OpenRouter.APIKey = "sk-or"
	p, err = New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("openrouter: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("model = %q", p.ModelID())
	}

	if _, err := New(context.Background(), DefaultConfig(), logger); err == nil {
		t.Error("expected error without a key")
	}
}

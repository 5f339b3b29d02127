package llm

import (
	"context"
	"net/http"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropic(t *testing.T, status int, body any) *AnthropicProvider {
	t.Helper()
	srv := serveJSON(t, status, body)
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_Structured(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(riddleJSON, "end_turn"))
	resp, err := p.Generate(context.Background(), userRequest(riddleSchema()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != riddleJSON {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.TotalTokens != 80 || resp.StopReason != StopEnd {
		t.Errorf("usage = %+v, stop = %q", resp.Usage, resp.StopReason)
	}
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(`{"text":"no answer"}`, "end_turn"))
	_, err := p.Generate(context.Background(), userRequest(riddleSchema()))
	requireKind(t, err, KindInvalidOutput)
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropic(t, http.StatusOK, anthropicMessage(`{"text":"What`, "max_tokens"))
	_, err := p.Generate(context.Background(), userRequest(riddleSchema()))
	requireKind(t, err, KindTruncated)
}

func TestAnthropicProvider_StatusErrors(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusInternalServerError, KindUnavailable},
	}
	for _, tt := range tests {
		p := newTestAnthropic(t, tt.status, map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "nope"},
		})
		_, err := p.Generate(context.Background(), userRequest(nil))
		requireKind(t, err, tt.want)
	}
}

func TestAnthropicAliases(t *testing.T) {
	tests := map[string]string{
		"claude-sonnet":            "claude-sonnet-4-20250514",
		"claude-haiku":             "claude-haiku-4-5-20251001",
		"claude-sonnet-4-20250514": "claude-sonnet-4-20250514",
	}
	for in, want := range tests {
		if got := resolveModel(in, anthropicAliases); got != want {
			t.Errorf("resolveModel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error for missing key")
	}
}

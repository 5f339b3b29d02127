package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestMockProvider_ReplaysScript(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10}},
		MockJSON(map[string]int{"b": 2}),
	)

	first, err := mock.Generate(context.Background(), Request{System: "sys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"a":1}` || first.Usage.InputTokens != 10 {
		t.Fatalf("first = %+v", first)
	}
	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"b":2}` {
		t.Fatalf("second = %s", second.Content)
	}
	if mock.CallCount() != 2 || mock.Calls[0].System != "sys" {
		t.Fatalf("calls = %+v", mock.Calls)
	}
}

func TestMockProvider_ExhaustedScript(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	requireKind(t, err, KindUnavailable)

	mock.Push(MockResponse{Content: json.RawMessage(`{}`)})
	if _, err := mock.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error after Push: %v", err)
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"text":"x"}`)})
	_, err := mock.Generate(context.Background(), userRequest(riddleSchema()))
	requireKind(t, err, KindInvalidOutput)
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("purpose = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "riddle-authoring")); p != "riddle-authoring" {
		t.Fatalf("purpose = %q", p)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := error(&Error{Kind: KindRateLimited, RetryAfter: time.Second, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("Error does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("message = %q", err.Error())
	}
	if _, ok := KindOf(cause); ok {
		t.Error("KindOf reported a kind for a plain error")
	}

	wrapped := fmt.Errorf("authoring: %w", err)
	if k, ok := KindOf(wrapped); !ok || k != KindRateLimited {
		t.Errorf("KindOf(wrapped) = %v, %v", k, ok)
	}
}

func TestTransportErrorKeepsContextErrors(t *testing.T) {
	if err := transportError(context.Canceled); err != context.Canceled {
		t.Fatalf("got %v", err)
	}
	requireKind(t, transportError(errors.New("dial tcp")), KindUnavailable)
}

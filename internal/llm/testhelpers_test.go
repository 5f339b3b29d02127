package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func riddleSchema() *Schema {
	return &Schema{
		Name: "test-riddle",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":   map[string]any{"type": "string"},
				"answer": map[string]any{"type": "integer", "minimum": 0},
				"level":  map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
			},
			"required": []any{"text", "answer"},
		},
	}
}

const riddleJSON = `{"text":"What is 6 x 7?","answer":42}`

// serveJSON starts a server that answers every request with status and body.
func serveJSON(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func userRequest(schema *Schema) Request {
	return Request{
		System:    "You write riddles.",
		Messages:  []Message{{Role: RoleUser, Content: "One riddle please."}},
		Schema:    schema,
		MaxTokens: 256,
	}
}

func requireKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	got, ok := KindOf(err)
	if !ok || got != want {
		t.Fatalf("error kind = %v (%v), want %s: %v", got, ok, want, err)
	}
}

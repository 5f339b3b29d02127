package riddles

import "github.com/abhisek/quizladder/internal/llm"

// BatchSchema is the structured output requested from the LLM.
var BatchSchema = &llm.Schema{
	Name:        "riddle-batch",
	Description: "A batch of short math riddles, each with one whole-number answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"riddles": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The riddle as shown to the player, ending with '?'",
						},
						"answer": map[string]any{
							"type":        "integer",
							"description": "The whole-number answer",
						},
						"expression": map[string]any{
							"type":        "string",
							"description": "Plain arithmetic using + - * / ^ mod and parentheses that evaluates to the answer",
						},
					},
					"required":             []any{"text", "answer", "expression"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"riddles"},
		"additionalProperties": false,
	},
}

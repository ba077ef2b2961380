package problemgen

import "github.com/phoebegrace/NoFilterNaevis/internal/llm"

// QuestionSchema is the structured-output schema for one quiz question.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single quiz question with a hint and the correct answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question shown to the player",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short clue that does not give the answer away",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, as short as possible",
			},
		},
		"required":             []any{"question", "hint", "answer"},
		"additionalProperties": false,
	},
}

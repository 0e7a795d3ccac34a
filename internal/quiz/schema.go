package quiz

import "github.com/abhisek/quizai/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A titled quiz with an ordered list of questions and answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, descriptive title for the quiz",
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": MaxQuestions,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "1-based position of the question",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text shown to the player",
						},
						"type": map[string]any{
							"type": "string",
							"enum": []any{
								string(TypeMultipleChoice),
								string(TypeTrueFalse),
								string(TypeShortAnswer),
							},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-6 options for multiple-choice, [\"True\", \"False\"] for true-false, empty for short-answer",
						},
						"correctAnswer": map[string]any{
							"type":        "string",
							"description": "Exact text of the correct option, True/False, or the expected short answer",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "One or two sentences explaining the correct answer",
						},
					},
					"required":             []any{"id", "question", "type", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

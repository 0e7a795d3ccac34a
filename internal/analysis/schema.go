package analysis

import "github.com/abhisek/quizai/internal/llm"

// MaxListItems caps each list in a report.
const MaxListItems = 6

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"minItems":    1,
		"maxItems":    MaxListItems,
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// ReportSchema defines the JSON schema for history analysis responses.
var ReportSchema = &llm.Schema{
	Name:        "history-report",
	Description: "Analysis of quiz performance with strengths, weaknesses and recommendations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentences summarizing overall performance",
			},
			"strengths":       stringList("Topics or skills the player handles well"),
			"weaknesses":      stringList("Topics or skills where the player struggles"),
			"recommendations": stringList("Concrete next steps, such as topics and difficulties to practice"),
		},
		"required":             []any{"summary", "strengths", "weaknesses", "recommendations"},
		"additionalProperties": false,
	},
}

package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author writing questions that test real understanding of a topic.

Rules:
- Generate exactly the requested number of questions about the given topic at the given difficulty.
- Every question must be self-contained and have exactly one correct answer.
- "multiple-choice": give 4 options unless the topic calls for fewer. Distractors should be plausible mistakes, not jokes. correctAnswer is the exact text of the correct option.
- "true-false": options are ["True", "False"] and correctAnswer is "True" or "False".
- "short-answer": options is an empty array and correctAnswer is a short phrase of one to five words.
- If the format is "mixed", use a variety of question types. Otherwise every question must use the requested type.
- Number questions from 1 in order.
- Each explanation is one or two sentences.
- Do not repeat any question from the "already asked" list.`

// difficultyGuide describes each difficulty level to the model.
var difficultyGuide = map[Difficulty]string{
	DifficultyEasy:   "introductory facts and definitions a beginner should know",
	DifficultyMedium: "applied understanding that needs some familiarity with the topic",
	DifficultyHard:   "detailed, expert-level knowledge and multi-step reasoning",
}

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a %s quiz about %q.\n", input.Difficulty, input.Topic)
	fmt.Fprintf(&b, "Format: %s\n", input.Format)
	fmt.Fprintf(&b, "Difficulty: %s (%s)\n", input.Difficulty, difficultyGuide[input.Difficulty])
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

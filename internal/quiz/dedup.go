package quiz

import (
	"fmt"
	"strings"
)

// DuplicateValidator rejects quizzes that repeat a question, either within
// the quiz or from the input's prior questions.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(q *Quiz, input GenerateInput) *ValidationError {
	prior := make(map[string]bool, len(input.PriorQuestions))
	for _, p := range input.PriorQuestions {
		prior[normalizeText(p)] = true
	}

	seen := make(map[string]int, len(q.Questions))
	for _, qq := range q.Questions {
		key := normalizeText(qq.Question)
		if first, ok := seen[key]; ok {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d repeats question %d", qq.ID, first),
				Retryable: true,
			}
		}
		if prior[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d was already asked", qq.ID),
				Retryable: true,
			}
		}
		seen[key] = qq.ID
	}
	return nil
}

// recentPrior keeps the last max prior questions. max <= 0 keeps all.
func recentPrior(prior []string, max int) []string {
	if max > 0 && len(prior) > max {
		return prior[len(prior)-max:]
	}
	return prior
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	priorQuestions = recentPrior(priorQuestions, max)
	if len(priorQuestions) == 0 {
		return "None"
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

package quiz

// AnswerResult is the outcome for one question.
type AnswerResult struct {
	QuestionID int    `json:"questionId" yaml:"questionId"`
	Question   string `json:"question" yaml:"question"`
	Given      string `json:"given" yaml:"given"`
	Expected   string `json:"expected" yaml:"expected"`
	Correct    bool   `json:"correct" yaml:"correct"`
}

// Result is a graded quiz.
type Result struct {
	Answers []AnswerResult `json:"answers" yaml:"answers"`
	Correct int            `json:"correct" yaml:"correct"`
	Total   int            `json:"total" yaml:"total"`
}

// Percent returns the score as a percentage, or 0 for an empty quiz.
func (r Result) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) * 100 / float64(r.Total)
}

// Missed returns the incorrectly answered questions in quiz order.
func (r Result) Missed() []AnswerResult {
	var out []AnswerResult
	for _, a := range r.Answers {
		if !a.Correct {
			out = append(out, a)
		}
	}
	return out
}

// Grade checks answers keyed by question id. Unanswered questions are wrong.
// Choice answers given as a letter or index are recorded as option text.
func Grade(q *Quiz, answers map[int]string) Result {
	var res Result
	if q == nil {
		return res
	}
	for _, qq := range q.Questions {
		given := answers[qq.ID]
		ok := CheckAnswer(qq, given)
		if qq.Type == TypeMultipleChoice {
			given = ResolveChoice(qq, given)
		}
		res.Answers = append(res.Answers, AnswerResult{
			QuestionID: qq.ID,
			Question:   qq.Question,
			Given:      given,
			Expected:   qq.CorrectAnswer,
			Correct:    ok,
		})
		if ok {
			res.Correct++
		}
	}
	res.Total = len(q.Questions)
	return res
}

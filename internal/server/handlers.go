package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 200
)

type healthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	LLM    bool   `json:"llm"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(healthResponse{Status: "ok", Model: s.svc.Model(), LLM: s.svc.Model() != ""})
}

type createQuizRequest struct {
	Topic      string `json:"topic"`
	Format     string `json:"format"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

func (s *Server) createQuiz(c *fiber.Ctx) error {
	var req createQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return &quiz.InputError{Field: "body", Message: err.Error()}
	}
	q, err := s.svc.Generate(c.UserContext(), quiz.GenerateInput{
		Topic:      req.Topic,
		Format:     quiz.Format(req.Format),
		Difficulty: quiz.Difficulty(req.Difficulty),
		Count:      req.Count,
	}, true)
	if err != nil {
		return err
	}
	if q.IsEmpty() {
		return c.Status(fiber.StatusOK).JSON(q)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

type quizSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Topic      string    `json:"topic"`
	Format     string    `json:"format"`
	Difficulty string    `json:"difficulty"`
	Questions  int       `json:"questions"`
	Model      string    `json:"model,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Server) listQuizzes(c *fiber.Ctx) error {
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	recs, err := s.svc.Quizzes(c.UserContext(), limit)
	if err != nil {
		return err
	}
	out := make([]quizSummary, len(recs))
	for i, r := range recs {
		out[i] = quizSummary{
			ID:         r.ID,
			Title:      r.Title,
			Topic:      r.Topic,
			Format:     r.Format,
			Difficulty: r.Difficulty,
			Questions:  r.QuestionCount,
			Model:      r.Model,
			CreatedAt:  r.CreatedAt,
		}
	}
	return c.JSON(out)
}

func (s *Server) getQuiz(c *fiber.Ctx) error {
	q, err := s.svc.Quiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if c.QueryBool("hide_answers") {
		q = q.WithoutAnswers()
	}
	return c.JSON(q)
}

func (s *Server) deleteQuiz(c *fiber.Ctx) error {
	if err := s.svc.DeleteQuiz(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type submitRequest struct {
	Answers    map[string]string `json:"answers"`
	DurationMs int64             `json:"durationMs"`
}

type attemptResponse struct {
	AttemptID string              `json:"attemptId"`
	QuizID    string              `json:"quizId"`
	Sequence  int64               `json:"sequence"`
	Correct   int                 `json:"correct"`
	Total     int                 `json:"total"`
	Percent   float64             `json:"percent"`
	Answers   []quiz.AnswerResult `json:"answers"`
}

func (s *Server) submitAttempt(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return &quiz.InputError{Field: "body", Message: err.Error()}
	}
	answers := make(map[int]string, len(req.Answers))
	for k, v := range req.Answers {
		id, err := strconv.Atoi(k)
		if err != nil {
			return &quiz.InputError{Field: "answers", Message: "keys must be question ids, got " + strconv.Quote(k)}
		}
		answers[id] = v
	}

	q, err := s.svc.Quiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	rec, res, err := s.svc.Submit(c.UserContext(), q, answers, time.Duration(req.DurationMs)*time.Millisecond)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(attemptResponse{
		AttemptID: rec.AttemptID,
		QuizID:    rec.QuizID,
		Sequence:  rec.Sequence,
		Correct:   res.Correct,
		Total:     res.Total,
		Percent:   res.Percent(),
		Answers:   res.Answers,
	})
}

type attemptSummary struct {
	AttemptID  string    `json:"attemptId"`
	QuizID     string    `json:"quizId"`
	Title      string    `json:"title"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
	DurationMs int64     `json:"durationMs"`
	Timestamp  time.Time `json:"timestamp"`
}

func (s *Server) listAttempts(c *fiber.Ctx) error {
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	recs, err := s.svc.Attempts(c.UserContext(), limit)
	if err != nil {
		return err
	}
	out := make([]attemptSummary, len(recs))
	for i, r := range recs {
		out[i] = attemptSummary{
			AttemptID:  r.AttemptID,
			QuizID:     r.QuizID,
			Title:      r.Title,
			Topic:      r.Topic,
			Difficulty: r.Difficulty,
			Correct:    r.Correct,
			Total:      r.Total,
			DurationMs: r.DurationMs,
			Timestamp:  r.Timestamp,
		}
	}
	return c.JSON(out)
}

func (s *Server) analyze(c *fiber.Ctx) error {
	limit, err := listLimit(c)
	if err != nil {
		return err
	}
	r, err := s.svc.Analyze(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (s *Server) latestReport(c *fiber.Ctx) error {
	r, err := s.svc.LatestReport(c.UserContext())
	if err != nil {
		return err
	}
	if r == nil {
		return store.ErrNotFound
	}
	return c.JSON(r)
}

// listLimit reads ?limit=, defaulting to 20 and capping at 200.
func listLimit(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &quiz.InputError{Field: "limit", Message: "must be a positive integer"}
	}
	return min(n, maxListLimit), nil
}

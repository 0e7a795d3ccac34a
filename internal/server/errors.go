package server

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/abhisek/quizai/internal/analysis"
	"github.com/abhisek/quizai/internal/llm"
	"github.com/abhisek/quizai/internal/logger"
	"github.com/abhisek/quizai/internal/quiz"
	"github.com/abhisek/quizai/internal/store"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeNotFound         = "NOT_FOUND"
	CodeLLMRateLimited   = "LLM_RATE_LIMITED"
	CodeLLMServiceError  = "LLM_SERVICE_ERROR"
	CodeLLMRejected      = "LLM_REQUEST_REJECTED"
	CodeLLMInvalidOutput = "LLM_INVALID_OUTPUT"
	CodeHTTPError        = "HTTP_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// classify maps an error to a response code, status and client message.
func classify(err error) (string, int, string) {
	var (
		inputErr    *quiz.InputError
		quizVErr    *quiz.ValidationError
		reportVErr  *analysis.ValidationError
		rateErr     *llm.ErrRateLimit
		unavailErr  *llm.ErrProviderUnavailable
		invalidErr  *llm.ErrInvalidResponse
		maxTokenErr *llm.ErrMaxTokensExceeded
		rejectedErr *llm.ErrRequestRejected
		fiberErr    *fiber.Error
	)
	switch {
	case errors.As(err, &inputErr):
		return CodeInvalidInput, http.StatusBadRequest, inputErr.Error()
	case errors.Is(err, store.ErrNotFound):
		return CodeNotFound, http.StatusNotFound, "not found"
	case errors.As(err, &rateErr):
		return CodeLLMRateLimited, http.StatusTooManyRequests, "model rate limit reached, try again later"
	case errors.As(err, &rejectedErr):
		return CodeLLMRejected, http.StatusBadGateway, "model provider rejected the request, check the API key and model"
	case errors.As(err, &unavailErr):
		return CodeLLMServiceError, http.StatusServiceUnavailable, "model service unavailable"
	case errors.As(err, &quizVErr), errors.As(err, &reportVErr),
		errors.As(err, &invalidErr), errors.As(err, &maxTokenErr):
		return CodeLLMInvalidOutput, http.StatusBadGateway, "model returned unusable output"
	case errors.As(err, &fiberErr):
		return CodeHTTPError, fiberErr.Code, fiberErr.Message
	}
	return CodeInternal, http.StatusInternalServerError, "internal server error"
}

// ErrorHandler is the centralized fiber error handler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, status, msg := classify(err)

		log := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("code", code),
			zap.Int("status", status),
			zap.Error(err),
		)
		if status >= http.StatusInternalServerError {
			log.Error("request failed")
		} else {
			log.Warn("request rejected")
		}

		return c.Status(status).JSON(ErrorResponse{Code: code, Message: msg, Status: status})
	}
}

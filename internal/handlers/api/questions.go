package api

import (
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/logging"
	"advisorqa/internal/models"
	"advisorqa/internal/qa"
	"advisorqa/internal/store"
	"advisorqa/internal/validation"
)

// QuestionHandler serves the question endpoints.
type QuestionHandler struct {
	svc   *qa.Service
	store store.Store
	log   *slog.Logger
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(svc *qa.Service, st store.Store) *QuestionHandler {
	return &QuestionHandler{
		svc:   svc,
		store: st,
		log:   logging.ForComponent(logging.CompHTTP),
	}
}

// Ask handles POST /questions. The response body is the bare envelope the
// dashboard consumes, not wrapped in {status, data}.
func (h *QuestionHandler) Ask(c fiber.Ctx) error {
	var req models.QuestionRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonValidationError(c, malformedBody())
	}

	if errs := validation.ValidateQuestionRequest(&req); !errs.OK() {
		return jsonValidationError(c, errs)
	}

	resp, err := h.svc.Ask(c.Context(), &req)
	if err != nil {
		h.log.Error("failed to answer question", slog.String("error", err.Error()))
		return jsonInternalError(c)
	}

	return c.JSON(resp)
}

// ListReview handles GET /questions/review.
func (h *QuestionHandler) ListReview(c fiber.Ctx) error {
	questions, err := h.store.GetQuestionsForReview(c.Context())
	if err != nil {
		h.log.Error("failed to list review queue", slog.String("error", err.Error()))
		return jsonInternalError(c)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return jsonSuccess(c, questions)
}

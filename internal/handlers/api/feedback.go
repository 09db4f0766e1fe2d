package api

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/logging"
	"advisorqa/internal/models"
	"advisorqa/internal/store"
	"advisorqa/internal/validation"
)

// FeedbackHandler records thumbs up/down against returned answers.
type FeedbackHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(st store.Store) *FeedbackHandler {
	return &FeedbackHandler{store: st, log: logging.ForComponent(logging.CompHTTP)}
}

// Create handles POST /feedback.
func (h *FeedbackHandler) Create(c fiber.Ctx) error {
	var req models.FeedbackRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return jsonValidationError(c, malformedBody())
	}

	questionID, errs := validation.ValidateFeedback(&req)
	if !errs.OK() {
		return jsonValidationError(c, errs)
	}

	reasons := req.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	f := &models.Feedback{
		AnswerID:   strings.TrimSpace(req.AnswerID),
		QuestionID: questionID,
		Sentiment:  req.Sentiment,
		Reasons:    reasons,
		Comment:    strings.TrimSpace(req.Comment),
	}

	if err := h.store.CreateFeedback(c.Context(), f); err != nil {
		h.log.Error("failed to record feedback", slog.String("answer_id", f.AnswerID), slog.String("error", err.Error()))
		return jsonInternalError(c)
	}

	return jsonSuccess(c, f)
}

// List handles GET /feedback.
func (h *FeedbackHandler) List(c fiber.Ctx) error {
	feedback, err := h.store.ListFeedback(c.Context())
	if err != nil {
		h.log.Error("failed to list feedback", slog.String("error", err.Error()))
		return jsonInternalError(c)
	}
	if feedback == nil {
		feedback = []models.Feedback{}
	}
	return jsonSuccess(c, feedback)
}

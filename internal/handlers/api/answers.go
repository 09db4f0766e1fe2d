package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/logging"
	"advisorqa/internal/models"
	"advisorqa/internal/store"
	"advisorqa/internal/validation"
)

// AnswerHandler serves catalog administration.
type AnswerHandler struct {
	store store.Store
	log   *slog.Logger
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(st store.Store) *AnswerHandler {
	return &AnswerHandler{store: st, log: logging.ForComponent(logging.CompHTTP)}
}

// List handles GET /answers, returning the catalog in match order.
func (h *AnswerHandler) List(c fiber.Ctx) error {
	answers, err := h.store.GetAllAnswers(c.Context())
	if err != nil {
		h.log.Error("failed to list answers", slog.String("error", err.Error()))
		return jsonInternalError(c)
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	return jsonSuccess(c, answers)
}

// Get handles GET /answers/:id.
func (h *AnswerHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")
	if !validation.ValidateAnswerID(id) {
		return jsonError(c, fiber.StatusNotFound, "answer not found")
	}

	answer, err := h.store.GetAnswer(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrAnswerNotFound) {
			return jsonError(c, fiber.StatusNotFound, "answer not found")
		}
		h.log.Error("failed to fetch answer", slog.String("id", id), slog.String("error", err.Error()))
		return jsonInternalError(c)
	}

	return jsonSuccess(c, answer)
}

// Create handles POST /answers. New answers go to the end of the catalog.
func (h *AnswerHandler) Create(c fiber.Ctx) error {
	var answer models.Answer
	if err := json.Unmarshal(c.Body(), &answer); err != nil {
		return jsonValidationError(c, malformedBody())
	}

	if errs := validation.ValidateAnswer(&answer); !errs.OK() {
		return jsonValidationError(c, errs)
	}
	if answer.ID == "" {
		answer.ID = store.NewAnswerID()
	}

	if err := h.store.CreateAnswer(c.Context(), &answer); err != nil {
		if errors.Is(err, store.ErrDuplicateAnswer) {
			return jsonError(c, fiber.StatusConflict, "an answer with this id already exists")
		}
		h.log.Error("failed to create answer", slog.String("id", answer.ID), slog.String("error", err.Error()))
		return jsonInternalError(c)
	}

	h.log.Info("answer created", slog.String("id", answer.ID), slog.Any("admin", c.Locals("admin")))
	c.Status(fiber.StatusCreated)
	return jsonSuccess(c, answer)
}

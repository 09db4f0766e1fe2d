// Package qa answers dashboard questions: it logs each question, runs the
// matcher against the current catalog and turns the outcome into the
// response envelope, falling back to a classified canned reply.
package qa

import (
	"context"
	"fmt"
	"log/slog"

	"advisorqa/internal/classify"
	"advisorqa/internal/logging"
	"advisorqa/internal/matcher"
	"advisorqa/internal/metrics"
	"advisorqa/internal/models"
	"advisorqa/internal/store"
)

// Service handles the question lifecycle.
type Service struct {
	store store.Store
	rules classify.Rules
	log   *slog.Logger
}

// NewService creates a question service using the default fallback rules.
func NewService(st store.Store) *Service {
	return &Service{
		store: st,
		rules: classify.DefaultRules,
		log:   logging.ForComponent(logging.CompQA),
	}
}

// WithRules replaces the fallback rule list.
func (s *Service) WithRules(rules classify.Rules) *Service {
	s.rules = rules
	return s
}

// Ask records the question, matches it and returns the response envelope.
// The request must already be validated.
func (s *Service) Ask(ctx context.Context, req *models.QuestionRequest) (*models.QuestionResponse, error) {
	// Nothing is logged unless the catalog can be read.
	answers, err := s.store.GetAllAnswers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	q := &models.Question{
		Text:         req.Question,
		Placeholders: req.Placeholders,
		Context:      req.Context,
		Status:       models.QuestionPending,
	}
	if err := s.store.CreateQuestion(ctx, q); err != nil {
		return nil, fmt.Errorf("record question: %w", err)
	}

	resp := &models.QuestionResponse{ID: q.ID}

	if result := matcher.Match(req.Question, answers, req.Placeholders); result != nil {
		q.Status = models.QuestionMatched
		q.AnswerID = &result.Answer.ID
		q.Confidence = result.Tier

		resp.Status = models.QuestionMatched
		resp.Answer = result.Answer.Payload()
		resp.Confidence = result.Tier

		s.log.Debug("question matched",
			slog.String("question_id", q.ID.String()),
			slog.String("answer_id", result.Answer.ID),
			slog.Int("score", result.Score),
			slog.String("confidence", result.Tier))
	} else {
		rule := s.rules.Classify(req.Question)
		q.Category = rule.Category
		q.Confidence = models.ConfidenceLow

		resp.Confidence = models.ConfidenceLow
		resp.Message = rule.Message

		if rule.Review {
			q.Status = models.QuestionReview
			resp.Status = models.QuestionReview
		} else {
			q.Status = models.QuestionNoMatch
			resp.Status = models.QuestionNoMatch
			resp.Answer = Fallback(rule)
		}

		s.log.Info("question unmatched",
			slog.String("question_id", q.ID.String()),
			slog.String("category", rule.Category),
			slog.String("status", q.Status))
	}

	if err := s.store.UpdateQuestionStatus(ctx, q); err != nil {
		return nil, fmt.Errorf("update question status: %w", err)
	}

	metrics.RecordQuestion(resp.Status, resp.Confidence)
	return resp, nil
}

// Fallback synthesizes the answer returned for an unmatched question.
func Fallback(rule classify.Rule) *models.AnswerPayload {
	title := rule.Title
	if title == "" {
		title = "Question Received"
	}
	return &models.AnswerPayload{
		ID:         "fallback-" + rule.Category,
		Title:      title,
		Content:    rule.Message,
		Category:   rule.Category,
		AnswerType: models.AnswerTypeText,
		Data: models.FallbackData{
			FallbackType: rule.Category,
			IsUnmatched:  true,
			ActionText:   rule.ActionText,
		},
	}
}

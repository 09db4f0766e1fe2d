package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"advisorqa/internal/handlers/api"
	"advisorqa/internal/middleware"
	"advisorqa/internal/qa"
	"advisorqa/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, st store.Store, svc *qa.Service) error {
	var verifier middleware.TokenVerifier
	if s.Cfg.OIDCIssuer != "" {
		v, err := middleware.NewOIDCVerifier(ctx, s.Cfg.OIDCIssuer, s.Cfg.OIDCClientID)
		if err != nil {
			return err
		}
		verifier = v
	}
	admin := middleware.NewAdminAuth(s.Cfg.AdminAPIKey, verifier)
	if !admin.Enabled() {
		s.log.Warn("admin endpoints are unauthenticated; set ADMIN_API_KEY or OIDC_ISSUER")
	}

	probeHandler := api.NewProbeHandler(st)
	questionHandler := api.NewQuestionHandler(svc, st)
	answerHandler := api.NewAnswerHandler(st)
	feedbackHandler := api.NewFeedbackHandler(st)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Public API
	s.App.Post("/questions", questionHandler.Ask)
	s.App.Post("/feedback", feedbackHandler.Create)

	// Administrative API
	s.App.Get("/questions/review", admin.RequireAdmin, questionHandler.ListReview)
	s.App.Get("/answers", admin.RequireAdmin, answerHandler.List)
	s.App.Post("/answers", admin.RequireAdmin, answerHandler.Create)
	s.App.Get("/answers/:id", admin.RequireAdmin, answerHandler.Get)
	s.App.Get("/feedback", admin.RequireAdmin, feedbackHandler.List)

	return nil
}

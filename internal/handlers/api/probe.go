package api

import (
	"github.com/gofiber/fiber/v3"

	"advisorqa/internal/store"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	store store.Store
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(st store.Store) *ProbeHandler {
	return &ProbeHandler{store: st}
}

// Liveness handles /healthz. Returns 200 while the process is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles /readyz. Returns 200 once the store is reachable.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if err := h.store.Ping(c.Context()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "store unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

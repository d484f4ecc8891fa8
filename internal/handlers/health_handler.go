package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

type HealthHandler struct {
	keywordRepo repositories.KeywordRepository
}

func NewHealthHandler(keywordRepo repositories.KeywordRepository) *HealthHandler {
	return &HealthHandler{keywordRepo: keywordRepo}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:         "ok",
		Message:        "Backend is running",
		AnalysisModule: "loaded",
		Roles:          h.keywordRepo.Roles(),
	})
}

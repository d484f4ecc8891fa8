package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/observability"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const resumeFileField = "resumeFile"

type AnalyzeHandler struct {
	storageService services.StorageService
	keywordRepo    repositories.KeywordRepository
	worker         services.Worker
	maxFileSize    int64
	logger         *zap.Logger
}

func NewAnalyzeHandler(
	storageService services.StorageService,
	keywordRepo repositories.KeywordRepository,
	worker services.Worker,
	maxFileSize int64,
	logger *zap.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storageService: storageService,
		keywordRepo:    keywordRepo,
		worker:         worker,
		maxFileSize:    maxFileSize,
		logger:         logger,
	}
}

// HandleAnalyze handles POST /analyze-resume
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(resumeFileField)
	if err != nil {
		return h.reject(c, fiber.StatusBadRequest, "missing_file", "No file part. Use key 'resumeFile'.")
	}

	if fileHeader.Filename == "" {
		return h.reject(c, fiber.StatusBadRequest, "missing_file", "No selected file.")
	}

	if !services.AllowedFile(fileHeader.Filename) {
		return h.reject(c, fiber.StatusBadRequest, "invalid_extension", "Invalid file type. Only PDF and DOCX are allowed.")
	}

	if fileHeader.Size > h.maxFileSize {
		return h.reject(c, fiber.StatusRequestEntityTooLarge, "too_large",
			fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize))
	}

	role := strings.TrimSpace(c.FormValue("role"))
	if role != "" {
		if _, err := h.keywordRepo.FindByRole(role); err != nil {
			return h.reject(c, fiber.StatusBadRequest, "unknown_role",
				fmt.Sprintf("Unknown role '%s'. Available roles: %s", role, strings.Join(h.keywordRepo.Roles(), ", ")))
		}
	}

	filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		h.logger.Error("❌ Failed to save upload", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to save uploaded file.",
		})
	}

	// The temporary file never outlives the request.
	defer func() {
		if err := h.storageService.DeleteFile(filePath); err != nil {
			h.logger.Warn("⚠️  Failed to delete temporary file", zap.String("path", filePath), zap.Error(err))
		}
	}()

	if err := h.storageService.VerifyContent(filePath); err != nil {
		if errors.Is(err, services.ErrContentMismatch) {
			return h.reject(c, fiber.StatusUnsupportedMediaType, "content_mismatch",
				"File content does not match a PDF or DOCX document.")
		}
		h.logger.Error("❌ Failed to verify upload", zap.String("path", filePath), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Failed to read uploaded file.",
		})
	}

	h.logger.Info("📥 Analyzing resume",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("size", fileHeader.Size),
		zap.String("role", role),
	)

	result, err := h.worker.Submit(c.UserContext(), services.AnalysisJob{
		Document: models.NewDocument(filePath),
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, services.ErrWorkerStopped) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse{
				Error: "Analysis service is shutting down. Please retry.",
			})
		}
		h.logger.Error("❌ Analysis did not complete", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "Analysis did not complete.",
		})
	}

	return c.JSON(result)
}

func (h *AnalyzeHandler) reject(c *fiber.Ctx, status int, reason, message string) error {
	observability.UploadsRejectedTotal.WithLabelValues(reason).Inc()
	h.logger.Debug("🚫 Upload rejected", zap.String("reason", reason), zap.Int("status", status))
	return c.Status(status).JSON(models.ErrorResponse{Error: message})
}

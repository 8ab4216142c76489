package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ats-resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	storage     services.TempStorage
	analyzer    services.AnalyzerService
	maxFileSize int64
}

func NewAnalyzeHandler(
	storage services.TempStorage,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		storage:     storage,
		analyzer:    analyzer,
		maxFileSize: maxFileSize,
	}
}

// HandleAnalyze handles POST /api/analyze. The pipeline behind it never
// fails, so anything past request validation answers 200 with a
// scorecard; only malformed requests or truly unexpected errors reach
// the client as error responses.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	if !strings.EqualFold(filepath.Ext(resumeFile.Filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume file must be a PDF",
		})
	}

	jdText := c.FormValue("jd", "")

	tmpPath, err := h.storage.SaveUpload(resumeFile)
	if err != nil {
		// Unexpected storage failure; surfaced by the app error handler.
		return fmt.Errorf("failed to store resume file: %w", err)
	}
	defer func() {
		if err := h.storage.Remove(tmpPath); err != nil {
			log.Printf("⚠️  Failed to remove temp file %s: %v\n", tmpPath, err)
		}
	}()

	scoreCard := h.analyzer.Analyze(c.Context(), tmpPath, jdText)

	return c.JSON(scoreCard)
}

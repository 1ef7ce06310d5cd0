package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type ReportHandler struct {
	analysisRepo  repositories.AnalysisRepository
	reportService services.ReportService
}

func NewReportHandler(
	analysisRepo repositories.AnalysisRepository,
	reportService services.ReportService,
) *ReportHandler {
	return &ReportHandler{
		analysisRepo:  analysisRepo,
		reportService: reportService,
	}
}

// HandleGetReport handles GET /analyses/:id/report
func (h *ReportHandler) HandleGetReport(c *fiber.Ctx) error {
	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid analysis ID format",
		})
	}

	analysis, err := h.analysisRepo.FindByID(analysisID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Analysis not found",
		})
	}

	if analysis.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Analysis is %s, report not available yet", analysis.Status),
		})
	}

	report := h.reportService.Build(analysis)

	c.Set("Content-Type", "text/plain; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=report_%s.txt", analysisID))
	return c.SendString(report)
}

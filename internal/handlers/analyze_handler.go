package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type AnalyzeHandler struct {
	sessionRepo  repositories.SessionRepository
	docRepo      repositories.DocumentRepository
	analysisRepo repositories.AnalysisRepository
	worker       services.Worker
}

func NewAnalyzeHandler(
	sessionRepo repositories.SessionRepository,
	docRepo repositories.DocumentRepository,
	analysisRepo repositories.AnalysisRepository,
	worker services.Worker,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		sessionRepo:  sessionRepo,
		docRepo:      docRepo,
		analysisRepo: analysisRepo,
		worker:       worker,
	}
}

// HandleAnalyze handles POST /sessions/:id/analyze. It queues one analysis
// per uploaded resume against the session's job description and returns
// immediately; the worker runs the pipeline.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	if _, err := h.sessionRepo.FindByID(sessionID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	resumes, err := h.docRepo.FindBySession(sessionID, models.KindResume)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load documents",
		})
	}
	if len(resumes) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded for this session",
		})
	}

	jds, err := h.docRepo.FindBySession(sessionID, models.KindJobDescription)
	if err != nil || len(jds) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No job description uploaded for this session",
		})
	}

	var analysisIDs []string
	for _, resume := range resumes {
		analysis := &models.Analysis{
			ID:               uuid.New(),
			SessionID:        sessionID,
			ResumeDocumentID: resume.ID,
			Status:           models.StatusQueued,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.analysisRepo.Create(analysis); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create analysis job",
			})
		}

		h.worker.EnqueueJob(analysis.ID)
		analysisIDs = append(analysisIDs, analysis.ID.String())
	}

	return c.Status(fiber.StatusAccepted).JSON(models.AnalyzeResponse{
		SessionID:  sessionID.String(),
		AnalysisID: analysisIDs,
		Status:     string(models.StatusQueued),
	})
}

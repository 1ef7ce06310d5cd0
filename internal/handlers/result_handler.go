package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
	aggregator   *services.Aggregator
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
		aggregator:   services.NewAggregator(),
	}
}

// HandleGetAnalysis handles GET /analyses/:id
func (h *ResultHandler) HandleGetAnalysis(c *fiber.Ctx) error {
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

	return c.JSON(analysis)
}

// HandleGetResults handles GET /sessions/:id/results. It returns the
// session's analyses ranked by average score plus the recommended best
// match among the completed ones.
func (h *ResultHandler) HandleGetResults(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	analyses, err := h.analysisRepo.FindBySession(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load results",
		})
	}

	var completed []models.Analysis
	for _, analysis := range analyses {
		if analysis.Status == models.StatusCompleted {
			completed = append(completed, analysis)
		}
	}

	response := models.ResultsResponse{
		SessionID: sessionID.String(),
		Results:   h.aggregator.Rank(analyses),
	}

	if best, ok := h.aggregator.BestMatch(completed); ok {
		response.BestMatch = best
	}

	return c.JSON(response)
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type ChatHandler struct {
	sessionRepo repositories.SessionRepository
	chatService services.ChatService
}

func NewChatHandler(
	sessionRepo repositories.SessionRepository,
	chatService services.ChatService,
) *ChatHandler {
	return &ChatHandler{
		sessionRepo: sessionRepo,
		chatService: chatService,
	}
}

// HandleAsk handles POST /sessions/:id/chat
func (h *ChatHandler) HandleAsk(c *fiber.Ctx) error {
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

	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "question is required",
		})
	}

	answer, err := h.chatService.Ask(c.Context(), sessionID, req.Question)
	if err != nil {
		var unavailable *services.BackendUnavailable
		if errors.As(err, &unavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Chat backend is currently unavailable",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.ChatResponse{
		Question: req.Question,
		Answer:   answer,
	})
}

// HandleHistory handles GET /sessions/:id/chat
func (h *ChatHandler) HandleHistory(c *fiber.Ctx) error {
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

	turns := h.chatService.History(sessionID)
	if turns == nil {
		turns = []models.ChatTurn{}
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID.String(),
		"history":    turns,
	})
}

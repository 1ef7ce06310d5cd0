package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type SessionHandler struct {
	sessionRepo repositories.SessionRepository
	chatService services.ChatService
}

// NewSessionHandler takes the chat service so reset can drop the session's
// in-memory history; nil when chat is disabled.
func NewSessionHandler(sessionRepo repositories.SessionRepository, chatService services.ChatService) *SessionHandler {
	return &SessionHandler{
		sessionRepo: sessionRepo,
		chatService: chatService,
	}
}

// HandleCreate handles POST /sessions
func (h *SessionHandler) HandleCreate(c *fiber.Ctx) error {
	session := &models.Session{ID: uuid.New()}

	if err := h.sessionRepo.Create(session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// HandleReset handles DELETE /sessions/:id. It clears all session state:
// documents, analyses, and the session itself.
func (h *SessionHandler) HandleReset(c *fiber.Ctx) error {
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

	if err := h.sessionRepo.Reset(sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reset session",
		})
	}

	if h.chatService != nil {
		h.chatService.Clear(sessionID)
	}

	return c.JSON(fiber.Map{
		"message": "Session reset",
	})
}

package handlers

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirely/resume-matcher/internal/models"
)

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*models.Session)}
}

func (f *fakeSessionRepo) Create(session *models.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) FindByID(id uuid.UUID) (*models.Session, error) {
	if session, ok := f.sessions[id]; ok {
		return session, nil
	}
	return nil, fmt.Errorf("session not found")
}

func (f *fakeSessionRepo) Reset(id uuid.UUID) error {
	delete(f.sessions, id)
	return nil
}

type fakeChatService struct {
	history map[uuid.UUID][]models.ChatTurn
	cleared []uuid.UUID
}

func newFakeChatService() *fakeChatService {
	return &fakeChatService{history: make(map[uuid.UUID][]models.ChatTurn)}
}

func (f *fakeChatService) Ask(_ context.Context, sessionID uuid.UUID, question string) (string, error) {
	turn := models.ChatTurn{User: question, Assistant: "an answer"}
	f.history[sessionID] = append(f.history[sessionID], turn)
	return turn.Assistant, nil
}

func (f *fakeChatService) History(sessionID uuid.UUID) []models.ChatTurn {
	return f.history[sessionID]
}

func (f *fakeChatService) Clear(sessionID uuid.UUID) {
	delete(f.history, sessionID)
	f.cleared = append(f.cleared, sessionID)
}

func TestHandleHistoryUnknownSession(t *testing.T) {
	handler := NewChatHandler(newFakeSessionRepo(), newFakeChatService())

	app := fiber.New()
	app.Get("/sessions/:id/chat", handler.HandleHistory)

	req := httptest.NewRequest("GET", "/sessions/"+uuid.New().String()+"/chat", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleHistoryExistingSession(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	chatService := newFakeChatService()

	sessionID := uuid.New()
	require.NoError(t, sessionRepo.Create(&models.Session{ID: sessionID}))
	chatService.history[sessionID] = []models.ChatTurn{{User: "q", Assistant: "a"}}

	handler := NewChatHandler(sessionRepo, chatService)

	app := fiber.New()
	app.Get("/sessions/:id/chat", handler.HandleHistory)

	req := httptest.NewRequest("GET", "/sessions/"+sessionID.String()+"/chat", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleResetClearsChatHistory(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	chatService := newFakeChatService()

	sessionID := uuid.New()
	require.NoError(t, sessionRepo.Create(&models.Session{ID: sessionID}))
	chatService.history[sessionID] = []models.ChatTurn{{User: "q", Assistant: "a"}}

	handler := NewSessionHandler(sessionRepo, chatService)

	app := fiber.New()
	app.Delete("/sessions/:id", handler.HandleReset)

	req := httptest.NewRequest("DELETE", "/sessions/"+sessionID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, chatService.history[sessionID])
	assert.Contains(t, chatService.cleared, sessionID)
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
)

type ChatService interface {
	Ask(ctx context.Context, sessionID uuid.UUID, question string) (string, error)
	History(sessionID uuid.UUID) []models.ChatTurn
	Clear(sessionID uuid.UUID)
}

type chatSession struct {
	slug  string
	title string
	turns []models.ChatTurn
}

type chatService struct {
	docRepo        repositories.DocumentRepository
	extractor      ExtractorService
	promptBuilder  *PromptBuilder
	backend        ScoreBackend
	transcriptPath string

	mu       sync.Mutex
	sessions map[uuid.UUID]*chatSession
}

func NewChatService(
	docRepo repositories.DocumentRepository,
	extractor ExtractorService,
	backend ScoreBackend,
	transcriptPath string,
) ChatService {
	return &chatService{
		docRepo:        docRepo,
		extractor:      extractor,
		promptBuilder:  NewPromptBuilder(),
		backend:        backend,
		transcriptPath: transcriptPath,
		sessions:       make(map[uuid.UUID]*chatSession),
	}
}

var nonWordPattern = regexp.MustCompile(`[^a-z0-9\s]`)

// slugFromQuestion derives the transcript file name from the first question:
// lowercase, non-word characters stripped, first 6 words joined by
// underscores.
func slugFromQuestion(question string) string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(question), "")
	words := strings.Fields(cleaned)
	if len(words) > 6 {
		words = words[:6]
	}
	if len(words) == 0 {
		return "chat"
	}
	return strings.Join(words, "_")
}

// Ask implements ChatService. It answers the question against the session's
// current resume and job description, appends the turn to the history, and
// persists the transcript. Persistence is best-effort: a failed write is
// logged and the answer still goes back to the user.
func (c *chatService) Ask(ctx context.Context, sessionID uuid.UUID, question string) (string, error) {
	resumeText, jdText, err := c.loadTexts(sessionID)
	if err != nil {
		return "", err
	}

	prompt := c.promptBuilder.BuildChatPrompt(resumeText, jdText, question)

	answer, err := c.backend.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)

	c.mu.Lock()
	session, ok := c.sessions[sessionID]
	if !ok {
		session = &chatSession{
			slug:  slugFromQuestion(question),
			title: question,
		}
		c.sessions[sessionID] = session
	}
	session.turns = append(session.turns, models.ChatTurn{User: question, Assistant: answer})
	turns := make([]models.ChatTurn, len(session.turns))
	copy(turns, session.turns)
	slug, title := session.slug, session.title
	c.mu.Unlock()

	if err := c.persist(slug, title, turns); err != nil {
		log.Printf("⚠️  Failed to persist chat transcript %s: %v\n", slug, err)
	}

	return answer, nil
}

// History implements ChatService.
func (c *chatService) History(sessionID uuid.UUID) []models.ChatTurn {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[sessionID]
	if !ok {
		return nil
	}

	turns := make([]models.ChatTurn, len(session.turns))
	copy(turns, session.turns)
	return turns
}

// Clear implements ChatService. It drops the session's in-memory history on
// reset; transcript files already written stay on disk.
func (c *chatService) Clear(sessionID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sessions, sessionID)
}

func (c *chatService) loadTexts(sessionID uuid.UUID) (string, string, error) {
	resumes, err := c.docRepo.FindBySession(sessionID, models.KindResume)
	if err != nil {
		return "", "", fmt.Errorf("failed to find resume: %w", err)
	}
	if len(resumes) == 0 {
		return "", "", fmt.Errorf("no resume uploaded for session %s", sessionID)
	}

	jds, err := c.docRepo.FindBySession(sessionID, models.KindJobDescription)
	if err != nil {
		return "", "", fmt.Errorf("failed to find job description: %w", err)
	}
	if len(jds) == 0 {
		return "", "", fmt.Errorf("no job description uploaded for session %s", sessionID)
	}

	resume, err := c.extractor.Extract(resumes[0].FilePath)
	if err != nil {
		return "", "", err
	}

	jd, err := c.extractor.Extract(jds[0].FilePath)
	if err != nil {
		return "", "", err
	}

	return resume.Text(), jd.Text(), nil
}

// persist writes one JSON transcript file per chat session plus a metadata
// index mapping file names to human-readable titles.
func (c *chatService) persist(slug, title string, turns []models.ChatTurn) error {
	if err := os.MkdirAll(c.transcriptPath, 0755); err != nil {
		return fmt.Errorf("failed to create transcript directory: %w", err)
	}

	filename := slug + ".json"

	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := os.WriteFile(filepath.Join(c.transcriptPath, filename), data, 0644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	return c.updateIndex(filename, title)
}

func (c *chatService) updateIndex(filename, title string) error {
	indexPath := filepath.Join(c.transcriptPath, "sessions.json")

	index := make(map[string]string)
	if data, err := os.ReadFile(indexPath); err == nil {
		// A corrupt index is rebuilt from scratch.
		json.Unmarshal(data, &index)
	}

	index[filename] = title

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write session index: %w", err)
	}

	return nil
}

package handlers

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hirely/resume-matcher/internal/models"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

type UploadHandler struct {
	sessionRepo    repositories.SessionRepository
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	sessionRepo repositories.SessionRepository,
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		sessionRepo:    sessionRepo,
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /sessions/:id/upload. The multipart form takes
// one or more files under "resumes" and a single "job_description". Any
// file type goes: the extractor falls back to a generic reader for formats
// it does not recognize.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
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

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	var responses []models.UploadResponse

	for _, resumeFile := range form.File["resumes"] {
		response, status, err := h.saveDocument(sessionID, resumeFile, models.KindResume)
		if err != nil {
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		responses = append(responses, *response)
	}

	if jdFiles, exists := form.File["job_description"]; exists && len(jdFiles) > 0 {
		response, status, err := h.saveDocument(sessionID, jdFiles[0], models.KindJobDescription)
		if err != nil {
			return c.Status(status).JSON(fiber.Map{"error": err.Error()})
		}
		responses = append(responses, *response)
	}

	if len(responses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No valid files uploaded. Please upload 'resumes' and/or 'job_description'.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Files uploaded successfully",
		"documents": responses,
	})
}

func (h *UploadHandler) saveDocument(
	sessionID uuid.UUID,
	file *multipart.FileHeader,
	kind models.DocumentKind,
) (*models.UploadResponse, int, error) {
	if file.Size > h.maxFileSize {
		return nil, fiber.StatusBadRequest,
			fmt.Errorf("file %s too large. Max size: %d bytes", file.Filename, h.maxFileSize)
	}

	filename, filePath, err := h.storageService.SaveFile(file, string(kind))
	if err != nil {
		return nil, fiber.StatusInternalServerError,
			fmt.Errorf("failed to save file: %v", err)
	}

	doc := models.Document{
		ID:               uuid.New(),
		SessionID:        sessionID,
		Filename:         filename,
		OriginalFileName: file.Filename,
		Kind:             kind,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return nil, fiber.StatusInternalServerError,
			fmt.Errorf("failed to save document record: %v", err)
	}

	return &models.UploadResponse{
		ID:           doc.ID.String(),
		Filename:     doc.Filename,
		OriginalName: doc.OriginalFileName,
		Kind:         string(doc.Kind),
	}, fiber.StatusCreated, nil
}

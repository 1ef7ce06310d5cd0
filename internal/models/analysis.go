package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusQueued     AnalysisStatus = "queued"
	StatusProcessing AnalysisStatus = "processing"
	StatusCompleted  AnalysisStatus = "completed"
	StatusFailed     AnalysisStatus = "failed"
)

// BackendScore is one backend's verdict on a resume/job-description pair.
// A backend that could not be reached is marked unavailable instead of
// contributing a silent zero to the average.
type BackendScore struct {
	Backend   string `json:"backend"`
	Score     int    `json:"score"`
	Available bool   `json:"available"`
}

// KeywordCategory holds the matched and missing terms for one category.
type KeywordCategory struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// KeywordBreakdown categorizes matched/missing keywords across the four
// fixed categories. Categories absent from the backend response stay at
// their zero value (empty matched and missing lists).
type KeywordBreakdown struct {
	Skills     KeywordCategory `json:"skills"`
	Experience KeywordCategory `json:"experience"`
	Tools      KeywordCategory `json:"tools"`
	Education  KeywordCategory `json:"education"`
}

// ScoreBreakdown is the optional per-category numeric breakdown returned as
// a JSON object with exactly these four keys.
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Tools      float64 `json:"tools"`
	Education  float64 `json:"education"`
}

type Analysis struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"session_id"`
	ResumeDocumentID uuid.UUID         `gorm:"type:uuid;not null" json:"resume_document_id"`
	CandidateName    string            `gorm:"type:text" json:"candidate_name"`
	Scores           []BackendScore    `gorm:"serializer:json;type:jsonb" json:"scores"`
	AverageScore     float64           `gorm:"type:decimal(5,2)" json:"average_score"`
	Summary          string            `gorm:"type:text" json:"summary"`
	MissingSkills    string            `gorm:"type:text" json:"missing_skills"`
	Suggestions      string            `gorm:"type:text" json:"suggestions"`
	KeywordBreakdown *KeywordBreakdown `gorm:"serializer:json;type:jsonb" json:"keyword_breakdown,omitempty"`
	ScoreBreakdown   *ScoreBreakdown   `gorm:"serializer:json;type:jsonb" json:"score_breakdown,omitempty"`
	Status           AnalysisStatus    `gorm:"not null;default:'queued'" json:"status"`
	ErrorMessage     string            `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
}

func (Analysis) TableName() string {
	return "analyses"
}

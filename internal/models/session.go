package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is one user's interactive state: uploaded documents, analysis
// results, and chat history all hang off a session and are cleared together
// on reset. Nothing outlives the session except persisted chat transcripts.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;default:now()" json:"updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

package entity

import (
	"time"

	"github.com/google/uuid"

	"studydeck/constants"
)

// ChatMessage is one persisted conversation turn about a document.
type ChatMessage struct {
	ID         uuid.UUID          `json:"id"`
	DocumentID uuid.UUID          `json:"document_id"`
	Role       constants.ChatRole `json:"role"`
	Content    string             `json:"content"`
	CreatedAt  time.Time          `json:"created_at"`
}

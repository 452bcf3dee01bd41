package db

import (
	"time"

	"github.com/google/uuid"
)

// User is a stored user account row.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Resume is a stored resume analysis row. Analysis holds the full
// AnalysisResult as JSON.
type Resume struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Filename   string
	ATSScore   int
	Analysis   []byte
	AIFeedback string
	UploadedAt time.Time
}

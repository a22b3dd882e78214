package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                // Primary key
	Email        string    `json:"email" db:"email"`          // Unique login email
	PasswordHash string    `json:"-" db:"senha_hash"`         // bcrypt digest, never serialized
	CreatedAt    time.Time `json:"created_at" db:"criado_em"` // Creation timestamp
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Rows are write-once: there are no update
// or delete paths, so no soft-delete column.
type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Email             string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Username          string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash      string    `gorm:"size:200;not null" json:"-"`
	EntertainmentType string    `gorm:"size:50;not null" json:"entertainment_type"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

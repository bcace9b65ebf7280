package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record a post's author reference points at.
// Authentication and sessions live outside this service; the model exists so
// the author foreign key has a target with a cascade rule.
type User struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username string    `json:"username" db:"username" gorm:"type:varchar(150);not null;unique"`
	Email    string    `json:"email" db:"email" gorm:"type:varchar(254)"`
	Joined   time.Time `json:"joined" db:"joined" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	// Deleting a user deletes every post they authored.
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

package models

import "github.com/google/uuid"

// Category is a rubric a post is filed under. Every post belongs to exactly
// one category.
type Category struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`

	// Deleting a category deletes every post filed under it.
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

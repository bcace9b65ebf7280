package models

import "github.com/google/uuid"

// Tag is a free-form label attached to posts. A post can carry any number of
// tags and a tag can sit on any number of posts. Deleting a tag only removes
// the associations, never the posts.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a single article: a markdown body plus the metadata and derived
// fields the site serves it with.
type Post struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title string    `json:"title" db:"title" gorm:"type:varchar(70);not null"`

	// Body holds markdown source, not rendered HTML.
	Body string `json:"body" db:"body" gorm:"type:text;not null"`

	CreatedTime  time.Time `json:"createdTime" db:"created_time" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	ModifiedTime time.Time `json:"modifiedTime" db:"modified_time" gorm:"type:timestamp;not null"`

	// Excerpt is recomputed from Body on every save; anything written to it
	// directly is overwritten by content.PrepareForSave.
	Excerpt string `json:"excerpt" db:"excerpt" gorm:"type:varchar(200);not null;default:''"`

	CategoryID uuid.UUID `json:"categoryId" db:"category_id" gorm:"type:uuid;not null;index:idx_posts_category_id"`
	AuthorID   uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index:idx_posts_author_id"`

	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Author   User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Tags     []Tag    `json:"tags,omitempty" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}

package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rywall/blog-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts, newest first, with their associations loaded
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		Order("created_time DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID with its associations loaded
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Category").
		Preload("Author").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database. Tags present on the post are
// associated in the same write.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update updates an existing post in the database
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// ReplaceTags swaps the post's tag set for the given tags
func (r *PostRepo) ReplaceTags(post *models.Post, tags []models.Tag) error {
	return r.db.Model(post).Association("Tags").Replace(tags)
}

// Delete removes a post from the database by id
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Post{}, id).Error
}

package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rywall/blog-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindAll returns all users from the database
func (r *UserRepo) FindAll() ([]*models.User, error) {
	var users []*models.User
	err := r.db.Order("username").Find(&users).Error
	return users, err
}

// FindByID returns a user by their ID
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Delete removes a user by id. The database cascades the delete to every
// post they authored.
func (r *UserRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, id).Error
}

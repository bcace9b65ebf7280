package database

import (
	"gorm.io/gorm"
)

type Database struct {
	categoryRepo *CategoryRepo
	tagRepo      *TagRepo
	postRepo     *PostRepo
	userRepo     *UserRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		categoryRepo: NewCategoryRepo(db),
		tagRepo:      NewTagRepo(db),
		postRepo:     NewPostRepo(db),
		userRepo:     NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

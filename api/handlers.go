package api

import (
	"github.com/rywall/blog-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, baseURL string) *routeHandlers {
	return &routeHandlers{
		categoryHandler: newCategoryHandler(database.CategoryRepo()),
		tagHandler:      newTagHandler(database.TagRepo()),
		postHandler:     newPostHandler(database.PostRepo(), baseURL),
	}
}

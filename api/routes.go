package api

import (
	"github.com/go-chi/chi/v5"
)

// setupContentRoutes mounts the content-model surface: categories, tags,
// posts. Patterns for the detail routes live in urls.go so the canonical
// address resolver stays in sync with what is mounted here.
func setupContentRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Category endpoints
		r.Get(categoriesRoute, handlers.categoryHandler.getAllCategories())
		r.Get(categoryDetailRoute, handlers.categoryHandler.getCategory())
		r.Post(categoryRoute, handlers.categoryHandler.createCategory())
		r.Put(categoryDetailRoute, handlers.categoryHandler.updateCategory())
		r.Delete(categoryDetailRoute, handlers.categoryHandler.deleteCategory())

		// Tag endpoints
		r.Get(tagsRoute, handlers.tagHandler.getAllTags())
		r.Post(tagRoute, handlers.tagHandler.createTag())
		r.Delete(tagDetailRoute, handlers.tagHandler.deleteTag())

		// Post endpoints
		r.Get(postsRoute, handlers.postHandler.getAllPosts())
		r.Get(postDetailRoute, handlers.postHandler.getPost())
		r.Post(postRoute, handlers.postHandler.createPost())
		r.Put(postDetailRoute, handlers.postHandler.updatePost())
		r.Delete(postDetailRoute, handlers.postHandler.deletePost())
	})
}

package api

import (
	"strings"

	"github.com/google/uuid"
)

// Route patterns for the content surface. setupContentRoutes mounts these;
// the resolvers below build canonical addresses from the same constants so
// the two cannot drift apart.
const (
	categoriesRoute     = "/categories"
	categoryRoute       = "/category"
	categoryDetailRoute = "/category/{categoryID}"

	tagsRoute      = "/tags"
	tagRoute       = "/tag"
	tagDetailRoute = "/tag/{tagID}"

	postsRoute      = "/posts"
	postRoute       = "/post"
	postDetailRoute = "/post/{postID}"
)

// PostPath returns the canonical path identifying a post.
func PostPath(id uuid.UUID) string {
	return strings.Replace(postDetailRoute, "{postID}", id.String(), 1)
}

// PostURL resolves the absolute canonical address for a post.
func PostURL(baseURL string, id uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + PostPath(id)
}

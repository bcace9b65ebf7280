package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rywall/blog-backend/content"
	"github.com/rywall/blog-backend/errs"
	"github.com/rywall/blog-backend/models"
)

// postStore is the slice of database.PostRepo the handler needs.
type postStore interface {
	FindAll() ([]*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
	Add(post *models.Post) error
	Update(post *models.Post) error
	ReplaceTags(post *models.Post, tags []models.Tag) error
	Delete(id uuid.UUID) error
}

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  postStore
	baseURL   string
}

func newPostHandler(postRepo postStore, baseURL string) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
		baseURL:   baseURL,
	}
}

// PostResponse carries a post together with its canonical address.
type PostResponse struct {
	Post models.Post `json:"post"`
	URL  string      `json:"url"`
}

// PostCollectionResponse represents multiple posts
type PostCollectionResponse struct {
	Posts []PostResponse `json:"posts"`
	Total int            `json:"total,omitempty"`
}

func (h postHandler) postResponse(post models.Post) PostResponse {
	return PostResponse{
		Post: post,
		URL:  PostURL(h.baseURL, post.ID),
	}
}

// getAllPosts retrieves all posts, newest first, with their associations
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		var postResponses []PostResponse
		for _, post := range posts {
			postResponses = append(postResponses, h.postResponse(*post))
		}

		response := PostCollectionResponse{
			Posts: postResponses,
			Total: len(postResponses),
		}

		h.responder.WriteJSON(w, response)
	}
}

// getPost retrieves a specific post by ID
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		h.responder.WriteJSON(w, h.postResponse(*post))
	}
}

// createPost creates a new post. The body is treated as markdown; the
// excerpt and modified time are derived before the record is written, never
// taken from the payload.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("title is required"))
			return
		}
		if post.CategoryID == uuid.Nil {
			h.responder.WriteError(w, errs.NewBadRequestError("categoryId is required"))
			return
		}
		if post.AuthorID == uuid.Nil {
			h.responder.WriteError(w, errs.NewBadRequestError("authorId is required"))
			return
		}

		if err := content.PrepareForSave(&post); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to derive post fields", err))
			return
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		createdPost, err := h.postRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created post", "post", err))
			return
		}

		w.Header().Set("Location", PostPath(createdPost.ID))
		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, h.postResponse(*createdPost))
	}
}

// updatePost updates an existing post. The excerpt is re-derived from the
// incoming body on every update; the creation time is kept from the stored
// record.
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existingPost, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		var post models.Post
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post.ID = postID
		post.CreatedTime = existingPost.CreatedTime
		if post.Title == "" {
			post.Title = existingPost.Title
		}
		if post.CategoryID == uuid.Nil {
			post.CategoryID = existingPost.CategoryID
		}
		if post.AuthorID == uuid.Nil {
			post.AuthorID = existingPost.AuthorID
		}

		tags := post.Tags
		post.Tags = nil

		if err := content.PrepareForSave(&post); err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to derive post fields", err))
			return
		}

		if err := h.postRepo.Update(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update post", "post", err))
			return
		}

		if tags != nil {
			if err := h.postRepo.ReplaceTags(&post, tags); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("replace post tags", "post", err))
				return
			}
		}

		updatedPost, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated post", "post", err))
			return
		}

		h.responder.WriteJSON(w, h.postResponse(*updatedPost))
	}
}

// deletePost deletes a post by ID
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, apiErr := parseIDParam(r, "postID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.postRepo.FindByID(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if err := h.postRepo.Delete(postID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}

// parseIDParam reads a uuid route parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, *errs.ApiErr) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rywall/blog-backend/errs"
	"github.com/rywall/blog-backend/models"
)

// categoryStore is the slice of database.CategoryRepo the handler needs.
type categoryStore interface {
	FindAll() ([]*models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	Add(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo categoryStore
}

func newCategoryHandler(categoryRepo categoryStore) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

// getAllCategories retrieves all categories
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"categories": categories,
			"total":      len(categories),
		})
	}
}

// getCategory retrieves a specific category by ID
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// createCategory creates a new category
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

// updateCategory updates an existing category
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.categoryRepo.FindByID(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		category.ID = categoryID
		if err := h.categoryRepo.Update(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update category", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory deletes a category by ID. Posts filed under it go with it.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, apiErr := parseIDParam(r, "categoryID")
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if _, err := h.categoryRepo.FindByID(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete category", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}

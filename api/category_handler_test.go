package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rywall/blog-backend/models"
)

// fakeCategoryStore is an in-memory categoryStore for handler tests.
type fakeCategoryStore struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) FindAll() ([]*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.Category
	for _, category := range s.categories {
		clone := *category
		result = append(result, &clone)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *fakeCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, exists := s.categories[id]
	if !exists {
		return nil, errors.New("record not found")
	}
	clone := *category
	return &clone, nil
}

func (s *fakeCategoryStore) Add(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	clone := *category
	s.categories[category.ID] = &clone
	return nil
}

func (s *fakeCategoryStore) Update(category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.categories[category.ID]; !exists {
		return errors.New("record not found")
	}
	clone := *category
	s.categories[category.ID] = &clone
	return nil
}

func (s *fakeCategoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, id)
	return nil
}

func TestCreateCategory(t *testing.T) {
	store := newFakeCategoryStore()
	h := newCategoryHandler(store)

	w := httptest.NewRecorder()
	h.createCategory()(w, httptest.NewRequest(http.MethodPost, "/category", postJSON(t, map[string]string{"name": "golang"})))

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "golang", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestCreateCategoryMissingName(t *testing.T) {
	store := newFakeCategoryStore()
	h := newCategoryHandler(store)

	w := httptest.NewRecorder()
	h.createCategory()(w, httptest.NewRequest(http.MethodPost, "/category", postJSON(t, map[string]string{})))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategoryNotFound(t *testing.T) {
	store := newFakeCategoryStore()
	h := newCategoryHandler(store)

	id := uuid.New().String()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/category/"+id, nil), "categoryID", id)
	w := httptest.NewRecorder()
	h.getCategory()(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	store := newFakeCategoryStore()
	h := newCategoryHandler(store)

	seeded := &models.Category{Name: "doomed"}
	require.NoError(t, store.Add(seeded))

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/category/"+seeded.ID.String(), nil), "categoryID", seeded.ID.String())
	w := httptest.NewRecorder()
	h.deleteCategory()(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	_, err := store.FindByID(seeded.ID)
	assert.Error(t, err)
}

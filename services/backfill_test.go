package services

import (
	"errors"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rywall/blog-backend/content"
	"github.com/rywall/blog-backend/models"
)

type fakeBackfillStore struct {
	mu       sync.Mutex
	posts    map[uuid.UUID]*models.Post
	failNext bool
}

func newFakeBackfillStore(posts ...*models.Post) *fakeBackfillStore {
	store := &fakeBackfillStore{posts: make(map[uuid.UUID]*models.Post)}
	for _, post := range posts {
		if post.ID == uuid.Nil {
			post.ID = uuid.New()
		}
		clone := *post
		store.posts[post.ID] = &clone
	}
	return store
}

func (s *fakeBackfillStore) FindAll() ([]*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*models.Post
	for _, post := range s.posts {
		clone := *post
		result = append(result, &clone)
	}
	return result, nil
}

func (s *fakeBackfillStore) Update(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext {
		s.failNext = false
		return errors.New("write failed")
	}
	clone := *post
	s.posts[post.ID] = &clone
	return nil
}

func TestBackfillExcerptsRewritesAllPosts(t *testing.T) {
	store := newFakeBackfillStore(
		&models.Post{Title: "a", Body: "# One\n\nfirst body", Excerpt: "stale"},
		&models.Post{Title: "b", Body: "**second** body", Excerpt: "stale"},
		&models.Post{Title: "c", Body: "", Excerpt: "stale"},
	)

	updated, err := BackfillExcerpts(store, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, updated)

	posts, err := store.FindAll()
	require.NoError(t, err)
	for _, post := range posts {
		assert.NotEqual(t, "stale", post.Excerpt)
		assert.LessOrEqual(t, utf8.RuneCountInString(post.Excerpt), content.ExcerptLength)
		assert.False(t, post.ModifiedTime.IsZero())
	}
}

func TestBackfillExcerptsPropagatesWriteErrors(t *testing.T) {
	store := newFakeBackfillStore(
		&models.Post{Title: "a", Body: "body"},
	)
	store.failNext = true

	_, err := BackfillExcerpts(store, 1)
	assert.Error(t, err)
}

func TestBackfillExcerptsEmptyStore(t *testing.T) {
	store := newFakeBackfillStore()

	updated, err := BackfillExcerpts(store, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, updated)
}

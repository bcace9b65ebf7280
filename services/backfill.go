// Package services holds maintenance operations that run across the whole
// content store rather than on a single request.
package services

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/rywall/blog-backend/content"
	"github.com/rywall/blog-backend/models"
)

// postStore is the repository slice the backfill needs.
type postStore interface {
	FindAll() ([]*models.Post, error)
	Update(post *models.Post) error
}

// BackfillExcerpts re-derives the excerpt (and modified time) for every
// stored post and writes each back. Run after the derivation rules change so
// stored excerpts match what a fresh save would produce. Returns the number
// of posts rewritten.
func BackfillExcerpts(store postStore, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	posts, err := store.FindAll()
	if err != nil {
		return 0, err
	}

	var updated atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, post := range posts {
		post := post
		g.Go(func() error {
			if err := content.PrepareForSave(post); err != nil {
				return err
			}
			if err := store.Update(post); err != nil {
				return err
			}
			updated.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(updated.Load()), err
	}

	log.Info().Int("posts", int(updated.Load())).Msg("excerpt backfill complete")
	return int(updated.Load()), nil
}

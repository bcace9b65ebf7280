package content

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rywall/blog-backend/models"
)

// ExcerptLength caps derived excerpts, counted in runes.
const ExcerptLength = 54

var stripper = bluemonday.StrictPolicy()

// StripTags removes all markup from an HTML fragment, leaving plain text.
func StripTags(fragment string) string {
	return html.UnescapeString(stripper.Sanitize(fragment))
}

// Excerpt derives the plain-text excerpt for a markdown body: render to
// HTML, strip every tag, collapse whitespace runs to single spaces, keep the
// first ExcerptLength runes. An empty body yields an empty excerpt.
func Excerpt(body string) (string, error) {
	rendered, err := RenderHTML(body)
	if err != nil {
		return "", err
	}
	plain := strings.Join(strings.Fields(StripTags(rendered)), " ")
	runes := []rune(plain)
	if len(runes) > ExcerptLength {
		runes = runes[:ExcerptLength]
	}
	return string(runes), nil
}

// PrepareForSave refreshes the fields every write must carry: ModifiedTime
// is set to now, CreatedTime is defaulted when unset, and Excerpt is
// recomputed from Body. Whatever excerpt or modified time the post arrived
// with is overwritten. Callers run this before handing the post to the
// repository.
func PrepareForSave(post *models.Post) error {
	post.ModifiedTime = time.Now()
	if post.CreatedTime.IsZero() {
		post.CreatedTime = post.ModifiedTime
	}
	excerpt, err := Excerpt(post.Body)
	if err != nil {
		return err
	}
	post.Excerpt = excerpt
	return nil
}

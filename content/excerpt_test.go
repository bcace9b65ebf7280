package content_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rywall/blog-backend/content"
	"github.com/rywall/blog-backend/models"
)

func TestExcerptTruncatesRenderedBody(t *testing.T) {
	body := "# Hello\n\n**world**, this is a test post with enough content to exceed the limit of fifty four characters easily."

	excerpt, err := content.Excerpt(body)
	require.NoError(t, err)

	assert.Equal(t, "Hello world, this is a test post with enough content t", excerpt)
	assert.Equal(t, content.ExcerptLength, utf8.RuneCountInString(excerpt))
}

func TestExcerptEmptyBody(t *testing.T) {
	excerpt, err := content.Excerpt("")
	require.NoError(t, err)
	assert.Equal(t, "", excerpt)
}

func TestExcerptShortBodyKeptWhole(t *testing.T) {
	excerpt, err := content.Excerpt("*tiny*")
	require.NoError(t, err)
	assert.Equal(t, "tiny", excerpt)
}

func TestExcerptNeverExceedsLimit(t *testing.T) {
	bodies := []string{
		"",
		"short",
		strings.Repeat("word ", 500),
		strings.Repeat("博客文章", 60),
		"# Heading\n\n" + strings.Repeat("**bold** and [link](https://example.com) ", 40),
		"```go\n" + strings.Repeat("fmt.Println(\"hello\")\n", 20) + "```",
	}

	for _, body := range bodies {
		excerpt, err := content.Excerpt(body)
		require.NoError(t, err)
		assert.LessOrEqual(t, utf8.RuneCountInString(excerpt), content.ExcerptLength)
	}
}

func TestExcerptCountsRunesNotBytes(t *testing.T) {
	excerpt, err := content.Excerpt(strings.Repeat("博", 60))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("博", content.ExcerptLength), excerpt)
}

func TestExcerptStripsAllMarkup(t *testing.T) {
	body := "# Title\n\n**bold** _em_ [link](https://example.com) ![pic](https://example.com/p.png)\n\n" +
		"| a | b |\n| --- | --- |\n| 1 | 2 |\n\n```go\nx := 1\n```\n\n<span class=\"raw\">inline html</span>"

	excerpt, err := content.Excerpt(body)
	require.NoError(t, err)

	assert.NotContains(t, excerpt, "<")
	assert.NotContains(t, excerpt, ">")
	assert.NotContains(t, excerpt, "**")
	assert.NotContains(t, excerpt, "](")
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "world", content.StripTags("<p><strong>world</strong></p>"))
	assert.Equal(t, "a & b", content.StripTags("a &amp; b"))
	assert.Equal(t, "", content.StripTags("<img src=\"x.png\" alt=\"gone\">"))
}

func TestPrepareForSaveDerivesFields(t *testing.T) {
	before := time.Now()
	post := &models.Post{
		Title:   "First post",
		Body:    "# Hello\n\n**world**, this is a test post with enough content to exceed the limit of fifty four characters easily.",
		Excerpt: "stale excerpt that must be overwritten",
	}

	require.NoError(t, content.PrepareForSave(post))

	assert.Equal(t, "Hello world, this is a test post with enough content t", post.Excerpt)
	assert.False(t, post.ModifiedTime.Before(before))
	assert.False(t, post.CreatedTime.IsZero())
	assert.False(t, post.ModifiedTime.Before(post.CreatedTime))
}

func TestPrepareForSaveRefreshesModifiedTime(t *testing.T) {
	created := time.Now().Add(-24 * time.Hour)
	post := &models.Post{
		Title:        "Edited post",
		Body:         "updated body",
		CreatedTime:  created,
		ModifiedTime: created,
	}
	prevModified := post.ModifiedTime

	require.NoError(t, content.PrepareForSave(post))

	assert.True(t, post.ModifiedTime.After(prevModified))
	assert.True(t, post.CreatedTime.Equal(created))
	assert.False(t, post.ModifiedTime.Before(post.CreatedTime))
}

func TestPrepareForSaveEmptyBodyClearsExcerpt(t *testing.T) {
	post := &models.Post{
		Title:   "Empty",
		Excerpt: "leftover",
	}

	require.NoError(t, content.PrepareForSave(post))
	assert.Equal(t, "", post.Excerpt)
}

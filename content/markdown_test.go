package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rywall/blog-backend/content"
)

func TestRenderHTMLHeading(t *testing.T) {
	html, err := content.RenderHTML("# Hello")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Hello</h1>")
}

func TestRenderHTMLTable(t *testing.T) {
	html, err := content.RenderHTML("| a | b |\n| --- | --- |\n| 1 | 2 |")
	require.NoError(t, err)
	assert.Contains(t, html, "<table>")
}

func TestRenderHTMLFencedCode(t *testing.T) {
	html, err := content.RenderHTML("```go\npackage main\n```")
	require.NoError(t, err)
	assert.Contains(t, html, "<pre")
}

func TestRenderHTMLEmpty(t *testing.T) {
	html, err := content.RenderHTML("")
	require.NoError(t, err)
	assert.Equal(t, "", html)
}

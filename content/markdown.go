// Package content derives the display fields a post carries out of its
// markdown body: the rendered HTML and the plain-text excerpt stored with
// the record.
package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// md is configured the way published posts are rendered: tables and fenced
// code blocks with syntax highlighting.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		highlighting.NewHighlighting(),
	),
)

// RenderHTML converts markdown body text to an HTML fragment.
func RenderHTML(body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

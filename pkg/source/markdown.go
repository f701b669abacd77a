package source

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderMarkdown converts Markdown to HTML. Raw HTML in the source is passed
// through unchanged.
func RenderMarkdown(content []byte, gfm bool) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdown(gfm).Convert(content, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newMarkdown(gfm bool) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}
	if gfm {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return goldmark.New(opts...)
}

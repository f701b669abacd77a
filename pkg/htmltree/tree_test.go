package htmltree_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/a11ylint/pkg/htmltree"
)

func mustParse(t *testing.T, source string) *htmltree.Document {
	t.Helper()
	doc, err := htmltree.Parse(context.Background(), source)
	require.NoError(t, err)
	return doc
}

func TestParse_Lenient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"fragment", `<img src="a.png">`},
		{"unclosed tags", `<div><p>text<span>more`},
		{"stray closing tag", `</div><h1>Title</h1>`},
		{"plain text", `just words`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := htmltree.Parse(context.Background(), tt.input)
			require.NoError(t, err)
			assert.NotEmpty(t, doc.Elements("html"))
		})
	}
}

func TestParse_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := htmltree.Parse(ctx, "<p>hi</p>")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestElements_DocumentOrder(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `
<div>
  <h2>b</h2>
  <section><h1>a</h1><input id="x"></section>
  <h3>c</h3>
</div>`)

	nodes := doc.Elements("h1", "H2", "h3")
	require.Len(t, nodes, 3)
	assert.Equal(t, "h2", nodes[0].Tag())
	assert.Equal(t, "h1", nodes[1].Tag())
	assert.Equal(t, "h3", nodes[2].Tag())
}

func TestWalk_Stops(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<p>1</p><p>2</p><p>3</p>`)

	seen := 0
	doc.Walk(func(n *htmltree.Node) bool {
		if n.Tag() == "p" {
			seen++
			return seen < 2
		}
		return true
	})
	assert.Equal(t, 2, seen)
}

func TestNode_Attributes(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<img SRC="x.jpg" alt="" title="  spaced  ">`)
	imgs := doc.Elements("img")
	require.Len(t, imgs, 1)
	img := imgs[0]

	src, ok := img.Attr("src")
	assert.True(t, ok)
	assert.Equal(t, "x.jpg", src)

	alt, ok := img.Attr("ALT")
	assert.True(t, ok, "empty attribute is still present")
	assert.Empty(t, alt)

	assert.Equal(t, "  spaced  ", img.AttrOr("title", ""), "values are verbatim")
	assert.False(t, img.HasAttr("width"))
	assert.Equal(t, "fallback", img.AttrOr("width", "fallback"))
}

func TestNode_TextAndSerialization(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<button class="b">  Click <b>here</b>  </button>`)
	buttons := doc.Elements("button")
	require.Len(t, buttons, 1)
	button := buttons[0]

	assert.Equal(t, "Click here", button.Text())
	assert.Equal(t, `  Click <b>here</b>  `, button.InnerHTML())
	assert.Equal(t, `<button class="b">  Click <b>here</b>  </button>`, button.OuterHTML())

	children := button.Children()
	require.Len(t, children, 1)
	assert.Equal(t, "b", children[0].Tag())
}

func TestCount(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<p style="color:red">a</p><p>b</p><span style="background: blue">c</span>`)
	n := doc.Count(func(node *htmltree.Node) bool {
		return node.HasAttr("style")
	})
	assert.Equal(t, 2, n)
}

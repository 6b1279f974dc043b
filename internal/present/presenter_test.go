package present

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
)

func TestParseMode(t *testing.T) {
	for _, name := range []string{"plain", "pretty", "json", "html"} {
		m, ok := ParseMode(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.String())
	}
	m, ok := ParseMode("tui")
	assert.False(t, ok)
	assert.Equal(t, ModePlain, m)
}

func TestRenderNodesModes(t *testing.T) {
	nodes := markup.Render("- a\nx*y*")

	var buf bytes.Buffer
	require.NoError(t, RenderNodes(&buf, nodes, Options{Mode: ModeHTML}))
	assert.Equal(t, "<ul><li>a</li></ul>\n<p>x<em>y</em></p>\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderNodes(&buf, nodes, Options{Mode: ModePlain}))
	assert.Equal(t, "• a\nxy\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderNodes(&buf, nil, Options{Mode: ModeJSON}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderListsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderProjects(&buf, []content.Project{{ID: "a", Name: "A"}}, Options{Mode: ModeJSON, JSONIndent: true}))
	var got []content.Project
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)

	buf.Reset()
	require.NoError(t, RenderBlogs(&buf, nil, Options{Mode: ModeJSON}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestRenderBlogHTMLRendersSections(t *testing.T) {
	var buf bytes.Buffer
	b := content.BlogPost{Content: content.Article{Sections: []content.Section{
		{Heading: "One", Content: "**a**"},
		{Heading: "Two", Content: "- b"},
	}}}
	require.NoError(t, RenderBlog(&buf, b, Options{Mode: ModeHTML}))
	assert.Equal(t, "<p><strong>a</strong></p>\n<ul><li>b</li></ul>\n", buf.String())
}

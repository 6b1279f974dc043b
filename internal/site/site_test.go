package site

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/seo"
)

func newRenderer(t *testing.T, live bool) *Renderer {
	t.Helper()
	r, err := New(Options{
		Site: seo.Site{
			Name:        "Dixanta Nath Shrestha",
			Title:       "Dixanta Nath Shrestha - Full-Stack Developer",
			Description: "Full-Stack Developer",
			BaseURL:     "https://example.com",
		},
		Chrome:     DefaultChrome("Dixanta Nath Shrestha", "dixanta@example.com"),
		LiveReload: live,
		Now:        func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return r
}

func TestBlocksGroupsListItems(t *testing.T) {
	nodes := markup.Render("- a\n- b\ntext\n- c")
	blocks := Blocks(nodes)
	require.Len(t, blocks, 3)
	assert.Equal(t, []string{"a", "b"}, blocks[0].Items)
	assert.False(t, blocks[1].IsList())
	assert.Equal(t, []string{"c"}, blocks[2].Items)
	assert.Empty(t, Blocks(nil))
}

func TestNodesHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"- one\n- two", "<ul><li>one</li><li>two</li></ul>\n"},
		{"x**y**z", "<p>x<strong>y</strong>z</p>\n"},
		{"x*y*z", "<p>x<em>y</em>z</p>\n"},
		{"a <b> & c", "<p>a &lt;b&gt; &amp; c</p>\n"},
		{"**<i>**", "<p><strong>&lt;i&gt;</strong></p>\n"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, string(MarkupHTML(tc.in)), tc.in)
	}
}

func TestHomePage(t *testing.T) {
	r := newRenderer(t, false)
	var buf bytes.Buffer
	err := r.Home(&buf, content.Landing{
		Hero:  content.Hero{Name: "Dixanta", Intro: "I build with", TechStack: []string{"React", "Node.js"}},
		Stats: []content.Stat{{Value: "5+", Label: "Years"}},
		CTA:   content.CTA{Title: "Hire me", Buttons: []content.Button{{Text: "Email", Href: "mailto:a@b.c", Primary: true}}},
		TechExpertise: content.TechExpertise{
			Title:      "Stack",
			Categories: []content.Category{{Name: "Frontend", Skills: []string{"React"}}},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>Dixanta Nath Shrestha - Full-Stack Developer</title>")
	assert.Contains(t, out, `<span class="pill">Node.js</span>`)
	assert.Contains(t, out, "YEARS")
	assert.Contains(t, out, "FRONTEND")
	assert.Contains(t, out, `href="/projects">Work</a>`)
	assert.Contains(t, out, `href="mailto:dixanta@example.com">Contact</a>`)
	assert.Contains(t, out, "© 2025 Dixanta Nath Shrestha")
	assert.NotContains(t, out, "/_live")
}

func TestProjectsPage(t *testing.T) {
	r := newRenderer(t, false)
	var buf bytes.Buffer
	err := r.Projects(&buf, []content.Project{
		{ID: "shop", Name: "Shop", Tags: []string{"Web"}, Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Redis"}},
		{ID: "notes", Name: "Notes", Tags: []string{"Web", "CLI"}, Technologies: []string{"Go"}},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>Projects - Dixanta Nath Shrestha</title>")
	assert.Contains(t, out, `<span class="index">01</span>`)
	assert.Contains(t, out, `<span class="index">02</span>`)
	assert.Contains(t, out, "+2")
	assert.NotContains(t, out, "Express")
	assert.Contains(t, out, `<div class="stat-value">6</div>`)
	assert.Contains(t, out, `href="/projects/notes"`)
}

func TestNewProjectList(t *testing.T) {
	list := NewProjectList([]content.Project{
		{ID: "a", Technologies: []string{"1", "2", "3"}},
		{ID: "b", Technologies: []string{"1", "2", "3", "4"}},
	})
	require.Len(t, list.Rows, 2)
	assert.Equal(t, 0, list.Rows[0].More)
	assert.Len(t, list.Rows[0].Stack, 3)
	assert.Equal(t, 1, list.Rows[1].More)
	assert.Equal(t, "02", list.Rows[1].Number)
}

func TestProjectPage(t *testing.T) {
	r := newRenderer(t, false)
	var buf bytes.Buffer
	err := r.Project(&buf, content.Project{
		ID: "shop", Name: "Shop", What: "A store", Description: "Sells things",
		Tags: []string{"E-commerce"}, Challenges: []string{"Scale"}, GithubURL: "https://github.com/x/shop",
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>Shop - Dixanta Nath Shrestha</title>")
	assert.Contains(t, out, `<meta name="description" content="Sells things">`)
	assert.Contains(t, out, "Technical Challenges")
	assert.Contains(t, out, `<span class="index">01</span><p>Scale</p>`)
	assert.NotContains(t, out, "Key Learnings")
	assert.Contains(t, out, `<div class="initial">S</div>`)
	assert.Contains(t, out, "GitHub ↗")
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/projects/shop">`)
}

func TestBlogPage(t *testing.T) {
	r := newRenderer(t, true)
	var buf bytes.Buffer
	err := r.Blog(&buf, content.BlogPost{
		Slug:          "ai",
		Title:         "AI and Interviews",
		Description:   "Hiring",
		Author:        "Dixanta",
		PublishedDate: "2025-03-04",
		Keywords:      []string{"AI", "Career"},
		Content: content.Article{
			Introduction: "Intro",
			Sections: []content.Section{
				{Heading: "Why", Content: "- one\n- two\nsome **bold** words\nan *italic* one"},
			},
		},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>AI and Interviews</title>")
	assert.Contains(t, out, "By Dixanta")
	assert.Contains(t, out, "March 4, 2025")
	assert.Contains(t, out, "<ul><li>one</li><li>two</li></ul>")
	assert.Contains(t, out, "<p>some <strong>bold</strong> words</p>")
	assert.Contains(t, out, "<p>an <em>italic</em> one</p>")
	assert.Contains(t, out, `<span class="tag">Career</span>`)
	assert.Contains(t, out, `<meta property="og:type" content="article">`)
	assert.Contains(t, out, `<meta name="twitter:card" content="summary_large_image">`)
	assert.Contains(t, out, "/_live")
}

func TestNotFoundPage(t *testing.T) {
	r := newRenderer(t, false)
	for _, title := range []string{BlogNotFound, ProjectNotFound} {
		var buf bytes.Buffer
		require.NoError(t, r.NotFound(&buf, title))
		out := buf.String()
		assert.Contains(t, out, "<title>"+title+"</title>")
		assert.Contains(t, out, `<meta name="robots" content="noindex">`)
		assert.Equal(t, 1, strings.Count(out, "<h1>"+title+"</h1>"))
	}
}

func TestErrorPage(t *testing.T) {
	r := newRenderer(t, false)
	var buf bytes.Buffer
	require.NoError(t, r.Error(&buf))
	assert.Contains(t, buf.String(), "Something Went Wrong")
}

func TestRenderingIsDeterministic(t *testing.T) {
	r := newRenderer(t, false)
	p := content.Project{ID: "a", Name: "A", Technologies: []string{"Go"}}
	var a, b bytes.Buffer
	require.NoError(t, r.Project(&a, p))
	require.NoError(t, r.Project(&b, p))
	assert.Equal(t, a.String(), b.String())
}

package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

var site = Site{
	Name:        "Dixanta Nath Shrestha",
	Title:       "Dixanta Nath Shrestha - Full-Stack Developer",
	Description: "Full-Stack Developer specializing in the MERN stack.",
	BaseURL:     "https://example.com/",
	Keywords:    []string{"MERN Stack", "React"},
}

func TestDefault(t *testing.T) {
	m := site.Default()
	assert.Equal(t, site.Title, m.Title)
	assert.Equal(t, "https://example.com/", m.Canonical)
	assert.Equal(t, "website", m.OG.Type)
	assert.Equal(t, "MERN Stack, React", m.KeywordList())
	assert.Nil(t, m.Twitter)
}

func TestProjectTitles(t *testing.T) {
	assert.Equal(t, "Projects - Dixanta Nath Shrestha", site.Projects().Title)

	m := site.Project(content.Project{ID: "shop", Name: "Shop", Description: "A store"})
	assert.Equal(t, "Shop - Dixanta Nath Shrestha", m.Title)
	assert.Equal(t, "A store", m.Description)
	assert.Equal(t, "https://example.com/projects/shop", m.Canonical)

	m = site.Project(content.Project{ID: "bare", Name: "Bare"})
	assert.Equal(t, site.Description, m.Description, "falls back to the site description")
}

func TestBlog(t *testing.T) {
	m := site.Blog(content.BlogPost{
		Slug:          "ai",
		Title:         "AI",
		Description:   "About AI",
		Author:        "Dixanta",
		Keywords:      []string{"AI"},
		PublishedDate: "2025-03-04",
		Thumbnail:     "/img/ai.png",
	})
	assert.Equal(t, "AI", m.Title)
	assert.Equal(t, "article", m.OG.Type)
	assert.Equal(t, "2025-03-04", m.OG.PublishedTime)
	assert.Equal(t, "AI", m.OG.ImageAlt)
	require.NotNil(t, m.Twitter)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
	assert.Equal(t, "/img/ai.png", m.Twitter.Image)

	m = site.Blog(content.BlogPost{Slug: "x", Title: "X"})
	assert.Equal(t, site.Name, m.Author)
	assert.Equal(t, site.Keywords, m.Keywords)
}

func TestNotFound(t *testing.T) {
	m := site.NotFound("Blog Not Found")
	assert.Equal(t, "Blog Not Found", m.Title)
	assert.True(t, m.NoIndex)
	assert.Empty(t, m.Canonical)
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://example.com/about", site.URL("about"))
	assert.Equal(t, "https://example.com/", site.URL(""))
}

// Package seo derives the per-page metadata rendered into <head>.
package seo

import (
	"strings"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

// Site holds the site-wide defaults every page starts from.
type Site struct {
	Name        string
	Title       string
	Description string
	BaseURL     string
	Keywords    []string
}

// OpenGraph is the og:* property set.
type OpenGraph struct {
	Title         string
	Description   string
	Type          string
	PublishedTime string
	Author        string
	Image         string
	ImageAlt      string
}

// Twitter is the twitter:* card.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Meta is everything a page puts in its head.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Author      string
	Canonical   string
	NoIndex     bool
	OG          OpenGraph
	Twitter     *Twitter
}

// KeywordList joins the keywords for the meta tag.
func (m Meta) KeywordList() string { return strings.Join(m.Keywords, ", ") }

// URL joins path onto the base URL.
func (s Site) URL(path string) string {
	base := strings.TrimRight(strings.TrimSpace(s.BaseURL), "/")
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return base + path
}

// Default is the metadata of the root layout.
func (s Site) Default() Meta {
	return Meta{
		Title:       s.Title,
		Description: s.Description,
		Keywords:    s.Keywords,
		Author:      s.Name,
		Canonical:   s.URL("/"),
		OG: OpenGraph{
			Title:       s.Title,
			Description: s.Description,
			Type:        "website",
		},
	}
}

// Home is the landing page metadata.
func (s Site) Home() Meta { return s.Default() }

// Projects is the project index metadata.
func (s Site) Projects() Meta {
	m := s.Default()
	m.Title = "Projects - " + s.Name
	m.OG.Title = m.Title
	m.Canonical = s.URL("/projects")
	return m
}

// Project titles the detail page "<name> - <site name>".
func (s Site) Project(p content.Project) Meta {
	m := s.Default()
	m.Title = p.Name + " - " + s.Name
	if p.Description != "" {
		m.Description = p.Description
	}
	m.Canonical = s.URL("/projects/" + p.ID)
	m.OG.Title = m.Title
	m.OG.Description = m.Description
	m.OG.Image = p.ThumbnailURL
	return m
}

// Blog describes a post as an article with a large-image twitter card.
func (s Site) Blog(b content.BlogPost) Meta {
	author := b.Author
	if author == "" {
		author = s.Name
	}
	keywords := b.Keywords
	if len(keywords) == 0 {
		keywords = s.Keywords
	}
	return Meta{
		Title:       b.Title,
		Description: b.Description,
		Keywords:    keywords,
		Author:      author,
		Canonical:   s.URL("/blogs/" + b.Slug),
		OG: OpenGraph{
			Title:         b.Title,
			Description:   b.Description,
			Type:          "article",
			PublishedTime: b.PublishedDate,
			Author:        author,
			Image:         b.Thumbnail,
			ImageAlt:      b.Title,
		},
		Twitter: &Twitter{
			Card:        "summary_large_image",
			Title:       b.Title,
			Description: b.Description,
			Image:       b.Thumbnail,
		},
	}
}

// NotFound keeps crawlers off miss pages.
func (s Site) NotFound(title string) Meta {
	m := s.Default()
	m.Title = title
	m.OG.Title = title
	m.Canonical = ""
	m.NoIndex = true
	return m
}

package content

import (
	"strings"
	"time"
)

// BlogPost is one article from blogs.json.
type BlogPost struct {
	Slug          string   `json:"slug" yaml:"slug"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Keywords      []string `json:"keywords" yaml:"keywords"`
	Author        string   `json:"author" yaml:"author"`
	PublishedDate string   `json:"publishedDate" yaml:"publishedDate"`
	Thumbnail     string   `json:"thumbnail" yaml:"thumbnail"`
	Content       Article  `json:"content" yaml:"content"`
}

// Article is the body of a blog post. Section content is markup text.
type Article struct {
	Introduction string    `json:"introduction" yaml:"introduction"`
	Sections     []Section `json:"sections" yaml:"sections"`
}

type Section struct {
	Heading string `json:"heading" yaml:"heading"`
	Content string `json:"content" yaml:"content"`
}

// Published parses PublishedDate. The zero time is returned with the error.
func (b BlogPost) Published() (time.Time, error) {
	return ParseDate(b.PublishedDate)
}

// Project is one entry from projects.json, keyed by ID.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	What         string   `json:"what" yaml:"what"`
	Description  string   `json:"description" yaml:"description"`
	Goal         string   `json:"goal" yaml:"goal"`
	DeployedOn   string   `json:"deployed_on" yaml:"deployed_on"`
	Tags         []string `json:"tags" yaml:"tags"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Team         []string `json:"team,omitempty" yaml:"team,omitempty"`
	Features     []string `json:"features,omitempty" yaml:"features,omitempty"`
	Challenges   []string `json:"challenges,omitempty" yaml:"challenges,omitempty"`
	Learnings    []string `json:"learnings,omitempty" yaml:"learnings,omitempty"`
	GithubURL    string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	LiveURL      string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
}

// Category is the first tag, or "" for an untagged project.
func (p Project) Category() string {
	if len(p.Tags) == 0 {
		return ""
	}
	return p.Tags[0]
}

// HasTag reports whether p carries tag, ignoring case and surrounding space.
func (p Project) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// Initial is the first letter of the name, used as a placeholder visual.
func (p Project) Initial() string {
	for _, r := range p.Name {
		return string(r)
	}
	return ""
}

// Landing is the home page content from landing-content.json.
type Landing struct {
	Hero          Hero          `json:"hero" yaml:"hero"`
	Stats         []Stat        `json:"stats" yaml:"stats"`
	MainSection   MainSection   `json:"mainSection" yaml:"mainSection"`
	CTA           CTA           `json:"cta" yaml:"cta"`
	TechExpertise TechExpertise `json:"techExpertise" yaml:"techExpertise"`
}

type Hero struct {
	Name      string   `json:"name" yaml:"name"`
	Intro     string   `json:"intro" yaml:"intro"`
	TechStack []string `json:"techStack" yaml:"techStack"`
	Tagline   string   `json:"tagline" yaml:"tagline"`
}

type Stat struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type MainSection struct {
	Title    string           `json:"title" yaml:"title"`
	Intro    string           `json:"intro" yaml:"intro"`
	Sections []LandingSection `json:"sections" yaml:"sections"`
}

type LandingSection struct {
	Heading    string   `json:"heading" yaml:"heading"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
}

type CTA struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Buttons     []Button `json:"buttons" yaml:"buttons"`
}

type Button struct {
	Text    string `json:"text" yaml:"text"`
	Href    string `json:"href" yaml:"href"`
	Primary bool   `json:"primary" yaml:"primary"`
}

type TechExpertise struct {
	Title      string     `json:"title" yaml:"title"`
	Categories []Category `json:"categories" yaml:"categories"`
}

type Category struct {
	Name   string   `json:"name" yaml:"name"`
	Skills []string `json:"skills" yaml:"skills"`
}

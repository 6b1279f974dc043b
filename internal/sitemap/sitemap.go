// Package sitemap builds the site index served at /sitemap.xml and the
// matching robots.txt.
package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

// Namespace is the sitemaps.org schema the output declares.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
)

// Entry is one <url> element.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq ChangeFreq
	Priority   float64
}

// Options controls what Build emits.
type Options struct {
	BaseURL    string
	ExtraPaths []string
	// Now is the generation time; zero means time.Now.
	Now time.Time
}

// Build lists the home page, the project index, the extra paths, every blog
// and every project, in that order. Blogs with an unparseable date use the
// generation time; projects use the store's modification time.
func Build(ctx context.Context, s content.Store, opts Options) ([]Entry, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	blogs, err := s.Blogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	mod, err := s.ModTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	if mod.IsZero() {
		mod = now
	}

	entries := make([]Entry, 0, 2+len(opts.ExtraPaths)+len(blogs)+len(projects))
	entries = append(entries,
		Entry{Loc: base + "/", LastMod: now, ChangeFreq: Weekly, Priority: 1.0},
		Entry{Loc: base + "/projects", LastMod: now, ChangeFreq: Weekly, Priority: 0.9},
	)
	for _, p := range opts.ExtraPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		entries = append(entries, Entry{Loc: base + p, LastMod: now, ChangeFreq: Monthly, Priority: 0.8})
	}
	for _, b := range blogs {
		lm, err := b.Published()
		if err != nil {
			lm = now
		}
		entries = append(entries, Entry{Loc: base + "/blogs/" + b.Slug, LastMod: lm, ChangeFreq: Monthly, Priority: 0.7})
	}
	for _, p := range projects {
		entries = append(entries, Entry{Loc: base + "/projects/" + p.ID, LastMod: mod, ChangeFreq: Monthly, Priority: 0.6})
	}
	return entries, nil
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Encode writes entries as an indented sitemap document.
func Encode(w io.Writer, entries []Entry) error {
	set := urlset{Xmlns: Namespace, URLs: make([]xmlURL, len(entries))}
	for i, e := range entries {
		set.URLs[i] = xmlURL{
			Loc:        e.Loc,
			LastMod:    e.LastMod.UTC().Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFreq),
			Priority:   fmt.Sprintf("%.1f", e.Priority),
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Robots returns a robots.txt allowing every crawler and naming the sitemap.
func Robots(baseURL string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return "User-agent: *\nAllow: /\n\nSitemap: " + base + "/sitemap.xml\n"
}

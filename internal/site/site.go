// Package site renders the portfolio pages with html/template.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/seo"
)

//go:embed templates
var templateFS embed.FS

// Page template names.
const (
	PageHome     = "home"
	PageProjects = "projects"
	PageProject  = "project"
	PageBlog     = "blog"
	PageNotFound = "notfound"
	PageError    = "error"
)

var pages = []string{PageHome, PageProjects, PageProject, PageBlog, PageNotFound, PageError}

// Not-found page titles.
const (
	BlogNotFound      = "Blog Not Found"
	ProjectNotFound   = "Project Not Found"
	PageNotFoundTitle = "Page Not Found"
)

// Link is a navigation entry.
type Link struct {
	Name     string
	Href     string
	External bool
}

// Chrome is the header and footer content shared by every page.
type Chrome struct {
	Name    string
	Tagline string
	Email   string
	Nav     []Link
	Footer  []Link
	Social  []Link
}

// DefaultChrome returns the stock header and footer links for name.
func DefaultChrome(name, email string) Chrome {
	return Chrome{
		Name:    name,
		Tagline: "Full-Stack Developer specializing in the MERN stack. Building scalable, maintainable web applications with modern technologies.",
		Email:   email,
		Nav: []Link{
			{Name: "Work", Href: "/projects"},
			{Name: "About", Href: "/about"},
			{Name: "Certifications", Href: "/certifications"},
		},
		Footer: []Link{
			{Name: "Projects", Href: "/projects"},
			{Name: "About", Href: "/about"},
			{Name: "Certifications", Href: "/certifications"},
		},
		Social: []Link{
			{Name: "GitHub", Href: "https://github.com/dixanta", External: true},
			{Name: "LinkedIn", Href: "https://linkedin.com/in/dixanta", External: true},
			{Name: "Twitter", Href: "https://twitter.com/dixanta", External: true},
		},
	}
}

// Options configures a Renderer.
type Options struct {
	Site       seo.Site
	Chrome     Chrome
	LiveReload bool
	// Now is used for the footer year; nil means time.Now.
	Now func() time.Time
}

// Renderer executes the embedded page templates.
type Renderer struct {
	opts  Options
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New(opts Options) (*Renderer, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Chrome.Name == "" {
		opts.Chrome = DefaultChrome(opts.Site.Name, opts.Chrome.Email)
	}
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	root, err := template.New("base").Funcs(funcs).ParseFS(sub, "base.html", "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}
	r := &Renderer{opts: opts, pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(sub, name+".html"); err != nil {
			return nil, fmt.Errorf("parse %s.html: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

var upper = cases.Upper(language.English)

var funcs = template.FuncMap{
	"markup": MarkupHTML,
	"upper":  func(s string) string { return upper.String(s) },
	"num":    func(i int) string { return fmt.Sprintf("%02d", i+1) },
	"date":   content.FormatDate,
	"join":   strings.Join,
}

// Page is the data handed to every template.
type Page struct {
	Meta       seo.Meta
	Chrome     Chrome
	Year       int
	LiveReload bool
	Data       any
}

func (r *Renderer) execute(w io.Writer, name string, meta seo.Meta, data any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	page := Page{
		Meta:       meta,
		Chrome:     r.opts.Chrome,
		Year:       r.opts.Now().Year(),
		LiveReload: r.opts.LiveReload,
		Data:       data,
	}
	// execute into a buffer so a template error never leaves half a page
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Home renders the landing page.
func (r *Renderer) Home(w io.Writer, l content.Landing) error {
	return r.execute(w, PageHome, r.opts.Site.Home(), l)
}

// ProjectRow is one numbered entry of the project index.
type ProjectRow struct {
	Number  string
	Project content.Project
	Stack   []string
	More    int
}

// ProjectList is the project index view.
type ProjectList struct {
	Stats content.ProjectStats
	Rows  []ProjectRow
	Email string
}

// stackLimit is how many technologies the index shows before "+N".
const stackLimit = 3

// NewProjectList numbers projects from 01 and trims each stack to three
// technologies.
func NewProjectList(projects []content.Project) ProjectList {
	list := ProjectList{Stats: content.Stats(projects), Rows: make([]ProjectRow, len(projects))}
	for i, p := range projects {
		row := ProjectRow{Number: fmt.Sprintf("%02d", i+1), Project: p, Stack: p.Technologies}
		if len(p.Technologies) > stackLimit {
			row.Stack = p.Technologies[:stackLimit]
			row.More = len(p.Technologies) - stackLimit
		}
		list.Rows[i] = row
	}
	return list
}

// Projects renders the project index.
func (r *Renderer) Projects(w io.Writer, projects []content.Project) error {
	list := NewProjectList(projects)
	list.Email = r.opts.Chrome.Email
	return r.execute(w, PageProjects, r.opts.Site.Projects(), list)
}

// ProjectView is the detail page view.
type ProjectView struct {
	content.Project
	Email string
}

// Project renders one project's detail page.
func (r *Renderer) Project(w io.Writer, p content.Project) error {
	return r.execute(w, PageProject, r.opts.Site.Project(p), ProjectView{Project: p, Email: r.opts.Chrome.Email})
}

// Section is a blog section with its body rendered.
type Section struct {
	Heading string
	Body    template.HTML
}

// BlogView is the blog post view.
type BlogView struct {
	content.BlogPost
	Date     string
	Sections []Section
}

// NewBlogView renders every section body through the markup renderer.
func NewBlogView(b content.BlogPost) BlogView {
	v := BlogView{BlogPost: b, Date: content.FormatDate(b.PublishedDate)}
	for _, s := range b.Content.Sections {
		v.Sections = append(v.Sections, Section{Heading: s.Heading, Body: MarkupHTML(s.Content)})
	}
	return v
}

// Blog renders a blog post.
func (r *Renderer) Blog(w io.Writer, b content.BlogPost) error {
	return r.execute(w, PageBlog, r.opts.Site.Blog(b), NewBlogView(b))
}

// NotFound renders the 404 page under title.
func (r *Renderer) NotFound(w io.Writer, title string) error {
	return r.execute(w, PageNotFound, r.opts.Site.NotFound(title), title)
}

// Error renders the 500 page.
func (r *Renderer) Error(w io.Writer) error {
	return r.execute(w, PageError, r.opts.Site.NotFound("Something Went Wrong"), nil)
}

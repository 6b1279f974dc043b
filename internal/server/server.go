// Package server serves the portfolio over HTTP with gin.
package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/markup"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/search"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/sitemap"
)

const (
	contentHTML = "text/html; charset=utf-8"
	contentXML  = "application/xml; charset=utf-8"
	contentText = "text/plain; charset=utf-8"

	// maxRenderBody caps POST /api/render input.
	maxRenderBody = 1 << 20
)

// Options configures the routes.
type Options struct {
	BaseURL     string
	ExtraPaths  []string
	StaticDir   string
	CORSOrigins []string
	LiveReload  bool
	// Now stamps sitemap entries; nil means time.Now.
	Now func() time.Time
}

// Server holds the handlers' dependencies.
type Server struct {
	store content.Store
	pages *site.Renderer
	log   *logger.Logger
	opts  Options
	hub   *Hub
}

// New wires a server. A Hub is created when live reload is enabled.
func New(store content.Store, pages *site.Renderer, log *logger.Logger, opts Options) *Server {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{store: store, pages: pages, log: log, opts: opts}
	if opts.LiveReload {
		s.hub = NewHub(log)
	}
	return s
}

// Hub returns the live-reload hub, or nil when live reload is off.
func (s *Server) Hub() *Hub { return s.hub }

// Router returns the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(s.log))

	r.GET("/", s.handleHome)
	r.GET("/projects", s.handleProjects)
	r.GET("/projects/:id", s.handleProject)
	r.GET("/blogs/:slug", s.handleBlog)
	r.GET("/sitemap.xml", s.handleSitemap)
	r.GET("/robots.txt", s.handleRobots)
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	if s.opts.StaticDir != "" {
		r.Static("/static", s.opts.StaticDir)
	}
	if s.hub != nil {
		r.GET("/_live", gin.WrapH(s.hub))
	}

	api := r.Group("/api")
	api.Use(CORS(s.opts.CORSOrigins))
	{
		api.GET("/blogs", s.apiBlogs)
		api.GET("/blogs/:slug", s.apiBlog)
		api.GET("/projects", s.apiProjects)
		api.GET("/projects/:id", s.apiProject)
		api.GET("/search", s.apiSearch)
		api.POST("/render", s.apiRender)
		// preflight requests are answered by the CORS middleware
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	r.NoRoute(func(c *gin.Context) { s.notFound(c, site.PageNotFoundTitle) })
	return r
}

// page renders fn into a buffer and serves it with an ETag.
func (s *Server) page(c *gin.Context, status int, fn func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		s.fail(c, err)
		return
	}
	writeCached(c, status, contentHTML, buf.Bytes())
}

func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	s.log.Error("request failed", "path", c.Request.URL.Path, "request_id", c.GetString(ctxRequestID), "err", err)
	var buf bytes.Buffer
	if rerr := s.pages.Error(&buf); rerr != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusInternalServerError, contentHTML, buf.Bytes())
}

func (s *Server) notFound(c *gin.Context, title string) {
	s.page(c, http.StatusNotFound, func(w io.Writer) error { return s.pages.NotFound(w, title) })
}

func (s *Server) handleHome(c *gin.Context) {
	l, err := s.store.Landing(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.page(c, http.StatusOK, func(w io.Writer) error { return s.pages.Home(w, l) })
}

func (s *Server) handleProjects(c *gin.Context) {
	ps, err := s.store.Projects(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	s.page(c, http.StatusOK, func(w io.Writer) error { return s.pages.Projects(w, ps) })
}

func (s *Server) handleProject(c *gin.Context) {
	p, err := s.store.Project(c.Request.Context(), c.Param("id"))
	if errors.Is(err, content.ErrNotFound) {
		s.notFound(c, site.ProjectNotFound)
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	s.page(c, http.StatusOK, func(w io.Writer) error { return s.pages.Project(w, p) })
}

func (s *Server) handleBlog(c *gin.Context) {
	b, err := s.store.Blog(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, content.ErrNotFound) {
		s.notFound(c, site.BlogNotFound)
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	s.page(c, http.StatusOK, func(w io.Writer) error { return s.pages.Blog(w, b) })
}

func (s *Server) handleSitemap(c *gin.Context) {
	entries, err := sitemap.Build(c.Request.Context(), s.store, sitemap.Options{
		BaseURL:    s.opts.BaseURL,
		ExtraPaths: s.opts.ExtraPaths,
		Now:        s.opts.Now(),
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	var buf bytes.Buffer
	if err := sitemap.Encode(&buf, entries); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, contentXML, buf.Bytes())
}

func (s *Server) handleRobots(c *gin.Context) {
	c.Data(http.StatusOK, contentText, []byte(sitemap.Robots(s.opts.BaseURL)))
}

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (s *Server) apiErr(c *gin.Context, err error) {
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": apiError{Message: "not found", Code: "not_found"}})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": apiError{Message: "internal error", Code: "internal"}})
}

func (s *Server) apiBlogs(c *gin.Context) {
	bs, err := s.store.Blogs(c.Request.Context())
	if err != nil {
		s.apiErr(c, err)
		return
	}
	if bs == nil {
		bs = []content.BlogPost{}
	}
	c.JSON(http.StatusOK, bs)
}

func (s *Server) apiBlog(c *gin.Context) {
	b, err := s.store.Blog(c.Request.Context(), c.Param("slug"))
	if err != nil {
		s.apiErr(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (s *Server) apiProjects(c *gin.Context) {
	ps, err := s.store.Projects(c.Request.Context())
	if err != nil {
		s.apiErr(c, err)
		return
	}
	if ps == nil {
		ps = []content.Project{}
	}
	c.JSON(http.StatusOK, ps)
}

func (s *Server) apiProject(c *gin.Context) {
	p, err := s.store.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.apiErr(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) apiSearch(c *gin.Context) {
	limit := 10
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": apiError{Message: "limit must be a non-negative integer", Code: "bad_request"}})
			return
		}
		limit = n
	}
	hits, err := search.Search(c.Request.Context(), s.store, strings.TrimSpace(c.Query("q")), limit)
	if err != nil {
		s.apiErr(c, err)
		return
	}
	if hits == nil {
		hits = []search.Hit{}
	}
	c.JSON(http.StatusOK, hits)
}

func (s *Server) apiRender(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRenderBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": apiError{Message: "body too large", Code: "too_large"}})
		return
	}
	c.JSON(http.StatusOK, markup.Render(string(body)))
}

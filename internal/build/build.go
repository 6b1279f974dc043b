// Package build exports the whole site as static files.
package build

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/logger"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/site"
	"github.com/dixxanta08/dixxanta-portfoilio/internal/sitemap"
)

// Options configures a static export.
type Options struct {
	OutputDir  string
	StaticDir  string
	// ContentDir is only used to keep the output away from the sources.
	ContentDir string
	BaseURL    string
	ExtraPaths []string
	Now        time.Time
	Log        *logger.Logger
}

// Result lists what was written, relative to the output directory.
type Result struct {
	Pages []string
	Files []string
}

// Site renders every route into opts.OutputDir as <route>/index.html, plus
// 404.html, sitemap.xml, robots.txt and the static directory under static/.
// The output directory is emptied first.
func Site(ctx context.Context, store content.Store, pages *site.Renderer, opts Options) (Result, error) {
	var res Result
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	out, err := prepareOutput(opts.OutputDir, opts.StaticDir, opts.ContentDir)
	if err != nil {
		return res, err
	}

	landing, err := store.Landing(ctx)
	if err != nil {
		return res, err
	}
	projects, err := store.Projects(ctx)
	if err != nil {
		return res, err
	}
	blogs, err := store.Blogs(ctx)
	if err != nil {
		return res, err
	}

	page := func(route string, render func(io.Writer) error) error {
		rel := filepath.Join(filepath.FromSlash(strings.Trim(route, "/")), "index.html")
		if err := writeRendered(filepath.Join(out, rel), render); err != nil {
			return fmt.Errorf("build %s: %w", route, err)
		}
		res.Pages = append(res.Pages, filepath.ToSlash(rel))
		return nil
	}

	if err := page("/", func(w io.Writer) error { return pages.Home(w, landing) }); err != nil {
		return res, err
	}
	if err := page("/projects", func(w io.Writer) error { return pages.Projects(w, projects) }); err != nil {
		return res, err
	}
	for _, p := range projects {
		if err := checkKey(p.ID); err != nil {
			return res, fmt.Errorf("project: %w", err)
		}
		if err := page("/projects/"+p.ID, func(w io.Writer) error { return pages.Project(w, p) }); err != nil {
			return res, err
		}
	}
	for _, b := range blogs {
		if err := checkKey(b.Slug); err != nil {
			return res, fmt.Errorf("blog: %w", err)
		}
		if err := page("/blogs/"+b.Slug, func(w io.Writer) error { return pages.Blog(w, b) }); err != nil {
			return res, err
		}
	}

	file := func(name string, render func(io.Writer) error) error {
		if err := writeRendered(filepath.Join(out, name), render); err != nil {
			return fmt.Errorf("build %s: %w", name, err)
		}
		res.Files = append(res.Files, name)
		return nil
	}
	if err := file("404.html", func(w io.Writer) error { return pages.NotFound(w, site.PageNotFoundTitle) }); err != nil {
		return res, err
	}
	entries, err := sitemap.Build(ctx, store, sitemap.Options{BaseURL: opts.BaseURL, ExtraPaths: opts.ExtraPaths, Now: opts.Now})
	if err != nil {
		return res, err
	}
	if err := file("sitemap.xml", func(w io.Writer) error { return sitemap.Encode(w, entries) }); err != nil {
		return res, err
	}
	if err := file("robots.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, sitemap.Robots(opts.BaseURL))
		return err
	}); err != nil {
		return res, err
	}

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			if err := copyDirContents(opts.StaticDir, filepath.Join(out, "static")); err != nil {
				return res, fmt.Errorf("copy static assets: %w", err)
			}
		} else {
			log.Warn("static directory not found, skipping copy", "dir", opts.StaticDir)
		}
	}
	log.Info("site built", "output", out, "pages", len(res.Pages))
	return res, nil
}

// prepareOutput empties and recreates dir. It refuses to clean a directory
// that is, contains or lies inside any of the protected source directories.
func prepareOutput(dir string, protected ...string) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("output directory is required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if abs == filepath.Dir(abs) {
		return "", fmt.Errorf("refusing to clean %s", abs)
	}
	if wd, err := os.Getwd(); err == nil && wd == abs {
		return "", fmt.Errorf("refusing to clean the working directory %s", abs)
	}
	for _, p := range protected {
		if strings.TrimSpace(p) == "" {
			continue
		}
		src, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		if overlaps(abs, src) {
			return "", fmt.Errorf("output directory %s overlaps source directory %s", abs, src)
		}
	}
	if err := os.RemoveAll(abs); err != nil {
		return "", fmt.Errorf("failed to remove output directory '%s': %w", abs, err)
	}
	if err := os.MkdirAll(abs, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create output directory '%s': %w", abs, err)
	}
	return abs, nil
}

// overlaps reports whether a and b are the same directory or one contains the other.
func overlaps(a, b string) bool {
	return a == b || within(a, b) || within(b, a)
}

func within(dir, parent string) bool {
	rel, err := filepath.Rel(parent, dir)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && rel != "."
}

// checkKey rejects slugs and ids that would escape their directory.
func checkKey(k string) error {
	if k == "" || k == "." || k == ".." || strings.ContainsAny(k, `/\`) {
		return fmt.Errorf("key %q cannot be used as a path", k)
	}
	return nil
}

func writeRendered(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Base names of the content files, without extension.
const (
	BlogsFile    = "blogs"
	ProjectsFile = "projects"
	LandingFile  = "landing-content"
)

// extensions are tried in order; the first existing file wins.
var extensions = []string{".json", ".yaml", ".yml"}

// FileStore serves content parsed from JSON or YAML files in a directory.
// Reload swaps in freshly parsed content; on failure the previous content
// is kept.
type FileStore struct {
	dir string

	mu       sync.RWMutex
	landing  Landing
	blogs    []BlogPost
	projects []Project
	blogIdx  map[string]int
	projIdx  map[string]int
	modTime  time.Time
}

var (
	_ Store     = (*FileStore)(nil)
	_ TagLister = (*FileStore)(nil)
)

// OpenDir loads the content directory. A missing file is an empty collection.
func OpenDir(dir string) (*FileStore, error) {
	s := &FileStore{dir: dir}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Dir returns the directory the store reads from.
func (s *FileStore) Dir() string { return s.dir }

// Reload re-reads every content file.
func (s *FileStore) Reload() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("content dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content dir %s is not a directory", s.dir)
	}

	var landing Landing
	var blogs []BlogPost
	var projects []Project
	var newest time.Time

	mt, err := decodeFile(s.dir, LandingFile, &landing)
	if err != nil {
		return err
	}
	newest = later(newest, mt)
	if mt, err = decodeFile(s.dir, BlogsFile, &blogs); err != nil {
		return err
	}
	newest = later(newest, mt)
	if mt, err = decodeFile(s.dir, ProjectsFile, &projects); err != nil {
		return err
	}
	newest = later(newest, mt)
	trimKeys(blogs, projects)
	fillTitles(blogs, projects)

	blogIdx, err := index(BlogsFile, len(blogs), func(i int) string { return blogs[i].Slug })
	if err != nil {
		return err
	}
	projIdx, err := index(ProjectsFile, len(projects), func(i int) string { return projects[i].ID })
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.landing = landing
	s.blogs = blogs
	s.projects = projects
	s.blogIdx = blogIdx
	s.projIdx = projIdx
	s.modTime = newest
	s.mu.Unlock()
	return nil
}

func (s *FileStore) Landing(ctx context.Context) (Landing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.landing, nil
}

func (s *FileStore) Blogs(ctx context.Context) ([]BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BlogPost(nil), s.blogs...), nil
}

func (s *FileStore) Blog(ctx context.Context, slug string) (BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.blogIdx[slug]
	if !ok {
		return BlogPost{}, NotFound("blog", slug)
	}
	return s.blogs[i], nil
}

func (s *FileStore) Projects(ctx context.Context) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Project(nil), s.projects...), nil
}

func (s *FileStore) Project(ctx context.Context, id string) (Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.projIdx[id]
	if !ok {
		return Project{}, NotFound("project", id)
	}
	return s.projects[i], nil
}

// ProjectsByTag lists projects carrying tag, compared case-insensitively.
func (s *FileStore) ProjectsByTag(ctx context.Context, tag string) ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Project
	for _, p := range s.projects {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *FileStore) ModTime(ctx context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modTime, nil
}

// decodeFile finds base.{json,yaml,yml} in dir and decodes it into out.
// It returns the file's modification time, or the zero time when absent.
func decodeFile(dir, base string, out any) (time.Time, error) {
	for _, ext := range extensions {
		name := base + ext
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("load %s: %w", name, err)
		}
		if err := decode(ext, b, out); err != nil {
			return time.Time{}, fmt.Errorf("load %s: %w", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			return time.Time{}, fmt.Errorf("load %s: %w", name, err)
		}
		return info.ModTime().UTC(), nil
	}
	return time.Time{}, nil
}

func decode(ext string, b []byte, out any) error {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if ext == ".json" {
		return json.Unmarshal(b, out)
	}
	return yaml.Unmarshal(b, out)
}

// trimKeys stores keys the way they are looked up, so listed records resolve.
func trimKeys(blogs []BlogPost, projects []Project) {
	for i := range blogs {
		blogs[i].Slug = strings.TrimSpace(blogs[i].Slug)
	}
	for i := range projects {
		projects[i].ID = strings.TrimSpace(projects[i].ID)
	}
}

func index(file string, n int, key func(int) string) (map[string]int, error) {
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		k := key(i)
		if k == "" {
			return nil, fmt.Errorf("load %s: record %d has no key", file, i)
		}
		if j, dup := idx[k]; dup {
			return nil, fmt.Errorf("load %s: duplicate key %q (records %d and %d)", file, k, j, i)
		}
		idx[k] = i
	}
	return idx, nil
}

func later(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

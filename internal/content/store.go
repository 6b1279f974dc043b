// Package content holds the portfolio records and the read-only stores that
// serve them by key.
package content

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup by slug or id has no match.
var ErrNotFound = errors.New("not found")

// Store is the read-only content collection. Lookups that miss return an
// error wrapping ErrNotFound.
type Store interface {
	Landing(ctx context.Context) (Landing, error)
	Blogs(ctx context.Context) ([]BlogPost, error)
	Blog(ctx context.Context, slug string) (BlogPost, error)
	Projects(ctx context.Context) ([]Project, error)
	Project(ctx context.Context, id string) (Project, error)
	// ModTime reports when the content was last changed.
	ModTime(ctx context.Context) (time.Time, error)
}

// TagLister is implemented by stores that can filter projects by tag.
type TagLister interface {
	ProjectsByTag(ctx context.Context, tag string) ([]Project, error)
}

// NotFound wraps ErrNotFound with the kind and key that missed.
func NotFound(kind, key string) error {
	return fmt.Errorf("%w: %s %q", ErrNotFound, kind, key)
}

// Snapshot is a fully loaded copy of a store's content.
type Snapshot struct {
	Landing  Landing
	Blogs    []BlogPost
	Projects []Project
	ModTime  time.Time
}

// Capture reads everything from s into a Snapshot.
func Capture(ctx context.Context, s Store) (Snapshot, error) {
	var snap Snapshot
	var err error
	if snap.Landing, err = s.Landing(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Blogs, err = s.Blogs(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Projects, err = s.Projects(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.ModTime, err = s.ModTime(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Package search does fuzzy lookups over blog titles and project names.
package search

import (
	"context"

	"github.com/sahilm/fuzzy"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

// Hit is one match.
type Hit struct {
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
	Score int    `json:"score"`
}

type candidates []Hit

func (c candidates) String(i int) string { return c[i].Title }
func (c candidates) Len() int            { return len(c) }

// Index collects every blog and project as a search candidate, blogs first.
func Index(ctx context.Context, s content.Store) ([]Hit, error) {
	blogs, err := s.Blogs(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.Projects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Hit, 0, len(blogs)+len(projects))
	for _, b := range blogs {
		out = append(out, Hit{Kind: "blog", Key: b.Slug, Title: b.Title, Path: "/blogs/" + b.Slug})
	}
	for _, p := range projects {
		out = append(out, Hit{Kind: "project", Key: p.ID, Title: p.Name, Path: "/projects/" + p.ID})
	}
	return out, nil
}

// Search returns up to limit matches for query, best first. An empty query
// returns candidates in content order. limit <= 0 means no limit.
func Search(ctx context.Context, s content.Store, query string, limit int) ([]Hit, error) {
	all, err := Index(ctx, s)
	if err != nil {
		return nil, err
	}
	return Match(all, query, limit), nil
}

// Match ranks hits against query.
func Match(all []Hit, query string, limit int) []Hit {
	if query == "" {
		return truncate(all, limit)
	}
	matches := fuzzy.FindFrom(query, candidates(all))
	if len(matches) == 0 {
		return nil
	}
	out := make([]Hit, len(matches))
	for i, m := range matches {
		h := all[m.Index]
		h.Score = m.Score
		out[i] = h
	}
	return truncate(out, limit)
}

// Complete returns the top n keys matching input; used for shell completion.
func Complete(input string, keys []string, n int) []string {
	if input == "" {
		return keys
	}
	matches := fuzzy.Find(input, keys)
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

func truncate(h []Hit, limit int) []Hit {
	if limit > 0 && len(h) > limit {
		return h[:limit]
	}
	return h
}

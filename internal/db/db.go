// Package db keeps an sqlite index of the portfolio content and serves it as
// a content.Store.
package db

import (
	"context"
	"fmt"
	"strings"
)

const scheme = "sqlite://"

// IsDSN reports whether s names an sqlite database.
func IsDSN(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), scheme)
}

// Open connects to the database named by dsn (sqlite://path) and ensures the
// schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if !IsDSN(dsn) {
		return nil, fmt.Errorf("unsupported database url %q (want %spath)", dsn, scheme)
	}
	return openSQLite(ctx, dsn)
}

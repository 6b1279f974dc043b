package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/content"
)

var corpus = []Hit{
	{Kind: "blog", Key: "ai-and-interviews", Title: "AI and Interviews"},
	{Kind: "project", Key: "shop", Title: "Online Shop"},
	{Kind: "project", Key: "notes", Title: "Notes CLI"},
}

func TestMatch(t *testing.T) {
	t.Run("empty query keeps order", func(t *testing.T) {
		got := Match(corpus, "", 0)
		assert.Equal(t, corpus, got)
		assert.Len(t, Match(corpus, "", 2), 2)
	})
	t.Run("fuzzy", func(t *testing.T) {
		got := Match(corpus, "shp", 0)
		require.Len(t, got, 1)
		assert.Equal(t, "shop", got[0].Key)
		assert.NotZero(t, got[0].Score)
	})
	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, Match(corpus, "zzz", 0))
	})
}

func TestComplete(t *testing.T) {
	keys := []string{"ai-and-interviews", "shop", "notes"}
	assert.Equal(t, keys, Complete("", keys, 1))
	assert.Equal(t, []string{"shop"}, Complete("sho", keys, 5))
	assert.Nil(t, Complete("qqq", keys, 5))
}

func TestSearchStore(t *testing.T) {
	dir := t.TempDir()
	s, err := content.OpenDir(dir)
	require.NoError(t, err)
	hits, err := Search(context.Background(), s, "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

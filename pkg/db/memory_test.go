package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slate-seo/pkg/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.SetClock(stepClock(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, store.InsertPage(ctx, samplePage("a", domain.PageTypeCreate)))
	require.NoError(t, store.InsertPage(ctx, samplePage("b", domain.PageTypeTool)))

	err := store.InsertPage(ctx, samplePage("a", domain.PageTypeCreate))
	assert.ErrorIs(t, err, ErrSlugExists)
	assert.Equal(t, 2, store.Len())

	existing, err := store.ExistingSlugs(ctx)
	require.NoError(t, err)
	assert.Len(t, existing, 2)

	pages, err := store.PublishedPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "b", pages[0].Slug)
	assert.Equal(t, "a", pages[1].Slug)

	require.NoError(t, store.SetPublished(ctx, "b", false))
	pages, err = store.PublishedPages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "a", pages[0].Slug)

	assert.ErrorIs(t, store.SetPublished(ctx, "zzz", true), ErrNotFound)

	page, ok := store.Page("a")
	require.True(t, ok)
	assert.Equal(t, "Title a", page.Title)
}

func TestMemoryStoreFailInsert(t *testing.T) {
	store := NewMemoryStore()
	boom := errors.New("boom")
	store.FailInsert("bad", boom)

	err := store.InsertPage(context.Background(), samplePage("bad", domain.PageTypeCreate))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len())
}

package trivia

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	cats  []Category
	calls int
}

func (s *countingSource) ListCategories(ctx context.Context) ([]Category, error) {
	s.calls++
	return s.cats, nil
}

func (s *countingSource) CategoryByID(ctx context.Context, id int) (Category, error) {
	for _, c := range s.cats {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func TestCategoryCachePassthroughWithoutRedis(t *testing.T) {
	source := &countingSource{cats: []Category{{ID: 1, Type: "Science"}}}
	cache := NewCategoryCache(source, nil, 0)

	cats, err := cache.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	_, err = cache.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls, "nil client must pass every call through")
}

func TestCategoryCacheResolvesByID(t *testing.T) {
	source := &countingSource{cats: []Category{
		{ID: 1, Type: "Science"},
		{ID: 6, Type: "Sports"},
	}}
	cache := NewCategoryCache(source, nil, 0)

	cat, err := cache.CategoryByID(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, "Sports", cat.Type)

	_, err = cache.CategoryByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCategoryTTL = 5 * time.Minute

const categoryCacheKey = "trivia:categories"

// CategoryCache is a redis-backed read-through cache over the category
// table. Categories are pre-seeded and stable, so every listing and
// existence check goes through here instead of the database; staleness is
// bounded by the TTL. With a nil client it degrades to a passthrough.
type CategoryCache struct {
	source CategorySource
	client *redis.Client
	ttl    time.Duration
}

var _ CategorySource = (*CategoryCache)(nil)

func NewCategoryCache(source CategorySource, client *redis.Client, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = defaultCategoryTTL
	}
	return &CategoryCache{source: source, client: client, ttl: ttl}
}

func (c *CategoryCache) ListCategories(ctx context.Context) ([]Category, error) {
	if c.client == nil {
		return c.source.ListCategories(ctx)
	}
	data, err := c.client.Get(ctx, categoryCacheKey).Bytes()
	if err == nil {
		var cats []Category
		if err := json.Unmarshal(data, &cats); err == nil {
			return cats, nil
		}
		// Corrupt entry; fall through and refill.
	}

	cats, err := c.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(cats); err == nil {
		// Best effort: a failed write only costs the next call a DB hit.
		_ = c.client.Set(ctx, categoryCacheKey, data, c.ttl).Err()
	}
	return cats, nil
}

func (c *CategoryCache) CategoryByID(ctx context.Context, id int) (Category, error) {
	cats, err := c.ListCategories(ctx)
	if err != nil {
		return Category{}, err
	}
	for _, cat := range cats {
		if cat.ID == id {
			return cat, nil
		}
	}
	return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
}

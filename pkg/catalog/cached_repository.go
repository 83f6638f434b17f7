package catalog

import (
	"EcoMart-Backend/entities"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const itemIDCacheTTL = 10 * time.Minute

// cachedCatalogRepository fronts item-by-ID reads with Redis. The basket
// pricing path looks an item up for every basket row, so those reads are
// the hottest in the system. Cache trouble degrades to the database.
type cachedCatalogRepository struct {
	CatalogRepository
	rdb *redis.Client
}

func NewCachedCatalogRepository(inner CatalogRepository, rdb *redis.Client) CatalogRepository {
	return &cachedCatalogRepository{CatalogRepository: inner, rdb: rdb}
}

func itemIDCacheKey(id string) string {
	return fmt.Sprintf("item:id:%s", id)
}

func (r *cachedCatalogRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	key := itemIDCacheKey(id)

	cached, err := r.rdb.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Warnf("item cache read for id %s: %v", id, err)
	}
	if cached != "" {
		var item entities.Item
		if err := json.Unmarshal([]byte(cached), &item); err == nil {
			return &item, nil
		}
		log.Warnf("item cache entry for id %s is corrupt, refetching", id)
	}

	item, err := r.CatalogRepository.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(item); err == nil {
		if err := r.rdb.Set(ctx, key, payload, itemIDCacheTTL).Err(); err != nil {
			log.Warnf("item cache write for id %s: %v", id, err)
		}
	}

	return item, nil
}

// UpsertItemByName rewrites an existing row in place, so any cached copy
// of that row must go with it.
func (r *cachedCatalogRepository) UpsertItemByName(ctx context.Context, item *entities.Item) error {
	if err := r.CatalogRepository.UpsertItemByName(ctx, item); err != nil {
		return err
	}
	if item.ID != uuid.Nil {
		if err := r.rdb.Del(ctx, itemIDCacheKey(item.ID.String())).Err(); err != nil {
			log.Warnf("item cache invalidation for id %s: %v", item.ID, err)
		}
	}
	return nil
}

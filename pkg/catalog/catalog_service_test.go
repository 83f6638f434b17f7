package catalog

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCatalogRepository struct {
	items       []*entities.Item
	byIDCalls   int
	byNameCalls int
}

func (f *fakeCatalogRepository) CreateItem(_ context.Context, item *entities.Item) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCatalogRepository) UpsertItemByName(_ context.Context, item *entities.Item) error {
	for i, existing := range f.items {
		if existing.Name == item.Name {
			f.items[i] = item
			return nil
		}
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCatalogRepository) GetItems(_ context.Context) ([]*entities.Item, error) {
	items := make([]*entities.Item, len(f.items))
	copy(items, f.items)
	return items, nil
}

func (f *fakeCatalogRepository) GetItemByID(_ context.Context, id string) (*entities.Item, error) {
	f.byIDCalls++
	for _, item := range f.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) GetItemByName(_ context.Context, name string) (*entities.Item, error) {
	f.byNameCalls++
	for _, item := range f.items {
		if item.Name == name {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCatalogRepository) ItemNameExists(_ context.Context, name string) (bool, error) {
	_, err := f.GetItemByName(context.Background(), name)
	return err == nil, nil
}

// unreachableRedis returns a client that fails every command, so tests
// exercise the degrade-to-database path.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func seedRepo() *fakeCatalogRepository {
	return &fakeCatalogRepository{items: []*entities.Item{
		{ID: uuid.New(), Name: "Tote", Price: 1200, EnvironmentalImpact: 78},
		{ID: uuid.New(), Name: "Bottle", Price: 2200, EnvironmentalImpact: 85},
		{ID: uuid.New(), Name: "Power Bank", Price: 3900, EnvironmentalImpact: 64},
		{ID: uuid.New(), Name: "Wraps", Price: 1600, EnvironmentalImpact: 88},
	}}
}

func TestCatalogService_GetItems_Sorting(t *testing.T) {
	service := NewCatalogService(seedRepo(), unreachableRedis(), nil)

	t.Run("by name ascending", func(t *testing.T) {
		items, err := service.GetItems(context.Background(), domain.SortByName)
		require.NoError(t, err)
		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Name, items[i].Name)
		}
	})

	t.Run("by price descending", func(t *testing.T) {
		items, err := service.GetItems(context.Background(), domain.SortByPrice)
		require.NoError(t, err)
		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].Price, items[i].Price)
		}
	})

	t.Run("by impact descending", func(t *testing.T) {
		items, err := service.GetItems(context.Background(), domain.SortByImpact)
		require.NoError(t, err)
		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.GreaterOrEqual(t, items[i-1].EnvironmentalImpact, items[i].EnvironmentalImpact)
		}
	})

	t.Run("unknown sort key falls back to name", func(t *testing.T) {
		items, err := service.GetItems(context.Background(), "quantity")
		require.NoError(t, err)
		require.Len(t, items, 4)
		assert.Equal(t, "Bottle", items[0].Name)
	})
}

func TestCatalogService_GetItemByName(t *testing.T) {
	service := NewCatalogService(seedRepo(), unreachableRedis(), nil)

	t.Run("found without cache", func(t *testing.T) {
		item, err := service.GetItemByName(context.Background(), "Bottle")
		require.NoError(t, err)
		assert.Equal(t, int64(2200), item.Price)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := service.GetItemByName(context.Background(), "Unobtainium")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestCatalogService_GetItemByName_CacheHit(t *testing.T) {
	repo := seedRepo()
	service := NewCatalogService(repo, testRedis(t), nil)

	item, err := service.GetItemByName(context.Background(), "Bottle")
	require.NoError(t, err)
	assert.Equal(t, int64(2200), item.Price)
	assert.Equal(t, 1, repo.byNameCalls)

	// Drop the row underneath the cache; the cached copy still serves.
	repo.items = nil
	item, err = service.GetItemByName(context.Background(), "Bottle")
	require.NoError(t, err)
	assert.Equal(t, int64(2200), item.Price)
	assert.Equal(t, 1, repo.byNameCalls)
}

func TestCatalogService_AddItem_InvalidatesCache(t *testing.T) {
	repo := seedRepo()
	rdb := testRedis(t)
	service := NewCatalogService(repo, rdb, nil)

	// A stale entry the database no longer agrees with.
	payload, err := json.Marshal(&entities.Item{Name: "Bamboo Cutlery", Price: 1})
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), itemCacheKey("Bamboo Cutlery"), payload, 0).Err())

	_, err = service.AddItem(context.Background(), domain.AddItemRequest{
		Name:                "Bamboo Cutlery",
		Description:         "travel set",
		Price:               900,
		EnvironmentalImpact: 81,
	})
	require.NoError(t, err)

	exists, err := rdb.Exists(context.Background(), itemCacheKey("Bamboo Cutlery")).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	// The next detail read sees the new row, not the stale copy.
	item, err := service.GetItemByName(context.Background(), "Bamboo Cutlery")
	require.NoError(t, err)
	assert.Equal(t, int64(900), item.Price)
}

func TestCatalogService_AddItem(t *testing.T) {
	repo := seedRepo()
	service := NewCatalogService(repo, unreachableRedis(), nil)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := service.AddItem(context.Background(), domain.AddItemRequest{
			Name:                "Tote",
			Description:         "dup",
			Price:               100,
			EnvironmentalImpact: 10,
		})
		assert.ErrorIs(t, err, domain.ErrItemExists)
		assert.Len(t, repo.items, 4)
	})

	t.Run("new item without image", func(t *testing.T) {
		res, err := service.AddItem(context.Background(), domain.AddItemRequest{
			Name:                "Bamboo Cutlery",
			Description:         "travel set",
			Price:               900,
			EnvironmentalImpact: 81,
		})
		require.NoError(t, err)
		assert.Equal(t, "Bamboo Cutlery", res.Name)
		assert.Len(t, repo.items, 5)
	})
}

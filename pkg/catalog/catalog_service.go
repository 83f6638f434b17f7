package catalog

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"EcoMart-Backend/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const itemCacheTTL = 10 * time.Minute

type (
	CatalogService interface {
		GetItems(ctx context.Context, sortBy string) ([]*domain.ItemResponse, error)
		GetItemByName(ctx context.Context, name string) (*domain.ItemResponse, error)
		AddItem(ctx context.Context, req domain.AddItemRequest) (*domain.ItemResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
		rdb               *redis.Client
		s3                storage.AwsS3
	}
)

func NewCatalogService(catalogRepository CatalogRepository, rdb *redis.Client, s3 storage.AwsS3) CatalogService {
	return &catalogService{
		catalogRepository: catalogRepository,
		rdb:               rdb,
		s3:                s3,
	}
}

func (s *catalogService) GetItems(ctx context.Context, sortBy string) ([]*domain.ItemResponse, error) {
	items, err := s.catalogRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	// Name sorts ascending; the numeric fields sort descending so the
	// priciest and greenest items lead the listing.
	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case domain.SortByImpact:
		sort.SliceStable(items, func(i, j int) bool { return items[i].EnvironmentalImpact > items[j].EnvironmentalImpact })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}

	result := make([]*domain.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, itemResponse(item))
	}
	return result, nil
}

func (s *catalogService) GetItemByName(ctx context.Context, name string) (*domain.ItemResponse, error) {
	key := itemCacheKey(name)

	cached, err := s.rdb.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		// Cache trouble degrades to an uncached read.
		log.Warnf("item cache read for %q: %v", name, err)
	}
	if cached != "" {
		var item entities.Item
		if err := json.Unmarshal([]byte(cached), &item); err == nil {
			return itemResponse(&item), nil
		}
		log.Warnf("item cache entry for %q is corrupt, refetching", name)
	}

	item, err := s.catalogRepository.GetItemByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(item); err == nil {
		if err := s.rdb.Set(ctx, key, payload, itemCacheTTL).Err(); err != nil {
			log.Warnf("item cache write for %q: %v", name, err)
		}
	}

	return itemResponse(item), nil
}

func (s *catalogService) AddItem(ctx context.Context, req domain.AddItemRequest) (*domain.ItemResponse, error) {
	exists, err := s.catalogRepository.ItemNameExists(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrItemExists
	}

	imageURL := ""
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(ctx, req.Image, "items")
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	item := &entities.Item{
		Name:                req.Name,
		Description:         req.Description,
		Price:               req.Price,
		EnvironmentalImpact: req.EnvironmentalImpact,
		ImageURL:            imageURL,
	}
	if err := s.catalogRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	if err := s.rdb.Del(ctx, itemCacheKey(item.Name)).Err(); err != nil {
		log.Warnf("item cache invalidation for %q: %v", item.Name, err)
	}

	return itemResponse(item), nil
}

func itemCacheKey(name string) string {
	return fmt.Sprintf("item:name:%s", name)
}

func itemResponse(item *entities.Item) *domain.ItemResponse {
	return &domain.ItemResponse{
		ID:                  item.ID.String(),
		Name:                item.Name,
		Description:         item.Description,
		Price:               item.Price,
		EnvironmentalImpact: item.EnvironmentalImpact,
		ImageURL:            item.ImageURL,
		CreatedAt:           item.CreatedAt,
	}
}

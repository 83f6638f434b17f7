package catalog

import (
	"EcoMart-Backend/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CatalogRepository interface {
		CreateItem(ctx context.Context, item *entities.Item) error
		UpsertItemByName(ctx context.Context, item *entities.Item) error
		GetItems(ctx context.Context) ([]*entities.Item, error)
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		GetItemByName(ctx context.Context, name string) (*entities.Item, error)
		ItemNameExists(ctx context.Context, name string) (bool, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpsertItemByName keeps the startup seed idempotent: re-running the seed
// refreshes prices and descriptions instead of duplicating rows.
func (r *catalogRepository) UpsertItemByName(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "price", "environmental_impact", "image_url", "updated_at"}),
	}).Create(item).Error
}

func (r *catalogRepository) GetItems(ctx context.Context) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).Order("name asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *catalogRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetItemByName(ctx context.Context, name string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) ItemNameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Item{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

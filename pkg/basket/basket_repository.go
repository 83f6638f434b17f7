package basket

import (
	"EcoMart-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	BasketRepository interface {
		UpsertEntry(ctx context.Context, entry *entities.BasketEntry) error
		GetEntry(ctx context.Context, userID, itemID uuid.UUID) (*entities.BasketEntry, error)
		GetEntries(ctx context.Context, userID uuid.UUID) ([]*entities.BasketEntry, error)
		UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (int64, error)
		DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error
		ClearEntries(ctx context.Context, userID uuid.UUID) error
	}

	basketRepository struct {
		db *gorm.DB
	}
)

func NewBasketRepository(db *gorm.DB) BasketRepository {
	return &basketRepository{db: db}
}

// UpsertEntry inserts the entry or, when a row for the (user, item) pair
// already exists, increments its quantity. A single statement, so two
// rapid adds from the same user cannot create duplicate rows.
func (r *basketRepository) UpsertEntry(ctx context.Context, entry *entities.BasketEntry) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("basket_entries.quantity + excluded.quantity"),
			"updated_at": gorm.Expr("excluded.updated_at"),
		}),
	}).Create(entry).Error
}

func (r *basketRepository) GetEntry(ctx context.Context, userID, itemID uuid.UUID) (*entities.BasketEntry, error) {
	var entry entities.BasketEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *basketRepository) GetEntries(ctx context.Context, userID uuid.UUID) ([]*entities.BasketEntry, error) {
	var entries []*entities.BasketEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateQuantity overwrites the quantity of an existing row and reports
// how many rows matched, so callers can tell an absent entry apart from
// a successful update.
func (r *basketRepository) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.BasketEntry{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Updates(map[string]interface{}{"quantity": quantity})
	return res.RowsAffected, res.Error
}

func (r *basketRepository) DeleteEntry(ctx context.Context, userID, itemID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&entities.BasketEntry{}).Error
}

func (r *basketRepository) ClearEntries(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.BasketEntry{}).Error
}

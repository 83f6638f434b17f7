package checkout

import (
	"EcoMart-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CheckoutRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
		UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string, paidAt *time.Time) error
		UpdateSnapToken(ctx context.Context, id uuid.UUID, snapToken string) error
	}

	checkoutRepository struct {
		db *gorm.DB
	}
)

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *checkoutRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *checkoutRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string, paidAt *time.Time) error {
	fields := map[string]interface{}{"status": status}
	if paidAt != nil {
		fields["paid_at"] = *paidAt
	}
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *checkoutRepository) UpdateSnapToken(ctx context.Context, id uuid.UUID, snapToken string) error {
	return r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ?", id).
		Update("snap_token", snapToken).Error
}

package entities

import (
	"github.com/google/uuid"
)

// BasketEntry holds one (user, item) quantity row. The composite unique
// index backs the insert-or-increment upsert in the basket repository.
type BasketEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_basket_user_item" json:"user_id"`
	ItemID   uuid.UUID `gorm:"uniqueIndex:idx_basket_user_item" json:"item_id"`
	Quantity int       `json:"quantity"`

	User *User `gorm:"foreignKey:UserID"`
	Item *Item `gorm:"foreignKey:ItemID"`
	Timestamp
}

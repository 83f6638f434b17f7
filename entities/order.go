package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	TotalAmount int64      `json:"total_amount"`
	Status      string     `json:"status"` // Pending, Paid, Cancelled
	SnapToken   string     `json:"snap_token,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`

	User       *User        `gorm:"foreignKey:UserID"`
	OrderItems []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem snapshots the basket line at checkout time so later catalog
// edits do not rewrite order history.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ItemID    uuid.UUID `json:"item_id"`
	ItemName  string    `json:"item_name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Item  *Item  `gorm:"foreignKey:ItemID"`
	Timestamp
}

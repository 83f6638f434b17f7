package entities

import (
	"github.com/google/uuid"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID   uuid.UUID `json:"item_id"`
	Username string    `json:"username"`
	Body     string    `json:"body"`

	Item *Item `gorm:"foreignKey:ItemID"`
	Timestamp
}

package entities

import (
	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	// Price is stored in the smallest currency unit (cents).
	Price               int64  `json:"price"`
	EnvironmentalImpact int    `json:"environmental_impact"`
	ImageURL            string `json:"image_url,omitempty"`

	BasketEntries []*BasketEntry `gorm:"foreignKey:ItemID"`
	Reviews       []*Review      `gorm:"foreignKey:ItemID"`
	Timestamp
}

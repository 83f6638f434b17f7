package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`

	BasketEntries []*BasketEntry `gorm:"foreignKey:UserID"`
	Orders        []*Order       `gorm:"foreignKey:UserID"`
	Timestamp
}

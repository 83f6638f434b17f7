package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	SortByName   = "name"
	SortByPrice  = "price"
	SortByImpact = "impact"
)

var (
	MessageSuccessGetItems = "items retrieved successfully"
	MessageSuccessGetItem  = "item retrieved successfully"
	MessageSuccessAddItem  = "item added successfully"

	MessageFailedGetItems = "failed to retrieve items"
	MessageFailedGetItem  = "failed to retrieve item"
	MessageFailedAddItem  = "failed to add item"

	ErrItemNotFound = errors.New("item not found")
	ErrItemExists   = errors.New("item already exists")
)

type (
	AddItemRequest struct {
		Name                string                `json:"name" form:"name" validate:"required"`
		Description         string                `json:"description" form:"description" validate:"required"`
		Price               int64                 `json:"price" form:"price" validate:"required,min=1"`
		EnvironmentalImpact int                   `json:"environmental_impact" form:"environmental_impact" validate:"required,min=0,max=100"`
		Image               *multipart.FileHeader `json:"-" form:"image"`
	}

	ItemResponse struct {
		ID                  string    `json:"id"`
		Name                string    `json:"name"`
		Description         string    `json:"description"`
		Price               int64     `json:"price"`
		EnvironmentalImpact int       `json:"environmental_impact"`
		ImageURL            string    `json:"image_url,omitempty"`
		CreatedAt           time.Time `json:"created_at"`
	}

	SeedItem struct {
		Name                string `yaml:"name"`
		Description         string `yaml:"description"`
		Price               int64  `yaml:"price"`
		EnvironmentalImpact int    `yaml:"environmental_impact"`
		ImageURL            string `yaml:"image_url"`
	}
)

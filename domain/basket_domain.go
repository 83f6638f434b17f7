package domain

import (
	"errors"
)

var (
	MessageSuccessAddBasketItem = "item added to basket"
	MessageSuccessSetQuantity   = "basket quantity updated"
	MessageSuccessGetBasket     = "basket retrieved successfully"

	MessageFailedAddBasketItem = "failed to add item to basket"
	MessageFailedSetQuantity   = "failed to update basket quantity"
	MessageFailedGetBasket     = "failed to retrieve basket"

	ErrBasketEntryNotFound = errors.New("basket entry not found")
	ErrBasketEmpty         = errors.New("basket is empty")
)

type (
	AddBasketItemRequest struct {
		ItemID   string `json:"item_id" validate:"required,uuid"`
		Quantity int    `json:"quantity" validate:"required,min=1"`
	}

	SetQuantityRequest struct {
		ItemID   string `json:"item_id" validate:"required,uuid"`
		Quantity int    `json:"quantity"`
	}

	BasketEntryResponse struct {
		ItemID    string `json:"item_id"`
		ItemName  string `json:"item_name"`
		UnitPrice int64  `json:"unit_price"`
		Quantity  int    `json:"quantity"`
		LineTotal int64  `json:"line_total"`
	}

	BasketResponse struct {
		Entries    []*BasketEntryResponse `json:"entries"`
		TotalPrice int64                  `json:"total_price"`
	}
)

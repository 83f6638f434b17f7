package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCheckout = "checkout completed successfully"
	MessageSuccessGetOrder = "order retrieved successfully"
	MessageSuccessWebhook  = "payment notification processed"

	MessageFailedCheckout = "failed to process checkout"
	MessageFailedGetOrder = "failed to retrieve order"
	MessageFailedWebhook  = "failed to process payment notification"

	ErrOrderNotFound = errors.New("order not found")
	ErrCardExpired   = errors.New("card expired")
	ErrPaymentFailed = errors.New("payment processing failed")
)

type (
	CheckoutRequest struct {
		CardNumber string `json:"card_number" validate:"required,credit_card"`
		CardHolder string `json:"card_holder" validate:"required"`
		Expiry     string `json:"expiry" validate:"required,len=5"` // MM/YY
		CVC        string `json:"cvc" validate:"required,numeric,min=3,max=4"`
		Email      string `json:"email" validate:"required,email"`
	}

	CheckoutResponse struct {
		OrderID     string `json:"order_id"`
		TotalAmount int64  `json:"total_amount"`
		SnapToken   string `json:"snap_token"`
	}

	OrderItemResponse struct {
		ItemName  string `json:"item_name"`
		UnitPrice int64  `json:"unit_price"`
		Quantity  int    `json:"quantity"`
	}

	OrderResponse struct {
		ID          string               `json:"id"`
		TotalAmount int64                `json:"total_amount"`
		Status      string               `json:"status"`
		PaidAt      *time.Time           `json:"paid_at,omitempty"`
		Items       []*OrderItemResponse `json:"items"`
		CreatedAt   time.Time            `json:"created_at"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)

package checkout

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"EcoMart-Backend/internal/utils/mailing"
	"EcoMart-Backend/pkg/basket"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CheckoutService interface {
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (*domain.CheckoutResponse, error)
		GetOrder(ctx context.Context, orderID string, userID string) (*domain.OrderResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	checkoutService struct {
		checkoutRepository CheckoutRepository
		basketService      basket.BasketService
		gateway            PaymentGateway
		mailer             mailing.Mailer
	}
)

func NewCheckoutService(
	checkoutRepository CheckoutRepository,
	basketService basket.BasketService,
	gateway PaymentGateway,
	mailer mailing.Mailer,
) CheckoutService {
	return &checkoutService{
		checkoutRepository: checkoutRepository,
		basketService:      basketService,
		gateway:            gateway,
		mailer:             mailer,
	}
}

// Checkout turns the user's basket into a pending order, opens a payment
// transaction for the total, and clears every basket entry.
func (s *checkoutService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (*domain.CheckoutResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := validateExpiry(req.Expiry); err != nil {
		return nil, err
	}

	contents, err := s.basketService.GetBasket(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(contents.Entries) == 0 {
		return nil, domain.ErrBasketEmpty
	}

	order := &entities.Order{
		UserID:      uid,
		TotalAmount: contents.TotalPrice,
		Status:      entities.OrderStatusPending,
	}
	for _, entry := range contents.Entries {
		itemID, err := uuid.Parse(entry.ItemID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		order.OrderItems = append(order.OrderItems, &entities.OrderItem{
			ItemID:    itemID,
			ItemName:  entry.ItemName,
			UnitPrice: entry.UnitPrice,
			Quantity:  entry.Quantity,
		})
	}
	if err := s.checkoutRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	snapToken, err := s.gateway.CreateTransaction(order.ID.String(), order.TotalAmount, req.Email)
	if err != nil {
		return nil, domain.ErrPaymentFailed
	}
	order.SnapToken = snapToken
	if err := s.checkoutRepository.UpdateSnapToken(ctx, order.ID, snapToken); err != nil {
		return nil, err
	}

	if err := s.basketService.Clear(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.mailer.Send(
		req.Email,
		"Your EcoMart order",
		fmt.Sprintf("<p>Thanks for your order! Order <b>%s</b> for a total of %d is being processed.</p>", order.ID, order.TotalAmount),
	); err != nil {
		// The order stands even when the confirmation mail bounces.
		log.Warnf("order confirmation mail for %s: %v", order.ID, err)
	}

	return &domain.CheckoutResponse{
		OrderID:     order.ID.String(),
		TotalAmount: order.TotalAmount,
		SnapToken:   snapToken,
	}, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, orderID string, userID string) (*domain.OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	order, err := s.checkoutRepository.GetOrderByID(ctx, oid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID.String() != userID {
		return nil, domain.ErrOrderNotFound
	}

	res := &domain.OrderResponse{
		ID:          order.ID.String(),
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		PaidAt:      order.PaidAt,
		CreatedAt:   order.CreatedAt,
	}
	for _, item := range order.OrderItems {
		res.Items = append(res.Items, &domain.OrderItemResponse{
			ItemName:  item.ItemName,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return res, nil
}

func (s *checkoutService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	oid, err := uuid.Parse(notification.OrderID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.checkoutRepository.GetOrderByID(ctx, oid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrOrderNotFound
		}
		return err
	}

	switch notification.TransactionStatus {
	case "settlement":
		now := time.Now()
		return s.checkoutRepository.UpdateOrderStatus(ctx, oid, entities.OrderStatusPaid, &now)
	case "capture":
		if notification.FraudStatus == "accept" {
			now := time.Now()
			return s.checkoutRepository.UpdateOrderStatus(ctx, oid, entities.OrderStatusPaid, &now)
		}
		return nil
	case "deny", "cancel", "expire":
		return s.checkoutRepository.UpdateOrderStatus(ctx, oid, entities.OrderStatusCancelled, nil)
	default:
		return nil
	}
}

// validateExpiry rejects malformed MM/YY values and cards past their
// expiry month.
func validateExpiry(expiry string) error {
	t, err := time.Parse("01/06", expiry)
	if err != nil {
		return domain.ErrCardExpired
	}
	endOfMonth := t.AddDate(0, 1, 0)
	if time.Now().After(endOfMonth) {
		return domain.ErrCardExpired
	}
	return nil
}

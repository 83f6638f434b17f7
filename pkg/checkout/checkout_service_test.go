package checkout

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCheckoutRepository struct {
	orders map[uuid.UUID]*entities.Order
}

func newFakeCheckoutRepository() *fakeCheckoutRepository {
	return &fakeCheckoutRepository{orders: make(map[uuid.UUID]*entities.Order)}
}

func (f *fakeCheckoutRepository) CreateOrder(_ context.Context, order *entities.Order) error {
	order.ID = uuid.New()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeCheckoutRepository) GetOrderByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (f *fakeCheckoutRepository) UpdateOrderStatus(_ context.Context, id uuid.UUID, status string, paidAt *time.Time) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	order.PaidAt = paidAt
	return nil
}

func (f *fakeCheckoutRepository) UpdateSnapToken(_ context.Context, id uuid.UUID, snapToken string) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.SnapToken = snapToken
	return nil
}

// fakeBasketService holds entries in memory and records clears.
type fakeBasketService struct {
	entries map[string][]*domain.BasketEntryResponse
	cleared []string
}

func newFakeBasketService() *fakeBasketService {
	return &fakeBasketService{entries: make(map[string][]*domain.BasketEntryResponse)}
}

func (f *fakeBasketService) AddItem(_ context.Context, _ domain.AddBasketItemRequest, _ string) (*domain.BasketEntryResponse, error) {
	panic("not used in checkout tests")
}

func (f *fakeBasketService) SetQuantity(_ context.Context, _ domain.SetQuantityRequest, _ string) error {
	panic("not used in checkout tests")
}

func (f *fakeBasketService) GetBasket(_ context.Context, userID string) (*domain.BasketResponse, error) {
	res := &domain.BasketResponse{Entries: f.entries[userID]}
	for _, entry := range res.Entries {
		res.TotalPrice += entry.LineTotal
	}
	return res, nil
}

func (f *fakeBasketService) TotalPrice(ctx context.Context, userID string) (int64, error) {
	basket, err := f.GetBasket(ctx, userID)
	if err != nil {
		return 0, err
	}
	return basket.TotalPrice, nil
}

func (f *fakeBasketService) Clear(_ context.Context, userID string) error {
	delete(f.entries, userID)
	f.cleared = append(f.cleared, userID)
	return nil
}

type fakeGateway struct {
	fail    bool
	charged []int64
}

func (g *fakeGateway) CreateTransaction(_ string, grossAmount int64, _ string) (string, error) {
	if g.fail {
		return "", domain.ErrPaymentFailed
	}
	g.charged = append(g.charged, grossAmount)
	return "snap-token", nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(toEmail, _, _ string) error {
	m.sent = append(m.sent, toEmail)
	return nil
}

func validRequest() domain.CheckoutRequest {
	return domain.CheckoutRequest{
		CardNumber: "4242424242424242",
		CardHolder: "Dana Woods",
		Expiry:     time.Now().AddDate(1, 0, 0).Format("01/06"),
		CVC:        "123",
		Email:      "dana@example.com",
	}
}

func basketEntry(name string, price int64, qty int) *domain.BasketEntryResponse {
	return &domain.BasketEntryResponse{
		ItemID:    uuid.New().String(),
		ItemName:  name,
		UnitPrice: price,
		Quantity:  qty,
		LineTotal: price * int64(qty),
	}
}

func TestCheckoutService_Checkout(t *testing.T) {
	userID := uuid.New().String()

	t.Run("valid payment clears the basket", func(t *testing.T) {
		repo := newFakeCheckoutRepository()
		baskets := newFakeBasketService()
		gateway := &fakeGateway{}
		mailer := &fakeMailer{}
		baskets.entries[userID] = []*domain.BasketEntryResponse{
			basketEntry("Tote", 100, 2),
			basketEntry("Wraps", 50, 1),
		}
		service := NewCheckoutService(repo, baskets, gateway, mailer)

		res, err := service.Checkout(context.Background(), validRequest(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(250), res.TotalAmount)
		assert.Equal(t, "snap-token", res.SnapToken)

		basket, err := baskets.GetBasket(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, basket.Entries)
		assert.Equal(t, []string{userID}, baskets.cleared)
		assert.Equal(t, []int64{250}, gateway.charged)
		assert.Equal(t, []string{"dana@example.com"}, mailer.sent)

		order, err := service.GetOrder(context.Background(), res.OrderID, userID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPending, order.Status)
		assert.Len(t, order.Items, 2)

		stored, err := repo.GetOrderByID(context.Background(), uuid.MustParse(res.OrderID))
		require.NoError(t, err)
		assert.Equal(t, "snap-token", stored.SnapToken)
	})

	t.Run("empty basket", func(t *testing.T) {
		service := NewCheckoutService(newFakeCheckoutRepository(), newFakeBasketService(), &fakeGateway{}, &fakeMailer{})
		_, err := service.Checkout(context.Background(), validRequest(), userID)
		assert.ErrorIs(t, err, domain.ErrBasketEmpty)
	})

	t.Run("expired card", func(t *testing.T) {
		baskets := newFakeBasketService()
		baskets.entries[userID] = []*domain.BasketEntryResponse{basketEntry("Tote", 100, 1)}
		service := NewCheckoutService(newFakeCheckoutRepository(), baskets, &fakeGateway{}, &fakeMailer{})

		req := validRequest()
		req.Expiry = "01/20"
		_, err := service.Checkout(context.Background(), req, userID)
		assert.ErrorIs(t, err, domain.ErrCardExpired)

		// A rejected card leaves the basket untouched.
		basket, err := baskets.GetBasket(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, basket.Entries, 1)
	})

	t.Run("malformed expiry", func(t *testing.T) {
		baskets := newFakeBasketService()
		baskets.entries[userID] = []*domain.BasketEntryResponse{basketEntry("Tote", 100, 1)}
		service := NewCheckoutService(newFakeCheckoutRepository(), baskets, &fakeGateway{}, &fakeMailer{})

		req := validRequest()
		req.Expiry = "13/9x"
		_, err := service.Checkout(context.Background(), req, userID)
		assert.ErrorIs(t, err, domain.ErrCardExpired)
	})

	t.Run("gateway failure keeps the basket", func(t *testing.T) {
		baskets := newFakeBasketService()
		baskets.entries[userID] = []*domain.BasketEntryResponse{basketEntry("Tote", 100, 1)}
		service := NewCheckoutService(newFakeCheckoutRepository(), baskets, &fakeGateway{fail: true}, &fakeMailer{})

		_, err := service.Checkout(context.Background(), validRequest(), userID)
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)

		basket, err := baskets.GetBasket(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, basket.Entries, 1)
	})
}

func TestCheckoutService_GetOrder(t *testing.T) {
	userID := uuid.New().String()
	repo := newFakeCheckoutRepository()
	baskets := newFakeBasketService()
	baskets.entries[userID] = []*domain.BasketEntryResponse{basketEntry("Bottle", 2200, 1)}
	service := NewCheckoutService(repo, baskets, &fakeGateway{}, &fakeMailer{})

	res, err := service.Checkout(context.Background(), validRequest(), userID)
	require.NoError(t, err)

	t.Run("foreign order is hidden", func(t *testing.T) {
		_, err := service.GetOrder(context.Background(), res.OrderID, uuid.New().String())
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := service.GetOrder(context.Background(), uuid.New().String(), userID)
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

func TestCheckoutService_HandleNotification(t *testing.T) {
	userID := uuid.New().String()
	repo := newFakeCheckoutRepository()
	baskets := newFakeBasketService()
	baskets.entries[userID] = []*domain.BasketEntryResponse{basketEntry("Bottle", 2200, 1)}
	service := NewCheckoutService(repo, baskets, &fakeGateway{}, &fakeMailer{})

	res, err := service.Checkout(context.Background(), validRequest(), userID)
	require.NoError(t, err)

	t.Run("settlement marks the order paid", func(t *testing.T) {
		err := service.HandleNotification(context.Background(), domain.MidtransNotification{
			OrderID:           res.OrderID,
			TransactionStatus: "settlement",
		})
		require.NoError(t, err)

		order, err := service.GetOrder(context.Background(), res.OrderID, userID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusPaid, order.Status)
		assert.NotNil(t, order.PaidAt)
	})

	t.Run("expire cancels the order", func(t *testing.T) {
		err := service.HandleNotification(context.Background(), domain.MidtransNotification{
			OrderID:           res.OrderID,
			TransactionStatus: "expire",
		})
		require.NoError(t, err)

		order, err := service.GetOrder(context.Background(), res.OrderID, userID)
		require.NoError(t, err)
		assert.Equal(t, entities.OrderStatusCancelled, order.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := service.HandleNotification(context.Background(), domain.MidtransNotification{
			OrderID:           uuid.New().String(),
			TransactionStatus: "settlement",
		})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}

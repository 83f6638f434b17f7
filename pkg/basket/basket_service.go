package basket

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/entities"
	"EcoMart-Backend/pkg/catalog"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BasketService interface {
		AddItem(ctx context.Context, req domain.AddBasketItemRequest, userID string) (*domain.BasketEntryResponse, error)
		SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) error
		GetBasket(ctx context.Context, userID string) (*domain.BasketResponse, error)
		TotalPrice(ctx context.Context, userID string) (int64, error)
		Clear(ctx context.Context, userID string) error
	}

	basketService struct {
		basketRepository  BasketRepository
		catalogRepository catalog.CatalogRepository
	}
)

func NewBasketService(basketRepository BasketRepository, catalogRepository catalog.CatalogRepository) BasketService {
	return &basketService{
		basketRepository:  basketRepository,
		catalogRepository: catalogRepository,
	}
}

func (s *basketService) AddItem(ctx context.Context, req domain.AddBasketItemRequest, userID string) (*domain.BasketEntryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	item, err := s.catalogRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	entry := &entities.BasketEntry{
		UserID:   uid,
		ItemID:   item.ID,
		Quantity: req.Quantity,
	}
	if err := s.basketRepository.UpsertEntry(ctx, entry); err != nil {
		return nil, err
	}

	// Re-read for the merged quantity when the upsert incremented an
	// existing row.
	merged, err := s.basketRepository.GetEntry(ctx, uid, item.ID)
	if err != nil {
		return nil, err
	}

	return &domain.BasketEntryResponse{
		ItemID:    item.ID.String(),
		ItemName:  item.Name,
		UnitPrice: item.Price,
		Quantity:  merged.Quantity,
		LineTotal: item.Price * int64(merged.Quantity),
	}, nil
}

func (s *basketService) SetQuantity(ctx context.Context, req domain.SetQuantityRequest, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if req.Quantity <= 0 {
		return s.basketRepository.DeleteEntry(ctx, uid, itemID)
	}

	affected, err := s.basketRepository.UpdateQuantity(ctx, uid, itemID, req.Quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBasketEntryNotFound
	}
	return nil
}

func (s *basketService) GetBasket(ctx context.Context, userID string) (*domain.BasketResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entries, err := s.basketRepository.GetEntries(ctx, uid)
	if err != nil {
		return nil, err
	}

	res := &domain.BasketResponse{Entries: make([]*domain.BasketEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		item, err := s.catalogRepository.GetItemByID(ctx, entry.ItemID.String())
		if err != nil {
			return nil, err
		}
		lineTotal := item.Price * int64(entry.Quantity)
		res.Entries = append(res.Entries, &domain.BasketEntryResponse{
			ItemID:    item.ID.String(),
			ItemName:  item.Name,
			UnitPrice: item.Price,
			Quantity:  entry.Quantity,
			LineTotal: lineTotal,
		})
		res.TotalPrice += lineTotal
	}
	return res, nil
}

// TotalPrice sums item price times quantity across the user's entries;
// an empty basket totals zero.
func (s *basketService) TotalPrice(ctx context.Context, userID string) (int64, error) {
	basket, err := s.GetBasket(ctx, userID)
	if err != nil {
		return 0, err
	}
	return basket.TotalPrice, nil
}

func (s *basketService) Clear(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.basketRepository.ClearEntries(ctx, uid)
}

package handlers

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/internal/api/presenters"
	"EcoMart-Backend/pkg/basket"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BasketHandler interface {
		GetBasket(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		SetQuantity(c *fiber.Ctx) error
	}

	basketHandler struct {
		basketService basket.BasketService
		validator     *validator.Validate
	}
)

func NewBasketHandler(basketService basket.BasketService, validator *validator.Validate) BasketHandler {
	return &basketHandler{
		basketService: basketService,
		validator:     validator,
	}
}

func (h *basketHandler) GetBasket(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.basketService.GetBasket(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBasket, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBasket)
}

func (h *basketHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddBasketItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBasketItem, err)
	}

	res, err := h.basketService.AddItem(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddBasketItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBasketItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddBasketItem)
}

func (h *basketHandler) SetQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SetQuantityRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetQuantity, err)
	}

	if err := h.basketService.SetQuantity(c.Context(), *req, userID); err != nil {
		if errors.Is(err, domain.ErrBasketEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSetQuantity, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSetQuantity, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSetQuantity)
}

package handlers

import (
	"EcoMart-Backend/domain"
	"EcoMart-Backend/internal/api/presenters"
	"EcoMart-Backend/pkg/checkout"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CheckoutHandler interface {
		Checkout(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	checkoutHandler struct {
		checkoutService checkout.CheckoutService
		validator       *validator.Validate
	}
)

func NewCheckoutHandler(checkoutService checkout.CheckoutService, validator *validator.Validate) CheckoutHandler {
	return &checkoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

func (h *checkoutHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	res, err := h.checkoutService.Checkout(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrBasketEmpty) || errors.Is(err, domain.ErrCardExpired) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedCheckout, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *checkoutHandler) GetOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	res, err := h.checkoutService.GetOrder(c.Context(), orderID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetOrder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *checkoutHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.MidtransNotification)

	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.checkoutService.HandleNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}

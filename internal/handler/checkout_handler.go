package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/response"
	"gallery/internal/service"
)

// CheckoutHandler places orders.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout godoc
// @Summary Place an order
// @Description Stripe orders return a PaymentIntent client secret.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body service.CheckoutInput true "Order"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /checkout [post]
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var in service.CheckoutInput
	if err := bind(c, &in); err != nil {
		return fail(c, err)
	}
	res, err := h.checkout.Checkout(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, response.Message("Order placed successfully", res))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/model"
	"gallery/internal/service"
)

// CartHandler handles shopping cart endpoints. Cart ids are generated by the client.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get godoc
// @Summary Get a cart with live prices
// @Tags cart
// @Produce json
// @Param id path string true "Cart id"
// @Param shippingMethod query string false "Shipping method" Enums(STANDARD, EXPRESS, OVERNIGHT, PICKUP, WHITE_GLOVE)
// @Param promoCode query string false "Promo code"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /cart/{id} [get]
func (h *CartHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	view, err := h.carts.Get(c.Request().Context(), id, model.ShippingMethod(c.QueryParam("shippingMethod")), c.QueryParam("promoCode"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, view)
}

// AddItem godoc
// @Summary Put an artwork in the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Cart id"
// @Param request body service.CartItemInput true "Item"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /cart/{id}/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var in service.CartItemInput
	if err := bind(c, &in); err != nil {
		return fail(c, err)
	}
	view, err := h.carts.AddItem(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, view)
}

// RemoveItem godoc
// @Summary Remove an artwork from the cart
// @Tags cart
// @Produce json
// @Param id path string true "Cart id"
// @Param artworkId path string true "Artwork id"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /cart/{id}/items/{artworkId} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	artworkID, err := pathID(c, "artworkId")
	if err != nil {
		return fail(c, err)
	}
	view, err := h.carts.RemoveItem(c.Request().Context(), id, artworkID)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, view)
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Param id path string true "Cart id"
// @Success 204
// @Router /cart/{id} [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	if err := h.carts.Clear(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

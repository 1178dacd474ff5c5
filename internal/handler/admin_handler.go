package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/response"
	"gallery/internal/service"
)

// AdminHandler serves the back-office. Routes are mounted behind the admin JWT check.
type AdminHandler struct {
	admin service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard godoc
// @Summary Dashboard counts and revenue
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	d, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, d)
}

// ListOrders godoc
// @Summary List orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param paymentStatus query string false "Payment status"
// @Param search query string false "Search order number, email and customer"
// @Param sortBy query string false "Sort key" Enums(created, total)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c echo.Context) error {
	res, err := h.admin.ListOrders(c.Request().Context(), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// ListMessages godoc
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search name, email and subject"
// @Param sortBy query string false "Sort key" Enums(created, name)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/messages [get]
func (h *AdminHandler) ListMessages(c echo.Context) error {
	res, err := h.admin.ListMessages(c.Request().Context(), c.QueryParams())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.FromResult(res))
}

// UpdateArtwork godoc
// @Summary Update an artwork's price, availability or featured flag
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Artwork id"
// @Param request body service.ArtworkPatch true "Patch"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/artworks/{id} [patch]
func (h *AdminHandler) UpdateArtwork(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	var patch service.ArtworkPatch
	if err := bind(c, &patch); err != nil {
		return fail(c, err)
	}
	artwork, err := h.admin.UpdateArtwork(c.Request().Context(), id, patch)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.Message("Artwork updated", artwork))
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/response"
	"gallery/internal/service"
)

// NewsletterHandler manages newsletter sign-ups.
type NewsletterHandler struct {
	newsletter service.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletter service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body service.SubscribeInput true "Subscription"
// @Success 200 {object} response.Envelope "Reactivated"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var in service.SubscribeInput
	if err := bind(c, &in); err != nil {
		return fail(c, err)
	}
	sub, reactivated, err := h.newsletter.Subscribe(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	if reactivated {
		return c.JSON(http.StatusOK, response.Message("Welcome back! Your subscription has been reactivated", sub))
	}
	return c.JSON(http.StatusCreated, response.Message("Successfully subscribed to our newsletter", sub))
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /newsletter/{email} [delete]
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	if err := h.newsletter.Unsubscribe(c.Request().Context(), c.Param("email")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, response.Message("You have been unsubscribed", nil))
}

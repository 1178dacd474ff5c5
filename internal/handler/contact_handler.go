package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gallery/internal/errors"
	"gallery/internal/response"
	"gallery/internal/service"
)

// ContactHandler receives the contact form.
type ContactHandler struct {
	contact service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contact service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Submit godoc
// @Summary Send a message to the gallery
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Message"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var in service.ContactInput
	if err := bind(c, &in); err != nil {
		var verr *apperrors.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, response.Fail("Please check your input and try again"))
		}
		return fail(c, err)
	}
	msg, err := h.contact.Submit(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, response.Message(
		"Thank you for your message. We'll get back to you soon!",
		map[string]string{"id": msg.ID.String()},
	))
}

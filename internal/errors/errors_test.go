package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("page", "must be at most 1000000")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantCode   string
	}{
		{"validation", verr, http.StatusBadRequest, "invalid parameters: page must be at most 1000000", "VALIDATION_ERROR"},
		{"not found", NotFound("artist"), http.StatusNotFound, "Artist not found", "NOT_FOUND"},
		{"unavailable", fmt.Errorf("add item: %w", ErrArtworkUnavailable), http.StatusConflict, "artwork is no longer available", "ARTWORK_UNAVAILABLE"},
		{"already subscribed", ErrAlreadySubscribed, http.StatusBadRequest, "This email is already subscribed to our newsletter", "ALREADY_SUBSCRIBED"},
		{"backend hides cause", Backend("fetch artists", errors.New("dial tcp: refused")), http.StatusInternalServerError, "Failed to fetch artists", "BACKEND_ERROR"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, tt.wantMsg, got.Message)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestSentinelsAreLowerCase(t *testing.T) {
	for _, err := range []error{ErrArtworkUnavailable, ErrInvalidPromoCode, ErrEmptyCart, ErrInvalidPrice, ErrAlreadySubscribed} {
		assert.NotRegexp(t, `^[A-Z]`, err.Error())
	}
}

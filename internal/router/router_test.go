package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/config"
	"gallery/internal/handler"
	"gallery/internal/listquery"
	"gallery/internal/model"
	"gallery/internal/repository"
	"gallery/internal/router"
	"gallery/internal/service"
)

const testSecret = "router-test-secret"

type stubAdmin struct{}

func (stubAdmin) Dashboard(context.Context) (*service.Dashboard, error) {
	return &service.Dashboard{Counts: repository.Counts{Artworks: 4}}, nil
}

func (stubAdmin) ListOrders(context.Context, url.Values) (listquery.Result[model.Order], error) {
	return listquery.Result[model.Order]{}, nil
}

func (stubAdmin) ListMessages(context.Context, url.Values) (listquery.Result[model.ContactMessage], error) {
	return listquery.Result[model.ContactMessage]{}, nil
}

func (stubAdmin) UpdateArtwork(context.Context, uuid.UUID, service.ArtworkPatch) (*model.Artwork, error) {
	return &model.Artwork{}, nil
}

type recordingContact struct {
	got service.ContactInput
}

func (r *recordingContact) Submit(_ context.Context, in service.ContactInput) (*model.ContactMessage, error) {
	r.got = in
	return &model.ContactMessage{ID: uuid.New()}, nil
}

func newServer(t *testing.T, contact service.ContactService) *echo.Echo {
	t.Helper()
	e := echo.New()
	cfg := &config.Config{JWTSecret: testSecret, CORSOrigin: "http://localhost:3000"}
	router.Register(e, cfg, zap.NewNop(), nil, router.Handlers{
		Catalog:    handler.NewCatalogHandler(nil),
		Cart:       handler.NewCartHandler(nil),
		Checkout:   handler.NewCheckoutHandler(nil),
		Contact:    handler.NewContactHandler(contact),
		Newsletter: handler.NewNewsletterHandler(nil),
		Admin:      handler.NewAdminHandler(stubAdmin{}),
		Health:     handler.NewHealthHandler(nil),
	})
	return e
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := auth.NewJWTService(testSecret).Issue("user-1", "staff@gallery.local", role, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAdminRoutes(t *testing.T) {
	e := newServer(t, &recordingContact{})

	tests := []struct {
		name       string
		auth       string
		wantStatus int
		wantBody   string
	}{
		{name: "no token", wantStatus: http.StatusUnauthorized, wantBody: `{"success":false,"error":"authentication required"}`},
		{name: "garbage token", auth: "Bearer not.a.jwt", wantStatus: http.StatusUnauthorized, wantBody: `{"success":false,"error":"authentication required"}`},
		{name: "non-admin token", auth: "Bearer " + token(t, "editor"), wantStatus: http.StatusForbidden, wantBody: `{"success":false,"error":"admin access required"}`},
		{name: "admin token", auth: "Bearer " + token(t, auth.RoleAdmin), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
			if tt.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.auth)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"artworks":4`)
			}
		})
	}
}

func TestSanitizeStripsMarkup(t *testing.T) {
	contact := &recordingContact{}
	e := newServer(t, contact)
	body := `{"name":"<b>Neema Achieng</b>","email":"neema@example.com","subject":"Commission request","message":"Hello <i>there</i>, I would like to commission a piece."}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Neema Achieng", contact.got.Name)
	assert.Equal(t, "Hello there, I would like to commission a piece.", contact.got.Message)
}

func TestSanitizeKeepsTextAsTyped(t *testing.T) {
	longMessage := "Tom & Jerry's <i>style</i> mural, please. "
	longMessage += strings.Repeat("x", 2000-len("Tom & Jerry's style mural, please. "))

	tests := []struct {
		name        string
		fullName    string
		message     string
		wantName    string
		wantMessage string
	}{
		{
			name:        "ampersand and apostrophe",
			fullName:    "O'Brien & Sons",
			message:     "Do you ship framed prints to Mombasa & Malindi?",
			wantName:    "O'Brien & Sons",
			wantMessage: "Do you ship framed prints to Mombasa & Malindi?",
		},
		{
			name:        "message at the length limit after stripping",
			fullName:    "Neema Achieng",
			message:     longMessage,
			wantName:    "Neema Achieng",
			wantMessage: strings.Replace(longMessage, "<i>style</i>", "style", 1),
		},
		{
			name:        "encoded markup is stripped too",
			fullName:    "&lt;b&gt;Neema&lt;/b&gt;",
			message:     "I would like to commission a coastal piece.",
			wantName:    "Neema",
			wantMessage: "I would like to commission a coastal piece.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contact := &recordingContact{}
			e := newServer(t, contact)
			body, err := json.Marshal(map[string]string{
				"name":    tt.fullName,
				"email":   "buyer@example.com",
				"subject": "Commission request",
				"message": tt.message,
			})
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(string(body)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantName, contact.got.Name)
			assert.Equal(t, tt.wantMessage, contact.got.Message)
		})
	}
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	e := newServer(t, &recordingContact{})
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{"name":`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"malformed JSON"}`, rec.Body.String())
}

func TestErrorHandlerRendersEnvelope(t *testing.T) {
	e := newServer(t, &recordingContact{})
	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not Found"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	e := newServer(t, &recordingContact{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

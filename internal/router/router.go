package router

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/config"
	"gallery/internal/handler"
	"gallery/internal/metrics"
	"gallery/internal/response"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Catalog    *handler.CatalogHandler
	Cart       *handler.CartHandler
	Checkout   *handler.CheckoutHandler
	Contact    *handler.ContactHandler
	Newsletter *handler.NewsletterHandler
	Admin      *handler.AdminHandler
	Health     *handler.HealthHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, logger *zap.Logger, m *metrics.HTTP, h Handlers) {
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigin, ","),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", m.Handler())
	}

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Catalog
	api.GET("/artworks", h.Catalog.ListArtworks)
	api.GET("/artworks/:slug", h.Catalog.GetArtwork)
	api.GET("/artists", h.Catalog.ListArtists)
	api.GET("/artists/:slug", h.Catalog.GetArtist)
	api.GET("/artists/:slug/artworks", h.Catalog.ListArtistArtworks)
	api.GET("/exhibitions", h.Catalog.ListExhibitions)
	api.GET("/exhibitions/:slug", h.Catalog.GetExhibition)

	// Forms
	forms := api.Group("", Sanitize())
	forms.POST("/contact", h.Contact.Submit)
	forms.POST("/newsletter", h.Newsletter.Subscribe)
	forms.POST("/checkout", h.Checkout.Checkout)
	api.DELETE("/newsletter/:email", h.Newsletter.Unsubscribe)

	// Cart
	api.GET("/cart/:id", h.Cart.Get)
	api.POST("/cart/:id/items", h.Cart.AddItem)
	api.DELETE("/cart/:id/items/:artworkId", h.Cart.RemoveItem)
	api.DELETE("/cart/:id", h.Cart.Clear)

	// Admin routes (require an admin JWT)
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.JWTSecret),
		SigningMethod: jwt.SigningMethodHS256.Alg(),
		TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.Claims) },
		ErrorHandler: func(echo.Context, error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		},
	}), AdminOnly())
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/orders", h.Admin.ListOrders)
	admin.GET("/messages", h.Admin.ListMessages)
	admin.PATCH("/artworks/:id", h.Admin.UpdateArtwork)
}

// AdminOnly rejects tokens that do not carry the admin role.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || !claims.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// ErrorHandler renders errors that escape a handler, such as routing and JWT
// failures, as a failure envelope.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if s, ok := he.Message.(string); ok {
				msg = s
			} else {
				msg = http.StatusText(status)
			}
		}
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, response.Fail(msg))
		}
		if err != nil {
			logger.Warn("write error response failed", zap.Error(err))
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

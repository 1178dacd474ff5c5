package router

import (
	"bytes"
	"encoding/json"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"gallery/internal/response"
)

// Sanitize strips markup from every string in JSON request bodies. Text is kept
// as typed: entities the policy would emit are decoded again.
func Sanitize() echo.MiddlewareFunc {
	policy := bluemonday.StrictPolicy()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost && req.Method != http.MethodPut && req.Method != http.MethodPatch {
				return next(c)
			}
			if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				return next(c)
			}

			buf, err := io.ReadAll(req.Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, response.Fail("invalid body"))
			}
			if len(bytes.TrimSpace(buf)) == 0 {
				req.Body = io.NopCloser(bytes.NewReader(buf))
				return next(c)
			}

			dec := json.NewDecoder(bytes.NewReader(buf))
			dec.UseNumber()
			var body interface{}
			if err := dec.Decode(&body); err != nil {
				return c.JSON(http.StatusBadRequest, response.Fail("malformed JSON"))
			}

			clean, err := json.Marshal(sanitizeValue(policy, body))
			if err != nil {
				return c.JSON(http.StatusBadRequest, response.Fail("malformed JSON"))
			}
			req.Body = io.NopCloser(bytes.NewReader(clean))
			req.ContentLength = int64(len(clean))
			return next(c)
		}
	}
}

func sanitizeValue(policy *bluemonday.Policy, v interface{}) interface{} {
	switch x := v.(type) {
	case string:
		return stripTags(policy, x)
	case map[string]interface{}:
		for k, inner := range x {
			x[k] = sanitizeValue(policy, inner)
		}
		return x
	case []interface{}:
		for i, inner := range x {
			x[i] = sanitizeValue(policy, inner)
		}
		return x
	default:
		return v
	}
}

// stripTags removes markup until the text is stable, so entity-encoded tags such
// as "&lt;b&gt;" cannot come back as markup after decoding. Text that is still
// changing after maxSanitizePasses is returned escaped.
func stripTags(policy *bluemonday.Policy, s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		clean := html.UnescapeString(policy.Sanitize(s))
		if clean == s {
			return s
		}
		s = clean
	}
	return policy.Sanitize(s)
}

const maxSanitizePasses = 4

// RequestLogger logs one structured line per request.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogRequestID: true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/eventara/server/internal/helpers"
	"github.com/eventara/server/internal/models"
)

const userContextKey = "user"

// RequestID middleware adds a unique request ID to each request
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// StructuredLogger provides structured logging middleware
func StructuredLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}
		requestID, _ := c.Get("request_id")

		logger.Info("HTTP Request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		)
	}
}

// ErrorHandler provides centralized handling for errors attached to
// the gin context that no handler translated itself.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID, _ := c.Get("request_id")

			logger.Error("Request error",
				"request_id", requestID,
				"error", err.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse("internal server error"))
			}
		}
	}
}

// Auth resolves the bearer token into caller claims and stores them in
// the request context. Token issuance happens elsewhere; this layer
// only verifies.
func Auth(tv *TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("missing access token"))
			c.Abort()
			return
		}

		claims, err := tv.Validate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(userContextKey, *claims)
		c.Next()
	}
}

// AuthOptional resolves claims when a valid token is present but lets
// anonymous requests through. Used on open registration, where an
// admin may be creating an account on someone else's behalf.
func AuthOptional(tv *TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := tv.Validate(token); err == nil {
				c.Set(userContextKey, *claims)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// Browser clients send the token as a cookie instead.
	if token, err := c.Cookie("access_token"); err == nil {
		return token
	}
	return ""
}

// CurrentUser returns the claims stored by Auth.
func CurrentUser(c *gin.Context) (helpers.Claims, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return helpers.Claims{}, false
	}
	claims, ok := v.(helpers.Claims)
	return claims, ok
}

// RequireRole aborts with 403 unless the caller's resolved role is in
// the allowed set. Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := CurrentUser(c)
		if !ok || !allowed[claims.SafeRole()] {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit applies a per-client-IP token bucket to write requests.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if burst <= 0 {
		burst = 5
	}
	var limiters sync.Map

	limiterFor := func(key string) *rate.Limiter {
		if v, ok := limiters.Load(key); ok {
			return v.(*rate.Limiter)
		}
		lim := rate.NewLimiter(rate.Limit(rps), burst)
		actual, _ := limiters.LoadOrStore(key, lim)
		return actual.(*rate.Limiter)
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
			if !limiterFor(c.ClientIP()).Allow() {
				c.JSON(http.StatusTooManyRequests, models.ErrorResponse("too many requests"))
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventara/server/internal/helpers"
)

const testSecret = "test-secret-key"

func signedToken(t *testing.T, subject, role string) string {
	t.Helper()
	claims := helpers.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func testValidator(t *testing.T) *TokenValidator {
	t.Helper()
	tv, err := NewTokenValidator(testSecret, "")
	require.NoError(t, err)
	return tv
}

func authTestRouter(t *testing.T, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(testValidator(t))}, extra...)
	chain = append(chain, func(c *gin.Context) {
		claims, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID(), "role": claims.SafeRole()})
	})
	r.GET("/secure", chain...)
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	r := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	r := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-123", "user"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthAcceptsCookie(t *testing.T) {
	r := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: signedToken(t, "user-456", "user")})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-456")
}

func TestRequireRole(t *testing.T) {
	r := authTestRouter(t, RequireRole("admin"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-1", "user"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "admin-1", "admin"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthOptional(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/open", AuthOptional(testValidator(t)), func(c *gin.Context) {
		if claims, ok := CurrentUser(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})

	// Anonymous requests pass through.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A valid token resolves claims.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "user-789", "admin"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-789")
}

func TestRateLimitOnlyThrottlesWrites(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(1, 2))
	r.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/items", func(c *gin.Context) { c.Status(http.StatusCreated) })

	// Reads are never throttled.
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Writes beyond the burst are rejected.
	statuses := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/items", nil))
		statuses = append(statuses, w.Code)
	}
	assert.Equal(t, http.StatusCreated, statuses[0])
	assert.Equal(t, http.StatusCreated, statuses[1])
	assert.Contains(t, statuses[2:], http.StatusTooManyRequests)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/estate/backend/internal/infrastructure/auth"
	"github.com/estate/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-that-is-long-enough-0123",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "estate-backend-test",
	})
}

func jwtTestEngine(jwtService *auth.JWTService) *gin.Engine {
	engine := gin.New()
	protected := engine.Group("/", JWTAuthMiddleware(jwtService))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  GetJWTUserID(c),
			"username": GetJWTUsername(c),
			"role":     GetJWTRole(c),
		})
	})
	return engine
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()
	engine := jwtTestEngine(jwtService)

	userID := uuid.New()
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   userID,
		Username: "asha",
		Role:     "sales",
	})
	require.NoError(t, err)

	t.Run("valid token passes claims through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), "asha")
		assert.Contains(t, w.Body.String(), "sales")
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing authorization header")
	})

	t.Run("non-bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(AuthHeaderKey, "Basic dXNlcjpwYXNz")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"not-a-token")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("refresh token is rejected on the access path", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.RefreshToken)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	jwtService := newTestJWTService()

	engine := gin.New()
	admin := engine.Group("/", JWTAuthMiddleware(jwtService), RequireRole("admin"))
	admin.GET("/admin-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tokenFor := func(role string) string {
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   uuid.New(),
			Username: "u-" + role,
			Role:     role,
		})
		require.NoError(t, err)
		return pair.AccessToken
	}

	t.Run("matching role passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+tokenFor("admin"))
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+tokenFor("broker"))
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"
	"github.com/christianjamesnaguit/wcs-backend/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	common.JWTSecret = "test-jwt-secret-for-middleware-tests"
	common.RedisEnabled = false
}

func setupTestRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", JWTAuth(), func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func TestJWTAuth_NoAuthorizationHeader(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Authorization header is required")
}

func TestJWTAuth_InvalidFormat(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "InvalidFormat token123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Bearer")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid-jwt-token")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	router := setupTestRouter()

	token, err := service.GenerateToken(&model.User{ID: 42, Username: "testuser"})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"user_id":42`)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	router := setupTestRouter()

	token := generateExpiredToken(t, 42)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// generateExpiredToken signs a claim set whose validity window closed an
// hour ago, using the same method as the service package.
func generateExpiredToken(t *testing.T, userID int64) string {
	t.Helper()
	claims := service.JWTClaims{UserID: userID}
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-1 * time.Hour))
	claims.IssuedAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	claims.NotBefore = jwt.NewNumericDate(time.Now().Add(-2 * time.Hour))
	claims.Issuer = "wcs-planner"

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(common.JWTSecret))
	assert.NoError(t, err)
	return tokenString
}

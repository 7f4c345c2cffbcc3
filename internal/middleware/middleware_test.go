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
)

const testSecret = "test-jwt-secret-key-32-characters"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// guardedRouter builds the admin middleware chain in front of a handler
// that records whether it ran
func guardedRouter(reached *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/api/admin")
	admin.Use(JWTAuth())
	admin.Use(RequireAdmin())
	admin.GET("/coffees", func(c *gin.Context) {
		*reached = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestGuardRejectsMissingSession(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Without a session the admin surface is never reached
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	token := signToken(t, jwt.MapClaims{
		"uid":  float64(1),
		"role": "admin",
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestGuardRejectsNonPrivilegedRole(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	token := signToken(t, jwt.MapClaims{
		"uid":  float64(2),
		"role": "user",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, reached)
}

func TestGuardRejectsWrongScheme(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

func TestGuardAdmitsPrivilegedToken(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	token := signToken(t, jwt.MapClaims{
		"uid":  float64(1),
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
}

func TestGuardRejectsTokenWithoutUID(t *testing.T) {
	SetJWTSecret(testSecret)

	var reached bool
	router := guardedRouter(&reached)

	token := signToken(t, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/coffees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}

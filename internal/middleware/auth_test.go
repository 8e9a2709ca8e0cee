package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooknest/backend/internal/middleware"
	"github.com/cooknest/backend/internal/service"
	"github.com/cooknest/backend/internal/testhelpers"
	"github.com/cooknest/backend/internal/types"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	authSvc := service.NewAuthService(db, "test-secret")

	router := gin.New()
	protected := router.Group("/protected", middleware.AuthMiddleware(authSvc))
	protected.GET("", func(c *gin.Context) {
		claims, ok := middleware.GetClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": claims.ID, "role": claims.Role})
	})
	protected.GET("/chefs-only", middleware.RequireRole(types.RoleChef), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router, authSvc
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token provided")
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	_, token, err := authSvc.RegisterUser("Home Cook", "cook@example.com", "pw123456")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuthMiddlewareBareToken(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	_, token, err := authSvc.RegisterUser("Home Cook", "cook@example.com", "pw123456")
	require.NoError(t, err)

	// The Bearer prefix is optional.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareUnknownRole(t *testing.T) {
	router, _ := setupAuthRouter(t)

	// A correctly signed token whose role claim is not one we recognise.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    uuid.New().String(),
		"email": "admin@example.com",
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized role")
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	_, userToken, err := authSvc.RegisterUser("Home Cook", "cook@example.com", "pw123456")
	require.NoError(t, err)
	_, chefToken, err := authSvc.RegisterChef("Chef John", "chefjohn@example.com", "pw123456", "", "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected/chefs-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected/chefs-only", nil)
	req.Header.Set("Authorization", "Bearer "+chefToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

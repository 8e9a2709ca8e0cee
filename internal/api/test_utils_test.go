package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cooknest/backend/internal/router"
	"github.com/cooknest/backend/internal/service"
	"github.com/cooknest/backend/internal/testhelpers"
)

// setupTestRouter wires the full route table against an in-memory database.
// Redis and S3 are left out; their routes are optional.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	engine := router.SetupRouter(router.Deps{
		DB:       db,
		Auth:     service.NewAuthService(db, "test-secret"),
		Accounts: service.NewAccountService(db),
		Recipes:  service.NewRecipeService(db),
		Likes:    service.NewLikeService(db),
	})
	return engine, db
}

func performRequest(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func registerChef(t *testing.T, engine *gin.Engine, name, email string) (id, token string) {
	t.Helper()
	w := performRequest(engine, http.MethodPost, "/api/v1/auth/register/chef", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "pw123456",
		"bio":      "Bio for " + name,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	chef := body["chef"].(map[string]interface{})
	return chef["id"].(string), body["token"].(string)
}

func registerUser(t *testing.T, engine *gin.Engine, name, email string) (id, token string) {
	t.Helper()
	w := performRequest(engine, http.MethodPost, "/api/v1/auth/register/user", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	user := body["user"].(map[string]interface{})
	return user["id"].(string), body["token"].(string)
}

func createRecipe(t *testing.T, engine *gin.Engine, chefToken, name string) string {
	t.Helper()
	w := performRequest(engine, http.MethodPost, "/api/v1/recipes", chefToken, gin.H{
		"recipe_name":  name,
		"category":     "Dinner",
		"cuisine_type": "Italian",
		"time":         "30 min",
		"type":         "Veg",
		"description":  fmt.Sprintf("A test recipe called %s.", name),
		"ingredients":  []string{"salt", "pepper"},
		"instructions": []string{"mix", "cook"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	recipe := body["recipe"].(map[string]interface{})
	return recipe["id"].(string)
}

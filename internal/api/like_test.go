package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeUnlikeFlow(t *testing.T) {
	engine, _ := setupTestRouter(t)

	_, chefToken := registerChef(t, engine, "Chef John", "chefjohn@example.com")
	_, userToken := registerUser(t, engine, "Home Cook", "cook@example.com")
	recipeID := createRecipe(t, engine, chefToken, "Pasta Primavera")

	w := performRequest(engine, http.MethodPost, "/api/v1/likes", userToken, gin.H{"recipe_id": recipeID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Liking twice is rejected.
	w = performRequest(engine, http.MethodPost, "/api/v1/likes", userToken, gin.H{"recipe_id": recipeID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Recipe already liked")

	w = performRequest(engine, http.MethodGet, "/api/v1/likes", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["recipes"].([]interface{}), 1)

	w = performRequest(engine, http.MethodDelete, "/api/v1/likes/"+recipeID, userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Unliking again still succeeds.
	w = performRequest(engine, http.MethodDelete, "/api/v1/likes/"+recipeID, userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/likes", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Empty(t, body["recipes"])
}

func TestLikeUnknownRecipe(t *testing.T) {
	engine, _ := setupTestRouter(t)

	_, userToken := registerUser(t, engine, "Home Cook", "cook@example.com")

	w := performRequest(engine, http.MethodPost, "/api/v1/likes", userToken, gin.H{"recipe_id": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLikeRoutesAreUserOnly(t *testing.T) {
	engine, _ := setupTestRouter(t)

	_, chefToken := registerChef(t, engine, "Chef John", "chefjohn@example.com")
	recipeID := createRecipe(t, engine, chefToken, "Pasta Primavera")

	// Chefs cannot like, list likes, or unlike.
	w := performRequest(engine, http.MethodPost, "/api/v1/likes", chefToken, gin.H{"recipe_id": recipeID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/likes", chefToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = performRequest(engine, http.MethodDelete, "/api/v1/likes/"+recipeID, chefToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// And anonymous callers get 401.
	w = performRequest(engine, http.MethodGet, "/api/v1/likes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLikedListIsScopedToCaller(t *testing.T) {
	engine, _ := setupTestRouter(t)

	_, chefToken := registerChef(t, engine, "Chef John", "chefjohn@example.com")
	_, aliceToken := registerUser(t, engine, "Alice", "alice@example.com")
	_, bobToken := registerUser(t, engine, "Bob", "bob@example.com")
	recipeID := createRecipe(t, engine, chefToken, "Pasta Primavera")

	w := performRequest(engine, http.MethodPost, "/api/v1/likes", aliceToken, gin.H{"recipe_id": recipeID})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(engine, http.MethodGet, "/api/v1/likes", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Empty(t, body["recipes"])
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/entities"
)

func TestReviewsController_Create(t *testing.T) {
	env := setupTestEnv(t)
	reader := env.createUser(t, "reader@example.com", entities.UserRoleMember)
	env.createBook(t, "Reviewed")

	controller := NewReviewsController(env.reviews, env.auth)
	router := gin.New()
	router.Use(actAs(reader))
	router.POST("/books/:id/reviews", controller.Create)

	t.Run("creates a review", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/books/1/reviews", strings.NewReader(`{"rating":5,"comment":"Loved it"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var review entities.Review
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &review))
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("second review is 409", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/books/1/reviews", strings.NewReader(`{"rating":1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("out-of-range rating is 422", func(t *testing.T) {
		env2 := setupTestEnv(t)
		reader2 := env2.createUser(t, "r2@example.com", entities.UserRoleMember)
		env2.createBook(t, "Other")

		controller2 := NewReviewsController(env2.reviews, env2.auth)
		router2 := gin.New()
		router2.Use(actAs(reader2))
		router2.POST("/books/:id/reviews", controller2.Create)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/books/1/reviews", strings.NewReader(`{"rating":6}`))
		req.Header.Set("Content-Type", "application/json")
		router2.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestReviewsController_Update(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createUser(t, "owner@example.com", entities.UserRoleMember)
	other := env.createUser(t, "other@example.com", entities.UserRoleMember)
	book := env.createBook(t, "Reviewed")

	review, err := env.reviews.AddReview(owner.ID, book.ID, 2, "Meh")
	require.NoError(t, err)

	controller := NewReviewsController(env.reviews, env.auth)

	t.Run("owner edits", func(t *testing.T) {
		router := gin.New()
		router.Use(actAs(owner))
		router.PUT("/reviews/:id", controller.Update)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/reviews/1", strings.NewReader(`{"rating":4,"comment":"Better"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var updated entities.Review
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, review.ID, updated.ID)
		assert.Equal(t, 4, updated.Rating)
	})

	t.Run("non-owner gets 403", func(t *testing.T) {
		router := gin.New()
		router.Use(actAs(other))
		router.PUT("/reviews/:id", controller.Update)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/reviews/1", strings.NewReader(`{"rating":1}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReviewsController_Delete(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.createUser(t, "owner@example.com", entities.UserRoleMember)
	admin := env.createUser(t, "admin@example.com", entities.UserRoleAdmin)
	other := env.createUser(t, "other@example.com", entities.UserRoleMember)
	book := env.createBook(t, "Reviewed")

	controller := NewReviewsController(env.reviews, env.auth)

	newRouter := func(user *entities.User) *gin.Engine {
		router := gin.New()
		router.Use(actAs(user))
		router.DELETE("/reviews/:id", controller.Delete)
		return router
	}

	t.Run("other member gets 403", func(t *testing.T) {
		_, err := env.reviews.AddReview(owner.ID, book.ID, 3, "")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/reviews/1", nil)
		newRouter(other).ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin deletes any review", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/reviews/1", nil)
		newRouter(admin).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deleting again is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/reviews/1", nil)
		newRouter(owner).ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/auth"
	"bookshelf/internal/entities"
)

func TestProfileController_Show(t *testing.T) {
	env := setupTestEnv(t)
	user, err := env.auth.Register("Jane", "jane@example.com", "password12345", entities.UserRoleMember)
	require.NoError(t, err)

	controller := NewProfileController(env.profiles, env.auth)
	router := gin.New()
	router.Use(actAs(user))
	router.GET("/profile", controller.Show)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		User entities.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "jane@example.com", response.User.Email)
}

func TestProfileController_Update(t *testing.T) {
	env := setupTestEnv(t)
	user, err := env.auth.Register("Jane", "jane@example.com", "password12345", entities.UserRoleMember)
	require.NoError(t, err)
	env.createUser(t, "taken@example.com", entities.UserRoleMember)

	controller := NewProfileController(env.profiles, env.auth)
	router := gin.New()
	router.Use(actAs(user))
	router.PUT("/profile", controller.Update)

	t.Run("renames the account", func(t *testing.T) {
		body, contentType := bookForm(t, map[string]string{
			"name":  "Jane Renamed",
			"email": "jane@example.com",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/profile", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var response struct {
			User entities.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Jane Renamed", response.User.Name)
	})

	t.Run("taken email is 422", func(t *testing.T) {
		body, contentType := bookForm(t, map[string]string{
			"name":  "Jane",
			"email": "taken@example.com",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/profile", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("wrong current password is 401", func(t *testing.T) {
		body, contentType := bookForm(t, map[string]string{
			"name":             "Jane",
			"email":            "jane@example.com",
			"current_password": "not-the-password",
			"new_password":     "anotherpassword",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/profile", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("changes the password", func(t *testing.T) {
		body, contentType := bookForm(t, map[string]string{
			"name":             "Jane",
			"email":            "jane@example.com",
			"current_password": "password12345",
			"new_password":     "freshpassword",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/profile", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var stored entities.User
		require.NoError(t, env.db.First(&stored, user.ID).Error)
		assert.NoError(t, auth.CheckPassword("freshpassword", stored.PasswordHash))
	})
}

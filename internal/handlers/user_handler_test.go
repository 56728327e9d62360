package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/menucraft/restaurant-backend/internal/models"
)

func TestCreateUser(t *testing.T) {
	r, gdb := setupRouter(t)

	t.Run("normalizes email and never echoes the password", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/users", gin.H{
			"name":     "A",
			"email":    "  A@X.com ",
			"password": "p",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "a@x.com", out["email"])
		assert.Equal(t, models.RoleCustomer, out["role"])
		assert.NotContains(t, out, "password")

		var stored models.User
		require.NoError(t, gdb.Where("email = ?", "a@x.com").First(&stored).Error)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("p")))
		assert.NotContains(t, w.Body.String(), stored.PasswordHash)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		for _, body := range []gin.H{
			{"email": "b@x.com", "password": "p"},
			{"name": "B", "password": "p"},
			{"name": "B", "email": "b@x.com"},
		} {
			w := doJSON(t, r, http.MethodPost, "/api/admin/users", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var out map[string]any
			decodeJSON(t, w, &out)
			assert.Equal(t, "missing_fields", out["error_code"])
		}
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/users", gin.H{
			"name":     "B",
			"email":    "b@x.com",
			"password": "p",
			"role":     "owner",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "invalid_role", out["error_code"])
	})

	t.Run("duplicate email after normalization is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/users", gin.H{
			"name":     "A2",
			"email":    "A@x.COM",
			"password": "p",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "email_already_exists", out["error_code"])
	})
}

func TestListUsersNewestFirst(t *testing.T) {
	r, _ := setupRouter(t)

	for _, u := range []gin.H{
		{"name": "First", "email": "first@x.com", "password": "p"},
		{"name": "Second", "email": "second@x.com", "password": "p"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/admin/users", u)
		require.Equal(t, http.StatusCreated, w.Code)
		time.Sleep(5 * time.Millisecond)
	}

	w := doJSON(t, r, http.MethodGet, "/api/admin/users", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	decodeJSON(t, w, &users)
	require.Len(t, users, 2)
	assert.Equal(t, "second@x.com", users[0]["email"])
	assert.Equal(t, "first@x.com", users[1]["email"])
	for _, u := range users {
		assert.NotContains(t, u, "password")
	}
}

func TestUpdateUser(t *testing.T) {
	r, gdb := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", gin.H{
		"name":     "A",
		"email":    "a@x.com",
		"password": "p",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	id := created["id"].(string)

	var before models.User
	require.NoError(t, gdb.Where("id = ?", id).First(&before).Error)

	t.Run("empty password means no change", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/users/"+id, gin.H{
			"name":     "A renamed",
			"password": "",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var after models.User
		require.NoError(t, gdb.Where("id = ?", id).First(&after).Error)
		assert.Equal(t, before.PasswordHash, after.PasswordHash)
		assert.Equal(t, "A renamed", after.Name)
	})

	t.Run("non-empty password is re-hashed", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/users/"+id, gin.H{
			"password": "new-secret",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var after models.User
		require.NoError(t, gdb.Where("id = ?", id).First(&after).Error)
		assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("new-secret")))
	})

	t.Run("role is validated", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/users/"+id, gin.H{
			"role": "superuser",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "invalid_role", out["error_code"])
	})

	t.Run("email is normalized on update", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/users/"+id, gin.H{
			"email": " NEW@X.com ",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "new@x.com", out["email"])
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/users/nope", gin.H{
			"name": "X",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/users", gin.H{
		"name":     "A",
		"email":    "a@x.com",
		"password": "p",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	decodeJSON(t, w, &created)
	id := created["id"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/users/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/users/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menucraft/restaurant-backend/internal/models"
)

func TestCreateCategory(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("creates with trimmed name and empty default description", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{
			"name": "  Drinks  ",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.NotEmpty(t, out["id"])
		assert.Equal(t, "Drinks", out["name"])
		assert.Equal(t, "", out["description"])
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, out["createdAt"])
	})

	t.Run("rejects blank name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{
			"name": "   ",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "name_required", out["error_code"])
	})

	t.Run("rejects exact duplicate name", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{
			"name": "Drinks",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "category_already_exists", out["error_code"])
	})

	t.Run("duplicate check is case-sensitive", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{
			"name": "DRINKS",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCreateCategoryIDIsStable(t *testing.T) {
	r, _ := setupRouter(t)

	created := createCategory(t, r, "Starters", "Small plates")

	w := doJSON(t, r, http.MethodGet, "/api/admin/menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var menu struct {
		Categories []map[string]any `json:"categories"`
	}
	decodeJSON(t, w, &menu)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, created["id"], menu.Categories[0]["id"])
	assert.Equal(t, "Starters", menu.Categories[0]["name"])
	assert.Equal(t, "Small plates", menu.Categories[0]["description"])
}

func TestUpdateCategory(t *testing.T) {
	r, _ := setupRouter(t)

	created := createCategory(t, r, "Mains", "Big plates")
	id := created["id"].(string)

	t.Run("partial update leaves unspecified fields untouched", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/categories/"+id, gin.H{
			"description": "Hearty plates",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var out map[string]any
		decodeJSON(t, w, &out)
		assert.Equal(t, "Mains", out["name"])
		assert.Equal(t, "Hearty plates", out["description"])
	})

	t.Run("isActive toggles public visibility", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/categories/"+id, gin.H{
			"isActive": false,
		})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/categories/nope", gin.H{
			"name": "X",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteCategoryCascades(t *testing.T) {
	r, gdb := setupRouter(t)

	drinks := createCategory(t, r, "Drinks", "")
	food := createCategory(t, r, "Food", "")
	drinksID := drinks["id"].(string)
	foodID := food["id"].(string)

	createItem(t, r, "Cola", 2.5, drinksID)
	createItem(t, r, "Water", 1.0, drinksID)
	kept := createItem(t, r, "Burger", 9.9, foodID)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/categories/"+drinksID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	var remaining []models.MenuItem
	require.NoError(t, gdb.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept["id"], remaining[0].ID)
	assert.Equal(t, foodID, remaining[0].CategoryID)

	t.Run("second delete is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/api/admin/categories/"+drinksID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

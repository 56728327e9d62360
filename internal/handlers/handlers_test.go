package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbpkg "github.com/menucraft/restaurant-backend/internal/db"
	"github.com/menucraft/restaurant-backend/internal/routes"
)

// setupRouter wires the full route tree against a throwaway in-memory
// database, so tests exercise the exact production dependency graph.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.AutoMigrate(gdb))

	r := gin.New()
	routes.RegisterRoutes(r, gdb, zap.NewNop())
	return r, gdb
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// createCategory is a shorthand used across the handler tests.
func createCategory(t *testing.T, r http.Handler, name, description string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{
		"name":        name,
		"description": description,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	decodeJSON(t, w, &out)
	return out
}

func createItem(t *testing.T, r http.Handler, name string, price float64, categoryID string) map[string]any {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/admin/items", gin.H{
		"name":       name,
		"price":      price,
		"categoryId": categoryID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	decodeJSON(t, w, &out)
	return out
}

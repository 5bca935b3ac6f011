package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-court-api/config"
	"food-court-api/middleware"
	"food-court-api/models"
	"food-court-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer builds a router backed by a fresh in-memory database.
// MaxOpenConns(1) pins every connection to the same memory store.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")
	config.JWTTTL = time.Hour

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r, middleware.NewDenylist())
	return r
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// registerUser signs up a user through the API and returns its token
func registerUser(t *testing.T, r *gin.Engine, name string, role models.UserRole) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{
		"name":     name,
		"email":    fmt.Sprintf("%s@example.com", name),
		"password": "secret123",
		"role":     role,
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)["token"].(string)
}

// createTable inserts a table directly and returns its id
func createTable(t *testing.T, number int) uint {
	t.Helper()
	table := models.Table{TableNumber: number, Status: models.TableAvailable}
	require.NoError(t, config.DB.Create(&table).Error)
	return table.ID
}

func tableStatus(t *testing.T, id uint) models.TableStatus {
	t.Helper()
	var table models.Table
	require.NoError(t, config.DB.First(&table, id).Error)
	return table.Status
}

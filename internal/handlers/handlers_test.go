package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tasknest-dev/tasknest/db"
	"github.com/tasknest-dev/tasknest/internal/auth"
	"github.com/tasknest-dev/tasknest/internal/models"
	"github.com/tasknest-dev/tasknest/internal/router"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest wires an in-memory database behind the package-level handle and
// returns the real router, so tests run the same query paths as production.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(&models.User{}, &models.Todo{}))

	db.DB = gormDB

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			sqlDB.Close()
		}
		db.DB = nil
	})

	return router.NewRouter()
}

func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer

	if body != nil {
		json.NewEncoder(&buf).Encode(body)
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

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// createTestUser inserts a user directly and returns a valid session token.
func createTestUser(t *testing.T, email string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Username:     fmt.Sprintf("user-%s", email),
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.DB.Create(&user).Error)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)

	return user, token
}

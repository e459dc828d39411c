package middlewares

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"backend/entity"
	"backend/utils"
)

const testSecret = "test-secret"

func setup(t *testing.T, roles ...string) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Pilot{}, &entity.Editor{}))

	r := gin.New()
	r.GET("/protected", AuthMiddleware(db, testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	})
	return db, r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	_, r := setup(t)
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	_, r := setup(t)
	assert.Equal(t, http.StatusUnauthorized, get(r, "garbage").Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	db, r := setup(t)
	user := entity.User{Email: "u@example.com", Role: "client"}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, "client", testSecret, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, token).Code)
}

func TestAuthMiddlewareDeletedAccount(t *testing.T) {
	db, r := setup(t)
	pilot := entity.Pilot{Email: "p@example.com", Status: "active"}
	require.NoError(t, db.Create(&pilot).Error)

	token, err := utils.GenerateToken(pilot.ID, "pilot", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, token).Code)

	// token survives deletion; the per-request re-fetch must not
	require.NoError(t, db.Unscoped().Delete(&entity.Pilot{}, pilot.ID).Error)
	w := get(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestAuthMiddlewareRoleGate(t *testing.T) {
	db, r := setup(t, "admin")
	user := entity.User{Email: "u@example.com", Role: "client"}
	require.NoError(t, db.Create(&user).Error)
	admin := entity.User{Email: "a@example.com", Role: "admin"}
	require.NoError(t, db.Create(&admin).Error)

	clientToken, err := utils.GenerateToken(user.ID, "client", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, clientToken).Code)

	adminToken, err := utils.GenerateToken(admin.ID, "admin", testSecret, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, adminToken).Code)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/auth"
	"github.com/aboh505/BestLife/middleware"
	"github.com/aboh505/BestLife/models"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.Role, active bool) *models.User {
	t.Helper()
	user := &models.User{
		ID: id, LastName: "Doe", FirstName: "Jane",
		Email: id + "@example.com", PasswordHash: "x",
		Role: role, Active: active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func gatedRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/protected", middleware.RequireAuth(db, testSecret))
	protected.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": middleware.CurrentUser(c).View()})
	})
	protected.GET("/admin", middleware.RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func get(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func issue(t *testing.T, secret string, user *models.User) string {
	t.Helper()
	token, err := auth.IssueJWT(secret, time.Hour, user.ID, user.Email, string(user.Role))
	require.NoError(t, err)
	return token
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := gatedRouter(openTestDB(t))
	assert.Equal(t, http.StatusUnauthorized, get(r, "/protected", "").Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", models.RoleClient, true)
	r := gatedRouter(db)

	w := get(r, "/protected", issue(t, testSecret, user))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Email)
}

func TestRequireAuthRejectsForeignSignature(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", models.RoleClient, true)
	r := gatedRouter(db)

	w := get(r, "/protected", issue(t, "some-other-secret", user))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsDeletedUser(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", models.RoleClient, true)
	token := issue(t, testSecret, user)
	require.NoError(t, db.Delete(user).Error)

	w := get(gatedRouter(db), "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthRejectsDeactivatedUser(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", models.RoleClient, true)
	token := issue(t, testSecret, user)
	require.NoError(t, db.Model(user).Update("active", false).Error)

	w := get(gatedRouter(db), "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminGatesByRole(t *testing.T) {
	db := openTestDB(t)
	client := seedUser(t, db, "u1", models.RoleClient, true)
	admin := seedUser(t, db, "boss", models.RoleAdmin, true)
	r := gatedRouter(db)

	w := get(r, "/protected/admin", issue(t, testSecret, client))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "/protected/admin", issue(t, testSecret, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

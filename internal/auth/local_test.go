package auth

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"github.com/MichaelTeekey/job-finder/internal/database"
	"github.com/MichaelTeekey/job-finder/internal/model"
	"github.com/MichaelTeekey/job-finder/internal/testutil"
)

var testDB *database.DBInstance

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.Default()
	h := NewLocalAuthHandler(testDB)
	r.POST("/register", h.LocalRegisterHandler)
	r.POST("/login", h.LocalLoginHandler)
	return r
}

func TestRegister_success(t *testing.T) {
	r := newAuthRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "strong-password-123",
		"role":     "student",
	}, "", r, "/register", http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, resp["access"])
	assert.NotEmpty(t, resp["refresh"])

	user, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, model.RoleStudent, user["role"])
	// Password hash never leaves the server.
	assert.NotContains(t, user, "password")

	var count int64
	assert.NoError(t, testDB.Model(&model.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegister_duplicateEmail(t *testing.T) {
	r := newAuthRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"username": "student_1_again",
		"email":    *database.TestUserStudent1.Email,
		"password": "another-password-1",
		"role":     "student",
	}, "", r, "/register", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, resp["error"])
}

func TestRegister_missingFields(t *testing.T) {
	r := newAuthRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"username": "bob",
	}, "", r, "/register", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_adminRoleRejected(t *testing.T) {
	r := newAuthRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"username": "sneaky",
		"email":    "sneaky@example.com",
		"password": "strong-password-123",
		"role":     "admin",
	}, "", r, "/register", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	assert.NoError(t, testDB.Model(&model.User{}).Where("email = ?", "sneaky@example.com").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRegister_shortPassword(t *testing.T) {
	r := newAuthRouter()

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "short",
		"role":     "employer",
	}, "", r, "/register", http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_success(t *testing.T) {
	r := newAuthRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    *database.TestUserStudent1.Email,
		"password": database.TestSeedPassword,
	}, "", r, "/login", http.MethodPost)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp["access"])
	assert.NotEmpty(t, resp["refresh"])

	user, ok := resp["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, *database.TestUserStudent1.Email, user["email"])
}

func TestLogin_wrongPassword(t *testing.T) {
	r := newAuthRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    *database.TestUserStudent1.Email,
		"password": "not-the-password",
	}, "", r, "/login", http.MethodPost)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestLogin_unknownEmail(t *testing.T) {
	r := newAuthRouter()

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"email":    "nobody@example.com",
		"password": "whatever-password",
	}, "", r, "/login", http.MethodPost)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

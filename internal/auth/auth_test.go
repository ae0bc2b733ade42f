package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffee-shop-backend/internal/config"
	"coffee-shop-backend/internal/database/models"
	apperrors "coffee-shop-backend/internal/errors"
	"coffee-shop-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var fastParams = Argon2idParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

func testConfig() *AuthConfig {
	return &AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Hour, Issuer: "coffee-shop-test"}
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password, fastParams)
	require.NoError(t, err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Username:     "admin",
		Email:        "admin@coffee.local",
		Role:         models.RoleAdmin,
		PasswordHash: hash,
		Active:       true,
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("non positive ttl", func(t *testing.T) {
		cfg := testConfig()
		cfg.TokenTTL = 0
		assert.Error(t, cfg.ValidateConfig())
	})

	t.Run("derived from application config", func(t *testing.T) {
		cfg, err := NewAuthConfig(&config.Config{JWTSecret: "s", JWTTTLMinutes: 15})
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
		assert.Equal(t, defaultIssuer, cfg.Issuer)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("latte-art", fastParams)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"))

	assert.NoError(t, VerifyPassword(hash, "latte-art"))
	assert.ErrorIs(t, VerifyPassword(hash, "espresso"), ErrPasswordMismatch)
	assert.ErrorIs(t, VerifyPassword("plain-text", "latte-art"), ErrInvalidPasswordHash)
	assert.ErrorIs(t, VerifyPassword("$argon2id$v=1$m=1,t=1,p=1$AA$AA", "x"), ErrIncompatiblePasswordVersion)

	again, err := HashPassword("latte-art", fastParams)
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	user := testUser(t, "secret")
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "ADMIN", claims.Role)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)

	other, err := NewAuthService(&AuthConfig{JWTSecret: "another-key", TokenTTL: time.Hour, Issuer: "coffee-shop-test"}, nil)
	require.NoError(t, err)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err)
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	issued := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }
	token, err := service.GenerateJWT(testUser(t, "secret"))
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepositoryInterface(ctrl)
	service, err := NewAuthService(testConfig(), repo)
	require.NoError(t, err)

	user := testUser(t, "secret")

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetByUsername("admin").Return(user, nil)

		resp, err := service.Login(&LoginRequest{Username: "admin", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.Equal(t, "ADMIN", resp.Profile.Role)

		claims, err := service.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetByUsername("admin").Return(user, nil)

		_, err := service.Login(&LoginRequest{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo.EXPECT().GetByUsername("ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(&LoginRequest{Username: "ghost", Password: "secret"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := *user
		inactive.Active = false
		repo.EXPECT().GetByUsername("admin").Return(&inactive, nil)

		_, err := service.Login(&LoginRequest{Username: "admin", Password: "secret"})
		assert.ErrorIs(t, err, apperrors.ErrInactiveUser)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo.EXPECT().GetByUsername("admin").Return(nil, errors.New("db down"))

		_, err := service.Login(&LoginRequest{Username: "admin", Password: "secret"})
		assert.Error(t, err)
		assert.False(t, apperrors.IsAuthentication(err))
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	mw := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/staff", mw.RequireAuth(), func(c *gin.Context) {
		id, ok := GetUserID(c)
		assert.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": id.String()})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	admin := testUser(t, "secret")
	staff := testUser(t, "secret")
	staff.Role = models.RoleStaff
	adminToken, err := service.GenerateJWT(admin)
	require.NoError(t, err)
	staffToken, err := service.GenerateJWT(staff)
	require.NoError(t, err)

	do := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, do("/staff", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/staff", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do("/staff", "Bearer abc").Code)

	w := do("/staff", "Bearer "+staffToken)
	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, staff.ID.String(), body["id"])

	assert.Equal(t, http.StatusForbidden, do("/admin", "Bearer "+staffToken).Code)
	assert.Equal(t, http.StatusNoContent, do("/admin", "Bearer "+adminToken).Code)
}

type stubAuthenticator struct {
	resp *LoginResponse
	err  error
}

func (s stubAuthenticator) Login(*LoginRequest) (*LoginResponse, error) { return s.resp, s.err }

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *AuthHandler, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h.Login(c)
		return w
	}

	ok := NewAuthHandler(stubAuthenticator{resp: &LoginResponse{AccessToken: "tok", TokenType: "Bearer"}})
	w := post(ok, `{"username":"admin","password":"secret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accessToken":"tok"`)

	assert.Equal(t, http.StatusBadRequest, post(ok, `{"username":"admin"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post(NewAuthHandler(stubAuthenticator{err: apperrors.ErrInvalidCredentials}), `{"username":"a","password":"b"}`).Code)
	assert.Equal(t, http.StatusForbidden, post(NewAuthHandler(stubAuthenticator{err: apperrors.ErrInactiveUser}), `{"username":"a","password":"b"}`).Code)
	assert.Equal(t, http.StatusInternalServerError, post(NewAuthHandler(stubAuthenticator{err: errors.New("boom")}), `{"username":"a","password":"b"}`).Code)
}

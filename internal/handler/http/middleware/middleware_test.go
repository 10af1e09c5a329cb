package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

type stubAuth struct {
	users map[string]*entity.User
}

func (s stubAuth) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	return nil, "", entity.ErrUnauthorized
}

func (s stubAuth) LoginWithOAuth(ctx context.Context, email string) (*entity.User, string, error) {
	return nil, "", entity.ErrUnauthorized
}

func (s stubAuth) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, entity.ErrUnauthorized
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	auth := stubAuth{users: map[string]*entity.User{
		"admin": {ID: "a1", Role: entity.UserRoleAdmin, Status: entity.UserStatusActive},
		"root":  {ID: "s1", Role: entity.UserRoleSuperadmin, Status: entity.UserStatusActive},
		"user":  {ID: "u1", Role: entity.UserRoleUser, Status: entity.UserStatusActive},
	}}
	r := gin.New()
	r.GET("/admin", AuthMiddleWare(auth), RequireRoles(entity.ApproverRoles()...), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(userIDKey))
	})
	r.GET("/guarded", RequireRoles(entity.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthAndRoles(t *testing.T) {
	r := newEngine()

	tests := []struct {
		name   string
		header string
		want   int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "missing authorization header"},
		{"wrong scheme", "Basic admin", http.StatusUnauthorized, "invalid authorization header"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "invalid authorization header"},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, "invalid token"},
		{"user role", "Bearer user", http.StatusForbidden, "forbidden"},
		{"admin", "Bearer admin", http.StatusOK, "a1"},
		{"superadmin lowercase scheme", "bearer root", http.StatusOK, "s1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestRequireRoles_WithoutAuth(t *testing.T) {
	w := httptest.NewRecorder()
	newEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(NewLimiter(1)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.Contains(t, codes, http.StatusTooManyRequests)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/missing/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing/7", nil))

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"path":"/missing/:id"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

const (
	userKey   = "currentUser"
	userIDKey = "userID"
	roleKey   = "role"
)

// AuthMiddleWare validates the bearer token and loads the account behind
// it. The account is re-read on every request, so a suspended or deleted
// user loses access before the token expires.
func AuthMiddleWare(authUC usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			abort(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Set(roleKey, string(user.Role))
		c.Next()
	}
}

// RequireRoles lets the request through only for the listed roles. It must
// run after AuthMiddleWare.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	allowed := make(map[entity.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "User not authenticated")
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the account stored by AuthMiddleWare.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok && user != nil
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

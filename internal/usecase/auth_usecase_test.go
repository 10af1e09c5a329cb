package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/validator"
)

type fakeJWTService struct{}

func (fakeJWTService) GenerateAccessToken(userID string, role entity.UserRole) (string, error) {
	return "jwt:" + userID + ":" + string(role), nil
}

func (fakeJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "jwt" {
		return nil, errors.New("bad token")
	}
	return &entity.Claims{UserID: parts[1], Role: entity.UserRole(parts[2])}, nil
}

func withPassword(u *entity.User, password string) *entity.User {
	u.PasswordHash = "hashed:" + password
	return u
}

func newAuthFixture(users ...*entity.User) (*AuthUsecase, *memUserRepo) {
	repo := newMemUserRepo(users...)
	return NewAuthUsecase(repo, fakeHasher{}, fakeJWTService{}, nopLogger{}, validator.NewValidator()), repo
}

func TestLogin_ByEmailAndUsername(t *testing.T) {
	uc, _ := newAuthFixture(withPassword(staff("a1", "editor", entity.UserRoleAdmin), "Secret#123"))

	user, token, err := uc.Login(context.Background(), "Editor@Example.com", "Secret#123")
	require.NoError(t, err)
	assert.Equal(t, "a1", user.ID)
	assert.Equal(t, "jwt:a1:admin", token)

	_, token, err = uc.Login(context.Background(), "editor", "Secret#123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_Failures(t *testing.T) {
	pending := withPassword(staff("p1", "waiting", entity.UserRolePending), "Secret#123")
	suspended := withPassword(staff("u1", "viewer", entity.UserRoleUser), "Secret#123")
	suspended.Status = entity.UserStatusSuspended
	uc, _ := newAuthFixture(pending, suspended)

	_, _, err := uc.Login(context.Background(), "nobody", "Secret#123")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, _, err = uc.Login(context.Background(), "viewer", "wrong")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, _, err = uc.Login(context.Background(), "waiting", "Secret#123")
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, _, err = uc.Login(context.Background(), "viewer", "Secret#123")
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestLoginWithOAuth_ExistingAccountsOnly(t *testing.T) {
	uc, repo := newAuthFixture(staff("a1", "editor", entity.UserRoleAdmin))

	user, _, err := uc.LoginWithOAuth(context.Background(), "editor@example.com")
	require.NoError(t, err)
	assert.Equal(t, "a1", user.ID)

	_, _, err = uc.LoginWithOAuth(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
	_, err = repo.GetUserByEmail(context.Background(), "stranger@example.com")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	uc, repo := newAuthFixture(staff("a1", "editor", entity.UserRoleAdmin))

	user, err := uc.Authenticate(context.Background(), "jwt:a1:admin")
	require.NoError(t, err)
	assert.Equal(t, "a1", user.ID)

	_, err = uc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	status := entity.UserStatusSuspended
	_, err = repo.UpdateUser(context.Background(), "a1", entity.UserPatch{Status: &status})
	require.NoError(t, err)
	_, err = uc.Authenticate(context.Background(), "jwt:a1:admin")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = uc.Authenticate(context.Background(), "jwt:gone:admin")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

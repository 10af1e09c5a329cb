package mocks

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// MockAuthUsecase resolves the fixed tokens in Users; any other token fails.
type MockAuthUsecase struct {
	ShouldFailLogin          bool
	ShouldFailLoginWithOAuth bool

	Users           map[string]*entity.User
	MockUser        entity.User
	MockAccessToken string
	LastOAuthEmail  string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		Users: map[string]*entity.User{
			"admin-token": {ID: "admin-id", Username: "admin", Role: entity.UserRoleAdmin, Status: entity.UserStatusActive},
			"user-token":  {ID: "user-id", Username: "member", Role: entity.UserRoleUser, Status: entity.UserStatusActive},
		},
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
			Status:   entity.UserStatusActive,
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockAuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", entity.ErrUnauthorized
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockAuthUsecase) LoginWithOAuth(ctx context.Context, email string) (*entity.User, string, error) {
	m.LastOAuthEmail = email
	if m.ShouldFailLoginWithOAuth {
		return nil, "", entity.ErrUnauthorized
	}
	return &m.MockUser, m.MockAccessToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if u, ok := m.Users[accessToken]; ok {
		return u, nil
	}
	return nil, entity.ErrUnauthorized
}

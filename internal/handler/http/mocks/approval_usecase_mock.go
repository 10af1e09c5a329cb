package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// MockApprovalUsecase is a mock implementation of the approval usecase.
type MockApprovalUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailApprove      bool
	ShouldFailReject       bool
	ShouldFailChangeRole   bool
	ShouldFailChangeStatus bool
	ShouldFailDeleteUser   bool
	ShouldFailGetByID      bool
	ShouldFailListUsers    bool

	// Err overrides the error returned by a failing call.
	Err error

	// Return values
	MockUser entity.User

	// Recorded arguments
	LastRole   *entity.UserRole
	LastStatus entity.UserStatus
	LastToken  string
}

var _ usecasecontract.IApprovalUseCase = (*MockApprovalUsecase)(nil)

func NewMockApprovalUsecase() *MockApprovalUsecase {
	return &MockApprovalUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			Status:    entity.UserStatusActive,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}
}

func (m *MockApprovalUsecase) fail(fallback string) error {
	if m.Err != nil {
		return m.Err
	}
	return errors.New(fallback)
}

func (m *MockApprovalUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, m.fail("registration failed")
	}
	u := m.MockUser
	u.Username, u.Email = username, email
	u.Role, u.Status = entity.UserRolePending, entity.UserStatusInactive
	return &u, nil
}

func (m *MockApprovalUsecase) Approve(ctx context.Context, token string) (*entity.User, error) {
	m.LastToken = token
	if m.ShouldFailApprove {
		return nil, m.fail("approve failed")
	}
	return &m.MockUser, nil
}

func (m *MockApprovalUsecase) Reject(ctx context.Context, token string) (*entity.User, error) {
	m.LastToken = token
	if m.ShouldFailReject {
		return nil, m.fail("reject failed")
	}
	return &m.MockUser, nil
}

func (m *MockApprovalUsecase) ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	if m.ShouldFailChangeRole {
		return nil, m.fail("change role failed")
	}
	u := m.MockUser
	u.ID, u.Role = userID, role
	return &u, nil
}

func (m *MockApprovalUsecase) ChangeStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error) {
	m.LastStatus = status
	if m.ShouldFailChangeStatus {
		return nil, m.fail("change status failed")
	}
	u := m.MockUser
	u.ID, u.Status = userID, status
	return &u, nil
}

func (m *MockApprovalUsecase) DeleteUser(ctx context.Context, userID string) error {
	if m.ShouldFailDeleteUser {
		return m.fail("delete failed")
	}
	return nil
}

func (m *MockApprovalUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, m.fail("user not found")
	}
	u := m.MockUser
	u.ID = userID
	return &u, nil
}

func (m *MockApprovalUsecase) ListUsers(ctx context.Context, role *entity.UserRole) ([]*entity.User, error) {
	m.LastRole = role
	if m.ShouldFailListUsers {
		return nil, m.fail("list failed")
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockApprovalUsecase) EnsureSuperadmin(ctx context.Context, username, email, password string) (*entity.User, error) {
	u := m.MockUser
	u.Role = entity.UserRoleSuperadmin
	return &u, nil
}

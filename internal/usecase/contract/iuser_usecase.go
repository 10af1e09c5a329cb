package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IApprovalUseCase drives the account lifecycle: registration, approval by
// emailed token, and administrative role/status edits.
type IApprovalUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Approve(ctx context.Context, token string) (*entity.User, error)
	Reject(ctx context.Context, token string) (*entity.User, error)
	ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error)
	ChangeStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	ListUsers(ctx context.Context, role *entity.UserRole) ([]*entity.User, error)
	EnsureSuperadmin(ctx context.Context, username, email, password string) (*entity.User, error)
}

// IAuthUseCase signs approved staff in to the backoffice.
type IAuthUseCase interface {
	Login(ctx context.Context, identifier, password string) (*entity.User, string, error)
	LoginWithOAuth(ctx context.Context, email string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}

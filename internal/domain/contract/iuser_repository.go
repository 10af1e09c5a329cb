package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
)

// IUserRepository is the account record store.
type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByApprovalToken(ctx context.Context, token string) (*entity.User, error)
	ListUsersByRoles(ctx context.Context, roles []entity.UserRole) ([]*entity.User, error)
	// UpdateUser applies patch atomically. When patch.RequireRoleIn is set and
	// the stored role is outside it, entity.ErrForbidden is returned.
	UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	// ConsumeApprovalToken promotes the pending account holding token in a
	// single conditional write and clears the token. Only one caller can win
	// for a given token; the others get entity.ErrNotFound.
	ConsumeApprovalToken(ctx context.Context, token string, approvedAt time.Time) (*entity.User, error)
	// DeletePendingByToken removes the pending account holding token, with the
	// same at-most-once guarantee as ConsumeApprovalToken.
	DeletePendingByToken(ctx context.Context, token string) (*entity.User, error)
	// DeleteUser removes an account unless its role is superadmin.
	DeleteUser(ctx context.Context, id string) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// approvalTokenBytes is the entropy of an approval token before encoding.
const approvalTokenBytes = 32

// ApprovalUsecase implements the account lifecycle.
type ApprovalUsecase struct {
	userRepo      contract.IUserRepository
	notifier      contract.INotificationDispatcher
	hasher        contract.IHasher
	tokenIssuer   contract.ITokenIssuer
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	now           func() time.Time
}

// NewApprovalUsecase creates a new ApprovalUsecase instance.
func NewApprovalUsecase(
	userRepo contract.IUserRepository,
	notifier contract.INotificationDispatcher,
	hasher contract.IHasher,
	tokenIssuer contract.ITokenIssuer,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *ApprovalUsecase {
	return &ApprovalUsecase{
		userRepo:      userRepo,
		notifier:      notifier,
		hasher:        hasher,
		tokenIssuer:   tokenIssuer,
		uuidGenerator: uuidGenerator,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		now:           time.Now,
	}
}

// check if ApprovalUsecase implements the IApprovalUseCase
var _ usecasecontract.IApprovalUseCase = (*ApprovalUsecase)(nil)

// Register creates a pending account and tells every approver about it.
// Delivery failures are logged by the dispatcher and never undo the
// registration.
func (uc *ApprovalUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := uc.validateRegistration(ctx, username, email, password); err != nil {
		if errors.Is(err, entity.ErrValidation) {
			metrics.IncRegistration("invalid")
		} else {
			metrics.IncRegistration("error")
		}
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		metrics.IncRegistration("error")
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	token, err := uc.tokenIssuer.GenerateRandomToken(approvalTokenBytes)
	if err != nil {
		uc.logger.Errorf("failed to issue approval token: %v", err)
		metrics.IncRegistration("error")
		return nil, fmt.Errorf("failed to issue approval token: %w", err)
	}

	now := uc.now().UTC()
	user := &entity.User{
		ID:            uc.uuidGenerator.NewUUID(),
		Username:      username,
		Email:         email,
		PasswordHash:  hashedPassword,
		Role:          entity.UserRolePending,
		Status:        entity.UserStatusInactive,
		ApprovalToken: &token,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrValidation) {
			metrics.IncRegistration("invalid")
		} else {
			uc.logger.Errorf("failed to create pending user %s: %v", username, err)
			metrics.IncRegistration("error")
		}
		return nil, err
	}
	metrics.IncRegistration("created")

	uc.notifyApprovers(context.WithoutCancel(ctx), user, token)
	return user, nil
}

func (uc *ApprovalUsecase) validateRegistration(ctx context.Context, username, email, password string) error {
	if err := uc.validator.ValidateUsername(username); err != nil {
		return entity.NewValidationError("username", err.Error())
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return entity.NewValidationError("email", "must be a valid email address")
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return entity.NewValidationError("password", err.Error())
	}

	// Uniqueness is global: any stored account, whatever its role or status,
	// keeps its email and username.
	if _, err := uc.userRepo.GetUserByEmail(ctx, email); err == nil {
		return entity.NewValidationError("email", "an account with this email already exists")
	} else if !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return err
	}

	if _, err := uc.userRepo.GetUserByUsername(ctx, username); err == nil {
		return entity.NewValidationError("username", "this username is already taken")
	} else if !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by username: %v", err)
		return err
	}
	return nil
}

// notifyApprovers sends the approval request to the approvers known right now.
func (uc *ApprovalUsecase) notifyApprovers(ctx context.Context, pending *entity.User, token string) {
	approvers, err := uc.userRepo.ListUsersByRoles(ctx, entity.ApproverRoles())
	if err != nil {
		uc.logger.Warnf("registration of %s stored but approvers could not be loaded: %v", pending.Username, err)
		return
	}
	if len(approvers) == 0 {
		uc.logger.Warnf("registration of %s stored but there is no approver to notify", pending.Username)
		return
	}

	data := entity.NotificationData{
		Username:    pending.Username,
		Email:       pending.Email,
		ApproveLink: uc.decisionLink("approve", token),
		RejectLink:  uc.decisionLink("reject", token),
	}
	for _, approver := range approvers {
		// the dispatcher logs failed deliveries itself
		_ = uc.notifier.Send(ctx, approver.Email, entity.NotificationRegistrationPending, data)
	}
}

func (uc *ApprovalUsecase) decisionLink(decision, token string) string {
	base := strings.TrimRight(uc.config.GetAppBaseURL(), "/")
	return fmt.Sprintf("%s/api/v1/admin/%s/%s", base, decision, url.PathEscape(token))
}

func (uc *ApprovalUsecase) loginLink() string {
	return strings.TrimRight(uc.config.GetFrontendURL(), "/") + "/login"
}

// Approve consumes token and turns the pending account into an active user.
// Concurrent calls with the same token produce exactly one success.
func (uc *ApprovalUsecase) Approve(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		metrics.IncApprovalDecision("approve", "not_found")
		return nil, entity.ErrNotFound
	}

	user, err := uc.userRepo.ConsumeApprovalToken(ctx, token, uc.now().UTC())
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.IncApprovalDecision("approve", "not_found")
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to approve account: %v", err)
		metrics.IncApprovalDecision("approve", "error")
		return nil, err
	}
	metrics.IncApprovalDecision("approve", "ok")
	uc.logger.Infof("account %s approved", user.Username)

	_ = uc.notifier.Send(context.WithoutCancel(ctx), user.Email, entity.NotificationAccountApproved, entity.NotificationData{
		Username:  user.Username,
		Email:     user.Email,
		LoginLink: uc.loginLink(),
	})
	return user, nil
}

// Reject consumes token and removes the pending account it belongs to.
func (uc *ApprovalUsecase) Reject(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		metrics.IncApprovalDecision("reject", "not_found")
		return nil, entity.ErrNotFound
	}

	user, err := uc.userRepo.DeletePendingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			metrics.IncApprovalDecision("reject", "not_found")
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to reject account: %v", err)
		metrics.IncApprovalDecision("reject", "error")
		return nil, err
	}
	metrics.IncApprovalDecision("reject", "ok")
	uc.logger.Infof("registration of %s rejected", user.Username)

	_ = uc.notifier.Send(context.WithoutCancel(ctx), user.Email, entity.NotificationAccountRejected, entity.NotificationData{
		Username: user.Username,
		Email:    user.Email,
	})
	return user, nil
}

// ChangeRole moves a user between the user and admin roles.
func (uc *ApprovalUsecase) ChangeRole(ctx context.Context, userID string, role entity.UserRole) (*entity.User, error) {
	switch role {
	case entity.UserRoleUser, entity.UserRoleAdmin:
	case entity.UserRolePending, entity.UserRoleSuperadmin:
		return nil, fmt.Errorf("%w: role %s cannot be assigned", entity.ErrForbidden, role)
	default:
		return nil, entity.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	if err := uc.requireManaged(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := uc.userRepo.UpdateUser(ctx, userID, entity.UserPatch{
		Role:          &role,
		RequireRoleIn: entity.ManagedRoles(),
	})
	if err != nil {
		if !errors.Is(err, entity.ErrForbidden) && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to change role of user %s: %v", userID, err)
		}
		return nil, err
	}
	uc.logger.Infof("user %s now has role %s", updated.Username, updated.Role)
	return updated, nil
}

// ChangeStatus sets the status of a user or admin account.
func (uc *ApprovalUsecase) ChangeStatus(ctx context.Context, userID string, status entity.UserStatus) (*entity.User, error) {
	switch status {
	case entity.UserStatusActive, entity.UserStatusInactive, entity.UserStatusSuspended:
	default:
		return nil, entity.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	if err := uc.requireManaged(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := uc.userRepo.UpdateUser(ctx, userID, entity.UserPatch{
		Status:        &status,
		RequireRoleIn: entity.ManagedRoles(),
	})
	if err != nil {
		if !errors.Is(err, entity.ErrForbidden) && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to change status of user %s: %v", userID, err)
		}
		return nil, err
	}
	uc.logger.Infof("user %s now has status %s", updated.Username, updated.Status)
	return updated, nil
}

func (uc *ApprovalUsecase) requireManaged(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Role.IsManaged() {
		return fmt.Errorf("%w: %s accounts cannot be edited", entity.ErrForbidden, user.Role)
	}
	return nil
}

// DeleteUser permanently removes any account except a superadmin.
func (uc *ApprovalUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role == entity.UserRoleSuperadmin {
		return fmt.Errorf("%w: superadmin accounts cannot be deleted", entity.ErrForbidden)
	}
	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if !errors.Is(err, entity.ErrForbidden) && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		}
		return err
	}
	uc.logger.Infof("user %s deleted", user.Username)
	return nil
}

func (uc *ApprovalUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// ListUsers returns the accounts holding role, or every account when role is nil.
func (uc *ApprovalUsecase) ListUsers(ctx context.Context, role *entity.UserRole) ([]*entity.User, error) {
	roles := []entity.UserRole{entity.UserRolePending, entity.UserRoleUser, entity.UserRoleAdmin, entity.UserRoleSuperadmin}
	if role != nil {
		if _, ok := entity.ParseUserRole(string(*role)); !ok {
			return nil, entity.NewValidationError("role", fmt.Sprintf("unknown role %q", *role))
		}
		roles = []entity.UserRole{*role}
	}
	return uc.userRepo.ListUsersByRoles(ctx, roles)
}

// EnsureSuperadmin creates the bootstrap superadmin when it does not exist
// yet. Empty credentials disable the bootstrap.
func (uc *ApprovalUsecase) EnsureSuperadmin(ctx context.Context, username, email, password string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, nil
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err == nil {
		if existing.Role != entity.UserRoleSuperadmin {
			return nil, entity.NewValidationError("email", "bootstrap email belongs to a non-superadmin account")
		}
		return existing, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, entity.NewValidationError("password", err.Error())
	}
	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to process password: %w", err)
	}

	now := uc.now().UTC()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.UserRoleSuperadmin,
		Status:       entity.UserStatusActive,
		ApprovedAt:   &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	uc.logger.Infof("bootstrap superadmin %s created", username)
	return user, nil
}

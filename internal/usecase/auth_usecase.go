package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// AuthUsecase signs approved staff in and resolves access tokens.
type AuthUsecase struct {
	userRepo   contract.IUserRepository
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
	validator  usecasecontract.IValidator
}

func NewAuthUsecase(userRepo contract.IUserRepository, hasher contract.IHasher, jwtService JWTService, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		validator:  validator,
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Login accepts an email or a username. Pending, inactive and suspended
// accounts are refused.
func (uc *AuthUsecase) Login(ctx context.Context, identifier, password string) (*entity.User, string, error) {
	identifier = strings.TrimSpace(identifier)

	var user *entity.User
	var err error
	if uc.validator.ValidateEmail(identifier) == nil {
		user, err = uc.userRepo.GetUserByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = uc.userRepo.GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrUnauthorized
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", err
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrUnauthorized
	}
	return uc.issue(user)
}

// LoginWithOAuth signs in the existing account owning email. Accounts are
// never created here; registration always goes through approval.
func (uc *AuthUsecase) LoginWithOAuth(ctx context.Context, email string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrUnauthorized
		}
		uc.logger.Errorf("failed to retrieve user for oauth login: %v", err)
		return nil, "", err
	}
	return uc.issue(user)
}

func (uc *AuthUsecase) issue(user *entity.User) (*entity.User, string, error) {
	if !user.CanAuthenticate() {
		return nil, "", fmt.Errorf("%w: account is awaiting approval or not active", entity.ErrForbidden)
	}
	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", errors.New("failed to generate token")
	}
	return user, accessToken, nil
}

// Authenticate resolves an access token to its account. The account is
// re-read so role and status changes apply immediately.
func (uc *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrUnauthorized
		}
		uc.logger.Errorf("failed to retrieve user during authentication: %v", err)
		return nil, err
	}
	if !user.CanAuthenticate() {
		return nil, entity.ErrUnauthorized
	}
	return user, nil
}

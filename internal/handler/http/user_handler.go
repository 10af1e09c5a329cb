package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	ListUsers(*gin.Context)
	GetUser(*gin.Context)
	GetCurrentUser(*gin.Context)
	ChangeRole(*gin.Context)
	ChangeStatus(*gin.Context)
	DeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

// UserHandler is the account administration surface of the backoffice.
type UserHandler struct {
	approvalUC usecasecontract.IApprovalUseCase
	logger     usecasecontract.IAppLogger
}

func NewUserHandler(approvalUC usecasecontract.IApprovalUseCase, logger usecasecontract.IAppLogger) *UserHandler {
	return &UserHandler{approvalUC: approvalUC, logger: logger}
}

// ListUsers returns every account, optionally narrowed by ?role=.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var role *entity.UserRole
	if raw := c.Query("role"); raw != "" {
		r, ok := entity.ParseUserRole(raw)
		if !ok {
			ErrorHandler(c, http.StatusBadRequest, "role must be one of: pending user admin superadmin")
			return
		}
		role = &r
	}

	users, err := h.approvalUC.ListUsers(c.Request.Context(), role)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.approvalUC.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser returns the account resolved by the auth middleware.
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.approvalUC.ChangeRole(c.Request.Context(), c.Param("id"), entity.UserRole(req.Role))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.approvalUC.ChangeStatus(c.Request.Context(), c.Param("id"), entity.UserStatus(req.Status))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.approvalUC.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	MessageHandler(c, http.StatusOK, "User deleted")
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

const invalidApprovalLink = "invalid or expired approval link"

// ApprovalHandler serves the decision links emailed to approvers. The token
// in the path is the only credential, so the routes are unauthenticated.
type ApprovalHandler struct {
	approvalUC usecasecontract.IApprovalUseCase
	logger     usecasecontract.IAppLogger
}

func NewApprovalHandler(approvalUC usecasecontract.IApprovalUseCase, logger usecasecontract.IAppLogger) *ApprovalHandler {
	return &ApprovalHandler{approvalUC: approvalUC, logger: logger}
}

func (h *ApprovalHandler) Approve(c *gin.Context) {
	user, err := h.approvalUC.Approve(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.decisionError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{
		"message": fmt.Sprintf("Account %s approved.", user.Username),
		"user":    dto.ToUserResponse(*user),
	})
}

func (h *ApprovalHandler) Reject(c *gin.Context) {
	user, err := h.approvalUC.Reject(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.decisionError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, fmt.Sprintf("Registration of %s rejected.", user.Username))
}

// Unknown, consumed and malformed tokens all read the same to the caller.
func (h *ApprovalHandler) decisionError(c *gin.Context, err error) {
	if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrValidation) {
		ErrorHandler(c, http.StatusNotFound, invalidApprovalLink)
		return
	}
	respondError(c, h.logger, err)
}

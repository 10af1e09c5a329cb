package http

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

const oauthStateCookie = "oauthState"

type AuthHandler struct {
	approvalUC usecasecontract.IApprovalUseCase
	authUC     usecasecontract.IAuthUseCase
	oauth      contract.IOAuthProvider
	logger     usecasecontract.IAppLogger
	secure     bool
}

func NewAuthHandler(approvalUC usecasecontract.IApprovalUseCase, authUC usecasecontract.IAuthUseCase, oauth contract.IOAuthProvider, logger usecasecontract.IAppLogger, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		approvalUC: approvalUC,
		authUC:     authUC,
		oauth:      oauth,
		logger:     logger,
		secure:     secureCookies,
	}
}

// Register creates a pending account and notifies the approvers.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.approvalUC.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, gin.H{
		"message": "Registration received. An administrator will review your account.",
		"user":    dto.ToUserResponse(*user),
	})
}

// Login handles backoffice authentication by email or username.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, err := h.authUC.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

func (h *AuthHandler) HandleGoogleLogin(c *gin.Context) {
	if h.oauth == nil || !h.oauth.Enabled() {
		ErrorHandler(c, http.StatusNotFound, "google sign-in is not configured")
		return
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		respondError(c, h.logger, err)
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie(oauthStateCookie, state, 300, "/", "", h.secure, true)

	c.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(c *gin.Context) {
	if h.oauth == nil || !h.oauth.Enabled() {
		ErrorHandler(c, http.StatusNotFound, "google sign-in is not configured")
		return
	}

	state := c.Query("state")
	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(c, http.StatusUnauthorized, "invalid CSRF state token")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		ErrorHandler(c, http.StatusBadRequest, "authorization code not provided")
		return
	}

	ctx := c.Request.Context()
	email, err := h.oauth.ExchangeEmail(ctx, code)
	if err != nil {
		h.logger.Warnf("google sign-in exchange failed: %v", err)
		ErrorHandler(c, http.StatusUnauthorized, "google sign-in failed")
		return
	}

	user, accessToken, err := h.authUC.LoginWithOAuth(ctx, email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
	})
}

package http

import (
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	"github.com/mikiasgoitom/Showcase/internal/domain/entity"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Showcase/internal/usecase/contract"
)

// RouterDeps collects what the HTTP layer needs from the composition root.
type RouterDeps struct {
	ApprovalUC usecasecontract.IApprovalUseCase
	AuthUC     usecasecontract.IAuthUseCase
	GalleryUC  usecasecontract.IGalleryUseCase
	ContentUC  usecasecontract.IContentUseCase
	OAuth      contract.IOAuthProvider
	Logger     usecasecontract.IAppLogger
	RequestLog *zerolog.Logger
	Limiter    *limiter.Limiter
	// RegisterLimiter additionally guards POST /auth/register.
	RegisterLimiter *limiter.Limiter
	HealthDeps      map[string]Pinger
	CORSOrigins     []string
	// SecureCookies marks the OAuth state cookie Secure.
	SecureCookies bool
}

type Router struct {
	authHandler     *AuthHandler
	approvalHandler *ApprovalHandler
	userHandler     *UserHandler
	galleryHandler  *GalleryHandler
	contentHandler  *ContentHandler
	healthHandler   *HealthHandler
	authUC          usecasecontract.IAuthUseCase
	requestLog      *zerolog.Logger
	limiter         *limiter.Limiter
	registerLimiter *limiter.Limiter
	corsOrigins     []string
}

func NewRouter(deps RouterDeps) *Router {
	return &Router{
		authHandler:     NewAuthHandler(deps.ApprovalUC, deps.AuthUC, deps.OAuth, deps.Logger, deps.SecureCookies),
		approvalHandler: NewApprovalHandler(deps.ApprovalUC, deps.Logger),
		userHandler:     NewUserHandler(deps.ApprovalUC, deps.Logger),
		galleryHandler:  NewGalleryHandler(deps.GalleryUC, deps.Logger),
		contentHandler:  NewContentHandler(deps.ContentUC, deps.Logger),
		healthHandler:   NewHealthHandler(deps.HealthDeps),
		authUC:          deps.AuthUC,
		requestLog:      deps.RequestLog,
		limiter:         deps.Limiter,
		registerLimiter: deps.RegisterLimiter,
		corsOrigins:     deps.CORSOrigins,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.requestLog != nil {
		router.Use(middleware.RequestLogger(*r.requestLog))
	}

	router.GET("/health", r.healthHandler.Liveness)
	router.GET("/health/ready", r.healthHandler.Readiness)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if r.limiter != nil {
		v1.Use(middleware.RateLimiter(r.limiter))
	}

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		if r.registerLimiter != nil {
			auth.POST("/register", middleware.RateLimiter(r.registerLimiter), r.authHandler.Register)
		} else {
			auth.POST("/register", r.authHandler.Register)
		}
		auth.POST("/login", r.authHandler.Login)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Emailed decision links; the token is the credential.
	v1.GET("/admin/approve/:token", r.approvalHandler.Approve)
	v1.GET("/admin/reject/:token", r.approvalHandler.Reject)

	gallery := v1.Group("/gallery")
	{
		gallery.GET("", r.galleryHandler.ListGallery)
		gallery.GET("/categories", r.galleryHandler.ListCategories)
	}

	v1.GET("/projects", r.contentHandler.ListPublicProjects)
	v1.GET("/projects/:id", r.contentHandler.GetPublicProject)
	v1.GET("/videos", r.contentHandler.ListPublicVideos)
	v1.GET("/videos/:id", r.contentHandler.GetPublicVideo)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.authUC))
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleWare(r.authUC), middleware.RequireRoles(entity.ApproverRoles()...))
	{
		admin.GET("/users", r.userHandler.ListUsers)
		admin.GET("/users/:id", r.userHandler.GetUser)
		admin.PUT("/users/:id/role", r.userHandler.ChangeRole)
		admin.PUT("/users/:id/status", r.userHandler.ChangeStatus)
		admin.DELETE("/users/:id", r.userHandler.DeleteUser)

		admin.GET("/projects", r.contentHandler.ListProjects)
		admin.GET("/projects/:id", r.contentHandler.GetProject)
		admin.POST("/projects", r.contentHandler.CreateProject)
		admin.PUT("/projects/:id", r.contentHandler.UpdateProject)
		admin.DELETE("/projects/:id", r.contentHandler.DeleteProject)

		admin.GET("/videos", r.contentHandler.ListVideos)
		admin.GET("/videos/:id", r.contentHandler.GetVideo)
		admin.POST("/videos", r.contentHandler.CreateVideo)
		admin.PUT("/videos/:id", r.contentHandler.UpdateVideo)
		admin.DELETE("/videos/:id", r.contentHandler.DeleteVideo)
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Showcase/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Showcase/internal/handler/http"
	"github.com/mikiasgoitom/Showcase/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Showcase/internal/infrastructure/database"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Showcase/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/Showcase/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/store"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Showcase/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Showcase/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appConfig, err := config.Load(ctx)
	if err != nil {
		logger.New(logger.Options{}).Fatalf("config: %v", err)
	}

	appLogger := logger.New(logger.Options{Level: appConfig.LogLevel, Pretty: appConfig.LogPretty})
	requestLog := appLogger.Zerolog()

	// Establish MongoDB connection
	mongoClient, db, err := database.ConnectMongo(ctx, database.MongoConfig{
		URI:      appConfig.Mongo.URI,
		Database: appConfig.Mongo.Database,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	healthDeps := map[string]handlerHttp.Pinger{
		"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(database.UsersCollection))
	projectRepo := mongodb.NewProjectRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(appConfig.JWTSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	mailService := external_services.NewEmailService(
		appConfig.Email.Host, appConfig.Email.Port, appConfig.Email.Username,
		appConfig.Email.AppPassword, appConfig.Email.From,
	)
	notifier := external_services.NewNotificationDispatcher(external_services.NewTemplateStore(), mailService, appLogger)
	randomGenerator := randomgenerator.NewRandomGenerator()
	uuidGenerator := uuidgen.NewGenerator()
	appValidator := validator.NewValidator()
	oauthProvider := external_services.NewGoogleOAuthProvider(
		appConfig.Google.ClientID, appConfig.Google.ClientSecret, appConfig.GetAppBaseURL(),
	)

	var metadata contract.IVideoMetadataProvider = external_services.NewYouTubeService(
		appConfig.YouTube.BaseURL, appConfig.YouTube.APIKey, &http.Client{Timeout: appConfig.GetMetadataTimeout()},
	)

	// Optional Dependency Injection: Redis cache
	if appConfig.Redis.URL != "" {
		rdb, err := database.ConnectRedis(ctx, appConfig.Redis.URL)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func(rdb *redis.Client) { _ = rdb.Close() }(rdb)

		cache := store.NewMetadataCacheStore(rdb, appConfig.GetMetadataCacheTTL())
		metadata = external_services.NewCachedMetadataProvider(metadata, cache, appLogger)
		healthDeps["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	} else {
		appLogger.Infof("REDIS_URL not set, video metadata is not cached")
	}

	// Dependency Injection: Usecases
	approvalUsecase := usecase.NewApprovalUsecase(userRepo, notifier, hasher, randomGenerator, uuidGenerator, appLogger, appConfig, appValidator)
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtService, appLogger, appValidator)
	galleryUsecase := usecase.NewGalleryUsecase(projectRepo, videoRepo, metadata, appLogger, appConfig)
	contentUsecase := usecase.NewContentUsecase(projectRepo, videoRepo, metadata, uuidGenerator, appLogger, appConfig)

	if sa := appConfig.Superadmin; sa.Username != "" && sa.Email != "" && sa.Password != "" {
		if _, err := approvalUsecase.EnsureSuperadmin(ctx, sa.Username, sa.Email, sa.Password); err != nil {
			appLogger.Fatalf("Failed to bootstrap superadmin: %v", err)
		}
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	handlerHttp.NewRouter(handlerHttp.RouterDeps{
		ApprovalUC:      approvalUsecase,
		AuthUC:          authUsecase,
		GalleryUC:       galleryUsecase,
		ContentUC:       contentUsecase,
		OAuth:           oauthProvider,
		Logger:          appLogger,
		RequestLog:      &requestLog,
		Limiter:         middleware.NewLimiter(appConfig.RateLimitPerSecond),
		RegisterLimiter: middleware.NewLimiter(appConfig.RegisterRateLimitPerSecond),
		HealthDeps:      healthDeps,
		CORSOrigins:     []string{appConfig.GetFrontendURL()},
		SecureCookies:   strings.HasPrefix(appConfig.GetAppBaseURL(), "https://"),
	}).SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}

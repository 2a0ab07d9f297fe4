package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"blog-api/internal/auth"
	gql "blog-api/internal/controller/graphql"
	blogHTTP "blog-api/internal/controller/http"
	"blog-api/internal/model"
	"blog-api/internal/repo/persistent"
	"blog-api/internal/validation"
	"blog-api/pkg/cache"
	"blog-api/pkg/config"
	"blog-api/pkg/database"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"
	"blog-api/pkg/middleware"
	"blog-api/pkg/queue"
	"blog-api/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set in environment variables")

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	if !cfg.HasJWTSecret() {
		return nil, ErrMissingJWTSecret
	}

	log := logger.NewForEnv(cfg.AppEnv)

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error("Failed to migrate database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (rate limiting in memory)", err)
		redisClient = nil
	}

	var s3Client *s3.Client
	if cfg.S3Enabled() {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without events)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		queueClient: queueClient,
	}, nil
}

// corsConfig allows credentials only for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// setupOAuth registers the Google provider with gothic and returns the token fetcher.
func (a *App) setupOAuth() auth.ProfileFetcher {
	if !a.cfg.GoogleEnabled() {
		a.log.Info("Google sign-in disabled: GOOGLE_CLIENT_ID or GOOGLE_CLIENT_SECRET not set")
		return nil
	}

	store := sessions.NewCookieStore([]byte(a.cfg.SessionSecret))
	store.MaxAge(int((10 * time.Minute).Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = !a.cfg.IsDevelopment()
	gothic.Store = store

	provider := auth.NewGoogleProvider(a.cfg.GoogleClientID, a.cfg.GoogleClientSecret, a.cfg.GoogleCallbackURL)
	goth.UseProviders(provider)
	return auth.NewGoogleProfileFetcher(provider)
}

func (a *App) Run() error {
	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize repositories and services
	repos := persistent.NewRepositories(a.db)
	authService := auth.NewService(repos.Users, a.jwtService, a.setupOAuth(), a.log)

	var events gql.EventPublisher
	if a.queueClient != nil {
		events = a.queueClient
	}
	resolver := gql.NewResolver(validation.New(), events, a.log)
	server, err := gql.NewServer(resolver, gql.NewContextBuilder(repos, authService))
	if err != nil {
		a.log.Error("Failed to build GraphQL schema: %v", err)
		return err
	}

	var uploader blogHTTP.Uploader
	if a.s3Client != nil {
		uploader = a.s3Client
	}

	// Initialize HTTP handlers
	graphqlHandler := blogHTTP.NewGraphQLHandler(server, a.log)
	oauthHandler := blogHTTP.NewOAuthHandler(authService, a.log)
	mediaHandler := blogHTTP.NewMediaHandler(repos.Media, uploader, a.log)

	r := gin.Default()
	r.Use(cors.New(corsConfig(a.cfg.CORSOrigins)))

	r.GET("/health", blogHTTP.Health)

	if a.redisClient != nil {
		r.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	} else {
		r.Use(middleware.LocalRateLimitMiddleware(a.cfg.RateLimitPerMinute, time.Minute))
	}

	r.POST("/graphql", graphqlHandler.Execute)
	r.POST("/", graphqlHandler.Execute)

	r.GET("/auth/:provider", oauthHandler.Begin)
	r.GET("/auth/:provider/callback", oauthHandler.Callback)

	authenticate := func(ctx context.Context, header string) (string, string, error) {
		user, err := authService.Authenticate(ctx, header)
		if err != nil {
			return "", "", err
		}
		return user.ID, string(user.Role), nil
	}
	upload := []gin.HandlerFunc{middleware.AuthMiddleware(authenticate)}
	if a.redisClient != nil {
		// Global limiter above runs before auth and keys by IP; this one keys by user_id.
		upload = append(upload, middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute))
	}
	upload = append(upload, mediaHandler.Upload)
	r.POST("/media/upload", upload...)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Blog API starting on port %s (origins: %s)", a.cfg.ServerPort, strings.Join(a.cfg.CORSOrigins, ","))
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down blog API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	a.log.Info("Blog API exited")
	_ = a.log.Sync()
	return shutdownErr
}

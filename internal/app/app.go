package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "inkwell/docs" // Swagger docs
	inkwellHTTP "inkwell/internal/controller/http"
	"inkwell/internal/repo/persistent"
	"inkwell/internal/scheduler"
	"inkwell/internal/usecase"
	"inkwell/pkg/cache"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/jwt"
	"inkwell/pkg/logger"
	"inkwell/pkg/middleware"
	"inkwell/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
	cleanup     *scheduler.CleanupScheduler
	stopCleanup context.CancelFunc
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	blogRepo := persistent.NewBlogRepository(a.db)
	categoryRepo := persistent.NewCategoryRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	fileRepo := persistent.NewUploadFileRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log, a.cfg.DefaultCategoryName)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, blogRepo, a.redisClient, a.log, a.cfg.DefaultCategoryName)
	attachmentUseCase := usecase.NewAttachmentUseCase(fileRepo, a.s3Client, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, categoryRepo, blogRepo, attachmentUseCase, a.log, a.cfg.DefaultCategoryName)
	uploadUseCase := usecase.NewUploadUseCase(fileRepo, a.s3Client, a.log)
	cleanupUseCase := usecase.NewCleanupUseCase(fileRepo, a.s3Client, a.log, a.cfg.CleanupTempTTL, a.cfg.CleanupRetention)

	// Initialize HTTP handlers
	authHandler := inkwellHTTP.NewAuthHandler(authUseCase, a.log)
	blogHandler := inkwellHTTP.NewBlogHandler(blogUseCase, a.log)
	categoryHandler := inkwellHTTP.NewCategoryHandler(categoryUseCase, a.log)
	postHandler := inkwellHTTP.NewPostHandler(postUseCase, a.log)
	fileHandler := inkwellHTTP.NewFileHandler(uploadUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(a.redisClient, 100, time.Minute))
	{
		api.POST("/auth/signup", authHandler.SignUp)
		api.POST("/auth/signin", authHandler.SignIn)

		// Public blog surface
		api.GET("/blogs/:nickname", blogHandler.GetBlogByNickname)
		api.GET("/blogs/:nickname/categories", categoryHandler.GetCategoryTreeByNickname)
		api.GET("/blogs/:nickname/posts", postHandler.ListPublicPosts)
		api.GET("/blogs/:nickname/posts/:id", postHandler.GetPublicPost)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.GET("/auth/me", authHandler.Me)

			protected.GET("/blog", blogHandler.GetMyBlog)
			protected.PUT("/blog", blogHandler.UpdateBlog)

			protected.POST("/categories", categoryHandler.CreateCategory)
			protected.GET("/categories", categoryHandler.GetMyCategoryTree)
			protected.GET("/categories/:id", categoryHandler.GetCategory)
			protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
			protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

			protected.POST("/posts", postHandler.CreatePost)
			protected.GET("/posts", postHandler.ListMyPosts)
			protected.GET("/posts/:id", postHandler.GetPost)
			protected.PUT("/posts/:id", postHandler.UpdatePost)
			protected.DELETE("/posts/:id", postHandler.DeletePost)

			protected.POST("/files/images", fileHandler.UploadImage)
			protected.POST("/files/attachments", fileHandler.UploadAttachment)
			protected.GET("/files/:id", fileHandler.GetFile)
		}
	}

	// Start cleanup scheduler
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	a.stopCleanup = stopCleanup
	a.cleanup = scheduler.NewCleanupScheduler(cleanupUseCase, a.log, a.cfg.CleanupInterval)
	a.cleanup.Start(cleanupCtx)

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Inkwell starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop cleanup scheduler
	if a.stopCleanup != nil {
		a.stopCleanup()
		a.cleanup.Wait()
	}

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Inkwell exited")
	return nil
}

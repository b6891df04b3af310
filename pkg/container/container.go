package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/storage"
	"blog-backend/migrations"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"blog-backend/internal/domains/account"
	accountHandler "blog-backend/internal/domains/account/handler"
	accountRepo "blog-backend/internal/domains/account/repository"
	accountService "blog-backend/internal/domains/account/service"

	"blog-backend/internal/domains/category"
	categoryHandler "blog-backend/internal/domains/category/handler"
	categoryRepo "blog-backend/internal/domains/category/repository"
	categoryService "blog-backend/internal/domains/category/service"

	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"

	"blog-backend/internal/domains/image"
	imageHandler "blog-backend/internal/domains/image/handler"
	imageRepo "blog-backend/internal/domains/image/repository"
	imageService "blog-backend/internal/domains/image/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của application.
// Thứ tự khởi tạo: config → infrastructure → repositories → services → handlers
type Container struct {
	// INFRASTRUCTURE
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Blobs      storage.BlobStore

	// REPOSITORIES
	AccountRepo  account.Repository
	CategoryRepo category.CategoryRepository
	PostRepo     post.PostRepository
	ImageRepo    image.ImageRepository

	// SERVICES
	AccountService  account.Service
	CategoryService category.CategoryService
	PostService     post.PostService
	ImageService    image.ImageService

	// HANDLERS
	AccountHandler  *accountHandler.AccountHandler
	CategoryHandler *categoryHandler.CategoryHandler
	PostHandler     *postHandler.PostHandler
	ImageHandler    *imageHandler.ImageHandler
}

// NewContainer build dependency graph. Lỗi ở bất kỳ bước nào → app không start.
func NewContainer(ctx context.Context) (*Container, error) {
	logger.Info("Initializing DI container", nil)

	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
		"blob_driver": cfg.Blob.Driver,
		"access":      cfg.Access.Policy.String(),
	})

	// ========================================
	// STEP 2: DATABASE (+ migrations)
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: CACHE
	// ========================================
	c.initCache(ctx)

	// ========================================
	// STEP 4: JWT + BLOB STORE
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret,
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
	)

	if err := c.initBlobStore(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	// ========================================
	// STEP 6: SEED ADMIN
	// ========================================
	if cfg.Admin.Email != "" {
		if err := c.AccountService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			return nil, fmt.Errorf("failed to seed admin account: %w", err)
		}
	}

	logger.Info("DI container initialized", nil)
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	db := database.NewPostgresDB(c.Config.DBConfig())

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	if c.Config.Database.AutoMigrate {
		if err := db.Migrate(ctx, migrations.FS, migrations.Dir); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return nil
}

// initCache: Redis lỗi không chặn startup, fallback sang no-op
func (c *Container) initCache(ctx context.Context) {
	cfg := c.Config.Redis
	if !cfg.Enabled {
		c.Cache = cache.NewNoop()
		logger.Info("Redis disabled, caching off", nil)
		return
	}

	redisCache := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(ctx); err != nil {
			logger.Warn("Redis connection failed (non-critical), caching off", map[string]interface{}{
				"error": err.Error(),
			})
			_ = rc.Close()
			c.Cache = cache.NewNoop()
			return
		}
	}
	c.Cache = redisCache
}

func (c *Container) initBlobStore(ctx context.Context) error {
	switch c.Config.Blob.Driver {
	case "minio":
		s, err := storage.NewMinIOStorage(ctx, c.Config.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init minio storage: %w", err)
		}
		c.Blobs = s
	default:
		s, err := storage.NewLocalStorage(c.Config.Blob.LocalDir)
		if err != nil {
			return fmt.Errorf("failed to init local storage: %w", err)
		}
		c.Blobs = s
	}
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	ttl := c.Config.Redis.TTL

	c.AccountRepo = accountRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.PostRepo = postRepo.NewPostgresRepository(pool, c.Cache, ttl)
	c.ImageRepo = imageRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.JWTManager)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.PostService = postService.NewPostService(c.PostRepo, c.CategoryService)
	c.ImageService = imageService.NewImageService(c.ImageRepo, c.Blobs)
}

func (c *Container) initHandlers() {
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService, c.Config.App.BasePath)
}

// LocalImageDir trả thư mục cần serve tại /Images, rỗng khi không dùng local driver
func (c *Container) LocalImageDir() string {
	if s, ok := c.Blobs.(*storage.LocalStorage); ok {
		return s.Dir()
	}
	return ""
}

// Cleanup đóng connections khi shutdown
func (c *Container) Cleanup() {
	logger.Info("Cleaning up container resources", nil)

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
}

package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"mader-backend/internal/config"
	"mader-backend/internal/infrastructure/cache"
	"mader-backend/internal/infrastructure/database"
	"mader-backend/pkg/jwt"

	authorHandler "mader-backend/internal/domains/author/handler"
	authorRepo "mader-backend/internal/domains/author/repository"
	authorService "mader-backend/internal/domains/author/service"

	bookHandler "mader-backend/internal/domains/book/handler"
	bookRepo "mader-backend/internal/domains/book/repository"
	bookService "mader-backend/internal/domains/book/service"

	userHandler "mader-backend/internal/domains/user/handler"
	userRepo "mader-backend/internal/domains/user/repository"
	userService "mader-backend/internal/domains/user/service"
)

// Container holds every long-lived dependency of the API.
// Built once at startup, read-only afterwards.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Redis      *cache.RedisClient // nil when REDIS_ADDR is empty
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo   userRepo.RepositoryInterface
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService   userService.ServiceInterface
	AuthorService authorService.ServiceInterface
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler   *userHandler.UserHandler
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("initializing container")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: INITIALIZE REDIS (optional)
	// ========================================
	c.initRedis(ctx)

	// ========================================
	// STEP 4: TOKENS
	// ========================================
	c.JWTManager, err = jwt.NewManager(jwt.Config{
		Secret:    cfg.JWT.Secret,
		Algorithm: cfg.JWT.Algorithm,
		TTL:       cfg.JWT.TTL(),
	})
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to create jwt manager: %w", err)
	}

	// ========================================
	// STEP 5: DOMAINS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("env", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.App.AutoMigrate {
		if err := database.Migrate(ctx, db.Pool); err != nil {
			db.Close()
			return err
		}
		log.Info().Msg("database migrations applied")
	}

	c.DB = db
	return nil
}

// initRedis connects the login throttle store. Failure is not fatal:
// the API runs without throttling.
func (c *Container) initRedis(ctx context.Context) {
	cfg := c.Config.Redis
	if cfg.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, login throttling disabled")
		return
	}

	client := cache.NewRedisClient(cache.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		_ = client.Close()
		return
	}

	c.Redis = client
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	var opts []userService.Option
	if c.Redis != nil {
		tracker := cache.NewLoginAttemptTracker(c.Redis.Client, c.Config.Login.MaxAttempts, c.Config.Login.Window)
		opts = append(opts, userService.WithAttemptTracker(tracker))
	}

	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, opts...)
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases connections, called on shutdown
func (c *Container) Cleanup() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}

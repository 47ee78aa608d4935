package container

import (
	"context"
	"fmt"

	"panduit/scraper/internal/client"
	"panduit/scraper/internal/config"
	"panduit/scraper/internal/queue"
	"panduit/scraper/internal/repository"
	"panduit/scraper/internal/service"
	"panduit/scraper/internal/state"
	"panduit/scraper/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config       *config.Config
	Client       client.PanduitClient
	Repository   repository.ProductRepository
	Queue        queue.Queue
	StateManager state.StateManager
	Images       *storage.ImageStore

	Service *service.Service

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized. The
// Postgres and Redis sinks are only connected when enabled in cfg.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config:       cfg,
		Repository:   repository.NewNoopRepository(),
		Queue:        queue.NewNoopQueue(),
		StateManager: state.NewNoopStateManager(),
		Images:       storage.NewImageStore(cfg.Scraper.ImageDir),
	}

	if cfg.Database.Enabled {
		db, err := pgxpool.New(ctx,
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				cfg.Database.Host,
				cfg.Database.Port,
				cfg.Database.User,
				cfg.Database.Password,
				cfg.Database.Name,
			))
		if err != nil {
			return nil, fmt.Errorf("failed to create database pool: %w", err)
		}
		container.db = db

		productRepo := repository.NewProductRepository(db)
		if err := productRepo.EnsureSchema(ctx); err != nil {
			container.Close()
			return nil, err
		}
		container.Repository = productRepo

		log.Info("✅ Connected to Postgres successfully")
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		container.redis = rdb

		// Test connection
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			container.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		container.Queue = queue.NewRedisQueue(rdb, cfg.Redis)
		container.StateManager = state.NewRedisStateManager(rdb, cfg.Redis.StatePrefix)

		log.Info("✅ Connected to Redis successfully")
	}

	container.Client = client.NewPanduitClient(cfg.Scraper)

	container.Service = service.NewService(
		container.Repository,
		container.Client,
		container.Queue,
		container.StateManager,
		container.Images,
		cfg.Scraper,
	)

	return container, nil
}

// Run executes one batch run over the configured URL list
func (c *Container) Run(ctx context.Context) error {
	return c.Service.Run(ctx)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	var firstErr error
	if c.Client != nil {
		if err := c.Client.Close(); err != nil {
			firstErr = err
		}
	}
	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	log.Debug("Container shut down successfully")
	return firstErr
}

package container

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	adminHandler "portfolio-backend/internal/domains/admin/handler"
	"portfolio-backend/internal/domains/message"
	messageHandler "portfolio-backend/internal/domains/message/handler"
	messageRepo "portfolio-backend/internal/domains/message/repository"
	messageService "portfolio-backend/internal/domains/message/service"
	"portfolio-backend/internal/domains/siteconfig"
	configHandler "portfolio-backend/internal/domains/siteconfig/handler"
	configRepo "portfolio-backend/internal/domains/siteconfig/repository"
	configService "portfolio-backend/internal/domains/siteconfig/service"
	"portfolio-backend/internal/domains/upload"
	uploadHandler "portfolio-backend/internal/domains/upload/handler"
	uploadService "portfolio-backend/internal/domains/upload/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config     *config.Config
	Store      storage.ObjectStore
	Cache      cache.Cache
	JWTManager *jwt.Manager

	ConfigService  siteconfig.Service
	MessageService message.Service
	UploadService  upload.Service

	ConfigHandler  *configHandler.ConfigHandler
	ResumeHandler  *configHandler.ResumeHandler
	MessageHandler *messageHandler.MessageHandler
	UploadHandler  *uploadHandler.UploadHandler
	AdminHandler   *adminHandler.AdminHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	c := &Container{Config: cfg}
	timeout := time.Duration(cfg.Blob.TimeoutSeconds) * time.Second

	// ========================================
	// INFRASTRUCTURE
	// ========================================
	store, err := storage.NewMinIOStorage(cfg.Blob)
	if err != nil {
		return nil, fmt.Errorf("init blob storage: %w", err)
	}
	c.Store = store

	// Redis when configured and reachable, in-memory otherwise. The
	// cache is only the last-known-good layer of the config resolver,
	// so losing it costs freshness during outages, not correctness.
	c.Cache = cache.NewMemoryCache()
	if cfg.Redis.Enabled {
		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			logger.Warn("redis unreachable, using in-memory cache", err)
		} else {
			c.Cache = redisCache
			c.redis = redisCache
		}
	}

	c.JWTManager = jwt.NewManager(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)

	// ========================================
	// DOMAIN WIRING
	// ========================================
	c.ConfigService = configService.NewConfigService(
		configRepo.NewBlobRepository(c.Store),
		c.Cache,
		timeout,
	)

	mirrorPath := filepath.Join("data", "messages-mirror.json")
	c.MessageService = messageService.NewMessageService(
		messageRepo.NewBlobRepository(c.Store),
		messageRepo.NewLocalMirror(mirrorPath),
		timeout,
	)

	c.UploadService = uploadService.NewUploadService(c.Store, timeout)

	// ========================================
	// HANDLERS
	// ========================================
	c.ConfigHandler = configHandler.NewConfigHandler(c.ConfigService)
	c.ResumeHandler = configHandler.NewResumeHandler(c.ConfigService, c.UploadService, cfg.Upload.DefaultPrefix)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, cfg.Upload)
	c.AdminHandler = adminHandler.NewAdminHandler(cfg.Admin, c.JWTManager)

	return c, nil
}

// AdminGateEnabled reports whether the placeholder admin gate has a
// secret to check against.
func (c *Container) AdminGateEnabled() bool {
	return c.Config.Admin.PasswordHash != "" || c.Config.Admin.Password != ""
}

// Cleanup releases long-lived resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Warn("redis close failed", err)
		}
	}
}

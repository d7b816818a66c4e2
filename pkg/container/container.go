package container

import (
	"context"
	"fmt"

	"vitrine-backend/internal/config"
	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/infrastructure/cache"
	"vitrine-backend/internal/infrastructure/database"
	"vitrine-backend/internal/infrastructure/email"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/pkg/jwt"
	"vitrine-backend/pkg/logger"

	"vitrine-backend/internal/domains/admin"
	adminHandler "vitrine-backend/internal/domains/admin/handler"
	adminRepo "vitrine-backend/internal/domains/admin/repository"
	adminService "vitrine-backend/internal/domains/admin/service"

	"vitrine-backend/internal/domains/brand"
	brandHandler "vitrine-backend/internal/domains/brand/handler"
	brandRepo "vitrine-backend/internal/domains/brand/repository"
	brandService "vitrine-backend/internal/domains/brand/service"

	"vitrine-backend/internal/domains/catalog"
	catalogHandler "vitrine-backend/internal/domains/catalog/handler"
	catalogRepo "vitrine-backend/internal/domains/catalog/repository"
	catalogService "vitrine-backend/internal/domains/catalog/service"

	"vitrine-backend/internal/domains/lead"
	leadHandler "vitrine-backend/internal/domains/lead/handler"
	leadService "vitrine-backend/internal/domains/lead/service"

	"vitrine-backend/internal/domains/realization"
	realizationHandler "vitrine-backend/internal/domains/realization/handler"
	realizationRepo "vitrine-backend/internal/domains/realization/repository"
	realizationService "vitrine-backend/internal/domains/realization/service"

	"vitrine-backend/internal/domains/site"
	siteHandler "vitrine-backend/internal/domains/site/handler"
	siteRepo "vitrine-backend/internal/domains/site/repository"
	siteService "vitrine-backend/internal/domains/site/service"

	"vitrine-backend/internal/domains/testimonial"
	testimonialHandler "vitrine-backend/internal/domains/testimonial/handler"
	testimonialRepo "vitrine-backend/internal/domains/testimonial/repository"
	testimonialService "vitrine-backend/internal/domains/testimonial/service"

	"vitrine-backend/internal/domains/upload"
	uploadHandler "vitrine-backend/internal/domains/upload/handler"
	uploadService "vitrine-backend/internal/domains/upload/service"
)

// Container holds the full dependency graph: config, infrastructure,
// repositories, services and handlers, in initialization order.
type Container struct {
	Config *config.Config

	DB          *database.PostgresDB  // nil when serving from local files
	FileStore   *filestore.Store
	Redis       *cache.RedisClient    // nil when REDIS_HOST is empty
	ObjectStore *storage.MinIOStorage // nil when minio is not configured
	Mailer      email.EmailService
	JWTManager  *jwt.Manager

	SiteRepo        site.Repository
	CatalogRepo     catalog.Repository
	RealizationRepo realization.Repository
	TestimonialRepo testimonial.Repository
	BrandRepo       brand.Repository
	AdminRepo       admin.Repository

	SiteService        site.Service
	CatalogService     catalog.CatalogService
	RealizationService realization.Service
	TestimonialService testimonial.Service
	BrandService       brand.Service
	AuthService        admin.AuthService
	LeadService        lead.LeadService
	UploadService      upload.UploadService

	SiteHandler        *siteHandler.SiteHandler
	CatalogHandler     *catalogHandler.CatalogHandler
	RealizationHandler *realizationHandler.RealizationHandler
	TestimonialHandler *testimonialHandler.TestimonialHandler
	BrandHandler       *brandHandler.BrandHandler
	AuthHandler        *adminHandler.AuthHandler
	LeadHandler        *leadHandler.LeadHandler
	UploadHandler      *uploadHandler.UploadHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	cfg := c.Config

	c.FileStore = filestore.New(cfg.Content.Dir)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.Mailer = email.NewSMTPEmailService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From)

	// The content backend is chosen once at startup: remote Postgres when
	// fully configured, local JSON files otherwise.
	if cfg.Database.RemoteConfigured() {
		db := database.NewPostgresDB(cfg.Database)
		if err := db.Connect(context.Background()); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		c.DB = db
		logger.Info("content backend: remote postgres", nil)
	} else {
		logger.Info("content backend: local files", map[string]interface{}{"dir": cfg.Content.Dir})
	}

	if cfg.Redis.Host != "" {
		rc := cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis unavailable, lead rate limiting disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.Redis = rc
		}
	}

	if cfg.MinIO.Configured() {
		store, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			if cfg.App.Environment == "production" {
				return fmt.Errorf("failed to init object storage: %w", err)
			}
			logger.Warn("object storage unavailable, uploads fall back to local disk", map[string]interface{}{"error": err.Error()})
		} else {
			c.ObjectStore = store
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		pool := c.DB.Pool
		c.SiteRepo = siteRepo.NewPostgresRepository(pool)
		c.CatalogRepo = catalogRepo.NewPostgresRepository(pool)
		c.RealizationRepo = realizationRepo.NewPostgresRepository(pool)
		c.TestimonialRepo = testimonialRepo.NewPostgresRepository(pool)
		c.BrandRepo = brandRepo.NewPostgresRepository(pool)
		c.AdminRepo = adminRepo.NewPostgresRepository(pool)
		return
	}

	c.SiteRepo = siteRepo.NewFileRepository(c.FileStore)
	c.CatalogRepo = catalogRepo.NewFileRepository(c.FileStore)
	c.RealizationRepo = realizationRepo.NewFileRepository(c.FileStore)
	c.TestimonialRepo = testimonialRepo.NewFileRepository(c.FileStore)
	c.BrandRepo = brandRepo.NewFileRepository(c.FileStore)
	c.AdminRepo = adminRepo.NewFileRepository(c.FileStore)
}

func (c *Container) initServices() {
	cfg := c.Config

	c.SiteService = siteService.NewSiteService(c.SiteRepo)
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)
	c.RealizationService = realizationService.NewRealizationService(c.RealizationRepo)
	c.TestimonialService = testimonialService.NewTestimonialService(c.TestimonialRepo)
	c.BrandService = brandService.NewBrandService(c.BrandRepo)
	c.AuthService = adminService.NewAuthService(c.AdminRepo, c.JWTManager)
	c.LeadService = leadService.NewLeadService(c.Mailer, c.Redis, cfg.SMTP.OperatorEmail, cfg.Leads.RateLimitPerHour)
	c.UploadService = uploadService.NewUploadService(c.ObjectStore, storage.NewImageProcessor(), cfg.App.Environment, cfg.Content.Dir)
}

func (c *Container) initHandlers() {
	secureCookie := c.Config.App.Environment == "production"

	c.SiteHandler = siteHandler.NewSiteHandler(c.SiteService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
	c.RealizationHandler = realizationHandler.NewRealizationHandler(c.RealizationService)
	c.TestimonialHandler = testimonialHandler.NewTestimonialHandler(c.TestimonialService)
	c.BrandHandler = brandHandler.NewBrandHandler(c.BrandService)
	c.AuthHandler = adminHandler.NewAuthHandler(c.AuthService, secureCookie)
	c.LeadHandler = leadHandler.NewLeadHandler(c.LeadService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}

package container

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/internal/config"
	infraCache "portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/cache"
	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"

	"portfolio-backend/internal/domains/achievement"
	achievementHandler "portfolio-backend/internal/domains/achievement/handler"
	achievementRepo "portfolio-backend/internal/domains/achievement/repository"
	achievementService "portfolio-backend/internal/domains/achievement/service"
	"portfolio-backend/internal/domains/blog"
	blogHandler "portfolio-backend/internal/domains/blog/handler"
	blogRepo "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/domains/certification"
	certificationHandler "portfolio-backend/internal/domains/certification/handler"
	certificationRepo "portfolio-backend/internal/domains/certification/repository"
	certificationService "portfolio-backend/internal/domains/certification/service"
	"portfolio-backend/internal/domains/contact"
	contactHandler "portfolio-backend/internal/domains/contact/handler"
	contactRepo "portfolio-backend/internal/domains/contact/repository"
	contactService "portfolio-backend/internal/domains/contact/service"
	"portfolio-backend/internal/domains/portfolio"
	portfolioHandler "portfolio-backend/internal/domains/portfolio/handler"
	portfolioService "portfolio-backend/internal/domains/portfolio/service"
	"portfolio-backend/internal/domains/project"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	projectRepo "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/domains/skill"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	skillRepo "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"
	"portfolio-backend/internal/domains/user"
	userHandler "portfolio-backend/internal/domains/user/handler"
	userRepo "portfolio-backend/internal/domains/user/repository"
	userService "portfolio-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Mailer     email.Service

	BlogRepo          blog.Repository
	ProjectRepo       project.Repository
	SkillRepo         skill.Repository
	CertificationRepo certification.Repository
	AchievementRepo   achievement.Repository
	ContactRepo       contact.Repository
	UserRepo          user.Repository

	BlogService          blog.Service
	ProjectService       project.Service
	SkillService         skill.Service
	CertificationService certification.Service
	AchievementService   achievement.Service
	ContactService       contact.Service
	UserService          user.Service
	PortfolioService     portfolio.Service

	BlogHandler          *blogHandler.BlogHandler
	ProjectHandler       *projectHandler.ProjectHandler
	SkillHandler         *skillHandler.SkillHandler
	CertificationHandler *certificationHandler.CertificationHandler
	AchievementHandler   *achievementHandler.AchievementHandler
	ContactHandler       *contactHandler.ContactHandler
	UserHandler          *userHandler.UserHandler
	PortfolioHandler     *portfolioHandler.PortfolioHandler
}

// NewContainer builds the whole graph in dependency order: config, then
// infrastructure, then repositories, services and handlers. A database
// failure aborts startup; a Redis failure does not (every cache user
// degrades to the database).
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, caching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.Mailer = email.NewSMTPService(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.From, cfg.SMTP.AdminEmail)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BlogRepo = blogRepo.NewPostgresRepository(pool, c.Cache)
	c.ProjectRepo = projectRepo.NewPostgresRepository(pool, c.Cache)
	c.SkillRepo = skillRepo.NewPostgresRepository(pool, c.Cache)
	c.CertificationRepo = certificationRepo.NewPostgresRepository(pool)
	c.AchievementRepo = achievementRepo.NewPostgresRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.BlogService = blogService.NewBlogService(c.BlogRepo)
	c.ProjectService = projectService.NewProjectService(c.ProjectRepo)
	c.SkillService = skillService.NewSkillService(c.SkillRepo)
	c.CertificationService = certificationService.NewCertificationService(c.CertificationRepo)
	c.AchievementService = achievementService.NewAchievementService(c.AchievementRepo)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Mailer)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	c.PortfolioService = portfolioService.NewPortfolioService(
		c.ProjectService,
		c.SkillService,
		c.CertificationService,
		c.AchievementService,
		c.BlogService,
	)
}

func (c *Container) initHandlers() {
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ProjectHandler = projectHandler.NewProjectHandler(c.ProjectService)
	c.SkillHandler = skillHandler.NewSkillHandler(c.SkillService)
	c.CertificationHandler = certificationHandler.NewCertificationHandler(c.CertificationService)
	c.AchievementHandler = achievementHandler.NewAchievementHandler(c.AchievementService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PortfolioHandler = portfolioHandler.NewPortfolioHandler(c.PortfolioService)
}

// Cleanup releases infrastructure connections in reverse init order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Warn("failed to close redis", map[string]interface{}{"error": err.Error()})
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleaned up", nil)
}

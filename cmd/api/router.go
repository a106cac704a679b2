package main

import (
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
)

// setupRouter wires the middleware chain and all route groups.
//
// Public reads carry OptionalAuth so an admin token lifts the published-only
// filter; mutations require an authenticated admin. Only POST /contact is
// rate-limited.
func (s *Server) setupRouter() *gin.Engine {
	c := s.container

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(c.Config.CORS.AllowedOrigins))
	router.Use(middleware.ClientIPMiddleware())

	router.GET("/health", s.healthHandler())

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	users := api.Group("/users", middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Me)
		users.PUT("/me", c.UserHandler.UpdateMe)
	}

	admin := middleware.AuthMiddleware(c.JWTManager)
	adminOnly := middleware.AdminMiddleware()

	blog := api.Group("/blog")
	{
		blog.GET("", middleware.OptionalAuth(c.JWTManager), c.BlogHandler.List)
		blog.GET("/:slugOrId", middleware.OptionalAuth(c.JWTManager), c.BlogHandler.Get)
		blog.POST("", admin, adminOnly, c.BlogHandler.Create)
		blog.PUT("/:slugOrId", admin, adminOnly, c.BlogHandler.Update)
		blog.DELETE("/:slugOrId", admin, adminOnly, c.BlogHandler.Delete)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", middleware.OptionalAuth(c.JWTManager), c.ProjectHandler.List)
		projects.GET("/:slugOrId", middleware.OptionalAuth(c.JWTManager), c.ProjectHandler.Get)
		projects.POST("", admin, adminOnly, c.ProjectHandler.Create)
		projects.PUT("/:slugOrId", admin, adminOnly, c.ProjectHandler.Update)
		projects.DELETE("/:slugOrId", admin, adminOnly, c.ProjectHandler.Delete)
	}

	skills := api.Group("/skills")
	{
		skills.GET("", c.SkillHandler.List)
		skills.GET("/:id", c.SkillHandler.Get)
		skills.POST("", admin, adminOnly, c.SkillHandler.Create)
		skills.PUT("/:id", admin, adminOnly, c.SkillHandler.Update)
		skills.DELETE("/:id", admin, adminOnly, c.SkillHandler.Delete)
	}

	certifications := api.Group("/certifications")
	{
		certifications.GET("", c.CertificationHandler.List)
		certifications.GET("/:id", c.CertificationHandler.Get)
		certifications.POST("", admin, adminOnly, c.CertificationHandler.Create)
		certifications.PUT("/:id", admin, adminOnly, c.CertificationHandler.Update)
		certifications.DELETE("/:id", admin, adminOnly, c.CertificationHandler.Delete)
	}

	achievements := api.Group("/achievements")
	{
		achievements.GET("", c.AchievementHandler.List)
		achievements.GET("/:id", c.AchievementHandler.Get)
		achievements.POST("", admin, adminOnly, c.AchievementHandler.Create)
		achievements.PUT("/:id", admin, adminOnly, c.AchievementHandler.Update)
		achievements.DELETE("/:id", admin, adminOnly, c.AchievementHandler.Delete)
	}

	contact := api.Group("/contact")
	{
		contact.POST("",
			middleware.RateLimit(c.Cache, "contact", c.Config.RateLimit.ContactMax, c.Config.RateLimit.ContactWindow),
			c.ContactHandler.Submit,
		)
		contact.GET("", admin, adminOnly, c.ContactHandler.List)
		contact.PUT("/:id/read", admin, adminOnly, c.ContactHandler.ToggleRead)
		contact.DELETE("/:id", admin, adminOnly, c.ContactHandler.Delete)
	}

	api.GET("/portfolio", c.PortfolioHandler.Get)

	return router
}

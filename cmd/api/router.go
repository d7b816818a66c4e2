package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/shared/middleware"
	"vitrine-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Development uploads land on local disk; serve them back directly.
	if c.ObjectStore == nil && c.Config.App.Environment != "production" {
		router.Static("/uploads", filepath.Join(c.Config.Content.Dir, "uploads"))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupContentRoutes(v1, c)
		setupLeadRoutes(v1, c)
		setupUploadRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.AuthMiddleware(c.JWTManager)
	requireAdmin := middleware.AdminMiddleware()

	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", requireAuth, c.AuthHandler.Logout)
		auth.GET("/me", requireAuth, c.AuthHandler.Me)
	}

	users := v1.Group("/admin/users", requireAuth, requireAdmin)
	{
		users.GET("", c.AuthHandler.ListUsers)
		users.POST("", c.AuthHandler.CreateUser)
		users.DELETE("/:id", c.AuthHandler.DeleteUser)
	}
}

// Content reads are public, writes require an authenticated admin.
func setupContentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.AuthMiddleware(c.JWTManager)
	requireAdmin := middleware.AdminMiddleware()

	content := v1.Group("/content")
	{
		content.GET("/site-config", c.SiteHandler.GetSiteConfig)
		content.GET("/homepage", c.SiteHandler.GetHomepage)
		content.GET("/media", c.SiteHandler.GetMedia)
		content.GET("/categories", c.CatalogHandler.GetCategories)
		content.GET("/realizations", c.RealizationHandler.GetAll)
		content.GET("/testimonials", c.TestimonialHandler.GetAll)
		content.GET("/brands", c.BrandHandler.GetAll)

		admin := content.Group("", requireAuth, requireAdmin)
		{
			admin.PUT("/site-config", c.SiteHandler.UpdateSiteConfig)
			admin.PUT("/homepage", c.SiteHandler.UpdateHomepage)
			admin.PUT("/media", c.SiteHandler.UpdateMedia)

			admin.POST("/categories", c.CatalogHandler.CreateCategory)
			admin.PUT("/categories/:id", c.CatalogHandler.UpdateCategory)
			admin.DELETE("/categories/:id", c.CatalogHandler.DeleteCategory)
			admin.POST("/categories/:id/services", c.CatalogHandler.CreateService)
			admin.PUT("/services/:id", c.CatalogHandler.UpdateService)
			admin.DELETE("/services/:id", c.CatalogHandler.DeleteService)

			admin.POST("/realizations", c.RealizationHandler.Create)
			admin.PUT("/realizations/:id", c.RealizationHandler.Update)
			admin.DELETE("/realizations/:id", c.RealizationHandler.Delete)

			admin.POST("/testimonials", c.TestimonialHandler.Create)
			admin.PUT("/testimonials/:id", c.TestimonialHandler.Update)
			admin.DELETE("/testimonials/:id", c.TestimonialHandler.Delete)

			admin.POST("/brands", c.BrandHandler.Create)
			admin.PUT("/brands/:id", c.BrandHandler.Update)
			admin.DELETE("/brands/:id", c.BrandHandler.Delete)
		}
	}
}

func setupLeadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	leads := v1.Group("/leads")
	{
		leads.POST("/validate-step", c.LeadHandler.ValidateStep)
		leads.POST("", c.LeadHandler.Submit)
	}
}

func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.AuthMiddleware(c.JWTManager)
	requireAdmin := middleware.AdminMiddleware()

	uploads := v1.Group("/uploads", requireAuth, requireAdmin)
	{
		uploads.POST("", c.UploadHandler.Upload)
		uploads.DELETE("/*key", c.UploadHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		health := gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"backend":     "files",
		}

		if c.DB != nil {
			health["backend"] = "postgres"
			checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
			defer cancel()
			if err := c.DB.HealthCheck(checkCtx); err != nil {
				health["status"] = "degraded"
				health["database"] = err.Error()
				ctx.JSON(http.StatusServiceUnavailable, health)
				return
			}
		}

		ctx.JSON(http.StatusOK, health)
	}
}

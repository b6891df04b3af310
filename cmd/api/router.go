package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/infrastructure/storage"
	"blog-backend/internal/shared/access"
	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 8 << 20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Static files của local blob driver
	if dir := c.LocalImageDir(); dir != "" {
		router.Static(storage.PublicPrefix, dir)
	}

	// guard build middleware theo access policy của operation
	guard := func(op access.Operation) gin.HandlerFunc {
		return middleware.Guard(c.JWTManager, c.Config.Access.Policy.Rule(op))
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAccountRoutes(api, c)
		setupPostRoutes(api, c, guard)
		setupCategoryRoutes(api, c, guard)
		setupImageRoutes(api, c, guard)
	}

	return router
}

type guardFunc func(op access.Operation) gin.HandlerFunc

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(api *gin.RouterGroup, c *container.Container) {
	acc := api.Group("/account")
	{
		acc.POST("/login", c.AccountHandler.Login)
		acc.POST("/register", c.AccountHandler.Register)
	}
}

// ========================================
// BLOG POST ROUTES
// ========================================
func setupPostRoutes(api *gin.RouterGroup, c *container.Container, guard guardFunc) {
	posts := api.Group("/blogposts")
	{
		posts.POST("", guard(access.OpPostCreate), c.PostHandler.Create)
		posts.GET("", guard(access.OpPostList), c.PostHandler.List)
		posts.GET("/:idOrSlug", guard(access.OpPostGet), c.PostHandler.Get)
		posts.PUT("/:id", guard(access.OpPostUpdate), c.PostHandler.Update)
		posts.DELETE("/:id", guard(access.OpPostDelete), c.PostHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container, guard guardFunc) {
	categories := api.Group("/categories")
	{
		categories.POST("", guard(access.OpCategoryCreate), c.CategoryHandler.Create)
		categories.GET("", guard(access.OpCategoryList), c.CategoryHandler.List)
		categories.GET("/count", guard(access.OpCategoryCount), c.CategoryHandler.Count)
		categories.GET("/:id", guard(access.OpCategoryGet), c.CategoryHandler.GetByID)
		categories.PUT("/:id", guard(access.OpCategoryUpdate), c.CategoryHandler.Update)
		categories.DELETE("/:id", guard(access.OpCategoryDelete), c.CategoryHandler.Delete)
	}
}

// ========================================
// IMAGE ROUTES
// ========================================
func setupImageRoutes(api *gin.RouterGroup, c *container.Container, guard guardFunc) {
	images := api.Group("/images")
	{
		images.POST("", guard(access.OpImageUpload), c.ImageHandler.Upload)
		images.GET("", guard(access.OpImageList), c.ImageHandler.List)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if err := appCtx.DB.Ping(ctx); err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
			health["status"] = "degraded"
		} else if stats, err := appCtx.DB.Stats(); err == nil {
			health["pool"] = stats
		}

		// Check cache
		cacheStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

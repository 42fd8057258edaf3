package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mylibrary-backend/internal/policy"
	"mylibrary-backend/internal/shared/middleware"
	"mylibrary-backend/internal/shared/response"
	"mylibrary-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupLanguageRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupFollowRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}

	users := v1.Group("/users")
	users.Use(middleware.Auth(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Profile)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.Auth(c.JWTManager))
	{
		authors.GET("", middleware.Authorize(policy.ResourceAuthor, policy.ActionList), c.AuthorHandler.List)
		authors.GET("/:id", middleware.Authorize(policy.ResourceAuthor, policy.ActionGet), c.AuthorHandler.GetByID)
		authors.POST("", middleware.Authorize(policy.ResourceAuthor, policy.ActionCreate), c.AuthorHandler.Create)
		authors.PUT("/:id", middleware.Authorize(policy.ResourceAuthor, policy.ActionUpdate), c.AuthorHandler.Update)
		authors.PATCH("/:id", middleware.Authorize(policy.ResourceAuthor, policy.ActionPartialUpdate), c.AuthorHandler.Patch)
		authors.DELETE("/:id", middleware.Authorize(policy.ResourceAuthor, policy.ActionDelete), c.AuthorHandler.Delete)
	}
}

func setupLanguageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	languages := v1.Group("/languages")
	languages.Use(middleware.Auth(c.JWTManager))
	{
		languages.GET("", middleware.Authorize(policy.ResourceLanguage, policy.ActionList), c.LanguageHandler.List)
		languages.GET("/:id", middleware.Authorize(policy.ResourceLanguage, policy.ActionGet), c.LanguageHandler.GetByID)
		languages.POST("", middleware.Authorize(policy.ResourceLanguage, policy.ActionCreate), c.LanguageHandler.Create)
		languages.PUT("/:id", middleware.Authorize(policy.ResourceLanguage, policy.ActionUpdate), c.LanguageHandler.Update)
		languages.PATCH("/:id", middleware.Authorize(policy.ResourceLanguage, policy.ActionPartialUpdate), c.LanguageHandler.Patch)
		languages.DELETE("/:id", middleware.Authorize(policy.ResourceLanguage, policy.ActionDelete), c.LanguageHandler.Delete)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.Auth(c.JWTManager))
	{
		books.GET("", middleware.Authorize(policy.ResourceBook, policy.ActionList), c.BookHandler.List)
		books.GET("/:id", middleware.Authorize(policy.ResourceBook, policy.ActionGet), c.BookHandler.GetByID)
		books.POST("", middleware.Authorize(policy.ResourceBook, policy.ActionCreate), c.BookHandler.Create)
		books.PUT("/:id", middleware.Authorize(policy.ResourceBook, policy.ActionUpdate), c.BookHandler.Update)
		books.PATCH("/:id", middleware.Authorize(policy.ResourceBook, policy.ActionPartialUpdate), c.BookHandler.Patch)
		books.DELETE("/:id", middleware.Authorize(policy.ResourceBook, policy.ActionDelete), c.BookHandler.Delete)
	}
}

func setupFollowRoutes(v1 *gin.RouterGroup, c *container.Container) {
	follows := v1.Group("/follows")
	follows.Use(middleware.Auth(c.JWTManager))
	{
		follows.GET("", middleware.Authorize(policy.ResourceFollow, policy.ActionList), c.FollowHandler.List)
		follows.GET("/:id", middleware.Authorize(policy.ResourceFollow, policy.ActionGet), c.FollowHandler.GetByID)
		follows.POST("", middleware.Authorize(policy.ResourceFollow, policy.ActionCreate), c.FollowHandler.Create)
		follows.DELETE("/:id", middleware.Authorize(policy.ResourceFollow, policy.ActionDelete), c.FollowHandler.Delete)

		// Follows are immutable; the authorize guard answers 405 before
		// the handler runs.
		follows.PUT("/:id", middleware.Authorize(policy.ResourceFollow, policy.ActionUpdate), c.FollowHandler.NotAllowed)
		follows.PATCH("/:id", middleware.Authorize(policy.ResourceFollow, policy.ActionPartialUpdate), c.FollowHandler.NotAllowed)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{"status": "ok"}
		code := http.StatusOK

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		}

		if code == http.StatusOK {
			response.Success(ctx, code, status)
			return
		}
		ctx.JSON(code, status)
	}
}

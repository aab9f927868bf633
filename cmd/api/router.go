package main

import (
	"github.com/gin-gonic/gin"

	"mader-backend/internal/shared/middleware"
	"mader-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Collections are served with and without the trailing slash
	router.RedirectTrailingSlash = false

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
	)

	router.GET("/health", healthHandler(c.DB, redisCheck(c)))

	auth := middleware.AuthMiddleware(c.UserService)

	setupAuthRoutes(router, c, auth)
	setupAccountRoutes(router, c, auth)
	setupAuthorRoutes(router, c, auth)
	setupBookRoutes(router, c, auth)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/token", c.UserHandler.Token)
		group.POST("/refresh-token", auth, c.UserHandler.RefreshToken)
	}
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	group := r.Group("/conta")
	{
		collection(group, "POST", c.UserHandler.Create)
		group.PUT("/:id", auth, c.UserHandler.Update)
		group.DELETE("/:id", auth, c.UserHandler.Delete)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	group := r.Group("/romancista")
	{
		collection(group, "GET", c.AuthorHandler.List)
		collection(group, "POST", auth, c.AuthorHandler.Create)
		group.GET("/:id", c.AuthorHandler.GetByID)
		group.PATCH("/:id", auth, c.AuthorHandler.Update)
		group.DELETE("/:id", auth, c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r *gin.Engine, c *container.Container, auth gin.HandlerFunc) {
	group := r.Group("/livro")
	{
		collection(group, "GET", c.BookHandler.List)
		collection(group, "POST", auth, c.BookHandler.Create)
		group.GET("/:id", c.BookHandler.GetByID)
		group.PATCH("/:id", auth, c.BookHandler.Update)
		group.DELETE("/:id", auth, c.BookHandler.Delete)
	}
}

// collection registers handlers on both "/group" and "/group/"
func collection(group *gin.RouterGroup, method string, handlers ...gin.HandlerFunc) {
	group.Handle(method, "", handlers...)
	group.Handle(method, "/", handlers...)
}

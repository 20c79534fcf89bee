// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"scribe/config"
	"scribe/internal/delivery/http/middleware"
	"scribe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AccountHandler *handler.AccountHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	accountHandler *handler.AccountHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		accountHandler: params.AccountHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account routes
	e.POST("/signup", r.accountHandler.SignUp)
	e.POST("/login", r.accountHandler.Login)

	// The size ceiling is checked before the credential, so an
	// oversized body fails with 413 even when the token is bad.
	e.POST("/addPost", r.postHandler.AddPost,
		echomiddleware.BodyLimit(r.cfg.HTTP.BodyLimit),
		r.authMiddleware.Authenticate)

	// Remaining post routes require a valid bearer token
	authenticated := e.Group("", r.authMiddleware.Authenticate)
	{
		authenticated.GET("/getPosts", r.postHandler.ListPosts)
		authenticated.DELETE("/deletePost/:id", r.postHandler.DeletePost)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blog/internal/delivery/http/router/handler"
	"blog/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BlogHandler *handler.BlogHandler
	AuthHandler *handler.AuthHandler
	Metrics     *metrics.Prometheus
}

// router holds all the handlers that need to be registered.
type router struct {
	blogHandler *handler.BlogHandler
	authHandler *handler.AuthHandler
	metrics     *metrics.Prometheus
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		blogHandler: params.BlogHandler,
		authHandler: params.AuthHandler,
		metrics:     params.Metrics,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	// Blog
	e.GET("/", r.blogHandler.ListPosts)
	e.GET("/newpost", r.blogHandler.NewPostForm)
	e.POST("/newpost", r.blogHandler.CreatePost)
	e.GET("/post/:id", r.blogHandler.ShowPost)

	// Accounts and sessions
	e.GET("/signup", r.authHandler.SignUpForm)
	e.POST("/signup", r.authHandler.SignUp)
	e.GET("/login", r.authHandler.LoginForm)
	e.POST("/login", r.authHandler.Login)
	e.GET("/logout", r.authHandler.Logout)
	e.GET("/welcome", r.authHandler.Welcome)
}

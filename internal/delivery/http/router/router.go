// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"meetfind/internal/delivery/http/middleware"
	"meetfind/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	MeetHandler    *handler.MeetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	meetHandler    *handler.MeetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		meetHandler:    params.MeetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths mirror the legacy wire surface.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// Routes that require a valid token
	authed := e.Group("", r.authMiddleware.Authenticate)
	{
		authed.GET("/test_req", handler.TestRequest)
		authed.GET("/meets", r.meetHandler.ListMeets)
		authed.GET("/meet/:id", r.meetHandler.GetMeet)
		authed.GET("/meet/:id/participants", r.meetHandler.ListParticipants)
		authed.POST("/create_meet", r.meetHandler.CreateMeet)
		authed.POST("/add_participant", r.meetHandler.AddParticipant)
		authed.POST("/delete_participant", r.meetHandler.RemoveParticipant)
		authed.POST("/delete_meet/:id", r.meetHandler.DeleteMeet)
		authed.GET("/user_meets", r.meetHandler.ListUserMeets)
	}
}

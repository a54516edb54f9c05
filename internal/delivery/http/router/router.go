// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mapnmeet/internal/delivery/http/middleware"
	"mapnmeet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	ActivityHandler      *handler.ActivityHandler
	ParticipationHandler *handler.ParticipationHandler
	NotificationHandler  *handler.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	activityHandler      *handler.ActivityHandler
	participationHandler *handler.ParticipationHandler
	notificationHandler  *handler.NotificationHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		userHandler:          params.UserHandler,
		activityHandler:      params.ActivityHandler,
		participationHandler: params.ParticipationHandler,
		notificationHandler:  params.NotificationHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	authed := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleRedirect)
		authGroup.POST("/google", r.authHandler.GoogleCredential)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Activity directory. Reads are public, writes require a session. The
	// literal routes must be registered before /:activityId so echo does
	// not swallow them as path parameters.
	activityGroup := api.Group("/activities")
	{
		activityGroup.GET("", r.activityHandler.List)
		activityGroup.POST("", r.activityHandler.Create, authed)
		activityGroup.GET("/user/:userId", r.activityHandler.ListByCreator)
		activityGroup.GET("/rsvpd/:userId", r.activityHandler.ListByParticipant)
		activityGroup.GET("/:activityId", r.activityHandler.Get)
		activityGroup.GET("/:activityId/qrcode", r.activityHandler.QRCode)
		activityGroup.PUT("/:activityId", r.activityHandler.Update, authed)
		activityGroup.DELETE("/:activityId", r.activityHandler.Cancel, authed)
	}

	// Join/leave toggle endpoint
	api.POST("/addParticipant", r.participationHandler.AddParticipant, authed)

	// User profiles and the follow graph
	userGroup := api.Group("/users")
	{
		userGroup.PUT("/me", r.userHandler.UpdateProfile, authed)
		userGroup.GET("/:userId", r.userHandler.GetUser)
		userGroup.POST("/:userId/follow", r.userHandler.Follow, authed)
		userGroup.DELETE("/:userId/follow", r.userHandler.Unfollow, authed)
		userGroup.GET("/:userId/followers", r.userHandler.ListFollowers)
		userGroup.GET("/:userId/following", r.userHandler.ListFollowing)
	}

	// Notification inbox, always caller-scoped
	notificationGroup := api.Group("/notifications", authed)
	{
		notificationGroup.GET("", r.notificationHandler.List)
		notificationGroup.POST("/mass-delete", r.notificationHandler.MassDelete)
		notificationGroup.PATCH("/mark-all-read", r.notificationHandler.MarkAllRead)
		notificationGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.notificationHandler.Delete)
	}
}

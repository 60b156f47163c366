// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lapak/internal/delivery/http/middleware"
	"lapak/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	OnboardingHandler *handler.OnboardingHandler
	KnowledgeHandler  *handler.KnowledgeHandler
	ProfileHandler    *handler.ProfileHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	onboardingHandler *handler.OnboardingHandler
	knowledgeHandler  *handler.KnowledgeHandler
	profileHandler    *handler.ProfileHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		onboardingHandler: params.OnboardingHandler,
		knowledgeHandler:  params.KnowledgeHandler,
		profileHandler:    params.ProfileHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Onboarding wizard routes, all behind JWT authentication
	onboardingGroup := e.Group("/onboarding")
	onboardingGroup.Use(r.authMiddleware.Authenticate)
	{
		onboardingGroup.GET("/status", r.onboardingHandler.Status)
		onboardingGroup.POST("/navigate", r.onboardingHandler.Navigate)
		onboardingGroup.POST("/back", r.onboardingHandler.Back)
		onboardingGroup.POST("/steps/business-profile", r.onboardingHandler.CompleteBusinessProfile)
		onboardingGroup.POST("/steps/knowledge", r.onboardingHandler.CompleteKnowledgeStep)
		onboardingGroup.POST("/steps/features", r.onboardingHandler.CompleteFeatureSelection)
		onboardingGroup.POST("/steps/channel-connect", r.onboardingHandler.CompleteChannelConnect)
		onboardingGroup.GET("/pairing-code", r.onboardingHandler.PairingCode)
		onboardingGroup.GET("/features", r.onboardingHandler.FeatureOptions)
	}

	// Knowledge-base routes
	knowledgeGroup := e.Group("/knowledge")
	knowledgeGroup.Use(r.authMiddleware.Authenticate)
	{
		knowledgeGroup.GET("/entries", r.knowledgeHandler.List)
		knowledgeGroup.POST("/text", r.knowledgeHandler.SaveText)
		knowledgeGroup.POST("/url", r.knowledgeHandler.SaveURL)
		knowledgeGroup.POST("/documents", r.knowledgeHandler.UploadDocuments)
		knowledgeGroup.DELETE("/entries/:id", r.knowledgeHandler.Delete)
	}

	// Business profile routes
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.Get)
		profileGroup.PUT("", r.profileHandler.Update)
	}
}

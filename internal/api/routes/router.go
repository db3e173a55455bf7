package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/api/handlers"
	"github.com/yoga-studio/front/internal/api/middleware"
	"github.com/yoga-studio/front/internal/services"
	"github.com/yoga-studio/front/internal/views"
)

// NewRouter sets up every route of the front server.
func NewRouter(
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	meHandler *handlers.MeHandler,
	healthHandler *handlers.HealthHandler,
	eventsHandler *handlers.EventsHandler,
	renderer *handlers.Renderer,
	session *services.SessionService,
	templates *template.Template,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))
	r.SetHTMLTemplate(templates)

	r.GET("/health", healthHandler.Health)
	r.GET("/events/logged", eventsHandler.Logged)
	r.GET("/", authHandler.Home)

	// Login and register are only for anonymous visitors
	unauth := r.Group("/", middleware.UnauthGuard(session, views.RouteSessions))
	{
		unauth.GET("/login", authHandler.LoginPage)
		unauth.POST("/login", authHandler.Login)
		unauth.GET("/register", authHandler.RegisterPage)
		unauth.POST("/register", authHandler.Register)
	}

	auth := r.Group("/", middleware.AuthGuard(session, views.RouteLogin))
	{
		auth.POST("/logout", authHandler.Logout)

		auth.GET("/sessions", sessionHandler.List)
		auth.GET("/sessions/create", sessionHandler.CreatePage)
		auth.POST("/sessions/create", sessionHandler.Create)
		auth.GET("/sessions/update/:id", sessionHandler.UpdatePage)
		auth.POST("/sessions/update/:id", sessionHandler.Update)
		auth.GET("/sessions/detail/:id", sessionHandler.Detail)
		auth.POST("/sessions/detail/:id/participate", sessionHandler.Participate)
		auth.POST("/sessions/detail/:id/unparticipate", sessionHandler.UnParticipate)
		auth.POST("/sessions/detail/:id/delete", sessionHandler.Delete)
		auth.POST("/sessions/detail/:id/back", sessionHandler.Back)

		auth.GET("/me", meHandler.Show)
		auth.POST("/me/back", meHandler.Back)
		auth.POST("/me/delete", meHandler.Delete)
	}

	r.NoRoute(renderer.NotFound)
	return r
}

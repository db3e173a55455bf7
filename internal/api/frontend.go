// Package api is the browser-facing front server of the Yoga Studio app.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/api/handlers"
	"github.com/yoga-studio/front/internal/api/routes"
	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/config"
	"github.com/yoga-studio/front/internal/services"
	"github.com/yoga-studio/front/internal/views"
	"github.com/yoga-studio/front/internal/web"
)

// Frontend is one user's front-end: a single session state shared by every page.
type Frontend struct {
	Engine   *gin.Engine
	Session  *services.SessionService
	Gateways *clients.Gateways
}

func NewFrontend(cfg *config.Config, logger *zap.Logger) (*Frontend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	store, err := newFlashStore(cfg.Server.CookieSecret)
	if err != nil {
		return nil, err
	}

	session := services.NewSessionService(logger)
	base := clients.NewBaseClient(cfg.API.BaseURL, cfg.API.Timeout, session, logger)
	gateways := clients.NewGateways(base)

	deps := views.Deps{
		Sessions: gateways.Sessions,
		Teachers: gateways.Teachers,
		Users:    gateways.Users,
		Auth:     services.NewAuthService(gateways.Auth, session, logger),
		Session:  session,
		Logger:   logger,
	}

	renderer := handlers.NewRenderer(store, session, logger.Named("http"))
	engine := routes.NewRouter(
		handlers.NewAuthHandler(deps, renderer),
		handlers.NewSessionHandler(deps, renderer),
		handlers.NewMeHandler(deps, renderer),
		handlers.NewHealthHandler(session),
		handlers.NewEventsHandler(deps),
		renderer,
		session,
		templates,
		logger.Named("http"),
	)

	return &Frontend{Engine: engine, Session: session, Gateways: gateways}, nil
}

func newFlashStore(secret string) (*sessions.CookieStore, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("generate cookie secret")
		}
	}
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}

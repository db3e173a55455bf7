// Package stub is an in-memory implementation of the Yoga Studio REST API used
// for local development and end-to-end tests of the front server.
package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/api/middleware"
	"github.com/yoga-studio/front/internal/repositories"
)

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

// Server serves the API contract over in-memory repositories.
type Server struct {
	engine   *gin.Engine
	sessions repositories.SessionRepository
	teachers repositories.TeacherRepository
	users    repositories.UserRepository
	tokens   *TokenIssuer
	logger   *zap.Logger

	mu       sync.Mutex
	requests []string
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		sessions: repositories.NewMemorySessionRepository(),
		teachers: repositories.NewMemoryTeacherRepository(),
		users:    repositories.NewMemoryUserRepository(),
		tokens:   NewTokenIssuer(opts.JWTSecret, opts.TokenTTL),
		logger:   logger.Named("stub"),
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.logger), s.record)

	r.POST("/api/auth/login", s.login)
	r.POST("/api/auth/register", s.register)

	api := r.Group("/api", s.authenticate)
	{
		api.GET("/session", s.listSessions)
		api.GET("/session/:id", s.getSession)
		api.POST("/session", s.createSession)
		api.PUT("/session/:id", s.updateSession)
		api.DELETE("/session/:id", s.deleteSession)
		api.POST("/session/:id/participate/:userId", s.participate)
		api.DELETE("/session/:id/participate/:userId", s.unParticipate)

		api.GET("/teacher", s.listTeachers)
		api.GET("/teacher/:id", s.getTeacher)

		api.GET("/user/:id", s.getUser)
		api.DELETE("/user/:id", s.deleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})
	return r
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Requests lists "METHOD path" of every request received, oldest first.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, c.Request.Method+" "+c.Request.URL.Path)
	s.mu.Unlock()
	c.Next()
}

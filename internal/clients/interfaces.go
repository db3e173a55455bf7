package clients

import (
	"context"

	"github.com/yoga-studio/front/internal/models"
)

// SessionClient defines the calls on /api/session
type SessionClient interface {
	All(ctx context.Context) ([]models.Session, error)
	Detail(ctx context.Context, id int64) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	Update(ctx context.Context, id int64, session *models.Session) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
	Participate(ctx context.Context, id, userID int64) error
	UnParticipate(ctx context.Context, id, userID int64) error
}

// TeacherClient defines the calls on /api/teacher
type TeacherClient interface {
	All(ctx context.Context) ([]models.Teacher, error)
	Detail(ctx context.Context, id int64) (*models.Teacher, error)
}

// UserClient defines the calls on /api/user
type UserClient interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// AuthClient defines the calls on /api/auth
type AuthClient interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

// TokenSource supplies the bearer token attached to outgoing calls. An empty token
// sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// Gateways bundles one client per API resource over a shared BaseClient.
type Gateways struct {
	Sessions SessionClient
	Teachers TeacherClient
	Users    UserClient
	Auth     AuthClient
}

func NewGateways(base *BaseClient) *Gateways {
	return &Gateways{
		Sessions: NewSessionClient(base),
		Teachers: NewTeacherClient(base),
		Users:    NewUserClient(base),
		Auth:     NewAuthClient(base),
	}
}

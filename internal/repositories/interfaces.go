package repositories

import (
	"context"
	"errors"

	"github.com/yoga-studio/front/internal/models"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyParticipating = errors.New("user already participates in the session")
	ErrNotParticipating     = errors.New("user does not participate in the session")
	ErrEmailTaken           = errors.New("email is already taken")
)

type SessionRepository interface {
	List(ctx context.Context) ([]models.Session, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	Update(ctx context.Context, id int64, session *models.Session) (*models.Session, error)
	Delete(ctx context.Context, id int64) error
	// Participant add/remove; a user appears at most once
	AddParticipant(ctx context.Context, id, userID int64) error
	RemoveParticipant(ctx context.Context, id, userID int64) error
}

type TeacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error)
}

// UserRecord is a stored user with its password hash.
type UserRecord struct {
	models.User
	PasswordHash string
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*UserRecord, error)
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	Create(ctx context.Context, user *UserRecord) (*UserRecord, error)
	Delete(ctx context.Context, id int64) error
}

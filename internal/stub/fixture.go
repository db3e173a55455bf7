package stub

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/repositories"
	"github.com/yoga-studio/front/internal/utils"
)

//go:embed fixture.yaml
var defaultFixture []byte

// Fixture is the seed data of the stub.
type Fixture struct {
	Users    []FixtureUser    `yaml:"users"`
	Teachers []FixtureTeacher `yaml:"teachers"`
	Sessions []FixtureSession `yaml:"sessions"`
}

type FixtureUser struct {
	ID        int64  `yaml:"id"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Admin     bool   `yaml:"admin"`
	Password  string `yaml:"password"`
}

type FixtureTeacher struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type FixtureSession struct {
	ID          int64   `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Date        string  `yaml:"date"`
	TeacherID   int64   `yaml:"teacher_id"`
	Users       []int64 `yaml:"users"`
}

// DefaultFixture returns the embedded seed data.
func DefaultFixture() (*Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads seed data from a YAML file; an empty path means the default.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return DefaultFixture()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// Seed loads the fixture into the server's stores.
func (s *Server) Seed(ctx context.Context, f *Fixture) error {
	for _, u := range f.Users {
		hash, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("hash password of %s: %w", u.Email, err)
		}
		_, err = s.users.Create(ctx, &repositories.UserRecord{
			User: models.User{
				ID:        u.ID,
				Email:     u.Email,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Admin:     u.Admin,
			},
			PasswordHash: hash,
		})
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}

	for _, t := range f.Teachers {
		if _, err := s.teachers.Create(ctx, &models.Teacher{ID: t.ID, FirstName: t.FirstName, LastName: t.LastName}); err != nil {
			return fmt.Errorf("seed teacher %d: %w", t.ID, err)
		}
	}

	for _, fs := range f.Sessions {
		date, err := models.ParseTimestamp(fs.Date)
		if err != nil {
			return fmt.Errorf("seed session %d: %w", fs.ID, err)
		}
		_, err = s.sessions.Create(ctx, &models.Session{
			ID:          fs.ID,
			Name:        fs.Name,
			Description: fs.Description,
			Date:        date,
			TeacherID:   fs.TeacherID,
			Users:       fs.Users,
		})
		if err != nil {
			return fmt.Errorf("seed session %d: %w", fs.ID, err)
		}
	}

	s.logger.Info("fixture loaded",
		zap.Int("users", len(f.Users)),
		zap.Int("teachers", len(f.Teachers)),
		zap.Int("sessions", len(f.Sessions)),
	)
	return nil
}

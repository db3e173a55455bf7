package fake

import (
	"context"

	"github.com/yoga-studio/front/internal/models"
)

// MockSessionClient answers each call through the matching Func field; unset fields
// return zero values.
type MockSessionClient struct {
	AllFunc           func(ctx context.Context) ([]models.Session, error)
	DetailFunc        func(ctx context.Context, id int64) (*models.Session, error)
	CreateFunc        func(ctx context.Context, session *models.Session) (*models.Session, error)
	UpdateFunc        func(ctx context.Context, id int64, session *models.Session) (*models.Session, error)
	DeleteFunc        func(ctx context.Context, id int64) error
	ParticipateFunc   func(ctx context.Context, id, userID int64) error
	UnParticipateFunc func(ctx context.Context, id, userID int64) error
}

func (m *MockSessionClient) All(ctx context.Context) ([]models.Session, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionClient) Detail(ctx context.Context, id int64) (*models.Session, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSessionClient) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return session, nil
}

func (m *MockSessionClient) Update(ctx context.Context, id int64, session *models.Session) (*models.Session, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, session)
	}
	return session, nil
}

func (m *MockSessionClient) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSessionClient) Participate(ctx context.Context, id, userID int64) error {
	if m.ParticipateFunc != nil {
		return m.ParticipateFunc(ctx, id, userID)
	}
	return nil
}

func (m *MockSessionClient) UnParticipate(ctx context.Context, id, userID int64) error {
	if m.UnParticipateFunc != nil {
		return m.UnParticipateFunc(ctx, id, userID)
	}
	return nil
}

type MockTeacherClient struct {
	AllFunc    func(ctx context.Context) ([]models.Teacher, error)
	DetailFunc func(ctx context.Context, id int64) (*models.Teacher, error)
}

func (m *MockTeacherClient) All(ctx context.Context) ([]models.Teacher, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTeacherClient) Detail(ctx context.Context, id int64) (*models.Teacher, error) {
	if m.DetailFunc != nil {
		return m.DetailFunc(ctx, id)
	}
	return nil, nil
}

type MockUserClient struct {
	GetByIDFunc func(ctx context.Context, id int64) (*models.User, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *MockUserClient) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserClient) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type MockAuthClient struct {
	LoginFunc    func(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error)
	RegisterFunc func(ctx context.Context, req models.RegisterRequest) error
}

func (m *MockAuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.SessionInformation, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthClient) Register(ctx context.Context, req models.RegisterRequest) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil
}

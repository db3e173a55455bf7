package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yoga-studio/front/internal/models"
)

type memoryTeacherRepository struct {
	teachers map[int64]*models.Teacher
	nextID   int64
	now      func() time.Time
	mutex    sync.RWMutex
}

func NewMemoryTeacherRepository() TeacherRepository {
	return &memoryTeacherRepository{
		teachers: make(map[int64]*models.Teacher),
		now:      time.Now,
	}
}

func (r *memoryTeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	teachers := make([]models.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		teachers = append(teachers, *t)
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].ID < teachers[j].ID })
	return teachers, nil
}

func (r *memoryTeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	teacher, exists := r.teachers[id]
	if !exists {
		return nil, ErrNotFound
	}
	t := *teacher
	return &t, nil
}

func (r *memoryTeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (*models.Teacher, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *teacher
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if stored.ID > r.nextID {
		r.nextID = stored.ID
	}
	now := models.NewTimestamp(r.now())
	if stored.CreatedAt == nil {
		stored.CreatedAt = &now
	}
	if stored.UpdatedAt == nil {
		stored.UpdatedAt = &now
	}
	r.teachers[stored.ID] = &stored
	t := stored
	return &t, nil
}

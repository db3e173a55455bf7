package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yoga-studio/front/internal/models"
)

type memorySessionRepository struct {
	sessions map[int64]*models.Session
	nextID   int64
	now      func() time.Time
	mutex    sync.RWMutex
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[int64]*models.Session),
		now:      time.Now,
	}
}

func (r *memorySessionRepository) List(ctx context.Context) ([]models.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	sessions := make([]models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, *s.Clone())
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions, nil
}

func (r *memorySessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

// Create keeps a caller-supplied id (fixtures) and otherwise allocates the next one.
func (r *memorySessionRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := session.Clone()
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if stored.ID > r.nextID {
		r.nextID = stored.ID
	}
	if stored.Users == nil {
		stored.Users = []int64{}
	}
	stored.Users = dedupe(stored.Users)
	now := models.NewTimestamp(r.now())
	if stored.CreatedAt == nil {
		stored.CreatedAt = &now
	}
	if stored.UpdatedAt == nil {
		stored.UpdatedAt = &now
	}

	r.sessions[stored.ID] = stored
	return stored.Clone(), nil
}

// Update replaces the editable fields and keeps participants and creation date.
func (r *memorySessionRepository) Update(ctx context.Context, id int64, session *models.Session) (*models.Session, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.sessions[id]
	if !exists {
		return nil, ErrNotFound
	}
	existing.Name = session.Name
	existing.Description = session.Description
	existing.Date = session.Date
	existing.TeacherID = session.TeacherID
	now := models.NewTimestamp(r.now())
	existing.UpdatedAt = &now
	return existing.Clone(), nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) AddParticipant(ctx context.Context, id, userID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return ErrNotFound
	}
	if !session.AddParticipant(userID) {
		return ErrAlreadyParticipating
	}
	return nil
}

func (r *memorySessionRepository) RemoveParticipant(ctx context.Context, id, userID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	session, exists := r.sessions[id]
	if !exists {
		return ErrNotFound
	}
	if !session.RemoveParticipant(userID) {
		return ErrNotParticipating
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

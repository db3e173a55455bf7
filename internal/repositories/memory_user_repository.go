package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/yoga-studio/front/internal/models"
)

type memoryUserRepository struct {
	users   map[int64]*UserRecord
	byEmail map[string]int64
	nextID  int64
	now     func() time.Time
	mutex   sync.RWMutex
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users:   make(map[int64]*UserRecord),
		byEmail: make(map[string]int64),
		now:     time.Now,
	}
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*UserRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	u := *user
	return &u, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	id, exists := r.byEmail[normalizeEmail(email)]
	if !exists {
		return nil, ErrNotFound
	}
	u := *r.users[id]
	return &u, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *UserRecord) (*UserRecord, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := r.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	stored := *user
	stored.Password = ""
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

	r.users[stored.ID] = &stored
	r.byEmail[key] = stored.ID
	u := stored
	return &u, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	user, exists := r.users[id]
	if !exists {
		return ErrNotFound
	}
	delete(r.byEmail, normalizeEmail(user.Email))
	delete(r.users, id)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

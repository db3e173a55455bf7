package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/models"
)

// SessionService is the authoritative record of who is logged in. One instance is
// created at startup and handed to every component that needs it.
//
// Login state changes are pushed to subscribers in the order LogIn/LogOut were
// called, and each new subscriber first receives the current value. Subscriber
// callbacks run synchronously and must not call LogIn, LogOut or Subscribe.
type SessionService struct {
	// emitMu serializes state changes with their delivery.
	emitMu sync.Mutex
	mu     sync.Mutex

	isLogged           bool
	sessionInformation *models.SessionInformation

	subscribers []*subscriber
	nextID      uint64

	logger *zap.Logger
}

type subscriber struct {
	id uint64
	fn func(bool)
}

// Subscription detaches a subscriber registered with Subscribe.
type Subscription struct {
	service *SessionService
	id      uint64
	once    sync.Once
}

func NewSessionService(logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{logger: logger.Named("session")}
}

// LogIn stores info and emits true.
func (s *SessionService) LogIn(info models.SessionInformation) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	stored := info
	s.sessionInformation = &stored
	s.isLogged = true
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.logger.Debug("logged in", zap.Int64("user_id", info.ID), zap.Bool("admin", info.Admin))
	deliver(subs, true)
}

// LogOut clears the stored information and emits false, even when already logged out.
func (s *SessionService) LogOut() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.sessionInformation = nil
	s.isLogged = false
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	s.logger.Debug("logged out")
	deliver(subs, false)
}

// IsLogged returns the current flag.
func (s *SessionService) IsLogged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLogged
}

// SessionInformation returns a copy of the stored identity.
func (s *SessionService) SessionInformation() (models.SessionInformation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionInformation == nil {
		return models.SessionInformation{}, false
	}
	return *s.sessionInformation, true
}

// Token implements clients.TokenSource.
func (s *SessionService) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionInformation == nil {
		return ""
	}
	return s.sessionInformation.Token
}

// Subscribe calls fn with the current flag, then with every later change.
func (s *SessionService) Subscribe(fn func(logged bool)) *Subscription {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, &subscriber{id: id, fn: fn})
	current := s.isLogged
	s.mu.Unlock()

	fn(current)
	return &Subscription{service: s, id: id}
}

// Watch exposes the flag as a channel. Values are queued so a slow reader never
// blocks LogIn/LogOut and never misses a change. The channel closes when ctx ends.
func (s *SessionService) Watch(ctx context.Context) <-chan bool {
	out := make(chan bool)
	wake := make(chan struct{}, 1)

	var (
		queueMu sync.Mutex
		queue   []bool
	)
	sub := s.Subscribe(func(logged bool) {
		queueMu.Lock()
		queue = append(queue, logged)
		queueMu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	go func() {
		defer close(out)
		defer sub.Unsubscribe()
		for {
			queueMu.Lock()
			if len(queue) == 0 {
				queueMu.Unlock()
				select {
				case <-ctx.Done():
					return
				case <-wake:
					continue
				}
			}
			next := queue[0]
			queue = queue[1:]
			queueMu.Unlock()

			select {
			case out <- next:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Unsubscribe stops further deliveries. Safe to call more than once.
func (sub *Subscription) Unsubscribe() {
	sub.once.Do(func() {
		s := sub.service
		s.emitMu.Lock()
		defer s.emitMu.Unlock()
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, existing := range s.subscribers {
			if existing.id == sub.id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	})
}

func (s *SessionService) snapshotSubscribers() []*subscriber {
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	return subs
}

func deliver(subs []*subscriber, logged bool) {
	for _, sub := range subs {
		sub.fn(logged)
	}
}

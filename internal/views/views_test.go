package views

import (
	"sync"
	"time"

	"github.com/yoga-studio/front/internal/clients/fake"
	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/services"
)

type notification struct {
	Message  string
	Action   string
	Duration time.Duration
}

// recordingOutlet remembers every navigation and notification.
type recordingOutlet struct {
	mu            sync.Mutex
	navigations   []string
	backs         int
	notifications []notification
}

func (o *recordingOutlet) Navigate(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.navigations = append(o.navigations, path)
}

func (o *recordingOutlet) Back() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.backs++
}

func (o *recordingOutlet) Notify(message, action string, duration time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.notifications = append(o.notifications, notification{message, action, duration})
}

type testEnv struct {
	deps     Deps
	sessions *fake.MockSessionClient
	teachers *fake.MockTeacherClient
	users    *fake.MockUserClient
	auth     *fake.MockAuthClient
	session  *services.SessionService
	out      *recordingOutlet
}

func newTestEnv() *testEnv {
	env := &testEnv{
		sessions: &fake.MockSessionClient{},
		teachers: &fake.MockTeacherClient{},
		users:    &fake.MockUserClient{},
		auth:     &fake.MockAuthClient{},
		session:  services.NewSessionService(nil),
		out:      &recordingOutlet{},
	}
	env.deps = Deps{
		Sessions: env.sessions,
		Teachers: env.teachers,
		Users:    env.users,
		Auth:     services.NewAuthService(env.auth, env.session, nil),
		Session:  env.session,
	}
	return env
}

func (e *testEnv) loginAs(id int64, admin bool) {
	e.session.LogIn(models.SessionInformation{
		Token:     "jwt",
		Type:      "Bearer",
		ID:        id,
		Username:  "user@studio.com",
		FirstName: "First",
		LastName:  "Last",
		Admin:     admin,
	})
}

var margot = models.Teacher{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"}

// Package views holds one controller per screen of the front-end. Controllers own
// the screen's state and talk to the API gateways; rendering and transport are left
// to the caller, which hands each controller an Outlet for navigation and
// notifications.
package views

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/services"
)

const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteSessions = "/sessions"
	RouteMe       = "/me"

	NotificationAction   = "Close"
	NotificationDuration = 3000 * time.Millisecond
)

var (
	// ErrActionUnavailable is returned when the control for an action is not shown
	// in the view's current state.
	ErrActionUnavailable = errors.New("action not available in the current state")
	ErrNotAdmin          = errors.New("admin rights required")
	ErrNotLogged         = errors.New("not logged in")
	ErrClosed            = errors.New("view closed")
)

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(path string)
	Back()
}

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message, action string, duration time.Duration)
}

// Outlet is the rendering side of a view.
type Outlet interface {
	Navigator
	Notifier
}

// Deps are the process-wide collaborators shared by every view.
type Deps struct {
	Sessions clients.SessionClient
	Teachers clients.TeacherClient
	Users    clients.UserClient
	Auth     services.AuthService
	Session  *services.SessionService
	Logger   *zap.Logger
}

func (d Deps) logger(name string) *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger.Named(name)
}

func notify(out Outlet, message string) {
	out.Notify(message, NotificationAction, NotificationDuration)
}

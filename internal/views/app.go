package views

import "context"

// AppController backs the navigation bar shown on every screen.
type AppController struct {
	deps Deps
	out  Outlet
}

func NewAppController(deps Deps, out Outlet) *AppController {
	return &AppController{deps: deps, out: out}
}

func (c *AppController) IsLogged() bool {
	return c.deps.Session.IsLogged()
}

// WatchLogged streams the login flag, current value first.
func (c *AppController) WatchLogged(ctx context.Context) <-chan bool {
	return c.deps.Session.Watch(ctx)
}

func (c *AppController) Logout() {
	c.deps.Auth.Logout()
	c.out.Navigate(RouteHome)
}

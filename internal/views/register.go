package views

import (
	"context"

	"github.com/yoga-studio/front/internal/models"
)

// RegisterController backs the account creation screen.
type RegisterController struct {
	deps    Deps
	out     Outlet
	onError bool
	form    models.RegisterRequest
}

func NewRegisterController(deps Deps, out Outlet) *RegisterController {
	return &RegisterController{deps: deps, out: out}
}

func (c *RegisterController) OnError() bool {
	return c.onError
}

// Form returns the last submitted values without the password.
func (c *RegisterController) Form() models.RegisterRequest {
	f := c.form
	f.Password = ""
	return f
}

func (c *RegisterController) Reject(req models.RegisterRequest, decodeErr *ValidationError) error {
	c.form = req
	return rejectForm(req, decodeErr)
}

func (c *RegisterController) Submit(ctx context.Context, req models.RegisterRequest) error {
	c.form = req
	if err := validateForm(req); err != nil {
		return err
	}
	if err := c.deps.Auth.Register(ctx, req); err != nil {
		c.onError = true
		return err
	}
	c.onError = false
	c.out.Navigate(RouteLogin)
	return nil
}

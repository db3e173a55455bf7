package views

import (
	"context"

	"github.com/yoga-studio/front/internal/models"
)

// LoginController backs the login screen.
type LoginController struct {
	deps    Deps
	out     Outlet
	onError bool
	form    models.LoginRequest
}

func NewLoginController(deps Deps, out Outlet) *LoginController {
	return &LoginController{deps: deps, out: out}
}

// OnError reports whether the error banner is shown.
func (c *LoginController) OnError() bool {
	return c.onError
}

// Form returns the last submitted values without the password.
func (c *LoginController) Form() models.LoginRequest {
	return models.LoginRequest{Email: c.form.Email}
}

// Reject records a submission that could not be decoded.
func (c *LoginController) Reject(req models.LoginRequest, decodeErr *ValidationError) error {
	c.form = req
	return rejectForm(req, decodeErr)
}

// Submit logs in and opens the sessions list. Refused credentials raise the
// banner and leave the session state untouched.
func (c *LoginController) Submit(ctx context.Context, req models.LoginRequest) error {
	c.form = req
	if err := validateForm(req); err != nil {
		return err
	}
	if _, err := c.deps.Auth.Login(ctx, req); err != nil {
		c.onError = true
		return err
	}
	c.onError = false
	c.out.Navigate(RouteSessions)
	return nil
}

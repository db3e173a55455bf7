package views

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/models"
)

// MeController backs the account screen of the logged-in user.
type MeController struct {
	deps   Deps
	out    Outlet
	logger *zap.Logger
	user   *models.User
}

func NewMeController(deps Deps, out Outlet) *MeController {
	return &MeController{deps: deps, out: out, logger: deps.logger("me")}
}

func (c *MeController) User() *models.User {
	return c.user
}

func (c *MeController) Init(ctx context.Context) error {
	info, ok := c.deps.Session.SessionInformation()
	if !ok {
		return ErrNotLogged
	}
	user, err := c.deps.Users.GetByID(ctx, info.ID)
	if err != nil {
		return fmt.Errorf("fetch user %d: %w", info.ID, err)
	}
	c.user = user
	return nil
}

func (c *MeController) Back() {
	c.out.Back()
}

// Delete removes the account, logs out and goes home.
func (c *MeController) Delete(ctx context.Context) error {
	info, ok := c.deps.Session.SessionInformation()
	if !ok {
		return ErrNotLogged
	}
	if err := c.deps.Users.Delete(ctx, info.ID); err != nil {
		return fmt.Errorf("delete user %d: %w", info.ID, err)
	}
	c.logger.Info("account deleted", zap.Int64("user_id", info.ID))
	notify(c.out, "Your account has been deleted !")
	c.deps.Auth.Logout()
	c.out.Navigate(RouteHome)
	return nil
}

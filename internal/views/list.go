package views

import (
	"context"
	"fmt"

	"github.com/yoga-studio/front/internal/models"
)

// ListController backs the sessions list.
type ListController struct {
	deps     Deps
	sessions []models.Session
	user     models.SessionInformation
}

func NewListController(deps Deps) *ListController {
	return &ListController{deps: deps}
}

func (c *ListController) Init(ctx context.Context) error {
	info, ok := c.deps.Session.SessionInformation()
	if !ok {
		return ErrNotLogged
	}
	c.user = info

	sessions, err := c.deps.Sessions.All(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	c.sessions = sessions
	return nil
}

func (c *ListController) Sessions() []models.Session {
	return c.sessions
}

func (c *ListController) User() models.SessionInformation {
	return c.user
}

// CanManage reports whether the Create and Edit controls are shown.
func (c *ListController) CanManage() bool {
	return c.user.Admin
}

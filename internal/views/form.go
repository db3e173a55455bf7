package views

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/models"
)

// FormController backs the create and update screens. A sessionID of 0 creates.
type FormController struct {
	deps      Deps
	out       Outlet
	sessionID int64
	logger    *zap.Logger

	form     models.SessionForm
	teachers []models.Teacher
}

func NewFormController(deps Deps, out Outlet, sessionID int64) *FormController {
	return &FormController{
		deps:      deps,
		out:       out,
		sessionID: sessionID,
		logger:    deps.logger("form"),
	}
}

// OnUpdate reports whether the form edits an existing session.
func (c *FormController) OnUpdate() bool {
	return c.sessionID != 0
}

func (c *FormController) Form() models.SessionForm {
	return c.form
}

func (c *FormController) Teachers() []models.Teacher {
	return c.teachers
}

// Init sends non-admins back to the list, loads the teacher choices and, when
// updating, pre-fills the form from the session.
func (c *FormController) Init(ctx context.Context) error {
	info, ok := c.deps.Session.SessionInformation()
	if !ok || !info.Admin {
		c.out.Navigate(RouteSessions)
		return ErrNotAdmin
	}

	teachers, err := c.deps.Teachers.All(ctx)
	if err != nil {
		return fmt.Errorf("list teachers: %w", err)
	}
	c.teachers = teachers

	if c.OnUpdate() {
		session, err := c.deps.Sessions.Detail(ctx, c.sessionID)
		if err != nil {
			return fmt.Errorf("fetch session %d: %w", c.sessionID, err)
		}
		c.form = models.SessionFormFrom(session)
	}
	return nil
}

// Submit validates form and sends it; nothing is sent when validation fails.
func (c *FormController) Submit(ctx context.Context, form models.SessionForm) error {
	c.form = form
	if err := validateForm(form); err != nil {
		return err
	}
	session, err := form.ToSession()
	if err != nil {
		return err
	}

	if c.OnUpdate() {
		if _, err := c.deps.Sessions.Update(ctx, c.sessionID, session); err != nil {
			return fmt.Errorf("update session %d: %w", c.sessionID, err)
		}
		c.logger.Info("session updated", zap.Int64("session_id", c.sessionID))
		c.exitPage("Session updated !")
		return nil
	}

	created, err := c.deps.Sessions.Create(ctx, session)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if created != nil {
		c.logger.Info("session created", zap.Int64("session_id", created.ID))
	}
	c.exitPage("Session created !")
	return nil
}

// Reject keeps the values of a submission that could not be decoded so the page
// can show them again. Nothing is sent.
func (c *FormController) Reject(form models.SessionForm, decodeErr *ValidationError) error {
	c.form = form
	return rejectForm(form, decodeErr)
}

func (c *FormController) exitPage(message string) {
	notify(c.out, message)
	c.out.Navigate(RouteSessions)
}

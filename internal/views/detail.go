package views

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/models"
)

// Phase is the lifecycle state of a DetailController.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseParticipating
	PhaseUnparticipating
	PhaseDeleting
	PhaseNavigatedAway
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseParticipating:
		return "participating"
	case PhaseUnparticipating:
		return "unparticipating"
	case PhaseDeleting:
		return "deleting"
	case PhaseNavigatedAway:
		return "navigated-away"
	default:
		return "idle"
	}
}

// Control is a button of the detail screen, labelled as the user sees it.
type Control string

const (
	ControlParticipate   Control = "Participate"
	ControlUnParticipate Control = "Do not participate"
	ControlDelete        Control = "Delete"
	ControlBack          Control = "Back"
)

// DetailView is a consistent snapshot of the detail screen.
type DetailView struct {
	Phase         Phase
	SessionID     int64
	Session       *models.Session
	Teacher       *models.Teacher
	UserID        int64
	IsAdmin       bool
	IsParticipate bool
	Controls      []Control
}

// Shows reports whether control is rendered.
func (v DetailView) Shows(control Control) bool {
	return slices.Contains(v.Controls, control)
}

// DetailController drives the detail screen of one session: it loads the session
// and its teacher, toggles the current user's participation, and lets admins
// delete the session.
//
// After every mutation the session is fetched again instead of being patched
// locally. Each fetch takes a generation number and its result is applied only
// if no later fetch was issued in the meantime, so the last fetch issued wins
// whatever order the answers arrive in.
type DetailController struct {
	deps      Deps
	out       Outlet
	sessionID int64
	logger    *zap.Logger

	mu            sync.Mutex
	phase         Phase
	session       *models.Session
	teacher       *models.Teacher
	userID        int64
	isAdmin       bool
	isParticipate bool
	generation    uint64
	closed        bool
}

func NewDetailController(deps Deps, out Outlet, sessionID int64) *DetailController {
	return &DetailController{
		deps:      deps,
		out:       out,
		sessionID: sessionID,
		logger:    deps.logger("detail").With(zap.Int64("session_id", sessionID)),
	}
}

// Init activates the view: Idle -> Loading -> Loaded.
func (c *DetailController) Init(ctx context.Context) error {
	info, ok := c.deps.Session.SessionInformation()
	if !ok {
		return ErrNotLogged
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.phase = PhaseLoading
	c.userID = info.ID
	c.isAdmin = info.Admin
	c.mu.Unlock()

	return c.fetchSession(ctx)
}

// Participate adds the current user to the session, then re-fetches it.
func (c *DetailController) Participate(ctx context.Context) error {
	userID, err := c.begin(ControlParticipate, PhaseParticipating)
	if err != nil {
		return err
	}
	if err := c.deps.Sessions.Participate(ctx, c.sessionID, userID); err != nil {
		c.settle()
		return fmt.Errorf("participate in session %d: %w", c.sessionID, err)
	}
	return c.fetchSession(ctx)
}

// UnParticipate removes the current user from the session, then re-fetches it.
func (c *DetailController) UnParticipate(ctx context.Context) error {
	userID, err := c.begin(ControlUnParticipate, PhaseUnparticipating)
	if err != nil {
		return err
	}
	if err := c.deps.Sessions.UnParticipate(ctx, c.sessionID, userID); err != nil {
		c.settle()
		return fmt.Errorf("leave session %d: %w", c.sessionID, err)
	}
	return c.fetchSession(ctx)
}

// Delete removes the session and leaves the screen for the sessions list.
func (c *DetailController) Delete(ctx context.Context) error {
	if _, err := c.begin(ControlDelete, PhaseDeleting); err != nil {
		return err
	}
	if err := c.deps.Sessions.Delete(ctx, c.sessionID); err != nil {
		c.settle()
		return fmt.Errorf("delete session %d: %w", c.sessionID, err)
	}

	c.mu.Lock()
	c.phase = PhaseNavigatedAway
	c.mu.Unlock()

	c.logger.Info("session deleted")
	notify(c.out, "Session deleted !")
	c.out.Navigate(RouteSessions)
	return nil
}

// Back returns to the previous screen.
func (c *DetailController) Back() {
	c.out.Back()
}

// Close tears the view down; answers still in flight are dropped.
func (c *DetailController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// View returns a snapshot of the screen state.
func (c *DetailController) View() DetailView {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := DetailView{
		Phase:         c.phase,
		SessionID:     c.sessionID,
		Session:       c.session.Clone(),
		UserID:        c.userID,
		IsAdmin:       c.isAdmin,
		IsParticipate: c.isParticipate,
		Controls:      c.controlsLocked(),
	}
	if c.teacher != nil {
		t := *c.teacher
		view.Teacher = &t
	}
	return view
}

// Controls lists the buttons rendered in the current state.
func (c *DetailController) Controls() []Control {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controlsLocked()
}

func (c *DetailController) controlsLocked() []Control {
	if c.phase == PhaseIdle || c.phase == PhaseLoading || c.phase == PhaseNavigatedAway || c.session == nil {
		return []Control{ControlBack}
	}
	controls := []Control{ControlBack}
	if c.isAdmin {
		controls = append(controls, ControlDelete)
		return controls
	}
	if c.isParticipate {
		controls = append(controls, ControlUnParticipate)
	} else {
		controls = append(controls, ControlParticipate)
	}
	return controls
}

// begin moves Loaded -> next when control is currently rendered.
func (c *DetailController) begin(control Control, next Phase) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}
	if c.phase != PhaseLoaded || !slices.Contains(c.controlsLocked(), control) {
		c.logger.Debug("action refused",
			zap.String("control", string(control)),
			zap.Stringer("phase", c.phase),
		)
		return 0, fmt.Errorf("%s: %w", control, ErrActionUnavailable)
	}
	c.phase = next
	return c.userID, nil
}

// settle returns to Loaded after a failed mutation.
func (c *DetailController) settle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseNavigatedAway {
		c.phase = PhaseLoaded
	}
}

// fetchSession loads the session, then its teacher, and applies both only if this
// is still the latest fetch issued by the controller.
func (c *DetailController) fetchSession(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	session, err := c.deps.Sessions.Detail(ctx, c.sessionID)
	if err != nil {
		return c.fetchFailed(gen, fmt.Errorf("fetch session %d: %w", c.sessionID, err))
	}
	if !c.isLatest(gen) {
		c.logger.Debug("dropping superseded session answer", zap.Uint64("generation", gen))
		return nil
	}

	teacher, err := c.deps.Teachers.Detail(ctx, session.TeacherID)
	if err != nil {
		return c.fetchFailed(gen, fmt.Errorf("fetch teacher %d: %w", session.TeacherID, err))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.closed || c.phase == PhaseNavigatedAway {
		c.logger.Debug("dropping superseded session answer", zap.Uint64("generation", gen))
		return nil
	}
	c.session = session.Clone()
	c.teacher = teacher
	c.isParticipate = c.session.HasParticipant(c.userID)
	c.phase = PhaseLoaded
	return nil
}

func (c *DetailController) isLatest(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.generation && !c.closed
}

// fetchFailed reports err unless a later fetch already superseded this one.
func (c *DetailController) fetchFailed(gen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.closed {
		return nil
	}
	if c.session != nil && c.phase != PhaseNavigatedAway {
		c.phase = PhaseLoaded
	}
	c.logger.Warn("fetch failed", zap.Error(err))
	return err
}

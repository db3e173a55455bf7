package handlers

import (
	"encoding/gob"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/yoga-studio/front/internal/clients"
	"github.com/yoga-studio/front/internal/services"
	"github.com/yoga-studio/front/internal/views"
)

const flashCookie = "yoga-flash"

// Notification is a one-shot snackbar message carried to the next page.
type Notification struct {
	Message  string
	Action   string
	Duration time.Duration
}

func init() {
	gob.Register(Notification{})
}

// Renderer renders pages with the navigation state and pending notifications.
type Renderer struct {
	store   sessions.Store
	session *services.SessionService
	logger  *zap.Logger
}

func NewRenderer(store sessions.Store, session *services.SessionService, logger *zap.Logger) *Renderer {
	return &Renderer{store: store, session: session, logger: logger}
}

// HTML renders page with data plus the fields every page reads.
func (r *Renderer) HTML(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Logged"] = r.session.IsLogged()
	data["From"] = previousPage(c)
	data["Notifications"] = r.popFlashes(c)
	c.HTML(status, page, data)
}

// Error renders the page matching err.
func (r *Renderer) Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, views.ErrNotLogged):
		c.Redirect(http.StatusSeeOther, views.RouteLogin)
	case errors.Is(err, views.ErrActionUnavailable):
		r.HTML(c, http.StatusConflict, "error.html", gin.H{"Message": "This action is not available"})
	case clients.IsNotFound(err):
		r.HTML(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
	default:
		r.logger.Warn("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		r.HTML(c, http.StatusBadGateway, "error.html", nil)
	}
}

func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "not_found.html", gin.H{"Title": "Not found"})
}

func (r *Renderer) popFlashes(c *gin.Context) []Notification {
	sess, err := r.store.Get(c.Request, flashCookie)
	if err != nil {
		r.logger.Debug("discarding unreadable flash cookie", zap.Error(err))
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		r.logger.Warn("failed to clear flashes", zap.Error(err))
	}
	out := make([]Notification, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(Notification); ok {
			out = append(out, n)
		}
	}
	return out
}

func (r *Renderer) addFlashes(c *gin.Context, notes []Notification) {
	if len(notes) == 0 {
		return
	}
	sess, _ := r.store.Get(c.Request, flashCookie)
	for _, n := range notes {
		sess.AddFlash(n)
	}
	if err := sess.Save(c.Request, c.Writer); err != nil {
		r.logger.Warn("failed to store flashes", zap.Error(err))
	}
}

// Responder is the views.Outlet of one request: navigation becomes a 303
// redirect and notifications become flashes.
type Responder struct {
	c        *gin.Context
	renderer *Renderer
	target   string
	notes    []Notification
}

func (r *Renderer) Responder(c *gin.Context) *Responder {
	return &Responder{c: c, renderer: r}
}

func (o *Responder) Navigate(path string) {
	o.target = path
}

// Back returns to the page named by the "from" form field when it is a page of
// this server, or to the sessions list.
func (o *Responder) Back() {
	if from, ok := localPath(o.c.PostForm("from")); ok {
		o.target = from
		return
	}
	o.target = views.RouteSessions
}

func (o *Responder) Notify(message, action string, duration time.Duration) {
	o.notes = append(o.notes, Notification{Message: message, Action: action, Duration: duration})
}

// Finish stores pending notifications and redirects when a navigation was
// requested. It reports whether the response was written.
func (o *Responder) Finish() bool {
	o.renderer.addFlashes(o.c, o.notes)
	o.notes = nil
	if o.target == "" {
		return false
	}
	o.c.Redirect(http.StatusSeeOther, o.target)
	return true
}

// RedirectTo finishes with target when no navigation was requested.
func (o *Responder) RedirectTo(target string) {
	if o.Finish() {
		return
	}
	o.c.Redirect(http.StatusSeeOther, target)
}

// localPath returns raw when it names a path on this server. Browsers read a
// backslash as a slash, so "/\host" would leave the site and is refused too.
func localPath(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, "\\") {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return "", false
	}
	return u.RequestURI(), true
}

// previousPage is the Referer path when it is another page of this server.
func previousPage(c *gin.Context) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Host != c.Request.Host {
		return ""
	}
	from, ok := localPath(ref.RequestURI())
	if !ok || from == c.Request.URL.RequestURI() {
		return ""
	}
	return from
}

package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/views"
)

// EventsHandler streams the login flag to the navigation bar.
type EventsHandler struct {
	deps views.Deps
}

func NewEventsHandler(deps views.Deps) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// Logged sends the current flag first, then every change, until the client goes away.
func (h *EventsHandler) Logged(c *gin.Context) {
	app := views.NewAppController(h.deps, nil)
	updates := app.WatchLogged(c.Request.Context())

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		logged, ok := <-updates
		if !ok {
			return false
		}
		c.SSEvent("logged", strconv.FormatBool(logged))
		return true
	})
}

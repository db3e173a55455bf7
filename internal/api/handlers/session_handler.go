package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/views"
)

type SessionHandler struct {
	deps     views.Deps
	renderer *Renderer
}

func NewSessionHandler(deps views.Deps, renderer *Renderer) *SessionHandler {
	return &SessionHandler{deps: deps, renderer: renderer}
}

func (h *SessionHandler) List(c *gin.Context) {
	ctl := views.NewListController(h.deps)
	if err := ctl.Init(c.Request.Context()); err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "list.html", gin.H{
		"Title":     "Sessions",
		"Sessions":  ctl.Sessions(),
		"User":      ctl.User(),
		"CanManage": ctl.CanManage(),
	})
}

// ---------- detail ----------

func (h *SessionHandler) Detail(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	ctl := views.NewDetailController(h.deps, h.renderer.Responder(c), id)
	defer ctl.Close()

	if err := ctl.Init(c.Request.Context()); err != nil {
		h.renderer.Error(c, err)
		return
	}
	view := ctl.View()
	title := "Session"
	if view.Session != nil {
		title = view.Session.Name
	}
	h.renderer.HTML(c, http.StatusOK, "detail.html", gin.H{"Title": title, "View": view})
}

func (h *SessionHandler) Participate(c *gin.Context) {
	h.detailAction(c, (*views.DetailController).Participate)
}

func (h *SessionHandler) UnParticipate(c *gin.Context) {
	h.detailAction(c, (*views.DetailController).UnParticipate)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	h.detailAction(c, (*views.DetailController).Delete)
}

func (h *SessionHandler) Back(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	out := h.renderer.Responder(c)
	views.NewDetailController(h.deps, out, id).Back()
	out.Finish()
}

// detailAction loads the detail, runs action on it, then redirects to wherever
// the controller navigated, or back to the detail page.
func (h *SessionHandler) detailAction(c *gin.Context, action func(*views.DetailController, context.Context) error) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	out := h.renderer.Responder(c)
	ctl := views.NewDetailController(h.deps, out, id)
	defer ctl.Close()

	ctx := c.Request.Context()
	if err := ctl.Init(ctx); err != nil {
		h.renderer.Error(c, err)
		return
	}
	if err := action(ctl, ctx); err != nil {
		h.renderer.Error(c, err)
		return
	}
	out.RedirectTo(detailPath(id))
}

// ---------- form ----------

func (h *SessionHandler) CreatePage(c *gin.Context) {
	h.formPage(c, 0)
}

func (h *SessionHandler) UpdatePage(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.formPage(c, id)
}

func (h *SessionHandler) Create(c *gin.Context) {
	h.submitForm(c, 0)
}

func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.submitForm(c, id)
}

func (h *SessionHandler) formPage(c *gin.Context, id int64) {
	out := h.renderer.Responder(c)
	ctl := views.NewFormController(h.deps, out, id)
	if err := ctl.Init(c.Request.Context()); err != nil {
		if out.Finish() {
			return
		}
		h.renderer.Error(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, ctl, id, nil)
}

func (h *SessionHandler) submitForm(c *gin.Context, id int64) {
	out := h.renderer.Responder(c)
	ctl := views.NewFormController(h.deps, out, id)
	ctx := c.Request.Context()
	if err := ctl.Init(ctx); err != nil {
		if out.Finish() {
			return
		}
		h.renderer.Error(c, err)
		return
	}

	var form models.SessionForm
	var err error
	if verr := bindForm(c, &form); verr != nil {
		err = ctl.Reject(form, verr)
	} else {
		err = ctl.Submit(ctx, form)
	}
	if verr, ok := views.AsValidationError(err); ok {
		h.renderForm(c, http.StatusBadRequest, ctl, id, verr)
		return
	}
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	out.Finish()
}

func (h *SessionHandler) renderForm(c *gin.Context, status int, ctl *views.FormController, id int64, verr *views.ValidationError) {
	action := "/sessions/create"
	title := "Create session"
	if ctl.OnUpdate() {
		action = fmt.Sprintf("/sessions/update/%d", id)
		title = "Update session"
	}
	data := gin.H{
		"Title":    title,
		"Action":   action,
		"OnUpdate": ctl.OnUpdate(),
		"Form":     ctl.Form(),
		"Teachers": ctl.Teachers(),
	}
	if verr != nil {
		data["Errors"] = verr
	}
	h.renderer.HTML(c, status, "form.html", data)
}

func (h *SessionHandler) sessionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderer.NotFound(c)
		return 0, false
	}
	return id, true
}

func detailPath(id int64) string {
	return fmt.Sprintf("/sessions/detail/%d", id)
}

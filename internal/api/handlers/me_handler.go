package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/views"
)

type MeHandler struct {
	deps     views.Deps
	renderer *Renderer
}

func NewMeHandler(deps views.Deps, renderer *Renderer) *MeHandler {
	return &MeHandler{deps: deps, renderer: renderer}
}

func (h *MeHandler) Show(c *gin.Context) {
	ctl := views.NewMeController(h.deps, h.renderer.Responder(c))
	if err := ctl.Init(c.Request.Context()); err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "me.html", gin.H{"Title": "Account", "User": ctl.User()})
}

func (h *MeHandler) Back(c *gin.Context) {
	out := h.renderer.Responder(c)
	views.NewMeController(h.deps, out).Back()
	out.Finish()
}

func (h *MeHandler) Delete(c *gin.Context) {
	out := h.renderer.Responder(c)
	ctl := views.NewMeController(h.deps, out)
	if err := ctl.Delete(c.Request.Context()); err != nil {
		h.renderer.Error(c, err)
		return
	}
	out.RedirectTo(views.RouteHome)
}

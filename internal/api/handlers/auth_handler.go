package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/models"
	"github.com/yoga-studio/front/internal/views"
)

type AuthHandler struct {
	deps     views.Deps
	renderer *Renderer
}

func NewAuthHandler(deps views.Deps, renderer *Renderer) *AuthHandler {
	return &AuthHandler{deps: deps, renderer: renderer}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "login.html", gin.H{"Title": "Login", "Form": models.LoginRequest{}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	out := h.renderer.Responder(c)
	ctl := views.NewLoginController(h.deps, out)

	var req models.LoginRequest
	var err error
	if verr := bindForm(c, &req); verr != nil {
		err = ctl.Reject(req, verr)
	} else {
		err = ctl.Submit(c.Request.Context(), req)
	}
	if err == nil {
		out.Finish()
		return
	}

	data := gin.H{"Title": "Login", "Form": ctl.Form(), "OnError": ctl.OnError()}
	if verr, ok := views.AsValidationError(err); ok {
		data["Errors"] = verr
		h.renderer.HTML(c, http.StatusBadRequest, "login.html", data)
		return
	}
	h.renderer.HTML(c, http.StatusUnauthorized, "login.html", data)
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Form": models.RegisterRequest{}})
}

func (h *AuthHandler) Register(c *gin.Context) {
	out := h.renderer.Responder(c)
	ctl := views.NewRegisterController(h.deps, out)

	var req models.RegisterRequest
	var err error
	if verr := bindForm(c, &req); verr != nil {
		err = ctl.Reject(req, verr)
	} else {
		err = ctl.Submit(c.Request.Context(), req)
	}
	if err == nil {
		out.Finish()
		return
	}

	data := gin.H{"Title": "Register", "Form": ctl.Form(), "OnError": ctl.OnError()}
	if verr, ok := views.AsValidationError(err); ok {
		data["Errors"] = verr
	}
	h.renderer.HTML(c, http.StatusBadRequest, "register.html", data)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	out := h.renderer.Responder(c)
	views.NewAppController(h.deps, out).Logout()
	out.RedirectTo(views.RouteHome)
}

// Home sends logged users to the sessions list and others to the login page.
func (h *AuthHandler) Home(c *gin.Context) {
	if h.deps.Session.IsLogged() {
		c.Redirect(http.StatusSeeOther, views.RouteSessions)
		return
	}
	c.Redirect(http.StatusSeeOther, views.RouteLogin)
}

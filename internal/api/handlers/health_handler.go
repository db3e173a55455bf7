package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/services"
	"github.com/yoga-studio/front/internal/utils"
)

const Version = "1.0.0"

type HealthHandler struct {
	session *services.SessionService
}

func NewHealthHandler(session *services.SessionService) *HealthHandler {
	return &HealthHandler{session: session}
}

func (h *HealthHandler) Health(c *gin.Context) {
	utils.WriteJSONResponse(c, http.StatusOK, gin.H{
		"status":  "ok",
		"service": "yoga-studio-front",
		"version": Version,
		"logged":  h.session.IsLogged(),
	})
}

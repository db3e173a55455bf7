package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoga-studio/front/internal/services"
)

// AuthGuard sends visitors who are not logged in to the login page.
func AuthGuard(session *services.SessionService, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogged() {
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UnauthGuard keeps logged users away from the login and register pages.
func UnauthGuard(session *services.SessionService, homePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.IsLogged() {
			c.Redirect(http.StatusSeeOther, homePath)
			c.Abort()
			return
		}
		c.Next()
	}
}

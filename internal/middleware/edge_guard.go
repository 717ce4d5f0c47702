package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dashkit/app/internal/persist"
	"dashkit/app/internal/routes"
)

// EdgeGuard runs before any page handler and decides on token presence
// alone: protected paths need one, auth surfaces must not have one. It never
// validates the token; that belongs to layers that can afford to.
func EdgeGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(persist.TokenKey)
		hasToken := err == nil && token != ""

		switch routes.Classify(c.Request.URL.Path) {
		case routes.ClassProtected:
			if !hasToken {
				c.Redirect(http.StatusTemporaryRedirect, routes.LoginPath)
				c.Abort()
				return
			}
		case routes.ClassAuth:
			if hasToken {
				c.Redirect(http.StatusTemporaryRedirect, routes.DashboardRoot)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

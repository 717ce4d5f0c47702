package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"dashkit/app/internal/config"
	"dashkit/app/internal/persist"
	"dashkit/app/internal/session"
)

const ContextUserKey = "current_user"

// redirectNavigator answers a gate redirect with an HTTP redirect.
type redirectNavigator struct {
	c *gin.Context
}

func (n redirectNavigator) NavigateTo(path string) {
	n.c.Redirect(http.StatusTemporaryRedirect, path)
}

// SessionGate resolves the persisted session before a protected handler runs
// and withholds it from unauthenticated viewers. The resolution is
// synchronous here, so the gate's hold state can never reach the client; it
// still goes through the same decision logic as the client-side consumer.
func SessionGate(creds session.CredentialSource, cfg *config.AppConfig, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots := persist.NewCookieAdapter(c, cfg.Production(), cfg.Auth.TokenTTL)
		nav := redirectNavigator{c: c}

		mgr := session.NewManager(creds, slots, nav, log)
		mgr.Initialize()

		gate := session.NewGate(mgr, nav)
		defer gate.Close()

		if gate.Evaluate() != session.DecisionRender {
			c.Abort()
			return
		}

		c.Set(ContextUserKey, *mgr.Snapshot().User)
		c.Next()
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"dashkit/app/internal/config"
	"dashkit/app/internal/middleware"
	"dashkit/app/internal/notify"
	"dashkit/app/internal/persist"
	"dashkit/app/internal/session"
	"dashkit/app/internal/store"
)

type HandlerSet struct {
	log    zerolog.Logger
	cfg    *config.AppConfig
	creds  *store.CredentialStore
	notify notify.Notifier
}

func NewHandlerSet(log zerolog.Logger, creds *store.CredentialStore, cfg *config.AppConfig) HandlerSet {
	return HandlerSet{
		log:    log,
		cfg:    cfg,
		creds:  creds,
		notify: notify.NewLogNotifier(log),
	}
}

// Mount attaches the JSON API.
func (h HandlerSet) Mount(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", h.Logout)

		protected := v1.Group("/auth")
		protected.Use(middleware.SessionGate(h.creds, h.cfg, h.log))
		protected.GET("/me", h.Me)
	}
}

// MountPages attaches the navigable surfaces. The edge guard fronts every
// page; protected pages additionally resolve the full session.
func (h HandlerSet) MountPages(engine *gin.Engine) {
	pages := engine.Group("/", middleware.EdgeGuard())

	pages.GET("/login", h.LoginPage)
	pages.GET("/register", h.RegisterPage)

	protected := pages.Group("/", middleware.SessionGate(h.creds, h.cfg, h.log))
	protected.GET("/dashboard", h.DashboardPage)
	protected.GET("/dashboard/*rest", h.DashboardPage)
	protected.GET("/home", h.HomePage)
	protected.GET("/home/*rest", h.HomePage)
}

// newManager builds a request-scoped session manager over the cookie slots.
func (h HandlerSet) newManager(c *gin.Context, nav session.Navigator) *session.Manager {
	slots := persist.NewCookieAdapter(c, h.cfg.Production(), h.cfg.Auth.TokenTTL)
	return session.NewManager(h.creds, slots, nav, h.log,
		session.WithLatency(h.cfg.Auth.Latency))
}

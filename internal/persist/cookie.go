package persist

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dashkit/app/internal/models"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// CookieAdapter binds the slots to one HTTP exchange: reads come from the
// request cookies, writes go out on the response. The token cookie is the
// only slot the edge guard ever consults.
type CookieAdapter struct {
	c      *gin.Context
	secure bool
	ttl    time.Duration
}

// NewCookieAdapter wires the adapter to a request. secure should be true in
// production deployments so the token only travels over TLS; a non-positive
// ttl falls back to the 7-day default.
func NewCookieAdapter(c *gin.Context, secure bool, ttl time.Duration) *CookieAdapter {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &CookieAdapter{c: c, secure: secure, ttl: ttl}
}

func (a *CookieAdapter) ReadToken() (string, bool) {
	token, err := a.c.Cookie(TokenKey)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (a *CookieAdapter) ReadProfile() (models.User, bool) {
	raw, err := a.c.Cookie(ProfileKey)
	if err != nil || raw == "" {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

func (a *CookieAdapter) Write(token string, user models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}

	a.c.SetSameSite(http.SameSiteStrictMode)
	a.c.SetCookie(TokenKey, token, int(a.ttl.Seconds()), "/", "", a.secure, false)
	a.c.SetCookie(ProfileKey, string(raw), int(a.ttl.Seconds()), "/", "", a.secure, false)
}

func (a *CookieAdapter) Clear() {
	a.c.SetSameSite(http.SameSiteStrictMode)
	a.c.SetCookie(TokenKey, "", -1, "/", "", a.secure, false)
	a.c.SetCookie(ProfileKey, "", -1, "/", "", a.secure, false)
}

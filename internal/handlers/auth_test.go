package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"dashkit/app/internal/config"
	"dashkit/app/internal/models"
	"dashkit/app/internal/persist"
	"dashkit/app/internal/store"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.AppConfig{
		Environment: "test",
		Auth:        config.AuthConfig{Latency: 0},
	}
	creds := store.NewCredentialStore(store.SeedCredentials())
	h := NewHandlerSet(zerolog.Nop(), creds, cfg)

	engine := gin.New()
	h.Mount(engine.Group("/api"))
	h.MountPages(engine)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	engine.ServeHTTP(w, req)
	return w
}

func sessionCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	raw, err := json.Marshal(models.User{ID: "1", Email: "test@ex.com", Username: "Test User", Role: models.RoleAdmin})
	require.NoError(t, err)
	return []*http.Cookie{
		{Name: persist.TokenKey, Value: "tok_abc"},
		{Name: persist.ProfileKey, Value: url.QueryEscape(string(raw))},
	}
}

func TestLoginEndpoint_Success(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/login", `{"email":"test@ex.com","password":"123456"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "/dashboard", resp.Redirect)
	require.Equal(t, userResponse{
		ID:       "1",
		Email:    "test@ex.com",
		Username: "Test User",
		Role:     "admin",
	}, resp.User)

	// The response body never carries the password either way; the slots do
	// get written.
	require.NotContains(t, w.Body.String(), "password")

	names := map[string]bool{}
	for _, ck := range w.Result().Cookies() {
		names[ck.Name] = true
	}
	require.True(t, names[persist.TokenKey])
	require.True(t, names[persist.ProfileKey])
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/login", `{"email":"test@ex.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLoginEndpoint_MalformedEmail(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/login", `{"email":"not-an-email","password":"123456"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid email format")
}

func TestRegisterEndpoint_Success(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/register", `{"username":"New User","email":"new@example.com","password":"123456"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "/dashboard", resp.Redirect)
	require.Equal(t, "new@example.com", resp.User.Email)
	require.Equal(t, "user", resp.User.Role)
	require.NotEmpty(t, resp.User.ID)
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/register", `{"username":"Someone","email":"user@example.com","password":"123456"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "email already registered")
}

func TestLogoutEndpoint_ClearsSlots(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	w := postJSON(t, engine, "/api/v1/auth/logout", ``, sessionCookies(t)...)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"/login"`)

	for _, name := range []string{persist.TokenKey, persist.ProfileKey} {
		found := false
		for _, ck := range w.Result().Cookies() {
			if ck.Name == name {
				found = true
				require.Empty(t, ck.Value)
				require.Less(t, ck.MaxAge, 0)
			}
		}
		require.True(t, found, "cookie %q not cleared", name)
	}
}

func TestMeEndpoint(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	for _, ck := range sessionCookies(t) {
		req.AddCookie(ck)
	}
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"test@ex.com"`)

	// Without a session the gate sends the viewer to the login surface.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProtectedPages(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	// Authenticated viewer sees the page with their identity attached.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range sessionCookies(t) {
		req.AddCookie(ck)
	}
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"dashboard"`)
	require.Contains(t, w.Body.String(), `"Test User"`)

	// No token: the edge guard redirects before any page code runs.
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthSurfacePages(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	// Logged-out viewer gets the login page.
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"login"`)

	// A token holder is bounced to the dashboard instead.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: persist.TokenKey, Value: "tok_abc"})
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusTemporaryRedirect, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
}

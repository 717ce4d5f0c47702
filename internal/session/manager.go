package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"dashkit/app/internal/ids"
	"dashkit/app/internal/models"
	"dashkit/app/internal/persist"
	"dashkit/app/internal/routes"
)

// DefaultLatency stands in for the network round-trip of the mocked auth
// backend. Email-format rejections never pay it.
const DefaultLatency = time.Second

// CredentialSource is the external-call boundary of login and registration.
// A real deployment would put a network client behind it; here it is the
// in-memory credential store.
type CredentialSource interface {
	FindByEmailAndPassword(ctx context.Context, email, password string) (models.Credential, bool)
	ExistsByEmail(ctx context.Context, email string) bool
}

// Navigator moves the client to another surface after a session transition.
type Navigator interface {
	NavigateTo(path string)
}

// Manager owns the single session State and is the only thing that mutates
// it. Consumers read snapshots and subscribe for changes; they never hold a
// reference into the manager's internals.
type Manager struct {
	creds CredentialSource
	slots persist.Adapter
	nav   Navigator
	log   zerolog.Logger

	latency   time.Duration
	sleep     func(time.Duration)
	newToken  func() string
	newUserID func() string

	mu          sync.Mutex
	state       State
	initialized bool
	nextSub     int
	subs        map[int]func(State)
}

type Option func(*Manager)

// WithLatency overrides the simulated round-trip delay.
func WithLatency(d time.Duration) Option {
	return func(m *Manager) { m.latency = d }
}

// WithSleep substitutes the blocking primitive used for the simulated delay.
func WithSleep(fn func(time.Duration)) Option {
	return func(m *Manager) { m.sleep = fn }
}

// WithTokenFunc substitutes the opaque-token mint.
func WithTokenFunc(fn func() string) Option {
	return func(m *Manager) { m.newToken = fn }
}

// WithUserIDFunc substitutes the id generator for registered users.
func WithUserIDFunc(fn func() string) Option {
	return func(m *Manager) { m.newUserID = fn }
}

func NewManager(creds CredentialSource, slots persist.Adapter, nav Navigator, log zerolog.Logger, opts ...Option) *Manager {
	m := &Manager{
		creds:     creds,
		slots:     slots,
		nav:       nav,
		log:       log,
		latency:   DefaultLatency,
		sleep:     time.Sleep,
		newToken:  ids.NewToken,
		newUserID: ids.NewUserID,
		state:     State{IsLoading: true},
		subs:      make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers fn to run on every state transition. The returned
// function removes the subscription.
func (m *Manager) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Initialize resolves the persisted slots into the initial state. Run once
// at startup; later calls are no-ops. The state is authenticated only when
// token and profile are both present, and IsLoading always ends false.
func (m *Manager) Initialize() {
	m.mu.Lock()
	if m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = true
	m.mu.Unlock()

	token, haveToken := m.slots.ReadToken()
	profile, haveProfile := m.slots.ReadProfile()

	m.update(func(s *State) {
		if haveToken && token != "" && haveProfile {
			s.User = &profile
		}
		s.IsLoading = false
	})
}

// Login validates the email shape, then asks the credential source after the
// simulated round-trip. On failure the persisted slots are cleared before
// the error propagates and the in-memory user is left untouched; nothing is
// ever half-written because persistence happens only after every check has
// passed.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	if !validEmail(email) {
		return ErrInvalidEmailFormat
	}

	m.update(func(s *State) { s.IsLoading = true })
	m.sleep(m.latency)

	cred, ok := m.creds.FindByEmailAndPassword(ctx, email, password)
	if !ok {
		m.slots.Clear()
		m.update(func(s *State) { s.IsLoading = false })
		m.log.Warn().Str("email", email).Msg("login rejected")
		return ErrInvalidCredentials
	}

	user := cred.User()
	m.slots.Write(m.newToken(), user)
	m.update(func(s *State) {
		s.User = &user
		s.IsLoading = false
	})

	m.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	m.nav.NavigateTo(routes.DashboardRoot)
	return nil
}

// Register runs the same email check and simulated round-trip as Login,
// rejects duplicate emails, and otherwise mints a fresh identity with the
// default role. Same clear-on-failure guarantee as Login.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	if !validEmail(email) {
		return ErrInvalidEmailFormat
	}

	m.update(func(s *State) { s.IsLoading = true })
	m.sleep(m.latency)

	if m.creds.ExistsByEmail(ctx, email) {
		m.slots.Clear()
		m.update(func(s *State) { s.IsLoading = false })
		return ErrEmailAlreadyRegistered
	}

	user := models.User{
		ID:       m.newUserID(),
		Email:    email,
		Username: username,
		Role:     models.RoleUser,
	}
	m.slots.Write(m.newToken(), user)
	m.update(func(s *State) {
		s.User = &user
		s.IsLoading = false
	})

	m.log.Info().Str("user_id", user.ID).Msg("registration succeeded")
	m.nav.NavigateTo(routes.DashboardRoot)
	return nil
}

// Logout clears both slots, drops the in-memory user and moves the client to
// the login surface. It cannot fail.
func (m *Manager) Logout() {
	m.slots.Clear()
	m.update(func(s *State) {
		s.User = nil
		s.IsLoading = false
	})
	m.nav.NavigateTo(routes.LoginPath)
}

// update applies fn under the lock, then notifies subscribers with the new
// snapshot outside it. Slot writes always happen before the state update, so
// a reader never sees a user whose slots are stale.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state
	subs := make([]func(State), 0, len(m.subs))
	for _, sub := range m.subs {
		subs = append(subs, sub)
	}
	m.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

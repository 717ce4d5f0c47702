package session

import "dashkit/app/internal/routes"

type Decision int

const (
	// DecisionHold shows the placeholder: the state is still resolving and
	// neither content nor a redirect may be produced yet.
	DecisionHold Decision = iota
	// DecisionRedirect sends an unauthenticated viewer to the login surface.
	DecisionRedirect
	// DecisionRender lets the wrapped content through unchanged.
	DecisionRender
)

// Decide maps a session state to the gate's action. Loading always wins, so
// protected content can never flash before the absent-user check has run.
func Decide(s State) Decision {
	if s.IsLoading {
		return DecisionHold
	}
	if !s.Authenticated() {
		return DecisionRedirect
	}
	return DecisionRender
}

// Gate guards protected content against an unresolved or unauthenticated
// session. It re-evaluates on every state transition, so a logout while the
// content is showing revokes it immediately.
type Gate struct {
	mgr   *Manager
	nav   Navigator
	unsub func()
}

func NewGate(mgr *Manager, nav Navigator) *Gate {
	g := &Gate{mgr: mgr, nav: nav}
	g.unsub = mgr.Subscribe(func(s State) {
		g.apply(Decide(s))
	})
	return g
}

// Evaluate decides against the current snapshot, issuing the redirect if one
// is due, and reports the decision to the caller.
func (g *Gate) Evaluate() Decision {
	d := Decide(g.mgr.Snapshot())
	g.apply(d)
	return d
}

// Close detaches the gate from the manager.
func (g *Gate) Close() {
	g.unsub()
}

func (g *Gate) apply(d Decision) {
	if d == DecisionRedirect {
		g.nav.NavigateTo(routes.LoginPath)
	}
}

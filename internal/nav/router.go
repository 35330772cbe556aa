package nav

import (
	"context"

	"github.com/Tharusha999/isdn-sub001/internal/auth"
	"github.com/Tharusha999/isdn-sub001/internal/session"
)

// State is the Router's resolution state.
type State int

const (
	// StateUnresolved means the persisted session has not been read
	// yet. Nothing may be rendered from this state: showing a menu
	// before the role is known flashes the wrong one.
	StateUnresolved State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

// Router owns the session-derived view of who is signed in: it reads
// the persisted session once, derives the role, and from it the
// visible navigation set and redirect target. All methods are
// synchronous except Resolve and SignOut, which touch the store.
type Router struct {
	store    session.Store
	state    State
	identity auth.Identity
}

func NewRouter(store session.Store) *Router {
	return &Router{
		store: store,
		state: StateUnresolved,
	}
}

// Resolve performs the one deferred read of persisted session state.
// Absent, expired, or partial sessions resolve to Anonymous.
func (r *Router) Resolve(ctx context.Context, sessionID string) (State, error) {
	if sessionID == "" {
		r.toAnonymous()
		return r.state, nil
	}

	s, err := r.store.Get(ctx, sessionID)
	if err != nil {
		// Store failure: stay resolvable, expose nothing.
		r.toAnonymous()
		return r.state, err
	}
	if s == nil {
		r.toAnonymous()
		return r.state, nil
	}

	r.state = StateAuthenticated
	r.identity = s.Identity
	return r.state, nil
}

// Establish transitions to Authenticated after a successful
// credential-gateway call. The identity must already be persisted by
// the caller; the Router never writes the store on this path.
func (r *Router) Establish(identity auth.Identity) {
	if !identity.Complete() {
		r.toAnonymous()
		return
	}
	r.state = StateAuthenticated
	r.identity = identity
}

// SignOut clears the persisted session and returns to Anonymous. The
// local transition happens regardless of store errors so a failed
// delete cannot leave gated navigation visible.
func (r *Router) SignOut(ctx context.Context, sessionID string) error {
	var err error
	if sessionID != "" {
		err = r.store.Delete(ctx, sessionID)
	}
	r.toAnonymous()
	return err
}

func (r *Router) toAnonymous() {
	r.state = StateAnonymous
	r.identity = auth.Identity{}
}

func (r *Router) State() State {
	return r.state
}

// Identity returns the authenticated identity, if any.
func (r *Router) Identity() (auth.Identity, bool) {
	if r.state != StateAuthenticated {
		return auth.Identity{}, false
	}
	return r.identity, true
}

// Visible returns the navigation entries the current state may
// render. Unresolved and Anonymous expose nothing.
func (r *Router) Visible() []Entry {
	if r.state != StateAuthenticated {
		return nil
	}
	return VisibleEntries(r.identity.Role)
}

// Redirect returns the post-authentication landing page. ok is false
// unless the Router is Authenticated.
func (r *Router) Redirect() (string, bool) {
	if r.state != StateAuthenticated {
		return "", false
	}
	return RedirectPath(r.identity.Role), true
}

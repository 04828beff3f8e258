package panel

import "sync"

// AdminView is what the admin panel shows for the current auth state.
type AdminView string

const (
	ViewLogin     AdminView = "login"
	ViewDashboard AdminView = "dashboard"
)

// Gate tracks whether the admin is signed in and decides between the login
// and dashboard views. Two event sources write the state cell: SetLocal, the
// optimistic flip a successful login performs, and the auth-state
// subscription taken at construction. A subscription event always overwrites
// whatever SetLocal wrote, since it fires on every change including ones
// triggered elsewhere, such as token expiry.
type Gate struct {
	mu          sync.Mutex
	signedIn    bool
	closed      bool
	onChange    func(AdminView)
	unsubscribe func()
	closeOnce   sync.Once
}

// NewGate subscribes to auth-state changes. onChange, if non-nil, is invoked
// whenever the resolved view changes. The caller owns the gate and must call
// Close on teardown to release the subscription.
func NewGate(sub Subscriber, onChange func(AdminView)) *Gate {
	g := &Gate{onChange: onChange}
	g.unsubscribe = sub.Subscribe(g.onAuthState)
	return g
}

func (g *Gate) onAuthState(signedIn bool) {
	g.set(signedIn)
}

// SetLocal records the optimistic local flip after a successful login so the
// view reacts without waiting for the subscription round trip. Any later
// subscription event wins over this value.
func (g *Gate) SetLocal(signedIn bool) {
	g.set(signedIn)
}

func (g *Gate) set(signedIn bool) {
	g.mu.Lock()
	if g.closed || g.signedIn == signedIn {
		g.mu.Unlock()
		return
	}
	g.signedIn = signedIn
	onChange := g.onChange
	g.mu.Unlock()

	if onChange != nil {
		onChange(viewFor(signedIn))
	}
}

// SignedIn reports the current auth state.
func (g *Gate) SignedIn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.signedIn
}

// View resolves the admin view for the current auth state.
func (g *Gate) View() AdminView {
	return viewFor(g.SignedIn())
}

// Close releases the auth-state subscription. Safe to call more than once;
// the subscription is released exactly once.
func (g *Gate) Close() {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		g.mu.Unlock()
		g.unsubscribe()
	})
}

func viewFor(signedIn bool) AdminView {
	if signedIn {
		return ViewDashboard
	}
	return ViewLogin
}

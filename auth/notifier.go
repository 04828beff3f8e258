package auth

import "sync"

// Notifier broadcasts authentication-state changes to registered listeners.
// Subscribe returns an unsubscribe handle the caller owns and must release on
// teardown; releasing twice is a no-op. Listeners run synchronously in
// registration order on the publishing goroutine.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(signedIn bool)
	order  []int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(bool))}
}

// Subscribe registers fn for every subsequent state change.
func (n *Notifier) Subscribe(fn func(signedIn bool)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	n.order = append(n.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
		})
	}
}

// Publish notifies every live listener of the new state.
func (n *Notifier) Publish(signedIn bool) {
	n.mu.Lock()
	fns := make([]func(bool), 0, len(n.subs))
	for _, id := range n.order {
		if fn, ok := n.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(signedIn)
	}
}

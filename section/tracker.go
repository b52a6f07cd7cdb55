package section

import "sync"

// Tracker holds the active section for one page session. The zero value is
// not usable; call NewTracker.
type Tracker struct {
	mu     sync.Mutex
	active ID
	subs   map[int]func(ID)
	nextID int
}

// NewTracker returns a Tracker whose active section is Home.
func NewTracker() *Tracker {
	return &Tracker{
		active: Home,
		subs:   make(map[int]func(ID)),
	}
}

// Active returns the current section.
func (t *Tracker) Active() ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Set makes id the active section. Unknown ids are ignored. Subscribers are
// notified only when the value changes. The last call wins.
func (t *Tracker) Set(id ID) bool {
	if !id.Valid() {
		return false
	}
	t.mu.Lock()
	if t.active == id {
		t.mu.Unlock()
		return false
	}
	t.active = id
	subs := make([]func(ID), 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mu.Unlock()

	for _, fn := range subs {
		fn(id)
	}
	return true
}

// Subscribe registers fn to be called with every new active section. The
// returned func removes the subscription.
func (t *Tracker) Subscribe(fn func(ID)) (cancel func()) {
	t.mu.Lock()
	key := t.nextID
	t.nextID++
	t.subs[key] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, key)
		t.mu.Unlock()
	}
}

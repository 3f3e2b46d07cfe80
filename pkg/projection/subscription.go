package projection

import "sync"

// Subscription is the caller-owned handle for a snapshot subscription.
type Subscription struct {
	registry  *registry
	companyID string
	id        int64
}

// Unsubscribe removes the subscription. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.registry.remove(s.companyID, s.id)
}

// registry tracks snapshot callbacks per company.
type registry struct {
	mu     sync.Mutex
	nextID int64
	subs   map[string]map[int64]func(*Snapshot)
}

func newRegistry() *registry {
	return &registry{
		subs: make(map[string]map[int64]func(*Snapshot)),
	}
}

func (r *registry) add(companyID string, fn func(*Snapshot)) *Subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	if r.subs[companyID] == nil {
		r.subs[companyID] = make(map[int64]func(*Snapshot))
	}
	r.subs[companyID][r.nextID] = fn

	return &Subscription{registry: r, companyID: companyID, id: r.nextID}
}

func (r *registry) remove(companyID string, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.subs[companyID], id)
	if len(r.subs[companyID]) == 0 {
		delete(r.subs, companyID)
	}
}

func (r *registry) notify(companyID string, snapshot *Snapshot) {
	r.mu.Lock()
	callbacks := make([]func(*Snapshot), 0, len(r.subs[companyID]))
	for _, fn := range r.subs[companyID] {
		callbacks = append(callbacks, fn)
	}
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(snapshot)
	}
}
